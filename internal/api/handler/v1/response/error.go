package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jglopez/tappedout-api/internal/domain"
)

// Stable machine-readable error codes. Clients branch on Code, not on Msg.
const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeDomainConflict = "DOMAIN_CONFLICT"
	CodeIllegalState   = "ILLEGAL_STATE"
	CodeInternalError  = "INTERNAL_ERROR"
)

type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Msg        string `json:"msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("status=%v, code=%v, msg=%v", e.StatusCode, e.Code, e.Msg)
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("requestID", requestid.Get(ctx)),
			zap.Int("status", err.StatusCode),
			zap.String("msg", err.Msg),
		)
	}

	ctx.JSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Code:       CodeBadRequest,
		Msg:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Code:       CodeUnauthorized,
		Msg:        "wrong credentials",
	}
}

func ErrPermissionDenied() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Code:       CodeForbidden,
		Msg:        "permission denied",
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Code:       CodeNotFound,
		Msg:        err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Code:       CodeConflict,
		Msg:        err.Error(),
	}
}

func ErrDomainConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       CodeDomainConflict,
		Msg:        err.Error(),
	}
}

func ErrIllegalState(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Code:       CodeIllegalState,
		Msg:        err.Error(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Msg:        err.Error(),
	}
}

// ErrFromDomain maps a service error onto the HTTP contract by the taxonomy
// kind it wraps. Unclassified errors become 500s.
func ErrFromDomain(err error) *Err {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound(err)
	case errors.Is(err, domain.ErrConflict):
		return ErrConflict(err)
	case errors.Is(err, domain.ErrInvalidValue):
		return ErrBadRequest(err)
	case errors.Is(err, domain.ErrDomainConflict):
		return ErrDomainConflict(err)
	case errors.Is(err, domain.ErrIllegalState):
		return ErrIllegalState(err)
	default:
		return ErrInternalServerError(err)
	}
}
