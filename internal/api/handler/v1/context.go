package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/api/middleware"
	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/service"
)

var errNotAuthenticated = errors.New("request is not authenticated")

// getPrincipal rebuilds the caller from the context keys the JWT middleware
// populated.
func getPrincipal(ctx *gin.Context) (domain.Principal, error) {
	userID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.Principal{}, errNotAuthenticated
	}

	id, ok := userID.(uint)
	if !ok {
		return domain.Principal{}, errNotAuthenticated
	}

	return domain.Principal{
		UserID: id,
		Role:   ctx.GetString(middleware.ContextKeyUserRole),
	}, nil
}

// renderServiceErr translates a service failure into the HTTP contract.
func renderServiceErr(ctx *gin.Context, err error) {
	if errors.Is(err, service.ErrPermissionDenied) {
		response.RenderErr(ctx, response.ErrPermissionDenied())

		return
	}

	response.RenderErr(ctx, response.ErrFromDomain(err))
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New(name + " must be a positive number")
	}

	return uint(id), nil
}

// parseQueryID reads a numeric query parameter, rendering a 400 itself when
// the value doesn't parse.
func parseQueryID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New(name+" must be a positive number")))

		return 0, false
	}

	return uint(id), true
}
