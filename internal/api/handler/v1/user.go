package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
	"github.com/jglopez/tappedout-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetUserByDNI(ctx context.Context, dni string) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByType(ctx context.Context, typeID uint) ([]domain.User, error)
	ListUsersByGender(ctx context.Context, genderID uint) ([]domain.User, error)
	ListUsersByLocation(ctx context.Context, country, city string) ([]domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Principal, user domain.User) (domain.User, error)
	ChangePassword(ctx context.Context, caller domain.Principal, userID uint, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, caller domain.Principal, userID uint) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Security     BearerAuth
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleListUsers godoc
// @Summary      List users, optionally filtered by type, gender or location
// @Security     BearerAuth
// @Tags         users
// @Produce      json
// @Param        dni        query     string  false "national ID document"
// @Param        type_id    query     int     false "user type ID"
// @Param        gender_id  query     int     false "gender ID"
// @Param        country    query     string  false "country"
// @Param        city       query     string  false "city"
// @Param        q          query     string  false "search term"
// @Success      200      {object}   []domain.User
// @Failure      500      {object}   response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	var (
		users []domain.User
		err   error
	)

	switch {
	case ctx.Query("dni") != "":
		var user domain.User
		user, err = h.svc.GetUserByDNI(ctx.Request.Context(), ctx.Query("dni"))
		users = []domain.User{user}
	case ctx.Query("type_id") != "":
		var typeID uint64
		typeID, err = strconv.ParseUint(ctx.Query("type_id"), 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("type_id must be a number")))

			return
		}
		users, err = h.svc.ListUsersByType(ctx.Request.Context(), uint(typeID))
	case ctx.Query("gender_id") != "":
		var genderID uint64
		genderID, err = strconv.ParseUint(ctx.Query("gender_id"), 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("gender_id must be a number")))

			return
		}
		users, err = h.svc.ListUsersByGender(ctx.Request.Context(), uint(genderID))
	case ctx.Query("country") != "":
		users, err = h.svc.ListUsersByLocation(ctx.Request.Context(), ctx.Query("country"), ctx.Query("city"))
	case ctx.Query("q") != "":
		users, err = h.svc.SearchUsers(ctx.Request.Context(), ctx.Query("q"))
	default:
		users, err = h.svc.ListUsers(ctx.Request.Context())
	}
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleUpdateUser godoc
// @Summary      Update a user's profile
// @Security     BearerAuth
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Param        request  body       request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.UpdateUserRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), caller, domain.User{
		ID:        userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
		City:      req.City,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleChangePassword godoc
// @Summary      Change a user's password
// @Security     BearerAuth
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Param        request  body       request.ChangePasswordRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID}/password [post]
func (h *UserHandler) HandleChangePassword(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.ChangePasswordRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.ChangePassword(ctx.Request.Context(), caller, userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Security     BearerAuth
// @Tags         users
// @Produce      json
// @Param        userID   path       int  true "user ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteUser(ctx.Request.Context(), caller, userID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
