package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type ReferenceService interface {
	CreateGender(ctx context.Context, caller domain.Principal, gender domain.Gender) (domain.Gender, error)
	GetGender(ctx context.Context, id uint) (domain.Gender, error)
	ListGenders(ctx context.Context) ([]domain.Gender, error)
	DeleteGender(ctx context.Context, caller domain.Principal, id uint) error
	CreateUserType(ctx context.Context, caller domain.Principal, userType domain.UserType) (domain.UserType, error)
	GetUserType(ctx context.Context, id uint) (domain.UserType, error)
	ListUserTypes(ctx context.Context) ([]domain.UserType, error)
	DeleteUserType(ctx context.Context, caller domain.Principal, id uint) error
}

// ReferenceHandler serves the genders and user-types lookup tables.
type ReferenceHandler struct {
	svc ReferenceService
}

func NewReferenceHandler(svc ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		svc: svc,
	}
}

// HandleCreateGender godoc
// @Summary      Create a gender (admin only)
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Param        request  body       request.CreateGenderRequest true "request body"
// @Success      201      {object}   domain.Gender
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /genders [post]
func (h *ReferenceHandler) HandleCreateGender(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateGenderRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	gender, err := h.svc.CreateGender(ctx.Request.Context(), caller, domain.Gender{Name: req.Name})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, gender)
}

// HandleListGenders godoc
// @Summary      List genders
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Success      200      {object}   []domain.Gender
// @Failure      500      {object}   response.Err
// @Router       /genders [get]
func (h *ReferenceHandler) HandleListGenders(ctx *gin.Context) {
	genders, err := h.svc.ListGenders(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, genders)
}

// HandleDeleteGender godoc
// @Summary      Delete a gender (admin only)
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Param        genderID path       int  true "gender ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /genders/{genderID} [delete]
func (h *ReferenceHandler) HandleDeleteGender(ctx *gin.Context) {
	genderID, err := parseIDParam(ctx, "genderID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteGender(ctx.Request.Context(), caller, genderID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateUserType godoc
// @Summary      Create a user type (admin only)
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Param        request  body       request.CreateUserTypeRequest true "request body"
// @Success      201      {object}   domain.UserType
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /user-types [post]
func (h *ReferenceHandler) HandleCreateUserType(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateUserTypeRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	userType, err := h.svc.CreateUserType(ctx.Request.Context(), caller, domain.UserType{Name: req.Name})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, userType)
}

// HandleListUserTypes godoc
// @Summary      List user types
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Success      200      {object}   []domain.UserType
// @Failure      500      {object}   response.Err
// @Router       /user-types [get]
func (h *ReferenceHandler) HandleListUserTypes(ctx *gin.Context) {
	userTypes, err := h.svc.ListUserTypes(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, userTypes)
}

// HandleDeleteUserType godoc
// @Summary      Delete a user type (admin only)
// @Security     BearerAuth
// @Tags         references
// @Produce      json
// @Param        userTypeID path     int  true "user type ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /user-types/{userTypeID} [delete]
func (h *ReferenceHandler) HandleDeleteUserType(ctx *gin.Context) {
	userTypeID, err := parseIDParam(ctx, "userTypeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteUserType(ctx.Request.Context(), caller, userTypeID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
