package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, caller domain.Principal, category domain.Category) (domain.Category, error)
	GetCategory(ctx context.Context, id uint) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCategoriesBySport(ctx context.Context, sportID uint) ([]domain.Category, error)
	ListCategoriesByGender(ctx context.Context, genderID uint) ([]domain.Category, error)
	ListCategoriesByLevel(ctx context.Context, levelID uint) ([]domain.Category, error)
	SearchCategories(ctx context.Context, query string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, caller domain.Principal, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, caller domain.Principal, id uint) error
}

type CategoryHandler struct {
	svc CategoryService
}

func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

// HandleCreateCategory godoc
// @Summary      Create a category (admin only)
// @Security     BearerAuth
// @Tags         categories
// @Produce      json
// @Param        request  body       request.CreateCategoryRequest true "request body"
// @Success      201      {object}   domain.Category
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /categories [post]
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateCategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), caller, domain.Category{
		SportID:   req.SportID,
		Name:      req.Name,
		MinAge:    req.MinAge,
		MaxAge:    req.MaxAge,
		MinWeight: req.MinWeight,
		MaxWeight: req.MaxWeight,
		GenderID:  req.GenderID,
		LevelID:   req.LevelID,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleGetCategory godoc
// @Summary      Get a category by ID
// @Security     BearerAuth
// @Tags         categories
// @Produce      json
// @Param        categoryID path     int  true "category ID"
// @Success      200      {object}   domain.Category
// @Failure      404      {object}   response.Err
// @Router       /categories/{categoryID} [get]
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	category, err := h.svc.GetCategory(ctx.Request.Context(), categoryID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleListCategories godoc
// @Summary      List categories, optionally filtered by sport, gender or level
// @Security     BearerAuth
// @Tags         categories
// @Produce      json
// @Param        sport_id   query    int     false "sport ID"
// @Param        gender_id  query    int     false "gender ID"
// @Param        level_id   query    int     false "level ID"
// @Param        q          query    string  false "search term"
// @Success      200      {object}   []domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	var (
		categories []domain.Category
		err        error
	)

	switch {
	case ctx.Query("sport_id") != "":
		id, ok := parseQueryID(ctx, "sport_id")
		if !ok {
			return
		}
		categories, err = h.svc.ListCategoriesBySport(ctx.Request.Context(), id)
	case ctx.Query("gender_id") != "":
		id, ok := parseQueryID(ctx, "gender_id")
		if !ok {
			return
		}
		categories, err = h.svc.ListCategoriesByGender(ctx.Request.Context(), id)
	case ctx.Query("level_id") != "":
		id, ok := parseQueryID(ctx, "level_id")
		if !ok {
			return
		}
		categories, err = h.svc.ListCategoriesByLevel(ctx.Request.Context(), id)
	case ctx.Query("q") != "":
		categories, err = h.svc.SearchCategories(ctx.Request.Context(), ctx.Query("q"))
	default:
		categories, err = h.svc.ListCategories(ctx.Request.Context())
	}
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleUpdateCategory godoc
// @Summary      Update a category (admin only)
// @Security     BearerAuth
// @Tags         categories
// @Produce      json
// @Param        categoryID path     int  true "category ID"
// @Param        request  body       request.UpdateCategoryRequest true "request body"
// @Success      200      {object}   domain.Category
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /categories/{categoryID} [put]
func (h *CategoryHandler) HandleUpdateCategory(ctx *gin.Context) {
	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.UpdateCategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	category, err := h.svc.UpdateCategory(ctx.Request.Context(), caller, domain.Category{
		ID:        categoryID,
		SportID:   req.SportID,
		Name:      req.Name,
		MinAge:    req.MinAge,
		MaxAge:    req.MaxAge,
		MinWeight: req.MinWeight,
		MaxWeight: req.MaxWeight,
		GenderID:  req.GenderID,
		LevelID:   req.LevelID,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category (admin only)
// @Security     BearerAuth
// @Tags         categories
// @Produce      json
// @Param        categoryID path     int  true "category ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /categories/{categoryID} [delete]
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteCategory(ctx.Request.Context(), caller, categoryID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
