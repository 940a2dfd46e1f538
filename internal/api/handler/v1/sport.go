package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type SportService interface {
	CreateSport(ctx context.Context, caller domain.Principal, sport domain.Sport) (domain.Sport, error)
	GetSport(ctx context.Context, id uint) (domain.Sport, error)
	ListSports(ctx context.Context) ([]domain.Sport, error)
	UpdateSport(ctx context.Context, caller domain.Principal, sport domain.Sport) (domain.Sport, error)
	DeleteSport(ctx context.Context, caller domain.Principal, id uint) error
	CreateLevel(ctx context.Context, caller domain.Principal, level domain.SportLevel) (domain.SportLevel, error)
	GetLevel(ctx context.Context, id uint) (domain.SportLevel, error)
	ListLevelsBySport(ctx context.Context, sportID uint) ([]domain.SportLevel, error)
	UpdateLevel(ctx context.Context, caller domain.Principal, level domain.SportLevel) (domain.SportLevel, error)
	DeleteLevel(ctx context.Context, caller domain.Principal, id uint) error
}

type SportHandler struct {
	svc SportService
}

func NewSportHandler(svc SportService) *SportHandler {
	return &SportHandler{
		svc: svc,
	}
}

// HandleCreateSport godoc
// @Summary      Create a sport (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        request  body       request.CreateSportRequest true "request body"
// @Success      201      {object}   domain.Sport
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /sports [post]
func (h *SportHandler) HandleCreateSport(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateSportRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sport, err := h.svc.CreateSport(ctx.Request.Context(), caller, domain.Sport{Name: req.Name})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, sport)
}

// HandleGetSport godoc
// @Summary      Get a sport by ID
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        sportID  path       int  true "sport ID"
// @Success      200      {object}   domain.Sport
// @Failure      404      {object}   response.Err
// @Router       /sports/{sportID} [get]
func (h *SportHandler) HandleGetSport(ctx *gin.Context) {
	sportID, err := parseIDParam(ctx, "sportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sport, err := h.svc.GetSport(ctx.Request.Context(), sportID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, sport)
}

// HandleListSports godoc
// @Summary      List sports
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Success      200      {object}   []domain.Sport
// @Router       /sports [get]
func (h *SportHandler) HandleListSports(ctx *gin.Context) {
	sports, err := h.svc.ListSports(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, sports)
}

// HandleUpdateSport godoc
// @Summary      Rename a sport (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        sportID  path       int  true "sport ID"
// @Param        request  body       request.CreateSportRequest true "request body"
// @Success      200      {object}   domain.Sport
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /sports/{sportID} [put]
func (h *SportHandler) HandleUpdateSport(ctx *gin.Context) {
	sportID, err := parseIDParam(ctx, "sportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateSportRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sport, err := h.svc.UpdateSport(ctx.Request.Context(), caller, domain.Sport{ID: sportID, Name: req.Name})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, sport)
}

// HandleDeleteSport godoc
// @Summary      Delete a sport (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        sportID  path       int  true "sport ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /sports/{sportID} [delete]
func (h *SportHandler) HandleDeleteSport(ctx *gin.Context) {
	sportID, err := parseIDParam(ctx, "sportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteSport(ctx.Request.Context(), caller, sportID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateLevel godoc
// @Summary      Create a level under a sport (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        sportID  path       int  true "sport ID"
// @Param        request  body       request.CreateSportLevelRequest true "request body"
// @Success      201      {object}   domain.SportLevel
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /sports/{sportID}/levels [post]
func (h *SportHandler) HandleCreateLevel(ctx *gin.Context) {
	sportID, err := parseIDParam(ctx, "sportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateSportLevelRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	level, err := h.svc.CreateLevel(ctx.Request.Context(), caller, domain.SportLevel{
		SportID: sportID,
		Name:    req.Name,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, level)
}

// HandleListLevels godoc
// @Summary      List levels of a sport
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        sportID  path       int  true "sport ID"
// @Success      200      {object}   []domain.SportLevel
// @Failure      404      {object}   response.Err
// @Router       /sports/{sportID}/levels [get]
func (h *SportHandler) HandleListLevels(ctx *gin.Context) {
	sportID, err := parseIDParam(ctx, "sportID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	levels, err := h.svc.ListLevelsBySport(ctx.Request.Context(), sportID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, levels)
}

// HandleUpdateLevel godoc
// @Summary      Rename a level (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        levelID  path       int  true "level ID"
// @Param        request  body       request.CreateSportLevelRequest true "request body"
// @Success      200      {object}   domain.SportLevel
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /levels/{levelID} [put]
func (h *SportHandler) HandleUpdateLevel(ctx *gin.Context) {
	levelID, err := parseIDParam(ctx, "levelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateSportLevelRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	level, err := h.svc.UpdateLevel(ctx.Request.Context(), caller, domain.SportLevel{ID: levelID, Name: req.Name})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, level)
}

// HandleDeleteLevel godoc
// @Summary      Delete a level (admin only)
// @Security     BearerAuth
// @Tags         sports
// @Produce      json
// @Param        levelID  path       int  true "level ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /levels/{levelID} [delete]
func (h *SportHandler) HandleDeleteLevel(ctx *gin.Context) {
	levelID, err := parseIDParam(ctx, "levelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteLevel(ctx.Request.Context(), caller, levelID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
