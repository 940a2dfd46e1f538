package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type ResultService interface {
	RecordResult(ctx context.Context, caller domain.Principal, res domain.Result) (domain.Result, error)
	GetResult(ctx context.Context, id uint) (domain.Result, error)
	ListResults(ctx context.Context) ([]domain.Result, error)
	ListByEvent(ctx context.Context, eventID uint) ([]domain.Result, error)
	ListByEventAndCategory(ctx context.Context, eventID, categoryID uint) ([]domain.Result, error)
	ListByCompetitor(ctx context.Context, competitorID uint) ([]domain.Result, error)
	ListByEventAndCompetitor(ctx context.Context, eventID, competitorID uint) ([]domain.Result, error)
	GetWinner(ctx context.Context, eventID, categoryID uint) (domain.Result, error)
	UpdateResult(ctx context.Context, caller domain.Principal, id uint, position int, notes string) (domain.Result, error)
	DeleteResult(ctx context.Context, caller domain.Principal, id uint) error
}

type ResultHandler struct {
	svc ResultService
}

func NewResultHandler(svc ResultService) *ResultHandler {
	return &ResultHandler{
		svc: svc,
	}
}

// HandleCreateResult godoc
// @Summary      Record a competitor's result (admin or owning organizer)
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        request  body       request.CreateResultRequest true "request body"
// @Success      201      {object}   domain.Result
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /results [post]
func (h *ResultHandler) HandleCreateResult(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateResultRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.RecordResult(ctx.Request.Context(), caller, domain.Result{
		EventID:      req.EventID,
		CategoryID:   req.CategoryID,
		CompetitorID: req.CompetitorID,
		Position:     req.Position,
		Notes:        req.Notes,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// HandleGetResult godoc
// @Summary      Get a result by ID
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        resultID path       int  true "result ID"
// @Success      200      {object}   domain.Result
// @Failure      404      {object}   response.Err
// @Router       /results/{resultID} [get]
func (h *ResultHandler) HandleGetResult(ctx *gin.Context) {
	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.GetResult(ctx.Request.Context(), resultID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleListEventResults godoc
// @Summary      List an event's results, optionally by category or competitor
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        eventID       path   int  true  "event ID"
// @Param        category_id   query  int  false "category ID"
// @Param        competitor_id query  int  false "competitor ID"
// @Success      200      {object}   []domain.Result
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/results [get]
func (h *ResultHandler) HandleListEventResults(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var results []domain.Result

	switch {
	case ctx.Query("category_id") != "":
		id, ok := parseQueryID(ctx, "category_id")
		if !ok {
			return
		}
		results, err = h.svc.ListByEventAndCategory(ctx.Request.Context(), eventID, id)
	case ctx.Query("competitor_id") != "":
		id, ok := parseQueryID(ctx, "competitor_id")
		if !ok {
			return
		}
		results, err = h.svc.ListByEventAndCompetitor(ctx.Request.Context(), eventID, id)
	default:
		results, err = h.svc.ListByEvent(ctx.Request.Context(), eventID)
	}
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, results)
}

// HandleListCompetitorResults godoc
// @Summary      List a competitor's results across events
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        userID   path       int  true "competitor ID"
// @Success      200      {object}   []domain.Result
// @Router       /users/{userID}/results [get]
func (h *ResultHandler) HandleListCompetitorResults(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	results, err := h.svc.ListByCompetitor(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, results)
}

// HandleGetWinner godoc
// @Summary      Get the first-place result of a category at an event
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        eventID    path     int  true "event ID"
// @Param        categoryID path     int  true "category ID"
// @Success      200      {object}   domain.Result
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/categories/{categoryID}/winner [get]
func (h *ResultHandler) HandleGetWinner(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.GetWinner(ctx.Request.Context(), eventID, categoryID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleUpdateResult godoc
// @Summary      Update a result's position or notes
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        resultID path       int  true "result ID"
// @Param        request  body       request.UpdateResultRequest true "request body"
// @Success      200      {object}   domain.Result
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /results/{resultID} [put]
func (h *ResultHandler) HandleUpdateResult(ctx *gin.Context) {
	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.UpdateResultRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.UpdateResult(ctx.Request.Context(), caller, resultID, req.Position, req.Notes)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleDeleteResult godoc
// @Summary      Delete a result (admin or owning organizer)
// @Security     BearerAuth
// @Tags         results
// @Produce      json
// @Param        resultID path       int  true "result ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /results/{resultID} [delete]
func (h *ResultHandler) HandleDeleteResult(ctx *gin.Context) {
	resultID, err := parseIDParam(ctx, "resultID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.DeleteResult(ctx.Request.Context(), caller, resultID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
