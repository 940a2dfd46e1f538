package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type InscriptionService interface {
	Register(ctx context.Context, caller domain.Principal, competitorID, eventID, categoryID uint) (domain.Inscription, error)
	GetInscription(ctx context.Context, caller domain.Principal, id uint) (domain.Inscription, error)
	ListInscriptions(ctx context.Context, caller domain.Principal) ([]domain.Inscription, error)
	ListByCompetitor(ctx context.Context, caller domain.Principal, competitorID uint) ([]domain.Inscription, error)
	ListByEvent(ctx context.Context, caller domain.Principal, eventID uint) ([]domain.Inscription, error)
	ListByEventAndCategory(ctx context.Context, caller domain.Principal, eventID, categoryID uint) ([]domain.Inscription, error)
	ListByEventAndPaymentStatus(ctx context.Context, caller domain.Principal, eventID uint, status domain.PaymentStatus) ([]domain.Inscription, error)
	CountPaidByEvent(ctx context.Context, caller domain.Principal, eventID uint) (int64, error)
	Update(ctx context.Context, caller domain.Principal, id uint, categoryID uint, status domain.PaymentStatus) (domain.Inscription, error)
	Delete(ctx context.Context, caller domain.Principal, id uint) error
}

type InscriptionHandler struct {
	svc InscriptionService
}

func NewInscriptionHandler(svc InscriptionService) *InscriptionHandler {
	return &InscriptionHandler{
		svc: svc,
	}
}

// HandleCreateInscription godoc
// @Summary      Register a competitor into an event category
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        request  body       request.CreateInscriptionRequest true "request body"
// @Success      201      {object}   domain.Inscription
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /inscriptions [post]
func (h *InscriptionHandler) HandleCreateInscription(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateInscriptionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	competitorID := req.CompetitorID
	if competitorID == 0 {
		competitorID = caller.UserID
	}

	inscription, err := h.svc.Register(ctx.Request.Context(), caller, competitorID, req.EventID, req.CategoryID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, inscription)
}

// HandleGetInscription godoc
// @Summary      Get an inscription by ID
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        inscriptionID path  int  true "inscription ID"
// @Success      200      {object}   domain.Inscription
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /inscriptions/{inscriptionID} [get]
func (h *InscriptionHandler) HandleGetInscription(ctx *gin.Context) {
	inscriptionID, err := parseIDParam(ctx, "inscriptionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	inscription, err := h.svc.GetInscription(ctx.Request.Context(), caller, inscriptionID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, inscription)
}

// HandleListInscriptions godoc
// @Summary      List all inscriptions (admin only)
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Success      200      {object}   []domain.Inscription
// @Failure      403      {object}   response.Err
// @Router       /inscriptions [get]
func (h *InscriptionHandler) HandleListInscriptions(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	inscriptions, err := h.svc.ListInscriptions(ctx.Request.Context(), caller)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, inscriptions)
}

// HandleListCompetitorInscriptions godoc
// @Summary      List a competitor's inscriptions (admin or the competitor)
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        userID   path       int  true "competitor ID"
// @Success      200      {object}   []domain.Inscription
// @Failure      403      {object}   response.Err
// @Router       /users/{userID}/inscriptions [get]
func (h *InscriptionHandler) HandleListCompetitorInscriptions(ctx *gin.Context) {
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

	inscriptions, err := h.svc.ListByCompetitor(ctx.Request.Context(), caller, userID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, inscriptions)
}

// HandleListEventInscriptions godoc
// @Summary      List an event's inscriptions (admin or owning organizer)
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        eventID        path   int     true  "event ID"
// @Param        category_id    query  int     false "category ID"
// @Param        payment_status query  string  false "payment status"
// @Success      200      {object}   []domain.Inscription
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/inscriptions [get]
func (h *InscriptionHandler) HandleListEventInscriptions(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var inscriptions []domain.Inscription

	switch {
	case ctx.Query("category_id") != "":
		id, ok := parseQueryID(ctx, "category_id")
		if !ok {
			return
		}
		inscriptions, err = h.svc.ListByEventAndCategory(ctx.Request.Context(), caller, eventID, id)
	case ctx.Query("payment_status") != "":
		inscriptions, err = h.svc.ListByEventAndPaymentStatus(ctx.Request.Context(), caller, eventID,
			domain.PaymentStatus(ctx.Query("payment_status")))
	default:
		inscriptions, err = h.svc.ListByEvent(ctx.Request.Context(), caller, eventID)
	}
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, inscriptions)
}

// HandleCountPaidInscriptions godoc
// @Summary      Count an event's paid inscriptions
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Success      200      {object}   map[string]int64
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/inscriptions/paid-count [get]
func (h *InscriptionHandler) HandleCountPaidInscriptions(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	count, err := h.svc.CountPaidByEvent(ctx.Request.Context(), caller, eventID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// HandleUpdateInscription godoc
// @Summary      Update an inscription's category or payment status
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        inscriptionID path  int  true "inscription ID"
// @Param        request  body       request.UpdateInscriptionRequest true "request body"
// @Success      200      {object}   domain.Inscription
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /inscriptions/{inscriptionID} [put]
func (h *InscriptionHandler) HandleUpdateInscription(ctx *gin.Context) {
	inscriptionID, err := parseIDParam(ctx, "inscriptionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.UpdateInscriptionRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	inscription, err := h.svc.Update(ctx.Request.Context(), caller, inscriptionID,
		req.CategoryID, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, inscription)
}

// HandleDeleteInscription godoc
// @Summary      Delete an inscription (admin or owning competitor)
// @Security     BearerAuth
// @Tags         inscriptions
// @Produce      json
// @Param        inscriptionID path  int  true "inscription ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /inscriptions/{inscriptionID} [delete]
func (h *InscriptionHandler) HandleDeleteInscription(ctx *gin.Context) {
	inscriptionID, err := parseIDParam(ctx, "inscriptionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), caller, inscriptionID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}
