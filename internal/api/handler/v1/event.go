package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jglopez/tappedout-api/internal/api/handler/v1/request"
	"github.com/jglopez/tappedout-api/internal/api/handler/v1/response"
	"github.com/jglopez/tappedout-api/internal/domain"
)

type EventService interface {
	CreateEvent(ctx context.Context, caller domain.Principal, event domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsBySport(ctx context.Context, sportID uint) ([]domain.Event, error)
	ListEventsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Event, error)
	ListEventsByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ListEventsByLocation(ctx context.Context, country, city string) ([]domain.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]domain.Event, error)
	ListPastEvents(ctx context.Context) ([]domain.Event, error)
	SearchEvents(ctx context.Context, query string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, caller domain.Principal, event domain.Event) (domain.Event, error)
	UpdateEventStatus(ctx context.Context, caller domain.Principal, eventID uint, status domain.EventStatus) (domain.Event, error)
	DeleteEvent(ctx context.Context, caller domain.Principal, id uint) error
	AddCategoryToEvent(ctx context.Context, caller domain.Principal, eventID, categoryID uint) error
	RemoveCategoryFromEvent(ctx context.Context, caller domain.Principal, eventID, categoryID uint) error
	ListEventCategories(ctx context.Context, eventID uint) ([]domain.Category, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event; the caller becomes its organizer
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        request  body       request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	var req request.CreateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), caller, domain.Event{
		SportID:         req.SportID,
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Country:         req.Country,
		City:            req.City,
		Address:         req.Address,
		Logo:            req.Logo,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvent godoc
// @Summary      Get an event by ID
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Success      200      {object}   domain.Event
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleListEvents godoc
// @Summary      List events with optional filters
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        sport_id     query  int     false "sport ID"
// @Param        organizer_id query  int     false "organizer ID"
// @Param        status       query  string  false "event status"
// @Param        country      query  string  false "country"
// @Param        city         query  string  false "city"
// @Param        when         query  string  false "upcoming or past"
// @Param        q            query  string  false "search term"
// @Success      200      {object}   []domain.Event
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	var (
		events []domain.Event
		err    error
	)

	switch {
	case ctx.Query("sport_id") != "":
		id, ok := parseQueryID(ctx, "sport_id")
		if !ok {
			return
		}
		events, err = h.svc.ListEventsBySport(ctx.Request.Context(), id)
	case ctx.Query("organizer_id") != "":
		id, ok := parseQueryID(ctx, "organizer_id")
		if !ok {
			return
		}
		events, err = h.svc.ListEventsByOrganizer(ctx.Request.Context(), id)
	case ctx.Query("status") != "":
		events, err = h.svc.ListEventsByStatus(ctx.Request.Context(), domain.EventStatus(ctx.Query("status")))
	case ctx.Query("country") != "":
		events, err = h.svc.ListEventsByLocation(ctx.Request.Context(), ctx.Query("country"), ctx.Query("city"))
	case ctx.Query("when") == "upcoming":
		events, err = h.svc.ListUpcomingEvents(ctx.Request.Context())
	case ctx.Query("when") == "past":
		events, err = h.svc.ListPastEvents(ctx.Request.Context())
	case ctx.Query("q") != "":
		events, err = h.svc.SearchEvents(ctx.Request.Context(), ctx.Query("q"))
	default:
		events, err = h.svc.ListEvents(ctx.Request.Context())
	}
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleUpdateEvent godoc
// @Summary      Update an event (admin or owning organizer)
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Param        request  body       request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
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

	var req request.UpdateEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), caller, domain.Event{
		ID:              eventID,
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          domain.EventStatus(req.Status),
		Country:         req.Country,
		City:            req.City,
		Address:         req.Address,
		Logo:            req.Logo,
		RegistrationFee: req.RegistrationFee,
	})
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleUpdateEventStatus godoc
// @Summary      Change an event's lifecycle status
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Param        request  body       request.UpdateEventStatusRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/status [patch]
func (h *EventHandler) HandleUpdateEventStatus(ctx *gin.Context) {
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

	var req request.UpdateEventStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.UpdateEventStatus(ctx.Request.Context(), caller, eventID, domain.EventStatus(req.Status))
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event (admin or owning organizer)
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
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

	if err = h.svc.DeleteEvent(ctx.Request.Context(), caller, eventID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAddEventCategory godoc
// @Summary      Attach a category of the same sport to an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Param        request  body       request.AddEventCategoryRequest true "request body"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /events/{eventID}/categories [post]
func (h *EventHandler) HandleAddEventCategory(ctx *gin.Context) {
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

	var req request.AddEventCategoryRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.AddCategoryToEvent(ctx.Request.Context(), caller, eventID, req.CategoryID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRemoveEventCategory godoc
// @Summary      Detach a category from an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID    path     int  true "event ID"
// @Param        categoryID path     int  true "category ID"
// @Success      204
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/categories/{categoryID} [delete]
func (h *EventHandler) HandleRemoveEventCategory(ctx *gin.Context) {
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

	caller, err := getPrincipal(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))

		return
	}

	if err = h.svc.RemoveCategoryFromEvent(ctx.Request.Context(), caller, eventID, categoryID); err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListEventCategories godoc
// @Summary      List the categories attached to an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       int  true "event ID"
// @Success      200      {object}   []domain.Category
// @Failure      404      {object}   response.Err
// @Router       /events/{eventID}/categories [get]
func (h *EventHandler) HandleListEventCategories(ctx *gin.Context) {
	eventID, err := parseIDParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	categories, err := h.svc.ListEventCategories(ctx.Request.Context(), eventID)
	if err != nil {
		renderServiceErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, categories)
}
