package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/core/services"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests related to accounting events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(eventService portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{
		eventService: eventService,
	}
}

// registerEventRoutes wires all /events routes onto the given group.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/duplicate", h.checkDuplicate)
		events.GET("/:eventID", h.getEvent)
		events.POST("/:eventID/process", h.processEvent)
		events.POST("/:eventID/retry", h.retryEvent)
		events.POST("/:eventID/cancel", h.cancelEvent)
	}
}

// createEvent godoc
// @Summary Create and process an accounting event
// @Description Inserts a pending accounting event and immediately runs it through the processing pipeline
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Accounting event"
// @Param   dedupe query bool false "Refuse the event if a non-cancelled one already exists for its source document"
// @Success 200 {object} dto.CreateEventResult "Processing outcome with created journal entry IDs"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate event for source document"
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateEventRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	callerID, ok := middleware.GetCallerIDFromContext(c)
	if !ok {
		logger.Error("Caller ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if c.Query("dedupe") == "true" {
		duplicate, err := h.eventService.CheckDuplicateEvent(c.Request.Context(), createReq.EventType, createReq.SourceDocumentType, createReq.SourceDocumentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to check for duplicate event", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
			return
		}
		if duplicate {
			c.JSON(http.StatusConflict, gin.H{"error": "An event already exists for this source document"})
			return
		}
	}

	result := h.eventService.CreateAndProcessEvent(c.Request.Context(), createReq, callerID)
	if !result.Success {
		logger.Warn("Event processing did not succeed",
			slog.String("event_id", result.EventID),
			slog.String("error", result.Error))
	} else {
		logger.Info("Event processed successfully",
			slog.String("event_id", result.EventID),
			slog.Int("journal_entries", len(result.JournalEntryIDs)))
	}

	// The outcome is reported in the body either way; a failed event is a
	// recorded fact, not a transport error.
	c.JSON(http.StatusOK, result)
}

// getEvent godoc
// @Summary Get an accounting event
// @Description Retrieves an accounting event by its ID
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventResponse "The accounting event"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to retrieve event"
// @Router /events/{eventID} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Event not found", slog.String("event_id", eventID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		logger.Error("Failed to get event from service", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(*event))
}

// listEvents godoc
// @Summary List accounting events by status
// @Description Retrieves a paginated list of events in the given status, oldest first
// @Tags events
// @Produce  json
// @Param   status query string true "Event status (PENDING, PROCESSING, PROCESSED, FAILED, CANCELLED)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListEventsResponse "A page of events"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list events"
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListEventsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ListEvents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.eventService.ListEvents(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// checkDuplicate godoc
// @Summary Check for a duplicate event
// @Description Reports whether a non-cancelled event already exists for the given source document tuple
// @Tags events
// @Produce  json
// @Param   eventType query string true "Event type"
// @Param   sourceDocumentType query string true "Source document type"
// @Param   sourceDocumentID query string true "Source document ID"
// @Success 200 {object} dto.DuplicateCheckResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to check for duplicates"
// @Router /events/duplicate [get]
func (h *eventHandler) checkDuplicate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.DuplicateCheckParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for CheckDuplicate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	duplicate, err := h.eventService.CheckDuplicateEvent(c.Request.Context(), params.EventType, params.SourceDocumentType, params.SourceDocumentID)
	if err != nil {
		logger.Error("Failed to check for duplicate event", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for duplicates"})
		return
	}

	c.JSON(http.StatusOK, dto.DuplicateCheckResponse{Duplicate: duplicate})
}

// processEvent godoc
// @Summary Process a pending or failed event
// @Description Runs the event through the processing pipeline. Reprocessing an already processed event is an idempotent success.
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ProcessEventResult "Processing outcome"
// @Router /events/{eventID}/process [post]
func (h *eventHandler) processEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	result := h.eventService.ProcessEvent(c.Request.Context(), eventID)
	if !result.Success {
		logger.Warn("Event processing did not succeed",
			slog.String("event_id", eventID),
			slog.String("error", result.Error))
	}

	c.JSON(http.StatusOK, result)
}

// retryEvent godoc
// @Summary Retry a failed event
// @Description Resets a failed event to pending, clears its error message and reprocesses it
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ProcessEventResult "Processing outcome"
// @Router /events/{eventID}/retry [post]
func (h *eventHandler) retryEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	result := h.eventService.RetryEvent(c.Request.Context(), eventID)
	if !result.Success {
		logger.Warn("Event retry did not succeed",
			slog.String("event_id", eventID),
			slog.String("error", result.Error))
	}

	c.JSON(http.StatusOK, result)
}

// cancelEvent godoc
// @Summary Cancel an event
// @Description Transitions a pending or failed event to its terminal CANCELLED state
// @Tags events
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} map[string]string "Cancellation confirmed"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Event can no longer be cancelled"
// @Router /events/{eventID}/cancel [post]
func (h *eventHandler) cancelEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	err := h.eventService.CancelEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		if errors.Is(err, services.ErrCannotCancel) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to cancel event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel event"})
		return
	}

	logger.Info("Event cancelled", slog.String("event_id", eventID))
	c.JSON(http.StatusOK, gin.H{"eventID": eventID, "status": "CANCELLED"})
}
