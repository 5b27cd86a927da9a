package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries. Journal
// entries are created only by the event processor, so this surface is
// read-only.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	eventService   portssvc.EventSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade, eventService portssvc.EventSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		eventService:   eventService,
	}
}

// registerJournalRoutes wires the journal read routes onto the given group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, eventService portssvc.EventSvcFacade) {
	h := newJournalHandler(journalService, eventService)

	rg.GET("/journals/:journalEntryID", h.getJournalEntry)
	rg.GET("/events/:eventID/journals", h.getEventJournals)
	rg.GET("/events/:eventID/journal-ids", h.getEventJournalIDs)
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Description Retrieves a journal entry and its lines by journal entry ID
// @Tags journals
// @Produce  json
// @Param   journalEntryID path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse "Journal entry with lines"
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry"
// @Router /journals/{journalEntryID} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalEntryID := c.Param("journalEntryID")

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), journalEntryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found", slog.String("journal_entry_id", journalEntryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry from service", slog.String("error", err.Error()), slog.String("journal_entry_id", journalEntryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(*entry))
}

// getEventJournals godoc
// @Summary Get the journal entries created by an event
// @Description Retrieves the full journal entries, lines included, that an event produced
// @Tags journals
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {array} dto.JournalEntryResponse "Journal entries in creation order"
// @Failure 500 {object} map[string]string "Failed to retrieve journal entries"
// @Router /events/{eventID}/journals [get]
func (h *journalHandler) getEventJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	entries, err := h.journalService.GetJournalEntriesByEventID(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("Failed to get journal entries for event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entries"})
		return
	}

	resp := make([]dto.JournalEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = dto.ToJournalEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}

// getEventJournalIDs godoc
// @Summary Get the journal entry IDs created by an event
// @Description Lightweight traceability lookup returning only the IDs
// @Tags journals
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.EventJournalsResponse
// @Failure 500 {object} map[string]string "Failed to retrieve journal entry IDs"
// @Router /events/{eventID}/journal-ids [get]
func (h *journalHandler) getEventJournalIDs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	ids, err := h.eventService.GetEventJournalEntryIDs(c.Request.Context(), eventID)
	if err != nil {
		logger.Error("Failed to get journal entry IDs for event", slog.String("error", err.Error()), slog.String("event_id", eventID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry IDs"})
		return
	}

	c.JSON(http.StatusOK, dto.EventJournalsResponse{EventID: eventID, JournalEntryIDs: ids})
}
