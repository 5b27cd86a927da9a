package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for per-company event settings and
// default account rules.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(settingsService portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: settingsService,
	}
}

// registerSettingsRoutes wires the company settings routes onto the given group.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	companies := rg.Group("/companies/:companyID")
	{
		companies.GET("/event-settings/:eventType", h.getEventSetting)
		companies.PUT("/event-settings/:eventType", h.upsertEventSetting)
		companies.PUT("/default-accounts/:eventType", h.upsertDefaultAccounts)
	}
}

// getEventSetting godoc
// @Summary Get the effective gate for an event type in a company
// @Description Returns the configured gate row, or the enabled draft-only default when none is configured
// @Tags settings
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   eventType path string true "Event type"
// @Success 200 {object} dto.EventSettingResponse
// @Failure 400 {object} map[string]string "Unknown event type"
// @Failure 500 {object} map[string]string "Failed to retrieve event setting"
// @Router /companies/{companyID}/event-settings/{eventType} [get]
func (h *settingsHandler) getEventSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	eventType := domain.EventType(c.Param("eventType"))

	if !domain.IsValidEventType(eventType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event type: " + string(eventType)})
		return
	}

	setting, err := h.settingsService.GetCompanyEventSetting(c.Request.Context(), companyID, eventType)
	if err != nil {
		logger.Error("Failed to get event setting", slog.String("error", err.Error()),
			slog.String("company_id", companyID), slog.String("event_type", string(eventType)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve event setting"})
		return
	}

	c.JSON(http.StatusOK, dto.EventSettingResponse{
		CompanyID: setting.CompanyID,
		EventType: string(setting.EventType),
		IsEnabled: setting.IsEnabled,
		AutoPost:  setting.AutoPost,
	})
}

// upsertEventSetting godoc
// @Summary Configure the gate for an event type in a company
// @Description Creates or replaces the (companyID, eventType) gate row
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   eventType path string true "Event type"
// @Param   setting body dto.UpsertEventSettingRequest true "Gate configuration"
// @Success 200 {object} dto.EventSettingResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save event setting"
// @Router /companies/{companyID}/event-settings/{eventType} [put]
func (h *settingsHandler) upsertEventSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	eventType := domain.EventType(c.Param("eventType"))

	req := dto.UpsertEventSettingRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpsertEventSetting", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	callerID, ok := middleware.GetCallerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	setting := domain.CompanyEventSetting{
		CompanyID: companyID,
		EventType: eventType,
		IsEnabled: req.IsEnabled,
		AutoPost:  req.AutoPost,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     callerID,
			LastUpdatedAt: now,
			LastUpdatedBy: callerID,
		},
	}

	if err := h.settingsService.UpsertCompanyEventSetting(c.Request.Context(), setting); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to upsert event setting", slog.String("error", err.Error()),
			slog.String("company_id", companyID), slog.String("event_type", string(eventType)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event setting"})
		return
	}

	logger.Info("Event setting saved",
		slog.String("company_id", companyID),
		slog.String("event_type", string(eventType)),
		slog.Bool("is_enabled", req.IsEnabled),
		slog.Bool("auto_post", req.AutoPost))
	c.JSON(http.StatusOK, dto.EventSettingResponse{
		CompanyID: companyID,
		EventType: string(eventType),
		IsEnabled: req.IsEnabled,
		AutoPost:  req.AutoPost,
	})
}

// upsertDefaultAccounts godoc
// @Summary Configure default accounts for an event type in a company
// @Description Creates or replaces the company's default debit and/or credit account codes for the event type. Omitted sides are left untouched.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   eventType path string true "Event type"
// @Param   accounts body dto.UpsertDefaultAccountsRequest true "Default account codes"
// @Success 200 {object} map[string]string "Saved"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save default accounts"
// @Router /companies/{companyID}/default-accounts/{eventType} [put]
func (h *settingsHandler) upsertDefaultAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	eventType := domain.EventType(c.Param("eventType"))

	req := dto.UpsertDefaultAccountsRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpsertDefaultAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.DebitAccountCode == "" && req.CreditAccountCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of debitAccountCode or creditAccountCode is required"})
		return
	}

	callerID, ok := middleware.GetCallerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     callerID,
		LastUpdatedAt: now,
		LastUpdatedBy: callerID,
	}

	rules := make([]domain.DefaultAccountRule, 0, 2)
	if req.DebitAccountCode != "" {
		rules = append(rules, domain.DefaultAccountRule{
			CompanyID:   companyID,
			EventType:   eventType,
			EntryType:   domain.Debit,
			AccountCode: req.DebitAccountCode,
			AuditFields: audit,
		})
	}
	if req.CreditAccountCode != "" {
		rules = append(rules, domain.DefaultAccountRule{
			CompanyID:   companyID,
			EventType:   eventType,
			EntryType:   domain.Credit,
			AccountCode: req.CreditAccountCode,
			AuditFields: audit,
		})
	}

	for _, rule := range rules {
		if err := h.settingsService.UpsertDefaultAccountRule(c.Request.Context(), rule); err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to upsert default account rule", slog.String("error", err.Error()),
				slog.String("company_id", companyID),
				slog.String("event_type", string(eventType)),
				slog.String("entry_type", string(rule.EntryType)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save default accounts"})
			return
		}
	}

	logger.Info("Default accounts saved",
		slog.String("company_id", companyID),
		slog.String("event_type", string(eventType)))
	c.JSON(http.StatusOK, gin.H{"companyID": companyID, "eventType": string(eventType)})
}
