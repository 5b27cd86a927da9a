package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/middleware"
)

// SystemDefaults carries the system-wide fallback account codes, the last
// tier of default account resolution. By convention these are suspense
// accounts reviewed by an accountant.
type SystemDefaults struct {
	DebitAccountCode  string
	CreditAccountCode string
}

// settingsService answers the per-company processing gate and fills missing
// account codes on journal specs.
type settingsService struct {
	settingsRepo   portsrepo.SettingsRepositoryFacade
	systemDefaults SystemDefaults
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, systemDefaults SystemDefaults) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo:   settingsRepo,
		systemDefaults: systemDefaults,
	}
}

// Ensure settingsService implements the portssvc.SettingsSvcFacade interface
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetCompanyEventSetting returns the effective gate for (companyID, eventType).
// A company with no configured row is enabled with auto-post off, so new
// companies produce draft journals until someone decides otherwise.
func (s *settingsService) GetCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (domain.CompanyEventSetting, error) {
	setting, err := s.settingsRepo.FindCompanyEventSetting(ctx, companyID, eventType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.CompanyEventSetting{
				CompanyID: companyID,
				EventType: eventType,
				IsEnabled: true,
				AutoPost:  false,
			}, nil
		}
		return domain.CompanyEventSetting{}, fmt.Errorf("failed to load event setting for company %s: %w", companyID, err)
	}
	return *setting, nil
}

// ApplyDefaultAccounts returns a copy of spec in which every line has a
// non-empty account code. Resolution order per line, first match wins:
// the handler's explicit code, the company's configured default for the
// event and entry type, then the system-wide default for the entry type.
// The last tier always terminates resolution; amounts are never changed.
func (s *settingsService) ApplyDefaultAccounts(ctx context.Context, spec domain.JournalSpec, eventType domain.EventType) (domain.JournalSpec, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resolved := spec
	resolved.Lines = make([]domain.JournalLineSpec, len(spec.Lines))
	copy(resolved.Lines, spec.Lines)

	for i := range resolved.Lines {
		line := &resolved.Lines[i]
		if line.AccountCode != "" {
			continue // Explicit code from the source document wins
		}

		rule, err := s.settingsRepo.FindDefaultAccountRule(ctx, spec.CompanyID, eventType, line.EntryType)
		if err == nil {
			line.AccountCode = rule.AccountCode
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.JournalSpec{}, fmt.Errorf("failed to load default account rule for company %s: %w", spec.CompanyID, err)
		}

		line.AccountCode = s.systemDefaultFor(line.EntryType)
		logger.Debug("Resolved line to system default account",
			slog.String("company_id", spec.CompanyID),
			slog.String("entry_type", string(line.EntryType)),
			slog.String("account_code", line.AccountCode),
		)
	}

	return resolved, nil
}

func (s *settingsService) systemDefaultFor(entryType domain.EntryType) string {
	if entryType == domain.Debit {
		return s.systemDefaults.DebitAccountCode
	}
	return s.systemDefaults.CreditAccountCode
}

// UpsertCompanyEventSetting creates or replaces a gate row.
func (s *settingsService) UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error {
	if !domain.IsValidEventType(setting.EventType) {
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, setting.EventType)
	}
	if setting.CompanyID == "" {
		return fmt.Errorf("%w: companyID is required", apperrors.ErrValidation)
	}
	now := time.Now().UTC()
	setting.LastUpdatedAt = now
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}
	return s.settingsRepo.UpsertCompanyEventSetting(ctx, setting)
}

// UpsertDefaultAccountRule creates or replaces a default account rule.
func (s *settingsService) UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error {
	if !domain.IsValidEventType(rule.EventType) {
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, rule.EventType)
	}
	if rule.CompanyID == "" {
		return fmt.Errorf("%w: companyID is required", apperrors.ErrValidation)
	}
	if rule.EntryType != domain.Debit && rule.EntryType != domain.Credit {
		return fmt.Errorf("%w: invalid entry type %q", apperrors.ErrValidation, rule.EntryType)
	}
	if rule.AccountCode == "" {
		return fmt.Errorf("%w: accountCode is required", apperrors.ErrValidation)
	}
	now := time.Now().UTC()
	rule.LastUpdatedAt = now
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	return s.settingsRepo.UpsertDefaultAccountRule(ctx, rule)
}
