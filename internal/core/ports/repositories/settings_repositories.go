package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// SettingsReader defines read operations for company event settings and
// configured default accounts.
type SettingsReader interface {
	// FindCompanyEventSetting retrieves the gate row for (companyID, eventType).
	// Returns apperrors.ErrNotFound when no row is configured.
	FindCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.CompanyEventSetting, error)

	// FindDefaultAccountRule retrieves the configured default account code for
	// (companyID, eventType, entryType). Returns apperrors.ErrNotFound when
	// none is configured.
	FindDefaultAccountRule(ctx context.Context, companyID string, eventType domain.EventType, entryType domain.EntryType) (*domain.DefaultAccountRule, error)
}

// SettingsWriter defines write operations for settings administration.
type SettingsWriter interface {
	// UpsertCompanyEventSetting creates or replaces a gate row.
	UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error

	// UpsertDefaultAccountRule creates or replaces a default account rule.
	UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error
}

// SettingsRepositoryFacade combines all settings repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
