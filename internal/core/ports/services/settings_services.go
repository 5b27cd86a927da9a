package services

import (
	"context"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
)

// CompanyGateSvc answers whether an event type is enabled for a company and
// whether its journals post immediately.
type CompanyGateSvc interface {
	// GetCompanyEventSetting returns the effective gate for (companyID,
	// eventType). A company with no configured row is enabled, draft-only.
	GetCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (domain.CompanyEventSetting, error)
}

// DefaultAccountResolverSvc fills missing account codes on journal specs.
type DefaultAccountResolverSvc interface {
	// ApplyDefaultAccounts returns a copy of spec in which every line has a
	// non-empty account code, resolved in precedence order: the handler's
	// explicit code, the company's configured default for the event and
	// entry type, then the system-wide default for the entry type. Amounts
	// are never changed.
	ApplyDefaultAccounts(ctx context.Context, spec domain.JournalSpec, eventType domain.EventType) (domain.JournalSpec, error)
}

// SettingsAdminSvc defines settings administration operations.
type SettingsAdminSvc interface {
	// UpsertCompanyEventSetting creates or replaces a gate row.
	UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error

	// UpsertDefaultAccountRule creates or replaces a default account rule.
	UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error
}

// SettingsSvcFacade combines all settings-related service interfaces.
type SettingsSvcFacade interface {
	CompanyGateSvc
	DefaultAccountResolverSvc
	SettingsAdminSvc
}
