package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine_app/internal/models"
	"github.com/SscSPs/ledger_engine_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for company event settings
// and default account rules.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindCompanyEventSetting retrieves the gate row for (companyID, eventType).
func (r *PgxSettingsRepository) FindCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.CompanyEventSetting, error) {
	query := `
		SELECT company_id, event_type, is_enabled, auto_post,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM company_event_settings
		WHERE company_id = $1 AND event_type = $2;
	`
	var m models.CompanyEventSetting
	err := r.Pool.QueryRow(ctx, query, companyID, string(eventType)).Scan(
		&m.CompanyID,
		&m.EventType,
		&m.IsEnabled,
		&m.AutoPost,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find event setting for company "+companyID, err)
	}

	domainSetting := mapping.ToDomainCompanyEventSetting(m)
	return &domainSetting, nil
}

// FindDefaultAccountRule retrieves the configured default account code for
// (companyID, eventType, entryType).
func (r *PgxSettingsRepository) FindDefaultAccountRule(ctx context.Context, companyID string, eventType domain.EventType, entryType domain.EntryType) (*domain.DefaultAccountRule, error) {
	query := `
		SELECT company_id, event_type, entry_type, account_code,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM default_account_rules
		WHERE company_id = $1 AND event_type = $2 AND entry_type = $3;
	`
	var m models.DefaultAccountRule
	err := r.Pool.QueryRow(ctx, query, companyID, string(eventType), string(entryType)).Scan(
		&m.CompanyID,
		&m.EventType,
		&m.EntryType,
		&m.AccountCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find default account rule for company "+companyID, err)
	}

	domainRule := mapping.ToDomainDefaultAccountRule(m)
	return &domainRule, nil
}

// UpsertCompanyEventSetting creates or replaces a gate row.
func (r *PgxSettingsRepository) UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error {
	m := mapping.ToModelCompanyEventSetting(setting)
	query := `
		INSERT INTO company_event_settings (
			company_id, event_type, is_enabled, auto_post,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, event_type)
		DO UPDATE SET is_enabled = EXCLUDED.is_enabled,
		              auto_post = EXCLUDED.auto_post,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.EventType, m.IsEnabled, m.AutoPost,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert event setting for company "+m.CompanyID, err)
	}
	return nil
}

// UpsertDefaultAccountRule creates or replaces a default account rule.
func (r *PgxSettingsRepository) UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error {
	m := mapping.ToModelDefaultAccountRule(rule)
	query := `
		INSERT INTO default_account_rules (
			company_id, event_type, entry_type, account_code,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (company_id, event_type, entry_type)
		DO UPDATE SET account_code = EXCLUDED.account_code,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CompanyID, m.EventType, m.EntryType, m.AccountCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert default account rule for company "+m.CompanyID, err)
	}
	return nil
}
