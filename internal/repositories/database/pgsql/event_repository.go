package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine_app/internal/models"
	"github.com/SscSPs/ledger_engine_app/internal/utils/mapping"
	"github.com/SscSPs/ledger_engine_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statusUpdatedBy is the audit identity recorded on lifecycle transitions
// written by the processor itself.
const statusUpdatedBy = "event-processor"

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for accounting event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `
	event_id, event_type, event_date, status, affected_companies, event_data,
	source_document_type, source_document_id, retry_count, error_message, processed_at,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveEvent inserts a new pending accounting event.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.AccountingEvent) error {
	modelEvent := mapping.ToModelAccountingEvent(event)
	query := `
		INSERT INTO accounting_events (
			event_id, event_type, event_date, status, affected_companies, event_data,
			source_document_type, source_document_id, retry_count, error_message, processed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEvent.EventID,
		modelEvent.EventType,
		modelEvent.EventDate,
		modelEvent.Status,
		modelEvent.AffectedCompanies,
		modelEvent.EventData,
		nullIfEmpty(modelEvent.SourceDocumentType),
		nullIfEmpty(modelEvent.SourceDocumentID),
		modelEvent.RetryCount,
		nullIfEmpty(modelEvent.ErrorMessage),
		modelEvent.ProcessedAt,
		modelEvent.CreatedAt,
		modelEvent.CreatedBy,
		modelEvent.LastUpdatedAt,
		modelEvent.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert event "+modelEvent.EventID, err)
	}
	return nil
}

// FindEventByID retrieves an event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM accounting_events WHERE event_id = $1;`

	modelEvent, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find event by ID "+eventID, err)
	}

	domainEvent := mapping.ToDomainAccountingEvent(*modelEvent)
	return &domainEvent, nil
}

// HasNonCancelledEvent reports whether a non-cancelled event already exists
// for the given (eventType, sourceDocumentType, sourceDocumentID) tuple.
func (r *PgxEventRepository) HasNonCancelledEvent(ctx context.Context, eventType domain.EventType, sourceDocType, sourceDocID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounting_events
			WHERE event_type = $1
			  AND source_document_type = $2
			  AND source_document_id = $3
			  AND status <> 'CANCELLED'
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, string(eventType), sourceDocType, sourceDocID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check for duplicate event", err)
	}
	return exists, nil
}

// processingStaleAfter is how long a PROCESSING claim holds before another
// processor may take the event over. Covers processors that died between
// claiming and writing the terminal status, which would otherwise strand the
// event in PROCESSING forever.
const processingStaleAfter = 10 * time.Minute

// ClaimEventForProcessing conditionally transitions an event to PROCESSING.
// The guard matches PENDING and FAILED rows, plus PROCESSING rows whose claim
// has gone stale. Returns false when the guard did not match, turning two
// processors racing on one event into a harmless no-op for the loser.
func (r *PgxEventRepository) ClaimEventForProcessing(ctx context.Context, eventID string, claimedAt time.Time) (bool, error) {
	query := `
		UPDATE accounting_events
		SET status = 'PROCESSING', last_updated_at = $2, last_updated_by = $3
		WHERE event_id = $1
		  AND (status IN ('PENDING', 'FAILED')
		       OR (status = 'PROCESSING' AND last_updated_at < $4));
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, claimedAt, statusUpdatedBy, claimedAt.Add(-processingStaleAfter))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to claim event "+eventID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkEventProcessed records successful processing.
func (r *PgxEventRepository) MarkEventProcessed(ctx context.Context, eventID string, processedAt time.Time) error {
	query := `
		UPDATE accounting_events
		SET status = 'PROCESSED', error_message = NULL, processed_at = $2,
		    last_updated_at = $2, last_updated_by = $3
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, processedAt, statusUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark event processed "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkEventFailed records a failure and increments the retry counter.
func (r *PgxEventRepository) MarkEventFailed(ctx context.Context, eventID string, errorMessage string, failedAt time.Time) error {
	query := `
		UPDATE accounting_events
		SET status = 'FAILED', error_message = $2, retry_count = retry_count + 1,
		    last_updated_at = $3, last_updated_by = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, errorMessage, failedAt, statusUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark event failed "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkEventCancelled transitions an event to its terminal CANCELLED state.
// Guarded against racing the processor: an event that reached PROCESSING or
// PROCESSED can no longer be cancelled.
func (r *PgxEventRepository) MarkEventCancelled(ctx context.Context, eventID string, cancelledAt time.Time) error {
	query := `
		UPDATE accounting_events
		SET status = 'CANCELLED', last_updated_at = $2, last_updated_by = $3
		WHERE event_id = $1 AND status IN ('PENDING', 'FAILED');
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, cancelledAt, statusUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to cancel event "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "event "+eventID+" is not in a cancellable state", nil)
	}
	return nil
}

// ResetEventForRetry returns a failed event to PENDING and clears its error
// message.
func (r *PgxEventRepository) ResetEventForRetry(ctx context.Context, eventID string, resetAt time.Time) error {
	query := `
		UPDATE accounting_events
		SET status = 'PENDING', error_message = NULL, last_updated_at = $2, last_updated_by = $3
		WHERE event_id = $1 AND status = 'FAILED';
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, resetAt, statusUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reset event "+eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "event "+eventID+" is not in a retryable state", nil)
	}
	return nil
}

// ListEventsByStatus retrieves events in a given status, oldest first, using
// token-based pagination on (created_at, event_id).
func (r *PgxEventRepository) ListEventsByStatus(ctx context.Context, status domain.EventStatus, limit int, nextToken *string) ([]domain.AccountingEvent, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine whether there is a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + eventColumns + ` FROM accounting_events WHERE status = $1`
	orderByClause := `ORDER BY created_at ASC, event_id ASC`

	args := []interface{}{string(status)}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastEventID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (created_at, event_id) > ($2, $3)`
		args = append(args, lastCreatedAt, lastEventID)
	}

	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list events by status "+string(status), err)
	}
	defer rows.Close()

	modelEvents := make([]models.AccountingEvent, 0, fetchLimit)
	for rows.Next() {
		modelEvent, err := scanEvent(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan event row", err)
		}
		modelEvents = append(modelEvents, *modelEvent)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating event rows", err)
	}

	var newNextToken *string
	if len(modelEvents) == fetchLimit {
		last := modelEvents[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EventID)
		newNextToken = &token
		modelEvents = modelEvents[:limit]
	}

	domainEvents := make([]domain.AccountingEvent, len(modelEvents))
	for i, m := range modelEvents {
		domainEvents[i] = mapping.ToDomainAccountingEvent(m)
	}
	return domainEvents, newNextToken, nil
}

// scanEvent scans one event row, normalising nullable columns.
func scanEvent(row pgx.Row) (*models.AccountingEvent, error) {
	var m models.AccountingEvent
	var sourceDocType, sourceDocID, errorMessage sql.NullString

	err := row.Scan(
		&m.EventID,
		&m.EventType,
		&m.EventDate,
		&m.Status,
		&m.AffectedCompanies,
		&m.EventData,
		&sourceDocType,
		&sourceDocID,
		&m.RetryCount,
		&errorMessage,
		&m.ProcessedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	m.SourceDocumentType = sourceDocType.String
	m.SourceDocumentID = sourceDocID.String
	m.ErrorMessage = errorMessage.String
	return &m, nil
}

// nullIfEmpty maps empty strings to SQL NULL for nullable text columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
