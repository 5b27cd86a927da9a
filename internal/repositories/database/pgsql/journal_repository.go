package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine_app/internal/models"
	"github.com/SscSPs/ledger_engine_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournalEntriesAtomically persists every entry with its lines and event
// link inside a single database transaction. Reference numbers are claimed
// from company_sequences within the same transaction, so a rollback releases
// no gaps across companies committed together.
func (r *PgxJournalRepository) SaveJournalEntriesAtomically(ctx context.Context, eventID string, entries []domain.JournalEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	entryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		refNumber, err := nextReferenceNumber(ctx, tx, entry)
		if err != nil {
			return nil, err
		}
		entry.ReferenceNumber = refNumber

		if err := insertJournalEntry(ctx, tx, mapping.ToModelJournalEntry(entry)); err != nil {
			return nil, err
		}
		if err := insertJournalLines(ctx, tx, entry.JournalEntryID, entry.Lines); err != nil {
			return nil, err
		}
		link := models.EventJournalEntry{
			EventID:        eventID,
			JournalEntryID: entry.JournalEntryID,
			CreatedAt:      entry.CreatedAt,
		}
		if err := insertEventJournalLink(ctx, tx, link); err != nil {
			return nil, err
		}
		entryIDs = append(entryIDs, entry.JournalEntryID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return entryIDs, nil
}

// nextReferenceNumber claims the next per-company sequence value and formats
// the human-readable reference, e.g. JE-ACME-2026-000042.
func nextReferenceNumber(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) (string, error) {
	query := `
		INSERT INTO company_sequences (company_id, last_value)
		VALUES ($1, 1)
		ON CONFLICT (company_id)
		DO UPDATE SET last_value = company_sequences.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, entry.CompanyID).Scan(&seq); err != nil {
		return "", apperrors.NewAppError(500, "failed to claim reference number for company "+entry.CompanyID, err)
	}
	return fmt.Sprintf("JE-%s-%d-%06d", entry.CompanyID, entry.EntryDate.Year(), seq), nil
}

func insertJournalEntry(ctx context.Context, tx pgx.Tx, m models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (
			journal_entry_id, reference_number, company_id, entry_date, description,
			status, total_debit, total_credit, source_document_type, source_document_id,
			is_auto_generated, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.JournalEntryID,
		m.ReferenceNumber,
		m.CompanyID,
		m.EntryDate,
		m.Description,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		nullIfEmpty(m.SourceDocumentType),
		nullIfEmpty(m.SourceDocumentID),
		m.IsAutoGenerated,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.JournalEntryID, err)
	}
	return nil
}

func insertJournalLines(ctx context.Context, tx pgx.Tx, journalEntryID string, lines []domain.JournalLine) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO journal_lines (
			line_id, journal_entry_id, line_no, account_code, entry_type, amount,
			description, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query,
			m.LineID,
			journalEntryID,
			m.LineNo,
			m.AccountCode,
			m.EntryType,
			m.Amount,
			nullIfEmpty(m.Description),
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range lines {
		if _, err := br.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to insert journal lines for entry "+journalEntryID, err)
		}
	}
	return nil
}

func insertEventJournalLink(ctx context.Context, tx pgx.Tx, link models.EventJournalEntry) error {
	query := `
		INSERT INTO event_journal_entries (event_id, journal_entry_id, created_at)
		VALUES ($1, $2, $3);
	`
	if _, err := tx.Exec(ctx, query, link.EventID, link.JournalEntryID, link.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to link journal entry "+link.JournalEntryID+" to event "+link.EventID, err)
	}
	return nil
}

const journalEntryColumns = `
	journal_entry_id, reference_number, company_id, entry_date, description,
	status, total_debit, total_credit, source_document_type, source_document_id,
	is_auto_generated, created_at, created_by, last_updated_at, last_updated_by`

// FindJournalEntryByID retrieves a journal entry and its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`

	modelEntry, err := scanJournalEntry(r.Pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+journalEntryID, err)
	}

	lines, err := r.findLinesForEntries(ctx, []string{journalEntryID})
	if err != nil {
		return nil, err
	}

	domainEntry := mapping.ToDomainJournalEntry(*modelEntry)
	domainEntry.Lines = mapping.ToDomainJournalLineSlice(lines[journalEntryID])
	return &domainEntry, nil
}

// FindJournalEntryIDsByEventID returns the journal entry IDs linked to an
// event, in creation order.
func (r *PgxJournalRepository) FindJournalEntryIDsByEventID(ctx context.Context, eventID string) ([]string, error) {
	query := `
		SELECT journal_entry_id FROM event_journal_entries
		WHERE event_id = $1
		ORDER BY created_at ASC, journal_entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find journal entry IDs for event "+eventID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry ID", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry ID rows", err)
	}
	return ids, nil
}

// FindJournalEntriesByEventID retrieves the full journal entries linked to an
// event, lines included.
func (r *PgxJournalRepository) FindJournalEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + journalEntryColumns + `
		FROM journal_entries
		WHERE journal_entry_id IN (
			SELECT journal_entry_id FROM event_journal_entries WHERE event_id = $1
		)
		ORDER BY created_at ASC, journal_entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find journal entries for event "+eventID, err)
	}
	defer rows.Close()

	var modelEntries []models.JournalEntry
	for rows.Next() {
		modelEntry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		modelEntries = append(modelEntries, *modelEntry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	if len(modelEntries) == 0 {
		return nil, nil
	}

	entryIDs := make([]string, len(modelEntries))
	for i, m := range modelEntries {
		entryIDs[i] = m.JournalEntryID
	}
	linesByEntry, err := r.findLinesForEntries(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	domainEntries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		domainEntries[i] = mapping.ToDomainJournalEntry(m)
		domainEntries[i].Lines = mapping.ToDomainJournalLineSlice(linesByEntry[m.JournalEntryID])
	}
	return domainEntries, nil
}

// findLinesForEntries loads all lines for the given entries, grouped by entry
// ID and ordered by line number.
func (r *PgxJournalRepository) findLinesForEntries(ctx context.Context, entryIDs []string) (map[string][]models.JournalLine, error) {
	query := `
		SELECT line_id, journal_entry_id, line_no, account_code, entry_type, amount,
		       description, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE journal_entry_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find journal lines", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]models.JournalLine)
	for rows.Next() {
		var m models.JournalLine
		var description sql.NullString
		err := rows.Scan(
			&m.LineID,
			&m.JournalEntryID,
			&m.LineNo,
			&m.AccountCode,
			&m.EntryType,
			&m.Amount,
			&description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		m.Description = description.String
		linesByEntry[m.JournalEntryID] = append(linesByEntry[m.JournalEntryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}

	for _, lines := range linesByEntry {
		sort.Slice(lines, func(i, j int) bool { return lines[i].LineNo < lines[j].LineNo })
	}
	return linesByEntry, nil
}

// scanJournalEntry scans one journal entry row, normalising nullable columns.
func scanJournalEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	var sourceDocType, sourceDocID sql.NullString

	err := row.Scan(
		&m.JournalEntryID,
		&m.ReferenceNumber,
		&m.CompanyID,
		&m.EntryDate,
		&m.Description,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&sourceDocType,
		&sourceDocID,
		&m.IsAutoGenerated,
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
	return &m, nil
}
