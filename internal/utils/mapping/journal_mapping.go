package mapping

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		JournalEntryID:     d.JournalEntryID,
		ReferenceNumber:    d.ReferenceNumber,
		CompanyID:          d.CompanyID,
		EntryDate:          d.EntryDate,
		Description:        d.Description,
		Status:             models.JournalEntryStatus(d.Status),
		TotalDebit:         d.TotalDebit,
		TotalCredit:        d.TotalCredit,
		SourceDocumentType: d.SourceDocumentType,
		SourceDocumentID:   d.SourceDocumentID,
		IsAutoGenerated:    d.IsAutoGenerated,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		JournalEntryID:     m.JournalEntryID,
		ReferenceNumber:    m.ReferenceNumber,
		CompanyID:          m.CompanyID,
		EntryDate:          m.EntryDate,
		Description:        m.Description,
		Status:             domain.JournalEntryStatus(m.Status),
		TotalDebit:         m.TotalDebit,
		TotalCredit:        m.TotalCredit,
		SourceDocumentType: m.SourceDocumentType,
		SourceDocumentID:   m.SourceDocumentID,
		IsAutoGenerated:    m.IsAutoGenerated,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		JournalEntryID: d.JournalEntryID,
		LineNo:         d.LineNo,
		AccountCode:    d.AccountCode,
		EntryType:      models.EntryType(d.EntryType),
		Amount:         d.Amount,
		Description:    d.Description,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		JournalEntryID: m.JournalEntryID,
		LineNo:         m.LineNo,
		AccountCode:    m.AccountCode,
		EntryType:      domain.EntryType(m.EntryType),
		Amount:         m.Amount,
		Description:    m.Description,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
