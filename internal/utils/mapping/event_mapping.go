package mapping

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/models"
)

// ToModelAccountingEvent converts a domain AccountingEvent to a model AccountingEvent
func ToModelAccountingEvent(d domain.AccountingEvent) models.AccountingEvent {
	return models.AccountingEvent{
		EventID:            d.EventID,
		EventType:          string(d.EventType),
		EventDate:          d.EventDate,
		Status:             models.EventStatus(d.Status),
		AffectedCompanies:  d.AffectedCompanies,
		EventData:          []byte(d.EventData),
		SourceDocumentType: d.SourceDocumentType,
		SourceDocumentID:   d.SourceDocumentID,
		RetryCount:         d.RetryCount,
		ErrorMessage:       d.ErrorMessage,
		ProcessedAt:        d.ProcessedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountingEvent converts a model AccountingEvent to a domain AccountingEvent
func ToDomainAccountingEvent(m models.AccountingEvent) domain.AccountingEvent {
	return domain.AccountingEvent{
		EventID:            m.EventID,
		EventType:          domain.EventType(m.EventType),
		EventDate:          m.EventDate,
		Status:             domain.EventStatus(m.Status),
		AffectedCompanies:  m.AffectedCompanies,
		EventData:          m.EventData,
		SourceDocumentType: m.SourceDocumentType,
		SourceDocumentID:   m.SourceDocumentID,
		RetryCount:         m.RetryCount,
		ErrorMessage:       m.ErrorMessage,
		ProcessedAt:        m.ProcessedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
