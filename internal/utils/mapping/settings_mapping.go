package mapping

import (
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/models"
)

// ToModelCompanyEventSetting converts a domain CompanyEventSetting to its model
func ToModelCompanyEventSetting(d domain.CompanyEventSetting) models.CompanyEventSetting {
	return models.CompanyEventSetting{
		CompanyID:   d.CompanyID,
		EventType:   string(d.EventType),
		IsEnabled:   d.IsEnabled,
		AutoPost:    d.AutoPost,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyEventSetting converts a model CompanyEventSetting to its domain form
func ToDomainCompanyEventSetting(m models.CompanyEventSetting) domain.CompanyEventSetting {
	return domain.CompanyEventSetting{
		CompanyID:   m.CompanyID,
		EventType:   domain.EventType(m.EventType),
		IsEnabled:   m.IsEnabled,
		AutoPost:    m.AutoPost,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDefaultAccountRule converts a domain DefaultAccountRule to its model
func ToModelDefaultAccountRule(d domain.DefaultAccountRule) models.DefaultAccountRule {
	return models.DefaultAccountRule{
		CompanyID:   d.CompanyID,
		EventType:   string(d.EventType),
		EntryType:   string(d.EntryType),
		AccountCode: d.AccountCode,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDefaultAccountRule converts a model DefaultAccountRule to its domain form
func ToDomainDefaultAccountRule(m models.DefaultAccountRule) domain.DefaultAccountRule {
	return domain.DefaultAccountRule{
		CompanyID:   m.CompanyID,
		EventType:   domain.EventType(m.EventType),
		EntryType:   domain.EntryType(m.EntryType),
		AccountCode: m.AccountCode,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
