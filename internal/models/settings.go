package models

// CompanyEventSetting is the persistence model for the per-company,
// per-event-type processing gate.
type CompanyEventSetting struct {
	CompanyID string `db:"company_id"`
	EventType string `db:"event_type"`
	IsEnabled bool   `db:"is_enabled"`
	AutoPost  bool   `db:"auto_post"`
	AuditFields
}

// DefaultAccountRule is the persistence model for a configured default
// account code, keyed by company, event type and entry type.
type DefaultAccountRule struct {
	CompanyID   string `db:"company_id"`
	EventType   string `db:"event_type"`
	EntryType   string `db:"entry_type"`
	AccountCode string `db:"account_code"`
	AuditFields
}
