package domain

// CompanyEventSetting controls whether an event type produces journals in a
// company's books and whether those journals post immediately or stay draft.
// A company with no row for an event type is treated as enabled, draft-only.
type CompanyEventSetting struct {
	CompanyID string    `json:"companyID"`
	EventType EventType `json:"eventType"`
	IsEnabled bool      `json:"isEnabled"`
	AutoPost  bool      `json:"autoPost"`
	AuditFields
}

// DefaultAccountRule is a per-company, per-event-type configured fallback
// account for lines the handler left without an explicit account code.
type DefaultAccountRule struct {
	CompanyID   string    `json:"companyID"`
	EventType   EventType `json:"eventType"`
	EntryType   EntryType `json:"entryType"`
	AccountCode string    `json:"accountCode"`
	AuditFields
}
