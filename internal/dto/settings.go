package dto

// UpsertEventSettingRequest is the body for configuring the processing gate
// of one event type in one company.
type UpsertEventSettingRequest struct {
	IsEnabled bool `json:"isEnabled"`
	AutoPost  bool `json:"autoPost"`
}

// EventSettingResponse is the API representation of a gate row.
type EventSettingResponse struct {
	CompanyID string `json:"companyID"`
	EventType string `json:"eventType"`
	IsEnabled bool   `json:"isEnabled"`
	AutoPost  bool   `json:"autoPost"`
}

// UpsertDefaultAccountsRequest configures the per-company default account
// codes for one event type. Empty fields leave the existing rule untouched.
type UpsertDefaultAccountsRequest struct {
	DebitAccountCode  string `json:"debitAccountCode,omitempty"`
	CreditAccountCode string `json:"creditAccountCode,omitempty"`
}
