// Package events contains the per-event-type strategies that turn accounting
// events into journal specifications, and the static registry the processor
// dispatches through. Handlers are pure: no I/O, no clocks, just event data in
// and per-company journal specs out.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Handler is the strategy for one event type.
type Handler interface {
	// EventType returns the single event type this handler serves.
	EventType() domain.EventType

	// Validate checks the event's payload against the handler's rules.
	// A non-nil error wraps apperrors.ErrValidation.
	Validate(event domain.AccountingEvent) error

	// GenerateJournals turns a validated event into one journal spec per
	// affected company. An event that reaches this stage must always
	// produce at least one spec.
	GenerateJournals(event domain.AccountingEvent) ([]domain.JournalSpec, error)
}

// Registry is the static map from event type to handler. The event-type
// enumeration is closed, so the registry is built once and never mutated.
type Registry struct {
	handlers map[domain.EventType]Handler
}

// NewRegistry builds the registry with every known handler installed.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[domain.EventType]Handler)}
	r.register(NewExpenseApprovedHandler())
	r.register(NewExpensePaidHandler())
	r.register(NewReceiptReceivedHandler())
	r.register(NewManagementFeeHandler())
	r.register(NewIntercompanySettlementHandler())
	r.register(NewPartnerProfitAllocationHandler())
	r.register(NewPartnerPaymentHandler())
	r.register(NewOpeningBalanceHandler())
	r.register(NewProjectServiceCompletedHandler())
	r.register(NewCapexIncurredHandler())
	return r
}

func (r *Registry) register(h Handler) {
	r.handlers[h.EventType()] = h
}

// Lookup returns the handler for an event type, if one is registered.
func (r *Registry) Lookup(eventType domain.EventType) (Handler, bool) {
	h, ok := r.handlers[eventType]
	return h, ok
}

// decodePayload unmarshals the event's raw payload into dst.
func decodePayload(event domain.AccountingEvent, dst any) error {
	if len(event.EventData) == 0 {
		return fmt.Errorf("%w: event data is empty", apperrors.ErrValidation)
	}
	if err := json.Unmarshal(event.EventData, dst); err != nil {
		return fmt.Errorf("%w: malformed event data: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// requirePositiveAmount rejects zero or negative amounts.
func requirePositiveAmount(amount decimal.Decimal, field string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s must be positive, got %s", apperrors.ErrValidation, field, amount.String())
	}
	return nil
}

// requireCompany rejects empty company identifiers.
func requireCompany(companyID, field string) error {
	if companyID == "" {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return nil
}
