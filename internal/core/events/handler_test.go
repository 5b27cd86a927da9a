package events_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/core/events"
	"github.com/SscSPs/ledger_engine_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(t *testing.T, eventType domain.EventType, payload any) domain.AccountingEvent {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return domain.AccountingEvent{
		EventID:   "evt-1",
		EventType: eventType,
		EventDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.EventPending,
		EventData: data,
	}
}

func TestRegistryCoversEveryKnownEventType(t *testing.T) {
	registry := events.NewRegistry()

	for _, eventType := range domain.KnownEventTypes {
		handler, ok := registry.Lookup(eventType)
		require.True(t, ok, "no handler registered for %s", eventType)
		assert.Equal(t, eventType, handler.EventType())
	}
}

func TestRegistryLookupUnknownType(t *testing.T) {
	registry := events.NewRegistry()

	_, ok := registry.Lookup(domain.EventType("SOMETHING_ELSE"))
	assert.False(t, ok)
}

func TestExpenseApproved_GenerateJournals(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.ExpenseApproved)
	event := makeEvent(t, domain.ExpenseApproved, domain.ExpenseApprovedPayload{
		CompanyID:          "ACME",
		Amount:             decimal.RequireFromString("120.50"),
		ExpenseAccountCode: "5100",
		Memo:               "Office supplies",
	})

	require.NoError(t, handler.Validate(event))
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	spec := specs[0]
	assert.Equal(t, "ACME", spec.CompanyID)
	assert.Equal(t, event.EventDate, spec.EntryDate)
	require.Len(t, spec.Lines, 2)

	assert.Equal(t, domain.Debit, spec.Lines[0].EntryType)
	assert.Equal(t, "5100", spec.Lines[0].AccountCode)
	// The payable side was not stated; the default account resolver fills it.
	assert.Equal(t, domain.Credit, spec.Lines[1].EntryType)
	assert.Empty(t, spec.Lines[1].AccountCode)
	assert.True(t, spec.Lines[0].Amount.Equal(spec.Lines[1].Amount))
}

func TestExpenseApproved_ValidateRejectsBadPayloads(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.ExpenseApproved)

	missingCompany := makeEvent(t, domain.ExpenseApproved, domain.ExpenseApprovedPayload{
		Amount: decimal.RequireFromString("10"),
	})
	err := handler.Validate(missingCompany)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	zeroAmount := makeEvent(t, domain.ExpenseApproved, domain.ExpenseApprovedPayload{
		CompanyID: "ACME",
	})
	err = handler.Validate(zeroAmount)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	malformed := domain.AccountingEvent{
		EventType: domain.ExpenseApproved,
		EventData: json.RawMessage(`{"companyID":`),
	}
	err = handler.Validate(malformed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestManagementFee_GeneratesOneSpecPerCompany(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.ManagementFeeRecognized)
	event := makeEvent(t, domain.ManagementFeeRecognized, domain.ManagementFeePayload{
		ManagerCompanyID:      "HOLDCO",
		ClientCompanyID:       "OPCO",
		Amount:                decimal.RequireFromString("5000"),
		ReceivableAccountCode: "1200",
		FeeRevenueAccountCode: "4100",
		FeeExpenseAccountCode: "5200",
		PayableAccountCode:    "2100",
	})

	require.NoError(t, handler.Validate(event))
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 2)

	assert.Equal(t, "HOLDCO", specs[0].CompanyID)
	assert.Equal(t, "OPCO", specs[1].CompanyID)

	// Both sides balance independently.
	for _, spec := range specs {
		assert.NoError(t, accounting.ValidateSpecBalance(spec))
	}

	// Manager side: receivable debit against fee revenue credit.
	assert.Equal(t, "1200", specs[0].Lines[0].AccountCode)
	assert.Equal(t, domain.Debit, specs[0].Lines[0].EntryType)
	assert.Equal(t, "4100", specs[0].Lines[1].AccountCode)
	assert.Equal(t, domain.Credit, specs[0].Lines[1].EntryType)

	// Client side: fee expense debit against payable credit.
	assert.Equal(t, "5200", specs[1].Lines[0].AccountCode)
	assert.Equal(t, domain.Debit, specs[1].Lines[0].EntryType)
	assert.Equal(t, "2100", specs[1].Lines[1].AccountCode)
	assert.Equal(t, domain.Credit, specs[1].Lines[1].EntryType)
}

func TestManagementFee_RejectsSameCompanyBothSides(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.ManagementFeeRecognized)
	event := makeEvent(t, domain.ManagementFeeRecognized, domain.ManagementFeePayload{
		ManagerCompanyID: "HOLDCO",
		ClientCompanyID:  "HOLDCO",
		Amount:           decimal.RequireFromString("5000"),
	})

	err := handler.Validate(event)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "must differ")
}

func TestIntercompanySettlement_BothSidesBalance(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.IntercompanySettlement)
	event := makeEvent(t, domain.IntercompanySettlement, domain.IntercompanySettlementPayload{
		PayerCompanyID: "OPCO",
		PayeeCompanyID: "HOLDCO",
		Amount:         decimal.RequireFromString("2500"),
	})

	require.NoError(t, handler.Validate(event))
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "OPCO", specs[0].CompanyID)
	assert.Equal(t, "HOLDCO", specs[1].CompanyID)
	for _, spec := range specs {
		require.Len(t, spec.Lines, 2)
		totalDebit, totalCredit := accounting.SpecTotals(spec)
		assert.True(t, totalDebit.Equal(totalCredit))
	}
}

func TestPartnerProfitAllocation_OneCreditPerPartner(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.PartnerProfitAllocation)
	event := makeEvent(t, domain.PartnerProfitAllocation, domain.PartnerProfitAllocationPayload{
		CompanyID:         "ACME",
		ProfitAccountCode: "3900",
		Allocations: []domain.PartnerAllocation{
			{PartnerName: "Alex", CapitalAccountCode: "3101", Amount: decimal.RequireFromString("600")},
			{PartnerName: "Sam", CapitalAccountCode: "3102", Amount: decimal.RequireFromString("400")},
		},
	})

	require.NoError(t, handler.Validate(event))
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 1)

	spec := specs[0]
	require.Len(t, spec.Lines, 3)
	assert.Equal(t, domain.Debit, spec.Lines[0].EntryType)
	assert.True(t, spec.Lines[0].Amount.Equal(decimal.RequireFromString("1000")))
	assert.NoError(t, accounting.ValidateSpecBalance(spec))
}

func TestOpeningBalance_UsesExplicitLinesVerbatim(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.OpeningBalance)
	event := makeEvent(t, domain.OpeningBalance, domain.OpeningBalancePayload{
		CompanyID: "ACME",
		Lines: []domain.OpeningBalanceLine{
			{AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.RequireFromString("10000")},
			{AccountCode: "3000", EntryType: domain.Credit, Amount: decimal.RequireFromString("10000")},
		},
	})

	require.NoError(t, handler.Validate(event))
	specs, err := handler.GenerateJournals(event)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	require.Len(t, specs[0].Lines, 2)
	assert.Equal(t, "1000", specs[0].Lines[0].AccountCode)
	assert.Equal(t, "3000", specs[0].Lines[1].AccountCode)
}

func TestOpeningBalance_RequiresExplicitAccountCodes(t *testing.T) {
	handler, _ := events.NewRegistry().Lookup(domain.OpeningBalance)

	missingCode := makeEvent(t, domain.OpeningBalance, domain.OpeningBalancePayload{
		CompanyID: "ACME",
		Lines: []domain.OpeningBalanceLine{
			{AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.RequireFromString("10000")},
			{EntryType: domain.Credit, Amount: decimal.RequireFromString("10000")},
		},
	})
	err := handler.Validate(missingCode)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "missing accountCode")

	tooFewLines := makeEvent(t, domain.OpeningBalance, domain.OpeningBalancePayload{
		CompanyID: "ACME",
		Lines: []domain.OpeningBalanceLine{
			{AccountCode: "1000", EntryType: domain.Debit, Amount: decimal.RequireFromString("10000")},
		},
	})
	err = handler.Validate(tooFewLines)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two lines")
}

func TestEveryHandlerProducesBalancedSpecsFromCompletePayloads(t *testing.T) {
	amount := decimal.RequireFromString("750.25")
	cases := map[domain.EventType]any{
		domain.ExpenseApproved:  domain.ExpenseApprovedPayload{CompanyID: "ACME", Amount: amount},
		domain.ExpensePaid:      domain.ExpensePaidPayload{CompanyID: "ACME", Amount: amount},
		domain.ReceiptReceived:  domain.ReceiptReceivedPayload{CompanyID: "ACME", Amount: amount},
		domain.CapexIncurred:    domain.CapexIncurredPayload{CompanyID: "ACME", Amount: amount},
		domain.ProjectServiceCompleted: domain.ProjectServiceCompletedPayload{
			CompanyID: "ACME", ProjectRef: "PRJ-9", Amount: amount,
		},
		domain.PartnerPayment: domain.PartnerPaymentPayload{
			CompanyID: "ACME", PartnerName: "Alex", Amount: amount,
		},
	}

	registry := events.NewRegistry()
	for eventType, payload := range cases {
		event := makeEvent(t, eventType, payload)
		handler, ok := registry.Lookup(eventType)
		require.True(t, ok, "no handler for %s", eventType)

		require.NoError(t, handler.Validate(event), "validate %s", eventType)
		specs, err := handler.GenerateJournals(event)
		require.NoError(t, err, "generate %s", eventType)
		require.NotEmpty(t, specs, "specs %s", eventType)

		for _, spec := range specs {
			totalDebit, totalCredit := accounting.SpecTotals(spec)
			assert.True(t, totalDebit.Equal(totalCredit), "%s spec for %s does not balance", eventType, spec.CompanyID)
		}
	}
}
