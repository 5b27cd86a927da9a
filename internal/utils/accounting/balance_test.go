package accounting_test

import (
	"testing"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/SscSPs/ledger_engine_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spec(lines ...domain.JournalLineSpec) domain.JournalSpec {
	return domain.JournalSpec{
		CompanyID: "ACME",
		Lines:     lines,
	}
}

func debit(amount string) domain.JournalLineSpec {
	return domain.JournalLineSpec{AccountCode: "5000", EntryType: domain.Debit, Amount: decimal.RequireFromString(amount)}
}

func credit(amount string) domain.JournalLineSpec {
	return domain.JournalLineSpec{AccountCode: "2000", EntryType: domain.Credit, Amount: decimal.RequireFromString(amount)}
}

func TestSpecTotals(t *testing.T) {
	s := spec(debit("100.50"), debit("49.50"), credit("150.00"))

	totalDebit, totalCredit := accounting.SpecTotals(s)

	assert.True(t, totalDebit.Equal(decimal.RequireFromString("150.00")), "total debit mismatch: %s", totalDebit)
	assert.True(t, totalCredit.Equal(decimal.RequireFromString("150.00")), "total credit mismatch: %s", totalCredit)
}

func TestValidateSpecBalance_Balanced(t *testing.T) {
	assert.NoError(t, accounting.ValidateSpecBalance(spec(debit("100"), credit("100"))))
}

func TestValidateSpecBalance_WithinEpsilon(t *testing.T) {
	// A one-cent rounding difference is tolerated.
	assert.NoError(t, accounting.ValidateSpecBalance(spec(debit("100.00"), credit("99.99"))))
	assert.NoError(t, accounting.ValidateSpecBalance(spec(debit("99.99"), credit("100.00"))))
}

func TestValidateSpecBalance_BeyondEpsilon(t *testing.T) {
	err := accounting.ValidateSpecBalance(spec(debit("100.00"), credit("99.98")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not balance")
	assert.Contains(t, err.Error(), "ACME")
}

func TestValidateSpecBalance_EmptyLines(t *testing.T) {
	err := accounting.ValidateSpecBalance(spec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no lines")
}

func TestValidateSpecBalance_NegativeAmount(t *testing.T) {
	s := spec(debit("100"), credit("100"))
	s.Lines = append(s.Lines, domain.JournalLineSpec{
		AccountCode: "1000",
		EntryType:   domain.Debit,
		Amount:      decimal.RequireFromString("-5"),
	})
	s.Lines = append(s.Lines, credit("-5"))

	err := accounting.ValidateSpecBalance(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be non-negative")
}
