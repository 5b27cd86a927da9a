package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceEpsilon is the rounding tolerance for the double-entry invariant:
// a journal spec is balanced iff |total debits - total credits| <= 0.01.
var BalanceEpsilon = decimal.NewFromFloat(0.01)

// SpecTotals sums the debit and credit sides of a journal spec.
func SpecTotals(spec domain.JournalSpec) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range spec.Lines {
		if line.EntryType == domain.Debit {
			totalDebit = totalDebit.Add(line.Amount)
		} else {
			totalCredit = totalCredit.Add(line.Amount)
		}
	}
	return totalDebit, totalCredit
}

// ValidateSpecBalance checks the double-entry invariant for a journal spec.
// It is the final integrity gate before persistence: it must run after
// default account resolution and before any write.
func ValidateSpecBalance(spec domain.JournalSpec) error {
	if len(spec.Lines) == 0 {
		return fmt.Errorf("journal spec for company %s has no lines", spec.CompanyID)
	}

	for _, line := range spec.Lines {
		if line.Amount.IsNegative() {
			return fmt.Errorf("journal line amount must be non-negative for account %s in company %s", line.AccountCode, spec.CompanyID)
		}
	}

	totalDebit, totalCredit := SpecTotals(spec)
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(BalanceEpsilon) {
		return fmt.Errorf("journal for company %s does not balance: total debit %s, total credit %s",
			spec.CompanyID, totalDebit.String(), totalCredit.String())
	}

	return nil
}
