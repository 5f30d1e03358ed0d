package summary

import (
	"max.ks1230/money-tracker/internal/entity/transaction"
)

// Totals are the owner's headline numbers. Expense is a non-positive
// sum; presentation negates it back to a positive magnitude.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// Totalize folds an owner's records into totals. Pure, nothing
// persisted.
func Totalize(txs []transaction.Record) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Kind {
		case transaction.Income:
			t.Income += tx.Amount
		case transaction.Expense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income + t.Expense
	return t
}
