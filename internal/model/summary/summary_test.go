package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/money-tracker/internal/entity/transaction"
)

func Test_Totalize_ShouldSplitIncomeAndExpense(t *testing.T) {
	totals := Totalize([]transaction.Record{
		{Kind: transaction.Income, Amount: 100},
		{Kind: transaction.Expense, Amount: -30},
		{Kind: transaction.Expense, Amount: -20},
	})

	assert.Equal(t, 100.0, totals.Income)
	assert.Equal(t, -50.0, totals.Expense)
	assert.Equal(t, 50.0, totals.Balance)
}

func Test_Totalize_ShouldHandleEmptyList(t *testing.T) {
	totals := Totalize(nil)

	assert.Equal(t, 0.0, totals.Income)
	assert.Equal(t, 0.0, totals.Expense)
	assert.Equal(t, 0.0, totals.Balance)
}

func Test_Totalize_ShouldGoNegativeWhenOverspent(t *testing.T) {
	totals := Totalize([]transaction.Record{
		{Kind: transaction.Income, Amount: 10},
		{Kind: transaction.Expense, Amount: -25},
	})

	assert.Equal(t, -15.0, totals.Balance)
}
