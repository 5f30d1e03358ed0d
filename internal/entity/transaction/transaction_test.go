package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Normalize_ShouldSignAmountByKind(t *testing.T) {
	expense := Record{Kind: Expense, Amount: 50.0}
	expense.Normalize()
	assert.Equal(t, -50.0, expense.Amount)

	expense = Record{Kind: Expense, Amount: -50.0}
	expense.Normalize()
	assert.Equal(t, -50.0, expense.Amount)

	income := Record{Kind: Income, Amount: -50.0}
	income.Normalize()
	assert.Equal(t, 50.0, income.Amount)
}

func Test_Validate_ShouldNameFailedPrecondition(t *testing.T) {
	rec := Record{Kind: "Transfer", Amount: 10, Category: "misc"}
	assert.ErrorIs(t, rec.Validate(), ErrUnknownKind)

	rec = Record{Kind: Income, Amount: 0, Category: "misc"}
	assert.ErrorIs(t, rec.Validate(), ErrInvalidAmount)

	rec = Record{Kind: Income, Amount: 10, Category: ""}
	assert.ErrorIs(t, rec.Validate(), ErrEmptyCategory)

	rec = Record{Kind: Income, Amount: 10, Category: "salary"}
	assert.NoError(t, rec.Validate())
}

func Test_ParseDate_ShouldRoundTripLayout(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	rec := Record{Date: date}
	assert.Equal(t, "2024-02-29", rec.FormatDate())

	_, err = ParseDate("29.02.2024")
	assert.Error(t, err)
}
