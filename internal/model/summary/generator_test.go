package summary

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/summary/mock"
)

func Test_OnGenerateReport_ShouldGroupExpensesByCategory(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)

	storage.
		ListByOwnerMock.
		Inspect(func(_ context.Context, owner string) {
			assert.Equal(m, "alice", owner)
		}).
		Return([]transaction.Record{
			{
				Kind:     transaction.Income,
				Amount:   1000,
				Category: "Salary",
				Date:     time.Now(),
			},
			{
				Kind:     transaction.Expense,
				Amount:   -100,
				Category: "Internet",
				Date:     time.Now(),
			},
			{
				Kind:     transaction.Expense,
				Amount:   -150,
				Category: "Shopping",
				Date:     time.Now(),
			},
			{
				Kind:     transaction.Expense,
				Amount:   -10,
				Category: "Shopping",
				Date:     time.Now(),
			},
		}, nil)

	generator := NewGenerator(storage)
	report, err := generator.GenerateReport(ctx, "alice", "")
	assert.NoError(m, err)
	assert.Equal(m, "alice", report.Owner)
	assert.Equal(m, "Shopping", report.Categories[0].Category)
	assert.Equal(m, 160.0, report.Categories[0].Amount)
	assert.Equal(m, "Internet", report.Categories[1].Category)
	assert.Equal(m, 100.0, report.Categories[1].Amount)
	assert.Equal(m, 1000.0, report.Totals.Income)
	assert.Equal(m, -260.0, report.Totals.Expense)
	assert.Equal(m, 740.0, report.Totals.Balance)
}

func Test_OnGenerateReport_ShouldFilterOutPastPeriods(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)

	storage.
		ListByOwnerMock.
		Return([]transaction.Record{
			{
				Kind:     transaction.Expense,
				Amount:   -25,
				Category: "Groceries",
				Date:     time.Now(),
			},
			{
				Kind:     transaction.Expense,
				Amount:   -500,
				Category: "Travel",
				Date:     time.Now().AddDate(-2, 0, 0),
			},
		}, nil)

	generator := NewGenerator(storage)
	report, err := generator.GenerateReport(ctx, "alice", "year")
	assert.NoError(m, err)
	assert.Len(m, report.Categories, 1)
	assert.Equal(m, "Groceries", report.Categories[0].Category)
	assert.Equal(m, 25.0, report.Categories[0].Amount)
}

func Test_OnGenerateReport_ShouldRejectUnknownPeriod(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)

	generator := NewGenerator(storage)
	_, err := generator.GenerateReport(ctx, "alice", "decade")
	assert.Error(m, err)
}
