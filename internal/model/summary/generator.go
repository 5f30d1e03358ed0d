package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"max.ks1230/money-tracker/internal/logger"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/money-tracker/internal/entity/transaction"
)

var reportFilters = map[string]func() time.Time{
	"":      func() time.Time { return time.Time{} },
	"week":  now.BeginningOfWeek,
	"month": now.BeginningOfMonth,
	"year":  now.BeginningOfYear,
}

type transactionStorage interface {
	ListByOwner(ctx context.Context, owner string) ([]transaction.Record, error)
}

// CategoryAmount is spend within one category, as a positive magnitude.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// Report is a period breakdown of one owner's records: spend per
// category sorted descending, plus the period totals.
type Report struct {
	Owner      string
	Period     string
	Categories []CategoryAmount
	Totals     Totals
}

type Generator struct {
	storage transactionStorage
}

func NewGenerator(storage transactionStorage) *Generator {
	return &Generator{storage: storage}
}

func (g *Generator) GenerateReport(ctx context.Context, owner string, period string) (*Report, error) {
	logger.Info("GenerateReport - start", zap.String("owner", owner), zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	filter, ok := reportFilters[period]
	if !ok {
		return nil, errors.Wrap(
			fmt.Errorf("report period %s is not supported", period),
			"generate report",
		)
	}

	txs, err := g.storage.ListByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "generate report")
	}
	txs = filterAfter(txs, filter())

	report := groupExpenses(txs)
	report.Owner = owner
	report.Period = period
	return report, nil
}

func filterAfter(txs []transaction.Record, after time.Time) []transaction.Record {
	res := make([]transaction.Record, 0)
	for _, tx := range txs {
		if after.Before(tx.Date) {
			res = append(res, tx)
		}
	}
	return res
}

func groupExpenses(txs []transaction.Record) *Report {
	m := make(map[string]float64)
	for _, tx := range txs {
		if tx.Kind == transaction.Expense {
			m[tx.Category] += tx.Magnitude()
		}
	}
	categories := make([]CategoryAmount, 0, len(m))
	for cat, am := range m {
		categories = append(categories, CategoryAmount{Category: cat, Amount: am})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Amount > categories[j].Amount
	})
	return &Report{
		Categories: categories,
		Totals:     Totalize(txs),
	}
}

func ReportPeriods() []string {
	res := make([]string, 0, len(reportFilters))
	for k := range reportFilters {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
