package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/summary"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func splitFirst(arg string) (first, rest string) {
	split := strings.SplitN(strings.TrimSpace(arg), " ", commandParts)
	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	return arg, ""
}

func parseCredentials(arg string) (username, password string, ok bool) {
	args := strings.Fields(arg)
	if len(args) != 2 || args[0] == "" || args[1] == "" {
		return "", "", false
	}
	return args[0], args[1], true
}

// parseRecord parses "<income|expense> <amount> <category> [date]
// [notes...]". The category placeholder "-" reads as empty, which only
// edits accept. A non-empty msg names the precondition that failed.
func parseRecord(arg string) (rec transaction.Record, msg string) {
	args := strings.Fields(arg)
	if len(args) < 3 {
		return rec, incorrectUsageMessage
	}

	kind, ok := parseKind(args[0])
	if !ok {
		return rec, incorrectKindMessage
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount <= 0 {
		return rec, incorrectAmountMessage
	}
	category := args[2]
	if category == "-" {
		category = ""
	}

	date := time.Now()
	notes := args[3:]
	if len(args) > 3 {
		parsed, err := transaction.ParseDate(args[3])
		switch {
		case err == nil:
			date = parsed
			notes = args[4:]
		case looksLikeDate(args[3]):
			return rec, incorrectDateMessage
		}
	}

	rec = transaction.Record{
		Date:     date,
		Category: category,
		Kind:     kind,
		Amount:   amount,
		Notes:    strings.Join(notes, " "),
	}
	rec.Normalize()
	if category == "" {
		return rec, emptyCategoryMessage
	}
	return rec, ""
}

func parseKind(arg string) (string, bool) {
	switch strings.ToLower(arg) {
	case "income":
		return transaction.Income, true
	case "expense":
		return transaction.Expense, true
	}
	return "", false
}

func looksLikeDate(arg string) bool {
	return len(arg) == len(transaction.DateLayout) && strings.Count(arg, "-") == 2
}

func formatList(txs []transaction.Record, symbol string) string {
	lines := make([]string, 0, len(txs))
	for i, tx := range txs {
		line := fmt.Sprintf("%d. %s %s %s %s%.2f #%d",
			i+1, tx.FormatDate(), tx.Kind, tx.Category, symbol, tx.Magnitude(), tx.ID)
		if tx.Notes != "" {
			line += " - " + tx.Notes
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatTotals(t summary.Totals, symbol string) string {
	lines := []string{
		fmt.Sprintf("Total Income: %s%.2f", symbol, t.Income),
		fmt.Sprintf("Total Expenses: %s%.2f", symbol, -t.Expense),
		fmt.Sprintf("Balance: %s%.2f", symbol, t.Balance),
	}
	if t.Balance < 0 {
		lines = append(lines, negativeBalanceWarning)
	}
	return strings.Join(lines, "\n")
}

// FormatReport renders a period report the way frontends show it. The
// reporter worker uses it too, so cached reports match live ones.
func FormatReport(report *summary.Report, symbol string) string {
	res := make([]string, 0, len(report.Categories)+4)
	period := report.Period
	if period == "" {
		period = "all time"
	}
	res = append(res, "Spending by category ("+period+"):")
	if len(report.Categories) == 0 {
		res = append(res, "No expenses for this period")
	}
	for _, rec := range report.Categories {
		res = append(res, fmt.Sprintf("%s: %s%.2f", rec.Category, symbol, rec.Amount))
	}
	res = append(res, "", formatTotals(report.Totals, symbol))
	return strings.Join(res, "\n")
}
