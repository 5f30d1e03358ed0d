package transaction

import (
	"errors"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

const (
	Income  = "Income"
	Expense = "Expense"
)

var Kinds = []string{Income, Expense}

var (
	ErrUnknownKind   = errors.New("unknown transaction kind")
	ErrInvalidAmount = errors.New("invalid transaction amount")
	ErrEmptyCategory = errors.New("empty transaction category")
)

// Record is a single dated income or expense entry. Amount is signed:
// positive for Income, negative for Expense. The sign is redundant with
// Kind and is re-derived from it by Normalize before every write.
type Record struct {
	ID       int64
	Owner    string
	Date     time.Time
	Category string
	Kind     string
	Amount   float64
	Notes    string
}

// Normalize forces the sign of Amount to agree with Kind.
func (r *Record) Normalize() {
	switch r.Kind {
	case Income:
		r.Amount = math.Abs(r.Amount)
	case Expense:
		r.Amount = -math.Abs(r.Amount)
	}
}

// Validate checks the creation preconditions: known kind, non-zero
// amount, non-empty category. Edits relax the category requirement.
func (r *Record) Validate() error {
	if r.Kind != Income && r.Kind != Expense {
		return ErrUnknownKind
	}
	if r.Amount == 0 {
		return ErrInvalidAmount
	}
	if r.Category == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (r *Record) FormatDate() string {
	return r.Date.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Magnitude is the unsigned amount, the way users enter and read it.
func (r *Record) Magnitude() float64 {
	return math.Abs(r.Amount)
}
