package parser

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as money coming in, money going out,
// or a move between the user's own accounts.
type Direction string

const (
	Income   Direction = "INCOME"
	Expense  Direction = "EXPENSE"
	Transfer Direction = "TRANSFER"
)

// Category is a caller-supplied category candidate for Tier-1 matching.
// Kind is the category's direction affinity; an empty Kind matches any
// direction.
type Category struct {
	Name string    `json:"name"`
	Kind Direction `json:"type,omitempty"`
}

// ParsedTransaction is the structured result of parsing one utterance.
// Amount is strictly positive and Description and Date are always set;
// Category and Account are empty when nothing resolved. The record is
// never mutated after construction.
type ParsedTransaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category,omitempty"`
	Account     string          `json:"account,omitempty"`
	Direction   Direction       `json:"direction"`
}
