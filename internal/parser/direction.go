package parser

import "strings"

// Direction indicator lists. These score direction only; they are a separate
// vocabulary from the taxonomy keyword lists even where the words overlap.
var (
	incomeIndicators = []string{
		"earned", "received", "got", "gained", "made", "won", "inherited", "gifted", "donated",
		"salary", "wage", "bonus", "commission", "profit", "dividend", "interest", "refund",
		"reimbursement", "cashback", "rebate", "stipend", "allowance", "pension", "benefits",
		"income", "earnings", "revenue", "sales", "tips", "gratuity", "investment", "returns",
	}

	expenseIndicators = []string{
		"spent", "paid", "bought", "purchased", "cost", "costs", "fee", "fees", "bill", "bills",
		"expense", "expenses", "charge", "charges", "debit", "withdrawal", "payment", "payments",
		"rent", "mortgage", "insurance", "tax", "taxes", "fine", "penalty", "late fee", "overdue",
		"subscription", "membership", "maintenance", "repair", "repairs", "service", "services",
		"shopping", "buying", "purchasing", "spending", "outgoing",
	}

	// Bare "to"/"from" are deliberately absent: they appear in nearly every
	// utterance and would starve the income context rules.
	transferIndicators = []string{
		"transfer", "transferred", "moved", "sent", "sent to", "between", "account",
		"accounts", "savings", "checking", "credit", "debit", "cash", "bank", "wallet", "balance",
	}
)

// classifyDirection decides INCOME, EXPENSE or TRANSFER for the normalized
// text. Any transfer indicator short-circuits to TRANSFER. Otherwise each
// side scores one point per indicator present plus a context bonus, and the
// strictly greater total wins; ties, including 0-0, resolve to EXPENSE.
func classifyDirection(text string, words []string) Direction {
	if transferSignal(text, words) {
		return Transfer
	}

	incomeScore := countIndicators(text, incomeIndicators) + incomeContextBonus(text)
	expenseScore := countIndicators(text, expenseIndicators) + expenseContextBonus(text)

	if incomeScore > expenseScore {
		return Income
	}
	return Expense
}

// transferSignal reports whether any transfer indicator is present. Unlike
// the income/expense scores, transfer entries match as whole tokens
// (multi-word entries as phrases): substring matching would turn every
// "today" into a transfer via "to".
func transferSignal(text string, words []string) bool {
	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}
	for _, indicator := range transferIndicators {
		if strings.Contains(indicator, " ") {
			if strings.Contains(text, indicator) {
				return true
			}
		} else if wordSet[indicator] {
			return true
		}
	}
	return false
}

// countIndicators counts how many list entries occur in the text. Each entry
// contributes at most one point no matter how often it appears.
func countIndicators(text string, indicators []string) int {
	n := 0
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			n++
		}
	}
	return n
}

// incomeContextBonus applies the first matching compound-phrase rule.
func incomeContextBonus(text string) int {
	switch {
	case strings.Contains(text, "from") && (strings.Contains(text, "work") || strings.Contains(text, "job")):
		return 2
	case strings.Contains(text, "received") || strings.Contains(text, "got") || strings.Contains(text, "earned"):
		return 2
	case strings.Contains(text, "salary") || strings.Contains(text, "wage") || strings.Contains(text, "bonus"):
		return 3
	case strings.Contains(text, "dividend") || strings.Contains(text, "interest") || strings.Contains(text, "investment"):
		return 2
	}
	return 0
}

// expenseContextBonus applies the first matching compound-phrase rule.
func expenseContextBonus(text string) int {
	switch {
	case strings.Contains(text, "for") && (strings.Contains(text, "food") || strings.Contains(text, "rent") || strings.Contains(text, "bill")):
		return 2
	case strings.Contains(text, "spent") || strings.Contains(text, "paid") || strings.Contains(text, "bought"):
		return 2
	case strings.Contains(text, "subscription") || strings.Contains(text, "fee") || strings.Contains(text, "bill"):
		return 3
	}
	return 0
}
