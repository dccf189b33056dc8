package parser

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// amountPatterns is the priority-ordered list of numeric patterns. Patterns
// are tried against the whole text in sequence and the first pattern that
// matches anywhere wins; within a pattern only its first match is considered.
// The bare-number pattern is deliberately last - it matches almost anything.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*(\d+(?:\.\d{2})?)`),       // $50, $ 50.00
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*dollars?`), // 50 dollars
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*euros?`),   // 50 euros
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*pounds?`),  // 50 pounds
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*€`),        // 50€
	regexp.MustCompile(`(\d+(?:\.\d{2})?)\s*£`),        // 50£
	regexp.MustCompile(`(\d+(?:\.\d{2})?)`),            // bare number
}

// extractAmount scans the normalized text for a strictly positive amount.
// A captured value that fails to parse or equals zero is a no-match for that
// pattern. When no pattern matches, the whitespace tokens are scanned
// left-to-right as a last resort. ok is false when no amount was found.
func extractAmount(text string, words []string) (decimal.Decimal, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if amt, err := decimal.NewFromString(m[1]); err == nil && amt.IsPositive() {
			return amt, true
		}
	}

	for _, word := range words {
		if amt, err := decimal.NewFromString(word); err == nil && amt.IsPositive() {
			return amt, true
		}
	}

	return decimal.Decimal{}, false
}
