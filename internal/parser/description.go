package parser

import (
	"regexp"
	"strings"
)

// Removal passes run in this order; each operates on the output of the
// previous one.
var (
	symbolAmountRe = regexp.MustCompile(`\$\s*\d+(?:\.\d{2})?`)
	wordedAmountRe = regexp.MustCompile(`\d+(?:\.\d{2})?\s*(?:dollars?|euros?|pounds?)`)
	suffixAmountRe = regexp.MustCompile(`\d+(?:\.\d{2})?\s*[$€£]`)
	bareNumberRe   = regexp.MustCompile(`\b\d+(?:\.\d{2})?\b`)
)

// fillerWords is the closed set of tokens dropped from descriptions.
var fillerWords = map[string]bool{
	"i": true, "spent": true, "paid": true, "bought": true, "purchased": true,
	"for": true, "on": true, "at": true, "the": true, "a": true, "an": true,
	"and": true, "or": true, "but": true, "in": true, "to": true, "of": true,
	"with": true, "by": true,
}

// cleanDescription strips amount substrings and filler words from the
// normalized text. The result is never empty: anything shorter than three
// characters is replaced with a generated fallback.
func cleanDescription(text, category string) string {
	s := symbolAmountRe.ReplaceAllString(text, "")
	s = wordedAmountRe.ReplaceAllString(s, "")
	s = suffixAmountRe.ReplaceAllString(s, "")
	s = bareNumberRe.ReplaceAllString(s, "")

	kept := make([]string, 0, 8)
	for _, token := range strings.Fields(s) {
		if fillerWords[token] {
			continue
		}
		kept = append(kept, token)
	}
	s = strings.Join(kept, " ")

	if len(s) < 3 {
		if category != "" {
			return category + " transaction"
		}
		return "Voice transaction"
	}
	return s
}
