package parser

import "strings"

// accountKeywords is scanned in order; the first substring hit wins.
// No scoring.
var accountKeywords = []string{
	"cash", "bank", "checking", "savings", "credit", "debit", "card", "wallet", "paypal",
	"venmo", "zelle", "apple pay", "google pay", "revolut", "chase", "bank of america",
	"wells fargo", "citi", "capital one", "discover", "amex", "american express",
}

// extractAccount returns the first account keyword found in the text,
// capitalized at its first character, or "" when none match.
func extractAccount(text string) string {
	for _, keyword := range accountKeywords {
		if strings.Contains(text, keyword) {
			return strings.ToUpper(keyword[:1]) + keyword[1:]
		}
	}
	return ""
}
