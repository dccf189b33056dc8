package parser

import "strings"

// resolveCategory resolves the transaction category in two tiers. Tier 1
// matches the caller-supplied categories and, when it answers, is final.
// Tier 2 scores the built-in taxonomy for the direction; a best score of
// zero yields no category rather than an arbitrary pick.
func resolveCategory(text string, words []string, dir Direction, available []Category) string {
	if len(available) > 0 {
		if name, ok := matchUserCategory(text, dir, available); ok {
			return name
		}
	}

	table := expenseTaxonomy
	if dir == Income {
		table = incomeTaxonomy
	}

	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	var best string
	bestScore := 0
	for _, entry := range table {
		score := 0
		for _, keyword := range entry.keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			score++
			// Exact whole-word occurrence beats a substring hit.
			if wordSet[keyword] {
				score += 2
			}
			// Longer keywords are more specific.
			if len(keyword) > 5 {
				score++
			}
		}
		score += categoryContextBonus(entry.name, text)

		if score > bestScore {
			bestScore = score
			best = entry.name
		}
	}

	if bestScore == 0 {
		return ""
	}
	return best
}

// categoryContextBonus applies hard-coded bonus rules for categories whose
// keyword lists alone discriminate poorly.
func categoryContextBonus(category, text string) int {
	bonus := 0
	switch category {
	case "Food & Drinks":
		if strings.Contains(text, "restaurant") || strings.Contains(text, "cafe") || strings.Contains(text, "bar") {
			bonus += 3
		}
		if strings.Contains(text, "lunch") || strings.Contains(text, "dinner") || strings.Contains(text, "breakfast") {
			bonus += 2
		}
	case "Bills & Fees":
		if strings.Contains(text, "monthly") || strings.Contains(text, "subscription") {
			bonus += 2
		}
		if strings.Contains(text, "electricity") || strings.Contains(text, "water") || strings.Contains(text, "gas") {
			bonus += 3
		}
	case "Transport":
		if strings.Contains(text, "uber") || strings.Contains(text, "taxi") || strings.Contains(text, "bus") {
			bonus += 3
		}
		if strings.Contains(text, "gas") || strings.Contains(text, "fuel") || strings.Contains(text, "parking") {
			bonus += 2
		}
	case "Shopping":
		if strings.Contains(text, "amazon") || strings.Contains(text, "online") || strings.Contains(text, "store") {
			bonus += 2
		}
	case "Health":
		if strings.Contains(text, "doctor") || strings.Contains(text, "hospital") || strings.Contains(text, "pharmacy") {
			bonus += 3
		}
	}
	return bonus
}
