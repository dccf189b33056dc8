package parser

import "strings"

// userCategoryFloor is the minimum score a caller category must reach to be
// accepted; anything below falls through to the built-in taxonomy.
const userCategoryFloor = 2

// matchUserCategory scores each caller-supplied category against the text,
// conditioned on the already-determined direction. A category whose direction
// affinity conflicts with the classified direction is skipped. Scoring:
// whole-name containment +5, each name token present as a text token +2,
// each name token of four or more characters sharing a 4-char prefix with a
// text token +1.
func matchUserCategory(text string, dir Direction, categories []Category) (string, bool) {
	tokens := strings.Fields(text)

	var best string
	bestScore := 0
	for _, c := range categories {
		if c.Kind != "" && c.Kind != dir {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}

		score := 0
		if strings.Contains(text, name) {
			score += 5
		}
		for _, part := range strings.Fields(name) {
			for _, token := range tokens {
				if token == part {
					score += 2
				} else if len(part) >= 4 && strings.HasPrefix(token, part[:4]) {
					score++
				}
			}
		}

		if score > bestScore {
			bestScore = score
			best = c.Name
		}
	}

	if bestScore < userCategoryFloor {
		return "", false
	}
	return best, true
}
