package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The three patterns deliberately overlap: a currency-marked number may also
// satisfy the keyword pattern. Duplicates are removed after filtering, so the
// redundancy only buys recall.
var amountPatterns = []*regexp.Regexp{
	// INR 6,00,000 / ₹50,000 / Rs. 1,50,000
	regexp.MustCompile(`(?i)(?:INR|₹|Rs\.?)\s*[\d,]+(?:\.\d+)?`),
	// 1,00,000 Lakhs / 2,50,000 Crores
	regexp.MustCompile(`(?i)\d{1,3}(?:,\d{3})+(?:\.\d+)?\s*(?:Lakhs?|Crores?)`),
	// salary of INR 50,000 / deposit of 1,00,000
	regexp.MustCompile(`(?i)(?:salary|rent|payment|amount|deposit)\s+of\s+(?:INR|₹|Rs\.?)?[\d,]+`),
}

var digitRun = regexp.MustCompile(`[\d,]{3,}`)

// ExtractAmounts collects distinct currency expressions from the text. A raw
// match survives only when its trimmed length exceeds 4 characters and it
// contains a run of at least 3 digits or commas. No match yields an empty set.
func ExtractAmounts(text string) []string {
	var raw []string
	for _, p := range amountPatterns {
		raw = append(raw, p.FindAllString(text, -1)...)
	}

	seen := make(map[string]struct{})
	amounts := []string{}
	for _, amt := range raw {
		amt = strings.TrimSpace(amt)
		if utf8.RuneCountInString(amt) <= 4 || !digitRun.MatchString(amt) {
			continue
		}
		if _, ok := seen[amt]; ok {
			continue
		}
		seen[amt] = struct{}{}
		amounts = append(amounts, amt)
	}
	return amounts
}
