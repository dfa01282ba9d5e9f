package analyzer

import (
	"regexp"
	"strings"
)

var (
	landlordPattern = regexp.MustCompile(`(?i)Landlord[:\s]+([A-Z][a-zA-Z\s&.,]+?)(?:\n|AND|$)`)
	tenantPattern   = regexp.MustCompile(`(?i)Tenant[:\s]+([A-Z][a-zA-Z\s&.,]+?)(?:\n|$)`)

	// Bilateral "BETWEEN ... AND ..." fallback. Party 2 is cut at the first
	// blank-line run or opening parenthesis, then at the first colon.
	betweenPattern      = regexp.MustCompile(`(?is)BETWEEN\s+(.+?)(?:AND|\n{2,})`)
	counterpartyPattern = regexp.MustCompile(`(?is)AND\s+(.+?)(?:\n{2,}|\()`)
)

// ExtractParties maps role labels to party names. Labeled Landlord/Tenant
// patterns are tried first; if neither matches, the bilateral BETWEEN
// fallback runs over the whole text. The result is never empty: when nothing
// matches, both placeholder entries are returned.
func ExtractParties(text string) map[string]string {
	parties := make(map[string]string)

	if m := landlordPattern.FindStringSubmatch(text); m != nil {
		parties["Landlord"] = strings.TrimSpace(m[1])
	}
	if m := tenantPattern.FindStringSubmatch(text); m != nil {
		parties["Tenant"] = strings.TrimSpace(m[1])
	}

	if len(parties) == 0 {
		if m := betweenPattern.FindStringSubmatch(text); m != nil {
			if am := counterpartyPattern.FindStringSubmatch(text); am != nil {
				party2, _, _ := strings.Cut(strings.TrimSpace(am[1]), ":")
				parties["Party 1"] = strings.TrimSpace(m[1])
				parties["Party 2"] = strings.TrimSpace(party2)
			}
		}
	}

	if len(parties) == 0 {
		return map[string]string{"Party 1": "Detected", "Party 2": "Detected"}
	}
	return parties
}
