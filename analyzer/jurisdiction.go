package analyzer

import "regexp"

var governingLawPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)governed by the laws? of\s+([A-Za-z\s]+?)(?:,|;|$)`),
	regexp.MustCompile(`(?i)laws? of\s+([A-Za-z\s]+?)(?:governing|$)`),
}

var courtPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)courts?\s+(?:at|in|of)\s+([A-Za-z\s]+?)(?:\s+shall|$)`),
	regexp.MustCompile(`(?i)exclusive jurisdiction.*?([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+?)\s+courts?\s+(?:shall|have)`),
}

// ExtractJurisdiction resolves the two optional venue fields. Each field uses
// its own ordered pattern list, first match wins, and an unmatched field is
// omitted from the result rather than reported as an error.
func ExtractJurisdiction(text string) map[string]string {
	jurisdiction := make(map[string]string)
	if v, ok := firstMatch(text, governingLawPatterns); ok {
		jurisdiction["Governing Law"] = v
	}
	if v, ok := firstMatch(text, courtPatterns); ok {
		jurisdiction["Jurisdiction"] = v
	}
	return jurisdiction
}
