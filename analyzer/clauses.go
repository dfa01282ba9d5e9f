package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// clauseMarker splits on line-leading "N." numbering and literal
// "Clause N" / "Section N" headings. Case-sensitive on purpose.
var clauseMarker = regexp.MustCompile(`\n\d+\.|Clause\s+\d+|Section\s+\d+`)

// Fragments of 25 trimmed characters or fewer are marker debris, not clauses.
const minClauseChars = 26

// SplitClauses segments the text into candidate clauses. Source order is
// preserved; the report numbers clauses by this order.
func SplitClauses(text string) []string {
	var clauses []string
	for _, fragment := range clauseMarker.Split(text, -1) {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) >= minClauseChars {
			clauses = append(clauses, fragment)
		}
	}
	return clauses
}
