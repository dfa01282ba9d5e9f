package analyzer

import (
	"regexp"
	"strings"
)

// firstMatch tries each pattern in declared order and returns the trimmed
// first capture group of the first pattern that matches. Later patterns are
// not tried once one succeeds.
func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
