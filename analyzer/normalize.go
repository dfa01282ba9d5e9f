package analyzer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// hindiTerms is the fixed vocabulary of Hindi legal terms rewritten to their
// English equivalents before analysis. Order is preserved from declaration;
// no term is a substring of another, so order does not change the outcome.
var hindiTerms = []struct {
	hindi   string
	english string
}{
	{"समझौता", "agreement"},
	{"कर्मचारी", "employee"},
	{"नियोक्ता", "employer"},
	{"वेतन", "salary"},
	{"समाप्ति", "termination"},
	{"भुगतान", "payment"},
	{"कानून", "law"},
	{"न्यायालय", "court"},
	{"गोपनीय", "confidential"},
	{"क्षतिपूर्ति", "indemnity"},
	{"प्रतिस्पर्धा", "non compete"},
}

// containsDevanagari reports whether any rune falls in the Devanagari block.
func containsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// NormalizeText rewrites known Hindi terms to English when the text carries
// Devanagari script. Text without Devanagari is returned unchanged. The text
// is NFC-normalized first so decomposed forms still hit the substitution map.
func NormalizeText(text string) string {
	if !containsDevanagari(text) {
		return text
	}
	text = norm.NFC.String(text)
	for _, term := range hindiTerms {
		text = strings.ReplaceAll(text, term.hindi, term.english)
	}
	return text
}
