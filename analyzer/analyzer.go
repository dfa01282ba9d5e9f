// Package analyzer implements the single-pass contract analysis pipeline:
// localization normalization, entity extraction (parties, amounts,
// jurisdiction), clause segmentation, document classification, and rule-based
// clause risk scoring. All functions are pure; compiled patterns are the only
// package state.
package analyzer

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Geetha-SV/ContractAI/model"
)

// maxClauses bounds the analysis: clauses beyond the tenth are neither scored
// nor represented in the result.
const maxClauses = 10

// Analyze runs the full pipeline over extracted contract text and returns a
// result carrying the classification, per-clause findings, extracted
// entities, and the SHA-256 hex of the analyzed text.
func Analyze(raw string) *model.Analysis {
	text := NormalizeText(raw)

	clauses := SplitClauses(text)
	if len(clauses) > maxClauses {
		clauses = clauses[:maxClauses]
	}
	findings := make([]model.ClauseFinding, 0, len(clauses))
	for _, clause := range clauses {
		findings = append(findings, AnalyzeClause(clause))
	}

	sum := sha256.Sum256([]byte(text))

	return &model.Analysis{
		Type:         ClassifyContract(text),
		Risk:         OverallRisk(findings),
		Parties:      ExtractParties(text),
		Amounts:      ExtractAmounts(text),
		Jurisdiction: ExtractJurisdiction(text),
		Clauses:      findings,
		TextHash:     hex.EncodeToString(sum[:]),
	}
}
