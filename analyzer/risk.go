package analyzer

import (
	"strings"

	"github.com/Geetha-SV/ContractAI/model"
)

type riskRule struct {
	trigger string
	level   model.RiskLevel
	reason  string
}

// riskRules is an ordered table: every rule is checked against every clause
// (no early exit) and matching rules contribute their reason in this order.
var riskRules = []riskRule{
	{"terminate immediate", model.RiskHigh, "Employer can terminate without notice"},
	{"without notice", model.RiskHigh, "No notice or severance protection"},
	{"non compete", model.RiskHigh, "Restricts future employment"},
	{"two years", model.RiskHigh, "Excessive non-compete duration"},
	{"perpetual", model.RiskHigh, "Unlimited lifelong obligation"},
	{"confidentiality", model.RiskMedium, "Long-term confidentiality obligation"},
	{"indemnity", model.RiskHigh, "Unlimited financial liability"},
	{"arbitration", model.RiskMedium, "Dispute resolution outside courts"},
}

const (
	explanationHigh   = "This clause significantly disadvantages one party and may lead to legal/financial harm."
	explanationMedium = "This clause creates some imbalance or future uncertainty."
	explanationLow    = "This clause is generally standard and low risk."

	suggestionNotice     = "Add 30-day written notice or salary in lieu of notice."
	suggestionNonCompete = "Limit to 6 months and specific competitors only."
	suggestionPerpetual  = "Restrict to 2-3 years post-termination."
)

// displayChars caps the clause text carried into findings and reports.
const displayChars = 300

// AnalyzeClause scores one clause against the rule table. Clause-level risk
// is the highest level among matched rules; the explanation is fixed per
// level; suggestions apply to HIGH clauses only, with the termination check
// taking precedence over non-compete, then perpetual.
func AnalyzeClause(clause string) model.ClauseFinding {
	text := strings.ToLower(clause)

	risk := model.RiskLow
	reasons := []string{}
	for _, rule := range riskRules {
		if strings.Contains(text, rule.trigger) {
			reasons = append(reasons, rule.reason)
			if rule.level.Severity() > risk.Severity() {
				risk = rule.level
			}
		}
	}

	var explanation string
	switch risk {
	case model.RiskHigh:
		explanation = explanationHigh
	case model.RiskMedium:
		explanation = explanationMedium
	default:
		explanation = explanationLow
	}

	var suggestion string
	if risk == model.RiskHigh {
		switch {
		case strings.Contains(text, "terminate") || strings.Contains(text, "termination"):
			suggestion = suggestionNotice
		case strings.Contains(text, "non compete"):
			suggestion = suggestionNonCompete
		case strings.Contains(text, "perpetual"):
			suggestion = suggestionPerpetual
		}
	}

	return model.ClauseFinding{
		Text:        truncate(clause, displayChars),
		Risk:        risk,
		Reasons:     reasons,
		Explanation: explanation,
		Suggestion:  suggestion,
	}
}

// OverallRisk reduces clause findings to one document-level risk by priority:
// any HIGH forces HIGH, else any MEDIUM yields MEDIUM, else LOW. An empty
// sequence is LOW.
func OverallRisk(findings []model.ClauseFinding) model.RiskLevel {
	risk := model.RiskLow
	for _, f := range findings {
		if f.Risk.Severity() > risk.Severity() {
			risk = f.Risk
		}
	}
	return risk
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
