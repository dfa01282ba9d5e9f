package model

import (
	"time"
)

// RiskLevel is an ordinal risk rating. Ordering is LOW < MEDIUM < HIGH.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Severity returns the numeric rank of the level for priority comparisons.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// ContractType is the document-level category assigned by keyword classification.
type ContractType string

const (
	TypeEmployment  ContractType = "EMPLOYMENT"
	TypeLease       ContractType = "LEASE"
	TypePartnership ContractType = "PARTNERSHIP"
	TypeService     ContractType = "SERVICE"
	TypeGeneral     ContractType = "GENERAL"
)

// ClauseFinding is the analyzed view of one clause. Text holds at most the
// first 300 characters of the clause for display.
type ClauseFinding struct {
	Text        string    `json:"text"`
	Risk        RiskLevel `json:"risk"`
	Reasons     []string  `json:"reasons"`
	Explanation string    `json:"explanation"`
	Suggestion  string    `json:"suggestion,omitempty"`
}

// Analysis is the complete result of one contract analysis.
type Analysis struct {
	ID           string            `json:"id"`
	Filename     string            `json:"filename"`
	Tenant       string            `json:"tenant"`
	Type         ContractType      `json:"type"`
	Risk         RiskLevel         `json:"risk"`
	Parties      map[string]string `json:"parties"`
	Amounts      []string          `json:"amounts"`
	Jurisdiction map[string]string `json:"jurisdiction"`
	Clauses      []ClauseFinding   `json:"clauses"`
	TextHash     string            `json:"text_hash"`
	SourceURL    string            `json:"source_url,omitempty"`
	ReportURL    string            `json:"report_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// AuditRecord is one line of the append-only audit log.
type AuditRecord struct {
	Hash    string            `json:"hash"`
	Time    string            `json:"time"`
	Type    ContractType      `json:"type"`
	Risk    RiskLevel         `json:"risk"`
	Parties map[string]string `json:"parties"`
}
