package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/Geetha-SV/ContractAI/config"
	"github.com/Geetha-SV/ContractAI/model"
	"github.com/go-pdf/fpdf"
)

const reportFontFamily = "report"

// ReportService renders an analysis as a paginated PDF document.
type ReportService struct {
	title string
	font  []byte // embedded UTF-8 TTF; nil selects the Helvetica core font
}

func NewReportService(cfg *config.ReportConfig) *ReportService {
	return &ReportService{
		title: cfg.Title,
		font:  LoadReportFont(cfg.FontPath),
	}
}

// Generate produces the report PDF: title, classification, overall risk,
// parties, amounts, jurisdiction, then one section per analyzed clause.
func (s *ReportService) Generate(a *model.Analysis) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")

	family := "Helvetica"
	text := func(v string) string { return v }
	if s.font != nil {
		doc.AddUTF8FontFromBytes(reportFontFamily, "", s.font)
		family = reportFontFamily
	} else {
		// Core fonts are cp1252; map what we can so risk labels and names
		// survive even without an embedded font.
		text = doc.UnicodeTranslatorFromDescriptor("")
	}

	doc.AddPage()

	doc.SetFont(family, "", 18)
	doc.MultiCell(0, 9, text(s.title), "", "C", false)
	doc.Ln(4)

	doc.SetFont(family, "", 11)
	doc.MultiCell(0, 6, text(fmt.Sprintf("Contract Type: %s", a.Type)), "", "L", false)
	doc.MultiCell(0, 6, text(fmt.Sprintf("Overall Risk: %s", a.Risk)), "", "L", false)
	doc.Ln(4)

	s.heading(doc, family, "Identified Parties")
	for _, role := range sortedKeys(a.Parties) {
		doc.MultiCell(0, 6, text(fmt.Sprintf("%s: %s", role, a.Parties[role])), "", "L", false)
	}
	doc.Ln(4)

	s.heading(doc, family, "Key Findings")
	doc.MultiCell(0, 6, text(fmt.Sprintf("Amounts found: %s", strings.Join(a.Amounts, ", "))), "", "L", false)
	doc.MultiCell(0, 6, text(fmt.Sprintf("Jurisdiction: %s", formatJurisdiction(a.Jurisdiction))), "", "L", false)
	doc.Ln(4)

	s.heading(doc, family, "Clause Analysis")
	for i, clause := range a.Clauses {
		doc.Ln(3)
		doc.SetFont(family, "", 12)
		doc.MultiCell(0, 6, text(fmt.Sprintf("Clause %d – Risk: %s", i+1, clause.Risk)), "", "L", false)
		doc.SetFont(family, "", 11)
		doc.MultiCell(0, 5, text(clause.Text), "", "L", false)
		doc.MultiCell(0, 5, text(fmt.Sprintf("Explanation: %s", clause.Explanation)), "", "L", false)
		if clause.Suggestion != "" {
			doc.MultiCell(0, 5, text(fmt.Sprintf("Suggested Change: %s", clause.Suggestion)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) heading(doc *fpdf.Fpdf, family, title string) {
	doc.SetFont(family, "", 14)
	doc.MultiCell(0, 7, title, "", "L", false)
	doc.SetFont(family, "", 11)
}

func formatJurisdiction(j map[string]string) string {
	if len(j) == 0 {
		return "Not specified"
	}
	parts := make([]string, 0, len(j))
	for _, k := range sortedKeys(j) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, j[k]))
	}
	return strings.Join(parts, "; ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
