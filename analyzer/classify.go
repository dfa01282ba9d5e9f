package analyzer

import (
	"strings"

	"github.com/Geetha-SV/ContractAI/model"
)

// contractCategories is checked in declared order; the first group with any
// keyword present decides the category. Employment deliberately precedes
// lease, so a mixed document lands on EMPLOYMENT.
var contractCategories = []struct {
	category model.ContractType
	keywords []string
}{
	{model.TypeEmployment, []string{"employee", "salary", "employment"}},
	{model.TypeLease, []string{"lease", "rent", "tenant", "landlord"}},
	{model.TypePartnership, []string{"partner", "partnership"}},
	{model.TypeService, []string{"service", "vendor"}},
}

// ClassifyContract assigns a single document-level category by keyword
// presence over the lower-cased text. No group matching yields GENERAL.
func ClassifyContract(text string) model.ContractType {
	t := strings.ToLower(text)
	for _, group := range contractCategories {
		for _, kw := range group.keywords {
			if strings.Contains(t, kw) {
				return group.category
			}
		}
	}
	return model.TypeGeneral
}
