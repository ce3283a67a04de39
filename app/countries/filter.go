package countries

import (
	"strings"

	"github.com/joefazee/atlas/models"
)

// Criteria is the active filter tuple narrowing the visible country list.
// An empty field means "unconstrained".
type Criteria struct {
	SearchTerm string `json:"search_term"`
	Region     string `json:"region"`
	Language   string `json:"language"`
}

// CriteriaUpdate is a partial change to Criteria. Nil fields are left
// untouched by Merge, so repeated identical updates are idempotent.
type CriteriaUpdate struct {
	SearchTerm *string `json:"search_term,omitempty"`
	Region     *string `json:"region,omitempty"`
	Language   *string `json:"language,omitempty"`
}

// Merge returns a copy of c with the non-nil fields of u applied.
func (c Criteria) Merge(u CriteriaUpdate) Criteria {
	if u.SearchTerm != nil {
		c.SearchTerm = *u.SearchTerm
	}
	if u.Region != nil {
		c.Region = *u.Region
	}
	if u.Language != nil {
		c.Language = *u.Language
	}
	return c
}

// IsZero reports whether all criteria are unconstrained.
func (c Criteria) IsZero() bool {
	return c.SearchTerm == "" && c.Region == "" && c.Language == ""
}

// ApplyFilters narrows countries to those matching every constrained
// criterion. The result is an order-preserving subsequence of the input;
// the input is never mutated. Filtering is done entirely over the fetched
// collection, never against the remote provider.
func ApplyFilters(countries []models.Country, c Criteria) []models.Country {
	if c.IsZero() {
		return countries
	}

	matched := make([]models.Country, 0, len(countries))
	for _, country := range countries {
		if matchesSearch(&country, c.SearchTerm) &&
			matchesRegion(&country, c.Region) &&
			matchesLanguage(&country, c.Language) {
			matched = append(matched, country)
		}
	}
	return matched
}

func matchesSearch(c *models.Country, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name.Common), term) ||
		strings.Contains(strings.ToLower(c.Name.Official), term)
}

func matchesRegion(c *models.Country, region string) bool {
	if region == "" {
		return true
	}
	return strings.EqualFold(c.Region, region)
}

func matchesLanguage(c *models.Country, lang string) bool {
	if lang == "" {
		return true
	}
	return c.SpeaksLanguage(lang)
}
