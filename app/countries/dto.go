package countries

import (
	"sort"

	"github.com/joefazee/atlas/models"
)

// CountrySummary is the list-view projection of a country.
type CountrySummary struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	Population int64  `json:"population"`
	Flag       string `json:"flag,omitempty"`
}

// CurrencyResponse is one currency of a country.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// CountryDetail is the detail-view projection of a country. Absent
// optional fields are filled with the documented fallback instead of
// being dropped.
type CountryDetail struct {
	Code         string             `json:"code"`
	CCA2         string             `json:"cca2,omitempty"`
	Name         string             `json:"name"`
	OfficialName string             `json:"official_name"`
	Region       string             `json:"region"`
	Subregion    string             `json:"subregion"`
	Capital      string             `json:"capital"`
	Population   int64              `json:"population"`
	Currencies   []CurrencyResponse `json:"currencies"`
	Languages    []string           `json:"languages"`
	Borders      []string           `json:"borders"`
	Flags        models.Flags       `json:"flags"`
	TLD          []string           `json:"tld"`
}

// ToCountrySummary converts a models.Country to its list projection.
func ToCountrySummary(c *models.Country) CountrySummary {
	return CountrySummary{
		Code:       c.CCA3,
		Name:       displayOrUnknown(c.Name.Common),
		Region:     c.DisplayRegion(),
		Capital:    c.CanonicalCapital(),
		Population: c.Population,
		Flag:       c.Flags.PNG,
	}
}

// ToCountrySummaryList converts a slice of models.Country to summaries.
func ToCountrySummaryList(countries []models.Country) []CountrySummary {
	summaries := make([]CountrySummary, len(countries))
	for i := range countries {
		summaries[i] = ToCountrySummary(&countries[i])
	}
	return summaries
}

// ToCountryDetail converts a models.Country to its detail projection.
func ToCountryDetail(c *models.Country) *CountryDetail {
	currencies := make([]CurrencyResponse, 0, len(c.Currencies))
	for code, cur := range c.Currencies {
		currencies = append(currencies, CurrencyResponse{Code: code, Name: cur.Name, Symbol: cur.Symbol})
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].Code < currencies[j].Code })

	languages := c.LanguageNames()
	sort.Strings(languages)

	detail := &CountryDetail{
		Code:         c.CCA3,
		CCA2:         c.CCA2,
		Name:         displayOrUnknown(c.Name.Common),
		OfficialName: displayOrUnknown(c.Name.Official),
		Region:       c.DisplayRegion(),
		Subregion:    displayOrUnknown(c.Subregion),
		Capital:      c.CanonicalCapital(),
		Population:   c.Population,
		Currencies:   currencies,
		Languages:    languages,
		Borders:      c.Borders,
		Flags:        c.Flags,
		TLD:          c.TLD,
	}
	if detail.Borders == nil {
		detail.Borders = []string{}
	}
	if detail.TLD == nil {
		detail.TLD = []string{}
	}
	return detail
}

func displayOrUnknown(s string) string {
	if s == "" {
		return models.UnknownValue
	}
	return s
}
