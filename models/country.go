package models

import "strings"

// UnknownValue is the rendering fallback for absent optional fields.
const UnknownValue = "Unknown"

// CountryName holds the display names of a country.
type CountryName struct {
	Common     string                `json:"common"`
	Official   string                `json:"official"`
	NativeName map[string]NativeName `json:"nativeName,omitempty"`
}

// NativeName is a localized name pair keyed by language code.
type NativeName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Currency describes a currency by name and symbol.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Flags holds the flag image URIs for a country.
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Country is one nation's read-only descriptor as served by the remote
// provider. CCA3 is the primary key and must be unique within a fetched
// collection. Optional fields degrade to documented fallbacks instead of
// failing rendering.
type Country struct {
	CCA3       string              `json:"cca3"`
	CCA2       string              `json:"cca2,omitempty"`
	Name       CountryName         `json:"name"`
	Region     string              `json:"region,omitempty"`
	Subregion  string              `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Population int64               `json:"population"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
	Flags      Flags               `json:"flags,omitempty"`
	TLD        []string            `json:"tld,omitempty"`
}

// CanonicalCapital returns the first capital city, or the unknown fallback.
func (c *Country) CanonicalCapital() string {
	if len(c.Capital) == 0 {
		return UnknownValue
	}
	return c.Capital[0]
}

// DisplayRegion returns the region, or the unknown fallback.
func (c *Country) DisplayRegion() string {
	if c.Region == "" {
		return UnknownValue
	}
	return c.Region
}

// LanguageNames returns the display names of the country's languages.
func (c *Country) LanguageNames() []string {
	names := make([]string, 0, len(c.Languages))
	for _, name := range c.Languages {
		names = append(names, name)
	}
	return names
}

// SpeaksLanguage reports whether any language display name equals lang,
// case-insensitively. A country without a languages map speaks nothing.
func (c *Country) SpeaksLanguage(lang string) bool {
	for _, name := range c.Languages {
		if strings.EqualFold(name, lang) {
			return true
		}
	}
	return false
}

// MatchesCode reports whether code identifies this country by cca3, cca2
// or common name, case-insensitively.
func (c *Country) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	return strings.EqualFold(c.CCA3, code) ||
		(c.CCA2 != "" && strings.EqualFold(c.CCA2, code)) ||
		strings.EqualFold(c.Name.Common, code)
}

// Regions is the fixed continent set used by the region filter.
var Regions = []string{"Africa", "Americas", "Antarctic", "Asia", "Europe", "Oceania"}

// IsValidRegion reports whether region is one of the known continents.
// The empty string is valid as "unconstrained".
func IsValidRegion(region string) bool {
	if region == "" {
		return true
	}
	for _, r := range Regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}
