package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joefazee/atlas/models"
)

func testCollection() []models.Country {
	return []models.Country{
		{
			CCA3:   "FIN",
			Name:   models.CountryName{Common: "Finland", Official: "Republic of Finland"},
			Region: "Europe",
			Languages: map[string]string{
				"fin": "Finnish",
				"swe": "Swedish",
			},
		},
		{
			CCA3:   "JPN",
			Name:   models.CountryName{Common: "Japan", Official: "Japan"},
			Region: "Asia",
			Languages: map[string]string{
				"jpn": "Japanese",
			},
		},
		{
			CCA3:   "SWE",
			Name:   models.CountryName{Common: "Sweden", Official: "Kingdom of Sweden"},
			Region: "Europe",
			Languages: map[string]string{
				"swe": "Swedish",
			},
		},
		{
			CCA3:   "ATA",
			Name:   models.CountryName{Common: "Antarctica", Official: "Antarctica"},
			Region: "Antarctic",
			// no languages map on purpose
		},
	}
}

func codes(cs []models.Country) []string {
	out := make([]string, len(cs))
	for i := range cs {
		out[i] = cs[i].CCA3
	}
	return out
}

func TestApplyFilters_IdentityWhenUnconstrained(t *testing.T) {
	collection := testCollection()
	result := ApplyFilters(collection, Criteria{})
	assert.Equal(t, collection, result)
}

func TestApplyFilters_SearchTerm(t *testing.T) {
	collection := testCollection()

	tests := []struct {
		term string
		want []string
	}{
		{"finland", []string{"FIN"}},
		{"FIN", []string{"FIN"}},
		{"land", []string{"FIN"}},
		{"kingdom", []string{"SWE"}}, // matches the official name only
		{"a", []string{"FIN", "JPN", "ATA"}},
		{"atlantis", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			result := ApplyFilters(collection, Criteria{SearchTerm: tt.term})
			assert.Equal(t, tt.want, codes(result))
		})
	}
}

func TestApplyFilters_SearchMatchesCommonOrOfficial(t *testing.T) {
	c := models.Country{
		CCA3: "XXX",
		Name: models.CountryName{Common: "Shortname", Official: "The Very Long Official Name"},
	}

	assert.Len(t, ApplyFilters([]models.Country{c}, Criteria{SearchTerm: "shortname"}), 1)
	assert.Len(t, ApplyFilters([]models.Country{c}, Criteria{SearchTerm: "very long"}), 1)
	assert.Len(t, ApplyFilters([]models.Country{c}, Criteria{SearchTerm: "absent"}), 0)
}

func TestApplyFilters_Region(t *testing.T) {
	collection := testCollection()

	result := ApplyFilters(collection, Criteria{Region: "Europe"})
	assert.Equal(t, []string{"FIN", "SWE"}, codes(result))

	result = ApplyFilters(collection, Criteria{Region: "euROPE"})
	assert.Equal(t, []string{"FIN", "SWE"}, codes(result))

	result = ApplyFilters(collection, Criteria{Region: "Oceania"})
	assert.Empty(t, result)
}

func TestApplyFilters_Language(t *testing.T) {
	collection := testCollection()

	// Swedish is spoken in both Finland and Sweden
	result := ApplyFilters(collection, Criteria{Language: "swedish"})
	assert.Equal(t, []string{"FIN", "SWE"}, codes(result))

	// a country with no languages map never matches a language filter
	result = ApplyFilters(collection, Criteria{Language: "Japanese"})
	assert.Equal(t, []string{"JPN"}, codes(result))
}

func TestApplyFilters_PredicatesAreANDed(t *testing.T) {
	collection := testCollection()

	result := ApplyFilters(collection, Criteria{Region: "Europe", Language: "Swedish", SearchTerm: "fin"})
	assert.Equal(t, []string{"FIN"}, codes(result))

	result = ApplyFilters(collection, Criteria{Region: "Asia", Language: "Swedish"})
	assert.Empty(t, result)
}

func TestApplyFilters_OrderPreservedAndInputUntouched(t *testing.T) {
	collection := testCollection()
	before := codes(collection)

	result := ApplyFilters(collection, Criteria{Region: "Europe"})
	assert.Equal(t, []string{"FIN", "SWE"}, codes(result))
	assert.Equal(t, before, codes(collection))
}

func TestCriteria_Merge(t *testing.T) {
	base := Criteria{SearchTerm: "fin", Region: "Europe"}

	lang := "Swedish"
	merged := base.Merge(CriteriaUpdate{Language: &lang})
	assert.Equal(t, Criteria{SearchTerm: "fin", Region: "Europe", Language: "Swedish"}, merged)

	// nil fields leave values untouched
	merged = base.Merge(CriteriaUpdate{})
	assert.Equal(t, base, merged)

	// explicit empty string clears a field
	empty := ""
	merged = base.Merge(CriteriaUpdate{Region: &empty})
	assert.Equal(t, Criteria{SearchTerm: "fin"}, merged)
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Region: "Asia"}.IsZero())
}
