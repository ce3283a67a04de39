package countries

import (
	"context"

	"github.com/joefazee/atlas/models"
)

// Provider is the remote country-data client consumed by the directory.
type Provider interface {
	ListAll(ctx context.Context) ([]models.Country, error)
	SearchByName(ctx context.Context, name string) ([]models.Country, error)
	ListByRegion(ctx context.Context, region string) ([]models.Country, error)
	GetByCode(ctx context.Context, code string) (*models.Country, error)
}

// Service is the country directory: the single source of truth for which
// countries are currently visible under the active filter criteria.
type Service interface {
	// Refresh fetches the full collection from the provider. Exactly one
	// refresh runs at a time; a concurrent call fails with
	// models.ErrRefreshInFlight.
	Refresh(ctx context.Context) error

	// Status reports the fetch lifecycle state.
	Status() Status
	// LastError returns the stored failure message, empty when none.
	LastError() string

	// UpdateFilters merges a partial criteria change and returns the
	// recomputed visible set. Idempotent under repeated identical input.
	UpdateFilters(u CriteriaUpdate) []CountrySummary
	// ResetFilters clears all criteria.
	ResetFilters()
	// Criteria returns the active filter tuple.
	Criteria() Criteria

	// Visible returns the countries matching the active criteria.
	Visible() []CountrySummary

	// GetByCode resolves one country by cca3, cca2 or common name from the
	// fetched collection, falling back to the provider when absent.
	GetByCode(ctx context.Context, code string) (*CountryDetail, error)

	// Regions returns the fixed continent set.
	Regions() []string
	// Languages returns the distinct language names of the fetched
	// collection, sorted.
	Languages() []string
}
