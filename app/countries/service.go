package countries

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/models"
)

// Status is the fetch lifecycle state of the directory.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// service owns the fetched collection, the fetch status and the active
// criteria. All fields behind mu; handlers run on concurrent goroutines.
type service struct {
	provider Provider
	logger   logger.Logger

	mu        sync.RWMutex
	status    Status
	lastErr   string
	countries []models.Country
	criteria  Criteria
}

// NewService creates an idle directory service.
func NewService(provider Provider, log logger.Logger) Service {
	return &service{
		provider: provider,
		logger:   log,
		status:   StatusIdle,
	}
}

func (s *service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusLoading {
		s.mu.Unlock()
		return models.ErrRefreshInFlight
	}
	s.status = StatusLoading
	s.mu.Unlock()

	fetched, err := s.provider.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		s.lastErr = err.Error()
		return err
	}

	s.countries = dedupeByCode(fetched, s.logger)
	s.status = StatusReady
	s.lastErr = ""
	s.logger.Info("country collection refreshed", map[string]interface{}{
		"count": len(s.countries),
	})
	return nil
}

// dedupeByCode enforces cca3 uniqueness within the fetched collection,
// keeping the first record for a code.
func dedupeByCode(fetched []models.Country, log logger.Logger) []models.Country {
	seen := make(map[string]bool, len(fetched))
	out := make([]models.Country, 0, len(fetched))
	for _, c := range fetched {
		if seen[c.CCA3] {
			log.Debug("duplicate cca3 in provider response", map[string]interface{}{"cca3": c.CCA3})
			continue
		}
		seen[c.CCA3] = true
		out = append(out, c)
	}
	return out
}

func (s *service) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *service) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *service) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *service) UpdateFilters(u CriteriaUpdate) []CountrySummary {
	s.mu.Lock()
	s.criteria = s.criteria.Merge(u)
	criteria := s.criteria
	collection := s.countries
	s.mu.Unlock()

	return ToCountrySummaryList(ApplyFilters(collection, criteria))
}

func (s *service) ResetFilters() {
	s.mu.Lock()
	s.criteria = Criteria{}
	s.mu.Unlock()
}

func (s *service) Visible() []CountrySummary {
	s.mu.RLock()
	criteria := s.criteria
	collection := s.countries
	s.mu.RUnlock()

	return ToCountrySummaryList(ApplyFilters(collection, criteria))
}

func (s *service) GetByCode(ctx context.Context, code string) (*CountryDetail, error) {
	s.mu.RLock()
	for i := range s.countries {
		if s.countries[i].MatchesCode(code) {
			c := s.countries[i]
			s.mu.RUnlock()
			return ToCountryDetail(&c), nil
		}
	}
	s.mu.RUnlock()

	country, err := s.provider.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCountryDetail(country), nil
}

func (s *service) Regions() []string {
	return models.Regions
}

func (s *service) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var languages []string
	for i := range s.countries {
		for _, name := range s.countries[i].Languages {
			if !seen[name] {
				seen[name] = true
				languages = append(languages, name)
			}
		}
	}
	sort.Strings(languages)
	return languages
}
