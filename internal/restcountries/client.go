package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/models"
)

// Config tunes the remote country-data provider client.
type Config struct {
	BaseURL string        `env:"COUNTRIES_BASE_URL" env-default:"https://restcountries.com/v3.1"`
	Timeout time.Duration `env:"COUNTRIES_TIMEOUT" env-default:"15s"`
}

// Client is the read-only client for the REST Countries provider. It is
// single-shot: no retries and no caching; failures are surfaced to the
// caller as wrapped sentinel errors.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(cfg *Config, log logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  log,
	}
}

// ListAll fetches the full country collection.
func (c *Client) ListAll(ctx context.Context) ([]models.Country, error) {
	return c.list(ctx, "/all")
}

// SearchByName fetches countries whose common or official name matches
// name. A no-match response maps to models.ErrRecordNotFound; callers
// treat that as an empty result, not a failure.
func (c *Client) SearchByName(ctx context.Context, name string) ([]models.Country, error) {
	return c.list(ctx, "/name/"+url.PathEscape(name))
}

// ListByRegion fetches countries whose region equals region,
// case-insensitively per the provider contract.
func (c *Client) ListByRegion(ctx context.Context, region string) ([]models.Country, error) {
	return c.list(ctx, "/region/"+url.PathEscape(region))
}

// GetByCode fetches the single country identified by a cca2 or cca3 code.
// The provider returns a one-element array even for this unique-key
// lookup, so the element is unwrapped here.
func (c *Client) GetByCode(ctx context.Context, code string) (*models.Country, error) {
	countries, err := c.list(ctx, "/alpha/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, models.ErrRecordNotFound
	}
	return &countries[0], nil
}

func (c *Client) list(ctx context.Context, path string) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(err, map[string]interface{}{"path": path})
		return nil, fmt.Errorf("%w: %v", models.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrRecordNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error(models.ErrProviderUnavailable, map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrProviderUnavailable, resp.StatusCode)
	}

	var countries []models.Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", models.ErrProviderUnavailable, err)
	}
	return countries, nil
}
