// Package worldbank fetches entity lists and indicator values from the World
// Bank v2 API. Every failure degrades to a fallback or a missing value.
package worldbank

import (
	"context"
	"net/http"
	"strings"
	"time"

	"indicomp/internal/catalog"
	"indicomp/internal/config"
	"indicomp/internal/logger"
	"indicomp/internal/models"
	"indicomp/pkg/utils"
)

// Defaults applied when Options leaves a field zero.
const (
	DefaultBaseURL     = "https://api.worldbank.org/v2"
	DefaultTimeout     = 10 * time.Second
	DefaultCacheTTL    = time.Hour
	DefaultWindowYears = 5
	DefaultPageSize    = 10
)

// Ensure Client implements catalog.EntityCatalog.
var _ catalog.EntityCatalog = (*Client)(nil)

// Options configures a Client.
type Options struct {
	HTTPClient  *http.Client
	Logger      *logger.Logger
	Now         func() time.Time
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	CacheTTL    time.Duration
	WindowYears int
	PageSize    int
}

// Client talks to the World Bank API.
type Client struct {
	httpClient  *http.Client
	headers     *utils.HTTPHelper
	cache       *entityCache
	logger      *logger.Logger
	now         func() time.Time
	baseURL     string
	windowYears int
	pageSize    int
}

// NewClient creates a client, filling unset options with defaults.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}

	if opts.WindowYears <= 0 {
		opts.WindowYears = DefaultWindowYears
	}

	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	return &Client{
		httpClient:  opts.HTTPClient,
		headers:     utils.NewHTTPHelper(opts.UserAgent),
		cache:       newEntityCache(opts.CacheTTL),
		logger:      opts.Logger.With("component", "worldbank"),
		now:         opts.Now,
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		windowYears: opts.WindowYears,
		pageSize:    opts.PageSize,
	}
}

// NewClientFromConfig creates a client from the remote section of the config.
func NewClientFromConfig(cfg config.RemoteConfig, log *logger.Logger) *Client {
	ttl := cfg.CacheTTL()
	if ttl == 0 {
		// A zero TTL in the file means caching is off.
		ttl = -1
	}

	return NewClient(Options{
		BaseURL:     cfg.BaseURL,
		UserAgent:   cfg.UserAgent,
		Timeout:     cfg.Timeout(),
		CacheTTL:    ttl,
		WindowYears: cfg.WindowYears,
		PageSize:    cfg.PageSize,
		Logger:      log,
	})
}

// ListEntities returns the filtered, sorted country catalog. Results are
// cached for the configured TTL. Region scopes are not served by the API and
// return catalog.ErrScopeUnsupported.
func (c *Client) ListEntities(ctx context.Context, scope models.Scope) ([]string, error) {
	if scope.IsRegional() {
		return nil, catalog.ErrScopeUnsupported
	}

	if names, ok := c.cache.get(c.now()); ok {
		c.logger.Debug("Country list served from cache", "count", len(names))

		return names, nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body, err := c.getBody(ctx, c.countriesURL())
	if err != nil {
		return nil, err
	}

	names, err := decodeCountries(body)
	if err != nil {
		return nil, err
	}

	c.cache.put(names, c.now())
	c.logger.Debug("Country list refreshed", "count", len(names))

	return names, nil
}

// FetchIndicatorValue returns the most recent non-null value inside the
// trailing window. Any failure yields a missing value.
func (c *Client) FetchIndicatorValue(ctx context.Context, entityCode, indicatorCode string) models.Value {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body, err := c.getBody(ctx, c.indicatorURL(entityCode, indicatorCode, c.now()))
	if err != nil {
		c.logger.Warn("Indicator fetch failed", "entity", entityCode, "indicator", indicatorCode, "error", err)

		return models.Missing()
	}

	v, ok, err := decodeLatest(body)
	if err != nil {
		c.logger.Warn("Indicator payload unusable", "entity", entityCode, "indicator", indicatorCode, "error", err)

		return models.Missing()
	}

	if !ok {
		c.logger.Debug("No value in window", "entity", entityCode, "indicator", indicatorCode)

		return models.Missing()
	}

	return models.Of(v)
}

// FetchEntityData resolves every requested indicator for one country. The
// second result is false when the country has no known code; in that case no
// map is returned at all. Otherwise the map holds an entry for every
// requested indicator.
func (c *Client) FetchEntityData(ctx context.Context, entityName string, indicatorNames []string) (map[string]models.Value, bool) {
	code, ok := catalog.CountryCode(entityName)
	if !ok {
		c.logger.Warn("No country code for entity", "entity", entityName)

		return nil, false
	}

	data := make(map[string]models.Value, len(indicatorNames))

	for _, name := range indicatorNames {
		ind, known := catalog.LookupIndicator(name)
		if !known {
			c.logger.Warn("Unknown indicator requested", "indicator", name)
			data[name] = models.Missing()

			continue
		}

		data[name] = c.FetchIndicatorValue(ctx, code, ind.Code)
	}

	return data, true
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.httpClient.Timeout > 0 {
		return context.WithTimeout(ctx, c.httpClient.Timeout)
	}

	return context.WithCancel(ctx)
}
