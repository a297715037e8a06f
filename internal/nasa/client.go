// Package nasa queries the NASA Exoplanet Archive over its TAP sync endpoint.
package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"exolens/internal/cache"
	"exolens/internal/infra"
)

// ErrEmptyQuery is returned by Search when no search term is given.
var ErrEmptyQuery = errors.New("nasa: search query is required")

const (
	defaultBaseURL   = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync"
	defaultUserAgent = "ExoVerse-3D-Explorer/1.0"

	systemTTL  = time.Hour
	searchTTL  = time.Hour
	popularTTL = 24 * time.Hour

	defaultFetchTimeout = 30 * time.Second
)

// Options configures the archive client.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Cache      cache.Cache
	Logger     *infra.Logger

	// FetchTimeout bounds one shared archive request.
	FetchTimeout time.Duration
}

// Client is a cached TAP client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      cache.Cache
	logger     *infra.Logger
	group      singleflight.Group

	fetchTimeout time.Duration
}

// NewClient applies defaults to opts. A nil cache gets an in-memory one.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	c := opts.Cache
	if c == nil {
		c = cache.NewMemory()
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	fetchTimeout := opts.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Client{
		baseURL:      baseURL,
		userAgent:    userAgent,
		httpClient:   httpClient,
		cache:        c,
		logger:       logger,
		fetchTimeout: fetchTimeout,
	}
}

// System returns the planets orbiting hosts whose name starts with name,
// ordered by orbital period.
func (c *Client) System(ctx context.Context, name string) (*System, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSystem
	}
	var rows []Row
	if err := c.cached(ctx, "nasa:system:"+name, systemTTL, systemQuery(name), &rows); err != nil {
		return nil, err
	}
	planets := make([]Planet, len(rows))
	for i, r := range rows {
		planets[i] = r.Planet()
	}
	return &System{System: name, Planets: planets, Count: len(planets)}, nil
}

// Search finds planets by host star or planet name substring.
func (c *Client) Search(ctx context.Context, query string, kind SearchKind) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if kind != SearchPlanet {
		kind = SearchStar
	}
	var rows []Row
	key := "nasa:search:" + string(kind) + ":" + query
	if err := c.cached(ctx, key, searchTTL, searchQuery(query, kind), &rows); err != nil {
		return nil, err
	}

	res := &SearchResult{Results: map[string][]Row{}, Count: len(rows), Query: query, Type: kind}
	if len(rows) == 0 {
		res.Message = "No exoplanets found matching your search"
		return res, nil
	}
	for _, r := range rows {
		host := r.Hostname
		if host == "" {
			host = "Unknown"
		}
		res.Results[host] = append(res.Results[host], r)
	}
	res.Stars = len(res.Results)
	return res, nil
}

// PopularSystems returns planet counts and stellar data for the Popular list.
func (c *Client) PopularSystems(ctx context.Context) (*PopularSystems, error) {
	var systems []PopularSystem
	if err := c.cached(ctx, "nasa:popular", popularTTL, popularQuery(Popular), &systems); err != nil {
		return nil, err
	}
	if systems == nil {
		systems = []PopularSystem{}
	}
	return &PopularSystems{Systems: systems, Count: len(systems)}, nil
}

// cached serves key from the cache or runs adql, collapsing concurrent misses
// for the same key into one upstream request. The shared fetch is detached
// from the caller's cancellation; each caller stops waiting when its own ctx
// is done.
func (c *Client) cached(ctx context.Context, key string, ttl time.Duration, adql string, out any) error {
	if body, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("nasa: cache read failed")
	} else if ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		c.logger.Warn().Str("key", key).Msg("nasa: discarding undecodable cache entry")
	}

	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		body, err := c.query(fetchCtx, adql)
		if err != nil {
			return nil, err
		}
		if err := c.cache.Set(fetchCtx, key, body, ttl); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("nasa: cache write failed")
		}
		return body, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return res.Err
	}
	c.logger.Debug().Str("key", key).Bool("shared", res.Shared).Msg("nasa: fetched from archive")
	if err := json.Unmarshal(res.Val.([]byte), out); err != nil {
		return fmt.Errorf("nasa: decode response: %w", err)
	}
	return nil
}

func (c *Client) query(ctx context.Context, adql string) ([]byte, error) {
	params := url.Values{}
	params.Set("query", adql)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nasa: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nasa: invoke archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("NASA API error: %s", http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nasa: read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, errors.New("nasa: archive returned invalid json")
	}
	return body, nil
}
