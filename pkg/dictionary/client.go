package dictionary

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dd0wney/cluso-wordgraph/pkg/logging"
	"github.com/dd0wney/cluso-wordgraph/pkg/metrics"
)

const (
	// DefaultBaseURL is the public dictionary endpoint
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	// DefaultThrottle is the pause after each live fetch, a self-imposed
	// rate limit for the public endpoint. Zero is fine for local sources.
	DefaultThrottle = 500 * time.Millisecond

	// DefaultTimeout bounds a single HTTP lookup
	DefaultTimeout = 10 * time.Second
)

// apiEntry mirrors the upstream payload: an array of entries, each with
// meanings carrying a part of speech and a list of definitions. Only the
// first meaning's first definition is used.
type apiEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Client is a caching Provider backed by a dictionary HTTP API. All failure
// modes — network errors, non-200 responses, unparseable or empty payloads —
// are memoized as negative cache entries and surfaced as "absent".
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *CacheStore
	throttle   time.Duration
	logger     logging.Logger
	metrics    *metrics.Registry
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithThrottle sets the post-fetch pause applied after live lookups.
func WithThrottle(d time.Duration) ClientOption {
	return func(c *Client) { c.throttle = d }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithMetrics sets the metrics registry.
func WithMetrics(m *metrics.Registry) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a dictionary client over the given cache store.
func NewClient(baseURL string, cache *CacheStore, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		cache:    cache,
		throttle: DefaultThrottle,
		logger:   logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a word to its first-sense entry, consulting the cache
// first. Live fetches are throttled; cache hits are not.
func (c *Client) Lookup(word string) (Entry, bool) {
	if entry, found, cached := c.cache.Get(word); cached {
		outcome := metrics.OutcomeFound
		if !found {
			outcome = metrics.OutcomeMissing
		}
		c.metrics.ObserveLookup(metrics.SourceCache, outcome)
		return entry, found
	}

	start := time.Now()
	entry, ok := c.fetch(word)
	c.metrics.ObserveLookupDuration(time.Since(start))

	if ok {
		c.cache.Put(word, entry)
		c.metrics.ObserveLookup(metrics.SourceLive, metrics.OutcomeFound)
	} else {
		c.cache.PutNegative(word)
		c.metrics.ObserveLookup(metrics.SourceLive, metrics.OutcomeMissing)
	}
	if err := c.cache.Flush(); err != nil {
		c.logger.Warn("cache flush failed", logging.Error(err))
	}

	if c.throttle > 0 {
		time.Sleep(c.throttle)
	}
	return entry, ok
}

// fetch performs one live HTTP lookup.
func (c *Client) fetch(word string) (Entry, bool) {
	url := fmt.Sprintf("%s/%s", c.baseURL, word)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		c.logger.Warn("dictionary fetch failed", logging.Word(word), logging.Error(err))
		return Entry{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("dictionary fetch non-200",
			logging.Word(word), logging.Int("status", resp.StatusCode))
		return Entry{}, false
	}

	var payload []apiEntry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("dictionary payload unparseable", logging.Word(word), logging.Error(err))
		return Entry{}, false
	}

	if len(payload) == 0 || len(payload[0].Meanings) == 0 ||
		len(payload[0].Meanings[0].Definitions) == 0 {
		return Entry{}, false
	}

	first := payload[0].Meanings[0]
	return Entry{
		PartOfSpeech: first.PartOfSpeech,
		Definition:   first.Definitions[0].Definition,
	}, true
}
