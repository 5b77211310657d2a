package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ecoscore/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client queries a third-party web search API for market sources backing a
// material, e.g. supplier listings and certification registries. Only the
// result URLs cross this boundary; the caller turns the hit count into a
// capped score bonus.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	maxResults  int
	debug       bool
}

// searchResponse mirrors the search API output.
type searchResponse struct {
	Results []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"results"`
}

// NewClient creates a web search client.
func NewClient(apiKey, baseURL string, maxResults int) *Client {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(2), 5),
		maxResults:  maxResults,
	}
}

// SetDebug toggles request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// VerifyMaterial searches for sustainable-market sources for the material and
// returns their URLs. No results is a valid empty answer, not an error.
func (c *Client) VerifyMaterial(ctx context.Context, material string) ([]string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("q", fmt.Sprintf("%s sustainable textile supplier", material))
	params.Add("api_key", c.apiKey)
	params.Add("limit", fmt.Sprintf("%d", c.maxResults))

	reqURL := fmt.Sprintf("%s/v1/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "EcoScore/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[SEARCH] status %d, body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	sources := make([]string, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.URL != "" {
			sources = append(sources, r.URL)
		}
	}
	if c.debug {
		log.Printf("[SEARCH] %q returned %d sources", material, len(sources))
	}
	return sources, nil
}
