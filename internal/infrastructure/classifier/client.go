package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ecoscore/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client calls an external text-classification inference service that hosts
// the environmental-claim model. The model itself is an opaque collaborator;
// only the verdict crosses this boundary.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// classifyRequest is the inference service request body.
type classifyRequest struct {
	Text string `json:"text"`
}

// classifyResponse mirrors the inference service output: one score per label.
type classifyResponse struct {
	Results []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"results"`
}

// NewClient creates a classifier client. The limiter allows a steady request
// per second with a small burst, enough for a shared inference box.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// SetDebug toggles request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ClassifyClaim asks the inference service whether the text contains an
// environmental claim. Transient failures are retried up to three times with
// exponential backoff.
func (c *Client) ClassifyClaim(ctx context.Context, text string) (*domain.ClaimVerdict, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encoding classify request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		verdict, retry, err := c.doClassify(ctx, payload)
		if err == nil {
			return verdict, nil
		}
		lastErr = err
		if !retry {
			return nil, err
		}

		if c.debug {
			log.Printf("[CLASSIFIER] attempt %d failed: %v", attempt, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(exponentialBackoff(attempt)):
		}
	}

	return nil, lastErr
}

// doClassify performs one inference call. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doClassify(ctx context.Context, payload []byte) (*domain.ClaimVerdict, bool, error) {
	url := fmt.Sprintf("%s/v1/classify", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "EcoScore/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[CLASSIFIER] status %d, body: %s", resp.StatusCode, string(body))
		}
		retry := resp.StatusCode >= http.StatusInternalServerError
		return nil, retry, fmt.Errorf("%w: status %d", domain.ErrClassifierUnavailable, resp.StatusCode)
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, false, fmt.Errorf("%w: empty result set", domain.ErrClassifierUnavailable)
	}

	return pickVerdict(parsed), false, nil
}

// pickVerdict prefers the "environmental" label when present, otherwise the
// highest-scoring label.
func pickVerdict(resp classifyResponse) *domain.ClaimVerdict {
	best := resp.Results[0]
	for _, r := range resp.Results {
		if r.Label == "environmental" {
			return &domain.ClaimVerdict{Label: r.Label, Confidence: r.Score}
		}
		if r.Score > best.Score {
			best = r
		}
	}
	return &domain.ClaimVerdict{Label: best.Label, Confidence: best.Score}
}

// exponentialBackoff returns the wait before the next retry: 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
