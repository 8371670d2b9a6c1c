package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/storefront/backend/internal/domain"
)

const (
	maxAttempts = 3
	pageSize    = 100
	maxPages    = 50
)

// ClientConfig configures the provider client
type ClientConfig struct {
	APIKey        string
	BaseURL       string
	RatePerSecond float64
	Burst         int
	Timeout       time.Duration
}

// Client reads the product catalog from the payments provider
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
	logger      *zap.Logger
}

var _ domain.CatalogSource = (*Client)(nil)

// NewClient creates a new provider API client
func NewClient(config ClientConfig, logger *zap.Logger) *Client {
	ratePerSecond := config.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 20
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 5
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      config.APIKey,
		baseURL:     config.BaseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
		backoff:     exponentialBackoff,
		logger:      logger.Named("provider"),
	}
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// ListProducts pages through active products with their default prices expanded
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var (
		products      []domain.Product
		startingAfter string
	)

	for page := 0; page < maxPages; page++ {
		list, err := c.fetchPage(ctx, startingAfter)
		if err != nil {
			return nil, err
		}
		products = append(products, mapProducts(list.Data)...)

		if !list.HasMore || len(list.Data) == 0 {
			c.logger.Debug("product listing complete",
				zap.Int("pages", page+1),
				zap.Int("products", len(products)))
			return products, nil
		}
		startingAfter = list.Data[len(list.Data)-1].ID
	}

	c.logger.Warn("product listing truncated", zap.Int("pages", maxPages))
	return products, nil
}

func (c *Client) pageURL(startingAfter string) string {
	params := url.Values{}
	params.Add("active", "true")
	params.Add("limit", fmt.Sprintf("%d", pageSize))
	params.Add("expand[]", "data.default_price")
	if startingAfter != "" {
		params.Add("starting_after", startingAfter)
	}
	return fmt.Sprintf("%s/v1/products?%s", c.baseURL, params.Encode())
}

// fetchPage retries transient failures (transport errors, 429, 5xx)
func (c *Client) fetchPage(ctx context.Context, startingAfter string) (*providerProductList, error) {
	reqURL := c.pageURL(startingAfter)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, c.backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Warn("request failed", zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("read response: %w", readErr)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var list providerProductList
			if err := json.Unmarshal(body, &list); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
			return &list, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			c.logger.Warn("rate limited by provider", zap.Int("attempt", attempt))
			lastErr = domain.ErrRateLimited
		case resp.StatusCode >= http.StatusInternalServerError:
			c.logger.Warn("provider error",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", body))
			lastErr = fmt.Errorf("provider status %d", resp.StatusCode)
		default:
			return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, string(body))
		}
	}

	c.logger.Error("all retries failed", zap.Error(lastErr))
	return nil, lastErr
}

// doRequest executes an authenticated GET request
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "Storefront/1.0")

	return c.httpClient.Do(req)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
