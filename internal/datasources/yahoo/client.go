package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

const (
	DefaultBaseURL = "https://query1.finance.yahoo.com"

	// coffeeFuturesSymbol is the ICE "C" arabica coffee front month contract.
	coffeeFuturesSymbol = "KC=F"

	// Yahoo rejects requests without a browser-like user agent.
	userAgent = "Mozilla/5.0"

	cacheSize = 8
)

var _ datasources.MarketDataFetcher = (*Client)(nil)

// Client reads coffee futures prices from the Yahoo Finance chart API. Responses are cached
// for the configured TTL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, chartResult]
}

func NewClient(cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      expirable.NewLRU[string, chartResult](cacheSize, nil, cacheTTL),
	}
}

// WithBaseURL points the client at another endpoint, such as a test server.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

type chartMeta struct {
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	PreviousClose              *float64 `json:"previousClose"`
	ChartPreviousClose         *float64 `json:"chartPreviousClose"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
}

type chartResult struct {
	Meta       chartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *Client) FetchCoffeeQuote(ctx context.Context) (domain.CoffeeQuote, error) {
	result, err := c.fetchChart(ctx, "1d", "15m")
	if err != nil {
		return domain.CoffeeQuote{}, fmt.Errorf("fetching intraday chart: %w", err)
	}

	meta := result.Meta
	quote := domain.CoffeeQuote{
		RegularMarketPrice: meta.RegularMarketPrice,
		PreviousClose:      meta.PreviousClose,
	}
	if quote.PreviousClose == nil {
		quote.PreviousClose = meta.ChartPreviousClose
	}

	switch {
	case meta.RegularMarketChangePercent != nil:
		quote.ChangePercent = *meta.RegularMarketChangePercent
	case quote.RegularMarketPrice != nil && quote.PreviousClose != nil && *quote.PreviousClose != 0:
		quote.ChangePercent = (*quote.RegularMarketPrice - *quote.PreviousClose) / *quote.PreviousClose * 100
	}

	return quote, nil
}

func (c *Client) FetchCoffeeHistory(ctx context.Context) ([]domain.PricePoint, error) {
	result, err := c.fetchChart(ctx, "1y", "1d")
	if err != nil {
		return nil, fmt.Errorf("fetching daily chart: %w", err)
	}

	var closes []*float64
	if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}

	points := make([]domain.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		point := domain.PricePoint{Date: time.Unix(ts, 0).UTC()}
		if i < len(closes) {
			point.Close = closes[i]
		}
		points = append(points, point)
	}

	return points, nil
}

func (c *Client) fetchChart(ctx context.Context, chartRange, interval string) (chartResult, error) {
	q := url.Values{}
	q.Set("range", chartRange)
	q.Set("interval", interval)
	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(coffeeFuturesSymbol), q.Encode())

	if cached, ok := c.cache.Get(chartURL); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return chartResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chartResult{}, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return chartResult{}, fmt.Errorf("yahoo finance error (status %d): %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return chartResult{}, fmt.Errorf("decoding response: %w", err)
	}
	if chart.Chart.Error != nil {
		return chartResult{}, fmt.Errorf("yahoo finance error [%s]: %s", chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return chartResult{}, fmt.Errorf("empty chart response")
	}

	result := chart.Chart.Result[0]
	c.cache.Add(chartURL, result)
	return result, nil
}
