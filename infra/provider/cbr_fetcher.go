package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/provider"
	"golang.org/x/time/rate"
)

const maxPayloadBytes = 1 << 20

// CBRFetcher reads the daily rates published by the Central Bank of Russia.
// The payload is JSON, sometimes wrapped in a JavaScript assignment.
type CBRFetcher struct {
	url          string
	currency     string
	contentTypes map[string]struct{}
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *slog.Logger
}

// cbrPayload is the subset of daily_json.js the fetcher reads.
// Example: {"Date": "...", "Valute": {"USD": {"CharCode": "USD", "Value": 92.51}}}
type cbrPayload struct {
	Valute map[string]struct {
		Value *float64 `json:"Value"`
	} `json:"Valute"`
}

// NewCBRFetcher creates a fetcher from the rate provider config.
func NewCBRFetcher(cfg *config.RateProvider, logger *slog.Logger) *CBRFetcher {
	allowed := make(map[string]struct{}, len(cfg.ContentTypes))
	for _, ct := range cfg.ContentTypes {
		allowed[normalizeMediaType(ct)] = struct{}{}
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return &CBRFetcher{
		url:          cfg.URL,
		currency:     cfg.Currency,
		contentTypes: allowed,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger.With("provider", "cbr"),
	}
}

func (f *CBRFetcher) Name() string {
	return "cbr"
}

// FetchRate performs a single GET against the endpoint. It never retries.
func (f *CBRFetcher) FetchRate(ctx context.Context) (float64, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %w", provider.ErrNetworkFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %w", provider.ErrNetworkFailure, err)
	}
	f.logger.Debug("Fetching exchange rate", "url", f.url, "currency", f.currency)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", provider.ErrNetworkFailure, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: %d", provider.ErrBadStatus, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if _, ok := f.contentTypes[normalizeMediaType(contentType)]; !ok {
		return 0, fmt.Errorf("%w: %q", provider.ErrBadContentType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %w", provider.ErrNetworkFailure, err)
	}
	return ParseRate(body, f.currency)
}

// ParseRate extracts Valute.<currency>.Value from a payload that embeds a JSON
// object between its first '{' and last '}'.
func ParseRate(body []byte, currency string) (float64, error) {
	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end < 0 || end < start {
		return 0, fmt.Errorf("%w: no JSON object in payload", provider.ErrMalformedPayload)
	}

	var payload cbrPayload
	if err := json.Unmarshal(body[start:end+1], &payload); err != nil {
		return 0, fmt.Errorf("%w: %w", provider.ErrMalformedPayload, err)
	}

	valute, ok := payload.Valute[currency]
	if !ok || valute.Value == nil {
		return 0, fmt.Errorf("%w: Valute.%s.Value", provider.ErrMissingField, currency)
	}
	if *valute.Value <= 0 {
		return 0, fmt.Errorf("%w: non-positive rate %v", provider.ErrMalformedPayload, *valute.Value)
	}
	return *valute.Value, nil
}

// normalizeMediaType lowercases and strips whitespace so that
// "Application/JSON;charset=UTF-8" matches "application/json; charset=utf-8".
func normalizeMediaType(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
