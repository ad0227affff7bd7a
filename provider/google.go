package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hanscan/hanscan"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleProvider translates through the free Google Translate web endpoint.
// It issues one request per phrase with a short pause between requests, so it
// is a fallback for small batches rather than a primary backend.
type GoogleProvider struct {
	client   *http.Client
	endpoint string
	pause    time.Duration
}

// GoogleConfig holds configuration for the Google provider.
type GoogleConfig struct {
	Timeout time.Duration // Per-request timeout (default: 10s)
	Pause   time.Duration // Pause between requests (default: 100ms)
}

// NewGoogleProvider creates a new Google Translate provider.
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	pause := cfg.Pause
	if pause == 0 {
		pause = 100 * time.Millisecond
	}
	return &GoogleProvider{
		client:   &http.Client{Timeout: timeout},
		endpoint: googleEndpoint,
		pause:    pause,
	}
}

// TranslateBatch translates phrases one at a time. Individual failures drop
// the phrase from the result; the batch only fails when every phrase failed.
func (p *GoogleProvider) TranslateBatch(ctx context.Context, words []string) (map[string]string, error) {
	result := make(map[string]string, len(words))
	var lastErr error

	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(p.pause):
			}
		}

		translated, err := p.translateOne(ctx, word)
		if err != nil {
			lastErr = err
			continue
		}
		if translated != "" && translated != word {
			result[word] = translated
		}
	}

	if len(result) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return result, nil
}

func (p *GoogleProvider) translateOne(ctx context.Context, word string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "zh-CN")
	params.Set("tl", "en")
	params.Set("dt", "t")
	params.Set("q", word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", &hanscan.ProviderError{Message: "building request", Cause: err}
	}
	req.Header.Set("User-Agent", hanscan.UserAgent())

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &hanscan.ProviderError{Message: "Google Translate request failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &hanscan.ProviderError{
			Message:   fmt.Sprintf("Google Translate returned status %d", resp.StatusCode),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &hanscan.ProviderError{Message: "reading response", Cause: err, Retryable: true}
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse unpacks the nested array the gtx endpoint returns:
// [[["translated","source",...],...],...]. Segments are concatenated.
func parseGoogleResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil || len(outer) == 0 {
		return "", &hanscan.ProviderError{Message: "unexpected Google Translate response", Cause: err}
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", &hanscan.ProviderError{Message: "unexpected Google Translate response", Cause: err}
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(seg[0], &text); err == nil {
			sb.WriteString(text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// Verify GoogleProvider implements Provider
var _ Provider = (*GoogleProvider)(nil)
