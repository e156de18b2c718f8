package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client defines the interface for fetching exchange-rate quotes.
// This interface enables dependency injection and testing with mock
// implementations.
type Client interface {
	Latest(ctx context.Context, base string) (Quote, error)
}

// RateClient provides methods for fetching currency exchange rates from a
// frankfurter-style public rate service. Quotes are fetched fresh per call and
// never cached.
type RateClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRateClient creates a new exchange rate client for the given service root,
// e.g. "https://www.frankfurter.app".
func NewRateClient(baseURL string) *RateClient {
	return &RateClient{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Latest fetches the latest quote with the given currency as source.
//
// Returns:
//   - Quote: multipliers from base to every currency the service knows
//   - error: if the HTTP request fails, the response cannot be parsed, or the
//     quote's declared base does not match the requested one
func (c *RateClient) Latest(ctx context.Context, base string) (Quote, error) {
	if len(base) < 3 {
		return Quote{}, fmt.Errorf("invalid base currency %q", base)
	}

	reqURL := fmt.Sprintf("%s/latest?from=%s", c.baseURL, url.QueryEscape(strings.ToUpper(base)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Quote{}, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("exchange rate service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, err
	}

	var quote Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return Quote{}, err
	}

	if !strings.EqualFold(quote.Base, base) {
		return Quote{}, fmt.Errorf("exchange rate service answered for base %q, requested %q", quote.Base, base)
	}

	return quote, nil
}
