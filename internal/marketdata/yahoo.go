package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const (
	// DefaultYahooBaseURL is the Yahoo Finance v8 chart endpoint.
	DefaultYahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA             = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"

	pricePath = "$.chart.result[0].meta.regularMarketPrice"
	errorPath = "$.chart.error.description"
)

// YahooProvider fetches the regular market price from Yahoo Finance.
type YahooProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewYahooProvider creates a Yahoo Finance price source. An empty baseURL
// selects DefaultYahooBaseURL.
func NewYahooProvider(httpClient *http.Client, baseURL string) *YahooProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultYahooBaseURL
	}
	return &YahooProvider{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// CurrentPrice implements PriceSource.
func (p *YahooProvider) CurrentPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return decimal.Zero, ErrPriceUnavailable
	}

	addr := p.baseURL + "/" + url.PathEscape(ticker) + "?interval=1d&range=1d"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return decimal.Zero, fmt.Errorf("%s: %w", ticker, ErrPriceUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, ticker)
	}

	var jobj any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return decimal.Zero, fmt.Errorf("decoding response: %w", err)
	}

	if desc, err := jsonpath.Get(errorPath, jobj); err == nil {
		if s, ok := desc.(string); ok && s != "" {
			return decimal.Zero, fmt.Errorf("%s: %s: %w", ticker, s, ErrPriceUnavailable)
		}
	}

	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ticker, ErrPriceUnavailable)
	}
	// jsonpath may wrap a single match in a list.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	price, err := toDecimal(jval)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ticker, err)
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: non-positive price %s: %w", ticker, price, ErrPriceUnavailable)
	}
	return price, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(n)
	case nil:
		return decimal.Zero, ErrPriceUnavailable
	default:
		return decimal.Zero, fmt.Errorf("unexpected price type %T", v)
	}
}
