// Package quote provides a live price oracle over an HTTP quote API, so the
// dashboard can value stock and crypto holdings at market instead of at the
// last recorded transaction price. Responses are cached on disk for a day.
package quote

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// defaultEndpoint is the quote API; %s receives the url-escaped symbol. The
// response is the usual quote envelope with the last trade price at
// quoteResponse.result[0].regularMarketPrice.
const defaultEndpoint = "https://query1.finance.yahoo.com/v7/finance/quote?symbols=%s"

const pricePath = "$.quoteResponse.result[0].regularMarketPrice"

// Client fetches latest quotes for ticker symbols.
type Client struct {
	hc       *http.Client
	endpoint string
}

// NewClient returns a client against the default endpoint with a daily disk
// cache.
func NewClient() *Client {
	return &Client{hc: daily(), endpoint: defaultEndpoint}
}

// NewClientFor returns a client for a custom endpoint, used in tests and for
// self-hosted quote proxies. The endpoint must contain one %s verb for the
// symbol.
func NewClientFor(hc *http.Client, endpoint string) *Client {
	return &Client{hc: hc, endpoint: endpoint}
}

// Latest returns the last traded price for the symbol.
func (c *Client) Latest(symbol string) (float64, error) {
	addr := fmt.Sprintf(c.endpoint, url.QueryEscape(symbol))

	var jobj any
	if err := jwget(c.hc, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	jval, err := jsonpath.Get(pricePath, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q %w", symbol, pricePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing quote for %q: %q is not a number: %v", symbol, pricePath, jval)
	}
	return val, nil
}
