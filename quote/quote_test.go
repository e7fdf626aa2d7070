package quote

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finboard"
)

// quoteServer serves the quote envelope for a fixed symbol->price table and
// counts requests.
func quoteServer(t *testing.T, prices map[string]float64, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		symbol := r.URL.Query().Get("symbols")
		price, ok := prices[symbol]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"quoteResponse":{"result":[],"error":"Not Found"}}`)
			return
		}
		fmt.Fprintf(w, `{"quoteResponse":{"result":[{"symbol":%q,"regularMarketPrice":%v}],"error":null}}`, symbol, price)
	}))
}

func TestClient_Latest(t *testing.T) {
	var hits int
	srv := quoteServer(t, map[string]float64{"AAPL": 231.59}, &hits)
	defer srv.Close()

	client := NewClientFor(srv.Client(), srv.URL+"?symbols=%s")

	got, err := client.Latest("AAPL")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got != 231.59 {
		t.Errorf("Latest(AAPL) = %v, want 231.59", got)
	}
}

func TestClient_LatestErrors(t *testing.T) {
	var hits int
	srv := quoteServer(t, nil, &hits)
	defer srv.Close()

	client := NewClientFor(srv.Client(), srv.URL+"?symbols=%s")
	if _, err := client.Latest("NOPE"); err == nil {
		t.Error("Latest() should fail on a non-200 response")
	}

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"AAPL"}],"error":null}}`)
	}))
	defer bad.Close()

	client = NewClientFor(bad.Client(), bad.URL+"?symbols=%s")
	if _, err := client.Latest("AAPL"); err == nil {
		t.Error("Latest() should fail when the price field is missing")
	}
}

func TestOracle_QuotableAssets(t *testing.T) {
	var hits int
	srv := quoteServer(t, map[string]float64{"AAPL": 231.59}, &hits)
	defer srv.Close()

	fallback := finboard.StaticPrices{"AAPL": finboard.Q(100), "Savings": finboard.Q(1)}
	oracle := NewOracle(NewClientFor(srv.Client(), srv.URL+"?symbols=%s"), fallback)
	oracle.Mark("AAPL", "")

	// Marked asset: live quote wins over the fallback.
	price, ok := oracle.Price("AAPL")
	if !ok || !price.Equal(finboard.Q(231.59)) {
		t.Errorf("Price(AAPL) = %v, %v, want 231.59, true", price, ok)
	}

	// Unmarked asset: straight to the fallback, no fetch.
	price, ok = oracle.Price("Savings")
	if !ok || !price.Equal(finboard.Q(1)) {
		t.Errorf("Price(Savings) = %v, %v, want 1, true", price, ok)
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}

	// Memoized: a second lookup does not refetch.
	oracle.Price("AAPL")
	if hits != 1 {
		t.Errorf("server hit %d times after a repeat lookup, want 1", hits)
	}
}

func TestOracle_FallsBackOnFetchError(t *testing.T) {
	var hits int
	srv := quoteServer(t, nil, &hits) // knows no symbols
	defer srv.Close()

	fallback := finboard.StaticPrices{"AAPL": finboard.Q(100)}
	oracle := NewOracle(NewClientFor(srv.Client(), srv.URL+"?symbols=%s"), fallback)
	oracle.Mark("AAPL", "")

	price, ok := oracle.Price("AAPL")
	if !ok || !price.Equal(finboard.Q(100)) {
		t.Errorf("Price(AAPL) = %v, %v, want the fallback 100, true", price, ok)
	}

	// Not even the fallback knows this one.
	if _, ok := oracle.Price("MSFT"); ok {
		t.Error("Price(MSFT) should miss")
	}
}

func TestOracle_MarkQuotable(t *testing.T) {
	ledger := finboard.NewLedger()
	ledger.Append(
		finboard.NewBuy(finboard.NewDate(2024, 1, 10), "AAPL", finboard.Stock, finboard.Q(10), finboard.Q(100)),
		finboard.NewBuy(finboard.NewDate(2024, 1, 15), "BTC-USD", finboard.Crypto, finboard.Q(1), finboard.Q(40000)),
		finboard.NewBuy(finboard.NewDate(2024, 1, 20), "Savings", finboard.Cash, finboard.Q(1), finboard.Q(5000)),
	)

	oracle := NewOracle(nil, finboard.StaticPrices{})
	oracle.MarkQuotable(ledger)

	if _, ok := oracle.symbols["AAPL"]; !ok {
		t.Error("stock asset should be marked quotable")
	}
	if _, ok := oracle.symbols["BTC-USD"]; !ok {
		t.Error("crypto asset should be marked quotable")
	}
	if _, ok := oracle.symbols["Savings"]; ok {
		t.Error("cash asset should not be marked quotable")
	}
}
