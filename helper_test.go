package investor

import (
	"path/filepath"
	"testing"
)

// testStore opens a throwaway store backed by a temporary file.
func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "investor.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// apple is the worked example used across tests: every one of its ratios has
// a closed-form value.
func apple() (Company, Financial) {
	c := Company{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Information Technologies"}
	f := Financial{
		Ticker:          "AAPL",
		EBITDA:          A(1_000_000),
		Sales:           A(2_000_000),
		NetProfit:       A(500_000),
		MarketPrice:     A(150),
		NetDebt:         A(100_000),
		Assets:          A(3_000_000),
		Equity:          A(1_500_000),
		CashEquivalents: A(250_000),
		Liabilities:     A(2_000_000),
	}
	return c, f
}

// moon is a second fixture with deliberately partial figures.
func moon() (Company, Financial) {
	c := Company{Ticker: "MOON", Name: "Moon Corp", Sector: "Technology"}
	f := Financial{
		Ticker:    "MOON",
		NetProfit: A(300_000),
		Equity:    A(1_000_000),
	}
	return c, f
}

// mustCreate seeds the store with a company and its figures.
func mustCreate(t *testing.T, s *Store, c Company, f Financial) {
	t.Helper()
	if err := s.Create(c, f); err != nil {
		t.Fatalf("Create(%q) error = %v", c.Ticker, err)
	}
}
