package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/etnz/investor"
)

func TestFigureFlags(t *testing.T) {
	var g figureFlags
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	g.SetFlags(fs)
	if err := fs.Parse([]string{"-net-profit", "300000", "-equity", "1000000"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	f, err := g.financial("MOON")
	if err != nil {
		t.Fatalf("financial() error = %v", err)
	}
	if f.Ticker != "MOON" {
		t.Errorf("Ticker = %q, want MOON", f.Ticker)
	}
	if !f.NetProfit.Equal(investor.A(300_000)) {
		t.Errorf("NetProfit = %v, want 300000", f.NetProfit)
	}
	if !f.Equity.Equal(investor.A(1_000_000)) {
		t.Errorf("Equity = %v, want 1000000", f.Equity)
	}
	// a flag left out stays unknown, not zero.
	if f.EBITDA.Known() {
		t.Errorf("EBITDA = %v, want unknown", f.EBITDA)
	}
}

// TestFigureFlagsRejectNonNumeric makes sure the reported error names the
// offending flag.
func TestFigureFlagsRejectNonNumeric(t *testing.T) {
	var g figureFlags
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	g.SetFlags(fs)
	if err := fs.Parse([]string{"-market-price", "about ten"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	_, err := g.financial("MOON")
	if err == nil {
		t.Fatal("financial() expected an error")
	}
	if !strings.Contains(err.Error(), "-market-price") {
		t.Errorf("financial() error = %q, want it to name -market-price", err)
	}
}
