package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/investor"
)

func TestCompanies(t *testing.T) {
	companies := []investor.Company{
		{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Information Technologies"},
		{Ticker: "MOON", Name: "Moon Corp"},
	}

	got := Companies(companies)
	want := `# Company List

| Ticker | Name | Sector |
|:---|:---|:---|
| AAPL | Apple Inc. | Information Technologies |
| MOON | Moon Corp |  |
`
	if got != want {
		t.Errorf("Companies() = %q, want %q", got, want)
	}
}

func TestCompanyReport(t *testing.T) {
	f := investor.Financial{
		Ticker:      "AAPL",
		EBITDA:      investor.A(1_000_000),
		Sales:       investor.A(2_000_000),
		NetProfit:   investor.A(500_000),
		MarketPrice: investor.A(150),
		NetDebt:     investor.A(100_000),
		Assets:      investor.A(3_000_000),
		Equity:      investor.A(1_500_000),
		Liabilities: investor.A(2_000_000),
	}
	report := &investor.RatioReport{
		Company:   investor.Company{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Information Technologies"},
		Financial: f,
		Ratios:    investor.ComputeRatios(f),
	}

	got := CompanyReport(report, "USD")
	want := `# Apple Inc. (AAPL)

Sector: Information Technologies

## Reported Figures

| Figure | Value |
|:---|---:|
| EBITDA | $1,000,000.00 |
| Sales | $2,000,000.00 |
| Net Profit | $500,000.00 |
| Market Price | $150.00 |
| Net Debt | $100,000.00 |
| Assets | $3,000,000.00 |
| Equity | $1,500,000.00 |
| Cash Equivalents | None |
| Liabilities | $2,000,000.00 |

## Ratios

| Ratio | Value |
|:---|---:|
| P/E | 0.00 |
| P/S | 0.00 |
| P/B | 0.00 |
| ND/EBITDA | 0.10 |
| ROE | 0.33 |
| ROA | 0.17 |
| L/A | 0.67 |
`
	if got != want {
		t.Errorf("CompanyReport() = %q, want %q", got, want)
	}
}

// TestCompanyReportNoSector checks that the sector line disappears when the
// sector was never set.
func TestCompanyReportNoSector(t *testing.T) {
	report := &investor.RatioReport{
		Company: investor.Company{Ticker: "MOON", Name: "Moon Corp"},
	}
	got := CompanyReport(report, "USD")
	want := `# Moon Corp (MOON)

## Reported Figures`
	if !strings.HasPrefix(got, want) {
		t.Errorf("CompanyReport() = %q, want prefix %q", got, want)
	}
}

func TestRanking(t *testing.T) {
	entries := []investor.RankEntry{
		{Ticker: "HIGH", Value: investor.A(0.5).Decimal()},
		{Ticker: "LOW", Value: investor.A(0.3).Decimal()},
		{Ticker: "EVEN", Value: investor.A(2).Decimal()},
	}

	got := Ranking(investor.ReturnOnEquity, entries)
	want := `# Top Ten by ROE

| Ticker | ROE |
|:---|---:|
| HIGH | 0.5 |
| LOW | 0.3 |
| EVEN | 2 |
`
	if got != want {
		t.Errorf("Ranking() = %q, want %q", got, want)
	}
}

// TestRankingStripsTrailingZeros pins the historical value format: two
// decimals at most, trailing zeros and dangling point removed.
func TestRankingStripsTrailingZeros(t *testing.T) {
	entries := []investor.RankEntry{
		{Ticker: "A", Value: investor.A(1).Div(investor.A(3)).Decimal()},
		{Ticker: "B", Value: investor.A(0.50).Decimal()},
		{Ticker: "C", Value: investor.A(3).Decimal()},
	}
	got := Ranking(investor.NetDebtToEBITDA, entries)
	for _, want := range []string{"| A | 0.33 |", "| B | 0.5 |", "| C | 3 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Ranking() = %q, missing row %q", got, want)
		}
	}
}

func TestRankingEmpty(t *testing.T) {
	got := Ranking(investor.ReturnOnAssets, nil)
	want := `# Top Ten by ROA

No company reports the figures this ranking needs.
`
	if got != want {
		t.Errorf("Ranking() = %q, want %q", got, want)
	}
}
