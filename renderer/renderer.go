// Package renderer turns the investor report structures into markdown
// strings, ready to be printed raw or through a terminal renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/investor"
)

// Companies renders the company catalog as a markdown table, in the order
// given (the store lists by ticker).
func Companies(companies []investor.Company) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Company List\n\n")
	fmt.Fprintln(&b, "| Ticker | Name | Sector |")
	fmt.Fprintln(&b, "|:---|:---|:---|")
	for _, c := range companies {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Ticker, c.Name, c.Sector)
	}

	return b.String()
}

// CompanyReport renders one company's reported figures and derived ratios.
// Figures are money in the given currency; ratios are bare two-decimal
// numbers, "None" when a ratio cannot be derived.
func CompanyReport(r *investor.RatioReport, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s (%s)\n\n", r.Company.Name, r.Company.Ticker)
	if r.Company.Sector != "" {
		fmt.Fprintf(&b, "Sector: %s\n\n", r.Company.Sector)
	}

	fmt.Fprintf(&b, "## Reported Figures\n\n")
	fmt.Fprintln(&b, "| Figure | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	f := r.Financial
	for _, row := range []struct {
		label  string
		amount investor.Amount
	}{
		{"EBITDA", f.EBITDA},
		{"Sales", f.Sales},
		{"Net Profit", f.NetProfit},
		{"Market Price", f.MarketPrice},
		{"Net Debt", f.NetDebt},
		{"Assets", f.Assets},
		{"Equity", f.Equity},
		{"Cash Equivalents", f.CashEquivalents},
		{"Liabilities", f.Liabilities},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", row.label, investor.M(row.amount, currency))
	}

	fmt.Fprintf(&b, "\n## Ratios\n\n")
	fmt.Fprintln(&b, "| Ratio | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, row := range []struct {
		label string
		ratio investor.Amount
	}{
		{"P/E", r.Ratios.PE},
		{"P/S", r.Ratios.PS},
		{"P/B", r.Ratios.PB},
		{"ND/EBITDA", r.Ratios.NDEBITDA},
		{"ROE", r.Ratios.ROE},
		{"ROA", r.Ratios.ROA},
		{"L/A", r.Ratios.LA},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", row.label, row.ratio.StringFixed(2))
	}

	return b.String()
}

// Ranking renders a top-ten ranking, best company first. Values are rounded
// to two decimals with trailing zeros stripped, the historical format of
// this report.
func Ranking(m investor.Metric, entries []investor.RankEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Top Ten by %s\n\n", m)
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No company reports the figures this ranking needs.")
		return b.String()
	}

	fmt.Fprintf(&b, "| Ticker | %s |\n", m)
	fmt.Fprintln(&b, "|:---|---:|")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Ticker, e.Value.Round(2).String())
	}

	return b.String()
}
