package investor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Ratios holds the valuation and solvency ratios derived from one company's
// figures. A ratio is unknown when a figure it needs is unknown or its
// denominator is zero; deriving ratios never fails.
type Ratios struct {
	PE       Amount // market price / net profit
	PS       Amount // market price / sales
	PB       Amount // market price / assets
	NDEBITDA Amount // net debt / EBITDA
	ROE      Amount // net profit / equity
	ROA      Amount // net profit / assets
	LA       Amount // liabilities / assets
}

// ComputeRatios derives every ratio from f.
func ComputeRatios(f Financial) Ratios {
	return Ratios{
		PE:       f.MarketPrice.Div(f.NetProfit),
		PS:       f.MarketPrice.Div(f.Sales),
		PB:       f.MarketPrice.Div(f.Assets),
		NDEBITDA: f.NetDebt.Div(f.EBITDA),
		ROE:      f.NetProfit.Div(f.Equity),
		ROA:      f.NetProfit.Div(f.Assets),
		LA:       f.Liabilities.Div(f.Assets),
	}
}

// Metric defines the criterion a top-ten ranking is computed by.
type Metric int

const (
	// NetDebtToEBITDA ranks by net debt / EBITDA.
	NetDebtToEBITDA Metric = iota
	// ReturnOnEquity ranks by net profit / equity.
	ReturnOnEquity
	// ReturnOnAssets ranks by net profit / assets.
	ReturnOnAssets
)

func (m Metric) String() string {
	switch m {
	case NetDebtToEBITDA:
		return "ND/EBITDA"
	case ReturnOnEquity:
		return "ROE"
	case ReturnOnAssets:
		return "ROA"
	default:
		return "unknown"
	}
}

// ParseMetric parses a string into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ND/EBITDA", "NDEBITDA":
		return NetDebtToEBITDA, nil
	case "ROE":
		return ReturnOnEquity, nil
	case "ROA":
		return ReturnOnAssets, nil
	default:
		return 0, fmt.Errorf("unknown metric: %q (want ND/EBITDA, ROE or ROA)", s)
	}
}

// terms returns the numerator and denominator the metric divides.
func (m Metric) terms(f Financial) (num, den Amount) {
	switch m {
	case NetDebtToEBITDA:
		return f.NetDebt, f.EBITDA
	case ReturnOnEquity:
		return f.NetProfit, f.Equity
	case ReturnOnAssets:
		return f.NetProfit, f.Assets
	default:
		return Unknown, Unknown
	}
}

// rankSize caps ranking reports to the ten best companies.
const rankSize = 10

// RankEntry is one row of a ranking report.
type RankEntry struct {
	Ticker string
	Value  decimal.Decimal
}

// Rank computes the top ten companies by m, best first. A company takes part
// only when both figures the metric needs are known and the denominator is
// not zero. Ties are broken by ticker, ascending.
func Rank(financials []Financial, m Metric) []RankEntry {
	entries := make([]RankEntry, 0, len(financials))
	for _, f := range financials {
		num, den := m.terms(f)
		if !num.Known() || !den.Known() || den.IsZero() {
			continue
		}
		entries = append(entries, RankEntry{Ticker: f.Ticker, Value: num.Decimal().Div(den.Decimal())})
	}
	slices.SortFunc(entries, func(a, b RankEntry) int {
		if c := b.Value.Cmp(a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Ticker, b.Ticker)
	})
	if len(entries) > rankSize {
		entries = entries[:rankSize]
	}
	return entries
}

// TopTen ranks every company in the store by m.
func (s *Store) TopTen(m Metric) ([]RankEntry, error) {
	var financials []Financial
	if err := s.db.Find(&financials).Error; err != nil {
		return nil, fmt.Errorf("cannot load financial data: %w", err)
	}
	return Rank(financials, m), nil
}
