package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/investor"
)

// figureFlags collects the nine financial figure flags shared by the create
// and update commands. A figure left unset stays unknown.
type figureFlags struct {
	ebitda          string
	sales           string
	netProfit       string
	marketPrice     string
	netDebt         string
	assets          string
	equity          string
	cashEquivalents string
	liabilities     string
}

func (g *figureFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.ebitda, "ebitda", "", "Earnings before interest, taxes, depreciation and amortization")
	f.StringVar(&g.sales, "sales", "", "Total sales")
	f.StringVar(&g.netProfit, "net-profit", "", "Net profit")
	f.StringVar(&g.marketPrice, "market-price", "", "Market price")
	f.StringVar(&g.netDebt, "net-debt", "", "Net debt")
	f.StringVar(&g.assets, "assets", "", "Total assets")
	f.StringVar(&g.equity, "equity", "", "Total equity")
	f.StringVar(&g.cashEquivalents, "cash-equivalents", "", "Cash and cash equivalents")
	f.StringVar(&g.liabilities, "liabilities", "", "Total liabilities")
}

// financial parses the nine flags into the financial record of ticker. An
// empty flag is the unknown amount; anything else must parse as a number.
func (g *figureFlags) financial(ticker string) (investor.Financial, error) {
	record := investor.Financial{Ticker: ticker}
	for _, field := range []struct {
		name string
		raw  string
		dst  *investor.Amount
	}{
		{"ebitda", g.ebitda, &record.EBITDA},
		{"sales", g.sales, &record.Sales},
		{"net-profit", g.netProfit, &record.NetProfit},
		{"market-price", g.marketPrice, &record.MarketPrice},
		{"net-debt", g.netDebt, &record.NetDebt},
		{"assets", g.assets, &record.Assets},
		{"equity", g.equity, &record.Equity},
		{"cash-equivalents", g.cashEquivalents, &record.CashEquivalents},
		{"liabilities", g.liabilities, &record.Liabilities},
	} {
		a, err := investor.ParseAmount(field.raw)
		if err != nil {
			return investor.Financial{}, fmt.Errorf("flag -%s: %w", field.name, err)
		}
		*field.dst = a
	}
	return record, nil
}
