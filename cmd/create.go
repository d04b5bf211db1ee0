package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investor"
	"github.com/google/subcommands"
)

type createCmd struct {
	ticker  string
	name    string
	sector  string
	figures figureFlags
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a company and its financial record" }
func (*createCmd) Usage() string {
	return `ivc create -ticker <ticker> [-name <name>] [-sector <sector>] [figure flags]

  Creates a company keyed by its ticker, together with its financial record.
  Creating a ticker that already exists replaces its data in place.
  Figure flags left out stay unknown, which excludes the company from the
  ratios that need them.

Usage Examples:
# A company with a full record.
$ ivc create -ticker AAPL -name "Apple Inc." -sector "Information Technologies" \
    -ebitda 1000000 -sales 2000000 -net-profit 500000 -market-price 150 \
    -net-debt 100000 -assets 3000000 -equity 1500000 -liabilities 2000000

# A company with a partial record: only ROE can be derived.
$ ivc create -ticker MOON -name "Moon Corp" -net-profit 300000 -equity 1000000
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Company ticker symbol (required)")
	f.StringVar(&c.name, "name", "", "Company display name")
	f.StringVar(&c.sector, "sector", "", "Company sector")
	c.figures.SetFlags(f)
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: the -ticker flag is required.")
		return subcommands.ExitUsageError
	}

	financial, err := c.figures.financial(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	company := investor.Company{Ticker: c.ticker, Name: c.name, Sector: c.sector}
	if err := store.Create(company, financial); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating company: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Company %q created.\n", c.ticker)
	return subcommands.ExitSuccess
}
