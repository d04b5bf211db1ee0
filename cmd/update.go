package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investor"
	"github.com/google/subcommands"
)

type updateCmd struct {
	ticker  string
	figures figureFlags
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "replace a company's financial record" }
func (*updateCmd) Usage() string {
	return `ivc update -ticker <ticker> [figure flags]

  Replaces the whole financial record of an existing company: all nine
  figures take the flag values, and figures left out become unknown. The
  company identity (name, sector) is not touched. Updating a company that
  has no financial record is refused.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Company ticker symbol (required)")
	c.figures.SetFlags(f)
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	err = store.Update(c.ticker, financial)
	switch {
	case errors.Is(err, investor.ErrCompanyNotFound):
		fmt.Println("Company not found!")
		return subcommands.ExitSuccess
	case errors.Is(err, investor.ErrNoFinancialData):
		fmt.Println("No financial data found for the selected company!")
		return subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error updating company: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Company %q updated.\n", c.ticker)
	return subcommands.ExitSuccess
}
