package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/investor"
	"github.com/etnz/investor/renderer"
	"github.com/google/subcommands"
)

type readCmd struct {
	name string
}

func (*readCmd) Name() string     { return "read" }
func (*readCmd) Synopsis() string { return "display a company's figures and ratios" }
func (*readCmd) Usage() string {
	return `ivc read <ticker> | ivc read -name <fragment>

  Displays the reported figures of one company and the valuation and
  solvency ratios derived from them. The company is picked by its exact
  ticker, or searched by a case-insensitive fragment of its name with the
  -name flag. A search matching several companies lists them instead;
  re-run with the ticker of the one you meant.
`
}

func (c *readCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Search the company by a fragment of its name instead of its ticker")
}

func (c *readCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.name == "") == (f.NArg() == 0) {
		fmt.Fprintln(os.Stderr, "Error: read takes exactly one ticker argument, or the -name flag.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	ticker := f.Arg(0)
	if c.name != "" {
		companies, err := store.SearchByName(c.name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error searching companies: %v\n", err)
			return subcommands.ExitFailure
		}
		switch len(companies) {
		case 0:
			fmt.Println("Company not found!")
			return subcommands.ExitSuccess
		case 1:
			ticker = companies[0].Ticker
		default:
			printMarkdown(renderer.Companies(companies))
			fmt.Println("Several companies match; run read again with the ticker of the one you meant.")
			return subcommands.ExitSuccess
		}
	}

	report, err := store.Read(ticker)
	switch {
	case errors.Is(err, investor.ErrCompanyNotFound):
		fmt.Println("Company not found!")
		return subcommands.ExitSuccess
	case errors.Is(err, investor.ErrNoFinancialData):
		fmt.Println("No financial data found for the selected company!")
		return subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error reading company: %v\n", err)
		return subcommands.ExitFailure
	}

	if !investor.ValidCurrency(*defaultCurrency) {
		log.Printf("warning, unknown currency %q, figures are displayed bare", *defaultCurrency)
	}
	printMarkdown(renderer.CompanyReport(report, *defaultCurrency))
	return subcommands.ExitSuccess
}
