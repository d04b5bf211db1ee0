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

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a company and its financial record" }
func (*deleteCmd) Usage() string {
	return `ivc delete <ticker>

  Deletes the company with the given ticker. Its financial record goes with
  it: a company and its figures share one lifecycle.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete takes exactly one ticker argument.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	err = store.Delete(ticker)
	switch {
	case errors.Is(err, investor.ErrCompanyNotFound):
		fmt.Println("Company not found!")
		return subcommands.ExitSuccess
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error deleting company: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Company %q deleted.\n", ticker)
	return subcommands.ExitSuccess
}
