package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investor/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all companies in the store" }
func (*listCmd) Usage() string {
	return `ivc list

  Lists every company in the store, ordered by ticker.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	companies, err := store.ListAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing companies: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(companies) == 0 {
		fmt.Println("No companies found!")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Companies(companies))
	return subcommands.ExitSuccess
}
