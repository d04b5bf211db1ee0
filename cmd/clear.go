package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every company and financial record" }
func (*clearCmd) Usage() string {
	return `ivc clear

  Deletes every financial record, then every company, in one transaction.
  The store file and its schema stay in place, ready for a new load.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing the store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Store cleared.")
	return subcommands.ExitSuccess
}
