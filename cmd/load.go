package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loadCmd struct {
	force bool
}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "seed the store from the CSV bulk sources" }
func (*loadCmd) Usage() string {
	return `ivc load [-force]

  Loads companies.csv and financial.csv from the data directory into the
  store, in a single transaction. A store that already holds companies is
  left untouched unless -force is given. A load that fails halfway leaves
  the store exactly as it was.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Load even when the store already holds companies")
}

func (c *loadCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	loaded, err := store.LoadCSV(*dataDir, c.force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		return subcommands.ExitFailure
	}
	if !loaded {
		fmt.Println("The store already holds companies; use -force to reload.")
		return subcommands.ExitSuccess
	}

	fmt.Println("✅ Data inserted successfully!")
	return subcommands.ExitSuccess
}
