package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge companies from the exchange format" }
func (*importCmd) Usage() string {
	return `ivc import <file>

  Merges every company of the file into the store, in one transaction:
  tickers already present are replaced, new ones are added, and nothing
  else is touched. A malformed file leaves the store exactly as it was.
  Use '-' to read from stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file argument ('-' for stdin).")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	n, err := store.Import(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing companies: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported %d companies.\n", n)
	return subcommands.ExitSuccess
}
