package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole store in the exchange format" }
func (*exportCmd) Usage() string {
	return `ivc export [-o <file>]

  Writes every company and its figures as one JSON object per line, ordered
  by ticker. The output is a faithful copy of the store: importing it into
  an empty store rebuilds the same data.

Usage Examples:
# Print the store on stdout.
$ ivc export

# Keep a backup file.
$ ivc export -o companies.jsonl
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "-", "Output file, or '-' for stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	var w io.Writer = os.Stdout
	if c.output != "-" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := store.Export(w); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting companies: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "-" {
		fmt.Printf("✅ Exported companies to %q.\n", c.output)
	}
	return subcommands.ExitSuccess
}
