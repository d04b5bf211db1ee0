package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investor"
	"github.com/etnz/investor/renderer"
	"github.com/google/subcommands"
)

type topCmd struct {
	metric string
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank the top ten companies by a metric" }
func (*topCmd) Usage() string {
	return `ivc top [-metric <nd/ebitda|roe|roa>]

  Ranks the ten best companies by the chosen metric, highest value first.
  A company takes part only when both figures the metric needs are known
  and the denominator is not zero.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metric, "metric", "ND/EBITDA", "Ranking metric: ND/EBITDA, ROE or ROA")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	metric, err := investor.ParseMetric(c.metric)
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

	entries, err := store.TopTen(metric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ranking companies: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Ranking(metric, entries))
	return subcommands.ExitSuccess
}
