package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/investor/cmd"
	"github.com/etnz/investor/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Answer shell completion queries first: Complete exits the process
	// when the shell's completion hook invoked us, and is a no-op otherwise.
	completion().Complete("ivc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	withFigures := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for _, figure := range []string{
			"ebitda", "sales", "net-profit", "market-price", "net-debt",
			"assets", "equity", "cash-equivalents", "liabilities",
		} {
			flags[figure] = predict.Something
		}
		return flags
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"db":       predict.Files("*.db"),
			"data":     predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		},
		Sub: map[string]*complete.Command{
			"create": {Flags: withFigures(map[string]complete.Predictor{
				"ticker": predict.Something,
				"name":   predict.Something,
				"sector": predict.Something,
			})},
			"read":   {Flags: map[string]complete.Predictor{"name": predict.Something}},
			"update": {Flags: withFigures(map[string]complete.Predictor{"ticker": predict.Something})},
			"delete": {},
			"list":   {},
			"top": {Flags: map[string]complete.Predictor{
				"metric": predict.Set{"nd/ebitda", "roe", "roa"},
			}},
			"load":   {Flags: map[string]complete.Predictor{"force": predict.Nothing}},
			"clear":  {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"import": {Args: predict.Files("*.jsonl")},
			"menu":   {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
	}
}
