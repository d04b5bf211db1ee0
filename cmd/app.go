// Package cmd implements the CLI application to manage the investor store.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/investor"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "records")
	c.Register(&readCmd{}, "records")
	c.Register(&updateCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&listCmd{}, "records")

	c.Register(&topCmd{}, "analysis")

	c.Register(&loadCmd{}, "store")
	c.Register(&clearCmd{}, "store")
	c.Register(&exportCmd{}, "store")
	c.Register(&importCmd{}, "store")

	c.Register(&menuCmd{}, "ui")
	c.Register(&topicCmd{}, "ui")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", investor.DefaultStorePath, "Path to the store holding companies and their figures")
var dataDir = flag.String("data", investor.DefaultDataDir(), "Directory holding the companies.csv and financial.csv bulk sources")
var defaultCurrency = flag.String("currency", "USD", "Currency code used to display reported figures")

// openStore opens the application store, creating it on first use.
func openStore() (*investor.Store, error) {
	return investor.Open(*dbFile)
}

// printMarkdown renders a markdown report on the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Raw markdown is still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
