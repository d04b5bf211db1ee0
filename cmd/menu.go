package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/investor"
	"github.com/google/subcommands"
)

// menuCmd runs the interactive session: the classic text-menu front end of
// the investor program. in and out default to the terminal; tests inject
// their own.
type menuCmd struct {
	in  io.Reader
	out io.Writer
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu session" }
func (*menuCmd) Usage() string {
	return `ivc menu

  Runs the interactive menu session. On startup the store is seeded from
  the CSV bulk sources unless it already holds companies; a missing source
  is reported and the session runs on whatever the store holds.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	s := &session{store: store, in: bufio.NewScanner(c.in), out: c.out}
	fmt.Fprintln(s.out, "Welcome to the Investor Program!")

	// Seed the store once per session, never clobbering existing data.
	loaded, err := store.LoadCSV(*dataDir, false)
	switch {
	case err != nil:
		// The session still runs on whatever the store holds.
		fmt.Fprintln(s.out, err)
	case loaded:
		fmt.Fprintln(s.out, "Data inserted successfully!")
	}

	s.run()
	return subcommands.ExitSuccess
}

// menuKind tags the menus of the interactive session. Dispatching on a tag
// through one handler replaces the menu class hierarchy of the historical
// program.
type menuKind int

const (
	exitMenu menuKind = iota
	mainMenu
	crudMenu
	topTenMenu
)

// menuOption is one line of a menu: the key the user types, the label shown
// next to it, and the action behind it. The action returns the menu to show
// next.
type menuOption struct {
	key    string
	label  string
	action func(*session) menuKind
}

// menu couples a title with its options.
type menu struct {
	title   string
	options []menuOption
}

// menus defines the whole interactive session as data.
var menus = map[menuKind]menu{
	mainMenu: {
		title: "MAIN MENU",
		options: []menuOption{
			{"0", "Exit", func(*session) menuKind { return exitMenu }},
			{"1", "CRUD operations", func(*session) menuKind { return crudMenu }},
			{"2", "Show top ten companies by criteria", func(*session) menuKind { return topTenMenu }},
		},
	},
	crudMenu: {
		title: "CRUD MENU",
		options: []menuOption{
			{"0", "Back", func(*session) menuKind { return mainMenu }},
			{"1", "Create a company", (*session).createCompany},
			{"2", "Read a company", (*session).readCompany},
			{"3", "Update a company", (*session).updateCompany},
			{"4", "Delete a company", (*session).deleteCompany},
			{"5", "List all companies", (*session).listCompanies},
		},
	},
	topTenMenu: {
		title: "TOP TEN MENU",
		options: []menuOption{
			{"0", "Back", func(*session) menuKind { return mainMenu }},
			{"1", "List by ND/EBITDA", topTen(investor.NetDebtToEBITDA)},
			{"2", "List by ROE", topTen(investor.ReturnOnEquity)},
			{"3", "List by ROA", topTen(investor.ReturnOnAssets)},
		},
	},
}

// session carries the state of one interactive run.
type session struct {
	store *investor.Store
	in    *bufio.Scanner
	out   io.Writer
	eof   bool
}

// run dispatches menus until the user exits or input runs out.
func (s *session) run() {
	current := mainMenu
	for current != exitMenu && !s.eof {
		current = s.dispatch(current)
	}
	fmt.Fprintln(s.out, "Have a nice day!")
}

// dispatch shows one menu, reads one choice, and runs the matching action.
// An invalid choice falls back to the main menu.
func (s *session) dispatch(kind menuKind) menuKind {
	m := menus[kind]
	fmt.Fprintf(s.out, "\n%s\n", m.title)
	for _, o := range m.options {
		fmt.Fprintf(s.out, "%s %s\n", o.key, o.label)
	}
	choice, ok := s.readLine("Enter an option:")
	if !ok {
		return exitMenu
	}
	for _, o := range m.options {
		if o.key == choice {
			return o.action(s)
		}
	}
	fmt.Fprintln(s.out, "Invalid option!")
	return mainMenu
}

// readLine prompts for one input line. ok is false once input runs out, and
// every caller unwinds to end the session.
func (s *session) readLine(prompt string) (line string, ok bool) {
	fmt.Fprintln(s.out, prompt)
	if !s.in.Scan() {
		s.eof = true
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptAmount asks for one figure until it parses. An empty line is the
// unknown amount, not an error.
func (s *session) promptAmount(field string) (investor.Amount, bool) {
	for {
		line, ok := s.readLine(fmt.Sprintf("Enter %s (in the format '987654321', empty when unknown):", field))
		if !ok {
			return investor.Unknown, false
		}
		a, err := investor.ParseAmount(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input, please enter a valid number.")
			continue
		}
		return a, true
	}
}

// promptFinancial asks for the nine figures of a financial record.
func (s *session) promptFinancial(ticker string) (investor.Financial, bool) {
	f := investor.Financial{Ticker: ticker}
	for _, field := range []struct {
		label string
		dst   *investor.Amount
	}{
		{"ebitda", &f.EBITDA},
		{"sales", &f.Sales},
		{"net profit", &f.NetProfit},
		{"market price", &f.MarketPrice},
		{"net debt", &f.NetDebt},
		{"assets", &f.Assets},
		{"equity", &f.Equity},
		{"cash equivalents", &f.CashEquivalents},
		{"liabilities", &f.Liabilities},
	} {
		a, ok := s.promptAmount(field.label)
		if !ok {
			return f, false
		}
		*field.dst = a
	}
	return f, true
}

// selectCompany runs the search-and-pick flow shared by read, update and
// delete: search by name fragment, list the matches, pick one by number.
func (s *session) selectCompany() (investor.Company, bool) {
	fragment, ok := s.readLine("Enter company name:")
	if !ok {
		return investor.Company{}, false
	}
	companies, err := s.store.SearchByName(fragment)
	if err != nil {
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return investor.Company{}, false
	}
	if len(companies) == 0 {
		fmt.Fprintln(s.out, "Company not found!")
		return investor.Company{}, false
	}
	for i, c := range companies {
		fmt.Fprintf(s.out, "%d %s\n", i, c.Name)
	}
	line, ok := s.readLine("Enter company number:")
	if !ok {
		return investor.Company{}, false
	}
	idx, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input!")
		return investor.Company{}, false
	}
	if idx < 0 || idx >= len(companies) {
		fmt.Fprintln(s.out, "Invalid selection")
		return investor.Company{}, false
	}
	return companies[idx], true
}

func (s *session) createCompany() menuKind {
	ticker, ok := s.readLine("Enter ticker (in the format 'MOON'):")
	if !ok {
		return exitMenu
	}
	name, ok := s.readLine("Enter company (in the format 'Moon Corp'):")
	if !ok {
		return exitMenu
	}
	sector, ok := s.readLine("Enter industries (in the format 'Technology'):")
	if !ok {
		return exitMenu
	}
	f, ok := s.promptFinancial(ticker)
	if !ok {
		return exitMenu
	}

	company := investor.Company{Ticker: ticker, Name: name, Sector: sector}
	if err := s.store.Create(company, f); err != nil {
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return mainMenu
	}
	fmt.Fprintln(s.out, "Company created successfully!")
	return mainMenu
}

func (s *session) readCompany() menuKind {
	company, ok := s.selectCompany()
	if !ok {
		return mainMenu
	}
	report, err := s.store.Read(company.Ticker)
	switch {
	case errors.Is(err, investor.ErrNoFinancialData):
		fmt.Fprintln(s.out, "No financial data found for the selected company!")
		return mainMenu
	case err != nil:
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return mainMenu
	}

	fmt.Fprintf(s.out, "\n%s %s\n", report.Company.Ticker, report.Company.Name)
	r := report.Ratios
	fmt.Fprintf(s.out, "P/E = %s\n", r.PE.StringFixed(2))
	fmt.Fprintf(s.out, "P/S = %s\n", r.PS.StringFixed(2))
	fmt.Fprintf(s.out, "P/B = %s\n", r.PB.StringFixed(2))
	fmt.Fprintf(s.out, "ND/EBITDA = %s\n", r.NDEBITDA.StringFixed(2))
	fmt.Fprintf(s.out, "ROE = %s\n", r.ROE.StringFixed(2))
	fmt.Fprintf(s.out, "ROA = %s\n", r.ROA.StringFixed(2))
	fmt.Fprintf(s.out, "L/A = %s\n", r.LA.StringFixed(2))
	return mainMenu
}

func (s *session) updateCompany() menuKind {
	company, ok := s.selectCompany()
	if !ok {
		return mainMenu
	}
	// Refuse before prompting for nine figures nobody can store.
	if _, err := s.store.Read(company.Ticker); err != nil {
		if errors.Is(err, investor.ErrNoFinancialData) {
			fmt.Fprintln(s.out, "No financial data found for the selected company!")
		} else {
			fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		}
		return mainMenu
	}
	f, ok := s.promptFinancial(company.Ticker)
	if !ok {
		return exitMenu
	}
	if err := s.store.Update(company.Ticker, f); err != nil {
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return mainMenu
	}
	fmt.Fprintln(s.out, "Company updated successfully!")
	return mainMenu
}

func (s *session) deleteCompany() menuKind {
	company, ok := s.selectCompany()
	if !ok {
		return mainMenu
	}
	if err := s.store.Delete(company.Ticker); err != nil {
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return mainMenu
	}
	fmt.Fprintln(s.out, "Company deleted successfully!")
	return mainMenu
}

func (s *session) listCompanies() menuKind {
	companies, err := s.store.ListAll()
	if err != nil {
		fmt.Fprintf(s.out, "An error occurred: %v\n", err)
		return mainMenu
	}
	if len(companies) == 0 {
		fmt.Fprintln(s.out, "No companies found!")
		return mainMenu
	}
	fmt.Fprintln(s.out, "\nCOMPANY LIST")
	for _, c := range companies {
		line := c.Ticker + " " + c.Name
		if c.Sector != "" {
			line += " " + c.Sector
		}
		fmt.Fprintln(s.out, line)
	}
	return mainMenu
}

// topTen returns the action ranking every company by m.
func topTen(m investor.Metric) func(*session) menuKind {
	return func(s *session) menuKind {
		entries, err := s.store.TopTen(m)
		if err != nil {
			fmt.Fprintf(s.out, "An error occurred: %v\n", err)
			return mainMenu
		}
		fmt.Fprintf(s.out, "\nTICKER %s\n", m)
		for _, e := range entries {
			fmt.Fprintf(s.out, "%s %s\n", e.Ticker, e.Value.Round(2).String())
		}
		return mainMenu
	}
}
