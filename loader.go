package investor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"
)

// The bulk sources the loader expects in the data directory.
const (
	CompaniesCSV = "companies.csv"
	FinancialCSV = "financial.csv"
)

// DefaultDataDir returns the directory LoadCSV reads from unless the -data
// flag says otherwise: $DATA_DIR, or "data".
func DefaultDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// ErrMissingSource reports that a bulk source file is absent. The loader
// checks both files before writing anything, so a missing source leaves the
// store untouched.
var ErrMissingSource = errors.New("CSV files not found")

// ErrMalformedData reports a bulk source cell that cannot be parsed. The
// whole load rolls back: a malformed source loads entirely or not at all.
var ErrMalformedData = errors.New("malformed data")

// LoadCSV bulk-merges companies.csv and financial.csv from dir into the
// store, in a single transaction. Unless force is set, a store that already
// holds companies is left untouched. It reports whether anything was loaded.
func (s *Store) LoadCSV(dir string, force bool) (bool, error) {
	var loaded bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if !force {
			n, err := count(tx)
			if err != nil {
				return err
			}
			if n > 0 {
				return nil
			}
		}
		// Both sources are read in full before the first merge.
		companies, err := readCompanies(filepath.Join(dir, CompaniesCSV))
		if err != nil {
			return err
		}
		financials, err := readFinancials(filepath.Join(dir, FinancialCSV))
		if err != nil {
			return err
		}
		for _, c := range companies {
			if err := mergeCompany(tx, c); err != nil {
				return err
			}
		}
		for _, f := range financials {
			if err := mergeFinancial(tx, f); err != nil {
				return err
			}
		}
		loaded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return loaded, nil
}

// readCompanies parses the companies source: a header row, then one company
// per record.
func readCompanies(path string) ([]Company, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	var companies []Company
	for i, row := range rows {
		ticker := strings.TrimSpace(row["ticker"])
		if ticker == "" {
			return nil, fmt.Errorf("%s record %d: %w: missing ticker", name, i+1, ErrMalformedData)
		}
		companies = append(companies, Company{
			Ticker: ticker,
			Name:   strings.TrimSpace(row["name"]),
			Sector: strings.TrimSpace(row["sector"]),
		})
	}
	return companies, nil
}

// readFinancials parses the financial source. Empty cells load as the
// unknown amount; cells that fail to parse abort the load.
func readFinancials(path string) ([]Financial, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	var financials []Financial
	for i, row := range rows {
		ticker := strings.TrimSpace(row["ticker"])
		if ticker == "" {
			return nil, fmt.Errorf("%s record %d: %w: missing ticker", name, i+1, ErrMalformedData)
		}
		f := Financial{Ticker: ticker}
		for _, cell := range []struct {
			column string
			dst    *Amount
		}{
			{"ebitda", &f.EBITDA},
			{"sales", &f.Sales},
			{"net_profit", &f.NetProfit},
			{"market_price", &f.MarketPrice},
			{"net_debt", &f.NetDebt},
			{"assets", &f.Assets},
			{"equity", &f.Equity},
			{"cash_equivalents", &f.CashEquivalents},
			{"liabilities", &f.Liabilities},
		} {
			a, err := ParseAmount(row[cell.column])
			if err != nil {
				return nil, fmt.Errorf("%s record %d, column %s: %w: %v", name, i+1, cell.column, ErrMalformedData, err)
			}
			*cell.dst = a
		}
		financials = append(financials, f)
	}
	return financials, nil
}

// readCSV reads a whole source file into one map per record, keyed by the
// header row. Records shorter than the header leave the missing cells empty.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: missing %q", ErrMissingSource, filepath.Base(path))
		}
		return nil, fmt.Errorf("could not open source file %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrMalformedData, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrMalformedData, err)
		}
		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
