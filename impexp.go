package investor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into a database.

// jrecord is one line of the import/export format: a company and,
// optionally, its financial figures. Unknown amounts are null.
type jrecord struct {
	Ticker    string    `json:"ticker"`
	Name      string    `json:"name"`
	Sector    string    `json:"sector,omitempty"`
	Financial *jfigures `json:"financial,omitempty"`
}

type jfigures struct {
	EBITDA          Amount `json:"ebitda"`
	Sales           Amount `json:"sales"`
	NetProfit       Amount `json:"net_profit"`
	MarketPrice     Amount `json:"market_price"`
	NetDebt         Amount `json:"net_debt"`
	Assets          Amount `json:"assets"`
	Equity          Amount `json:"equity"`
	CashEquivalents Amount `json:"cash_equivalents"`
	Liabilities     Amount `json:"liabilities"`
}

func (j *jfigures) financial(ticker string) Financial {
	return Financial{
		Ticker:          ticker,
		EBITDA:          j.EBITDA,
		Sales:           j.Sales,
		NetProfit:       j.NetProfit,
		MarketPrice:     j.MarketPrice,
		NetDebt:         j.NetDebt,
		Assets:          j.Assets,
		Equity:          j.Equity,
		CashEquivalents: j.CashEquivalents,
		Liabilities:     j.Liabilities,
	}
}

func figures(f Financial) *jfigures {
	return &jfigures{
		EBITDA:          f.EBITDA,
		Sales:           f.Sales,
		NetProfit:       f.NetProfit,
		MarketPrice:     f.MarketPrice,
		NetDebt:         f.NetDebt,
		Assets:          f.Assets,
		Equity:          f.Equity,
		CashEquivalents: f.CashEquivalents,
		Liabilities:     f.Liabilities,
	}
}

// Export writes every company to w in the import/export format.
//
// The format is a JSONL file, where each line is a JSON object holding the
// company identity and, under the 'financial' property, its figures. A
// company with no financial row has no 'financial' property; an unknown
// figure is null.
//
// Companies are exported ordered by ticker, so two exports of the same store
// compare equal.
func (s *Store) Export(w io.Writer) error {
	var companies []Company
	var financials []Financial
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("ticker").Find(&companies).Error; err != nil {
			return err
		}
		return tx.Find(&financials).Error
	})
	if err != nil {
		return fmt.Errorf("cannot export companies: %w", err)
	}

	byTicker := make(map[string]Financial, len(financials))
	for _, f := range financials {
		byTicker[f.Ticker] = f
	}

	for _, c := range companies {
		j := jrecord{Ticker: c.Ticker, Name: c.Name, Sector: c.Sector}
		if f, ok := byTicker[c.Ticker]; ok {
			j.Financial = figures(f)
		}
		data, err := json.Marshal(j)
		if err != nil {
			return fmt.Errorf("cannot marshal company %q: %w", c.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write company format: %w", err)
		}
	}
	return nil
}

// Import merges companies from r in the import/export format into the
// store, in one transaction. A line with no 'financial' property merges the
// company identity only. It returns the number of companies imported.
func (s *Store) Import(r io.Reader) (int, error) {
	var records []jrecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var j jrecord
		if err := json.Unmarshal(line, &j); err != nil {
			return 0, fmt.Errorf("cannot parse line for company import format: %q: %w", string(line), err)
		}
		if strings.TrimSpace(j.Ticker) == "" {
			return 0, fmt.Errorf("cannot import company without a ticker: %q", string(line))
		}
		records = append(records, j)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("cannot read company import format: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, j := range records {
			c := Company{Ticker: strings.TrimSpace(j.Ticker), Name: j.Name, Sector: j.Sector}
			if err := mergeCompany(tx, c); err != nil {
				return err
			}
			if j.Financial == nil {
				continue
			}
			if err := mergeFinancial(tx, j.Financial.financial(c.Ticker)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cannot import companies: %w", err)
	}
	return len(records), nil
}
