package investor

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrCompanyNotFound reports that no company matches the requested ticker or
// name fragment.
var ErrCompanyNotFound = errors.New("company not found")

// ErrNoFinancialData reports a company that exists but has no financial row,
// so no ratio can be derived for it.
var ErrNoFinancialData = errors.New("no financial data found for the selected company")

// RatioReport bundles a company, its figures and the ratios derived from
// them, as returned by Read.
type RatioReport struct {
	Company   Company
	Financial Financial
	Ratios    Ratios
}

// Create merges the company identified by c.Ticker together with its
// financial figures, in one transaction. An existing company with the same
// ticker is replaced, not duplicated.
func (s *Store) Create(c Company, f Financial) error {
	c.Ticker = strings.TrimSpace(c.Ticker)
	if c.Ticker == "" {
		return errors.New("ticker cannot be empty")
	}
	f.Ticker = c.Ticker
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := mergeCompany(tx, c); err != nil {
			return err
		}
		return mergeFinancial(tx, f)
	})
	if err != nil {
		return fmt.Errorf("cannot create company %q: %w", c.Ticker, err)
	}
	return nil
}

// SearchByName returns the companies whose name contains fragment, matched
// case-insensitively, ordered by ticker. No match is not an error: the
// result is just empty.
func (s *Store) SearchByName(fragment string) ([]Company, error) {
	var companies []Company
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := s.db.Where("lower(name) LIKE ?", pattern).Order("ticker").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("cannot search companies by name: %w", err)
	}
	return companies, nil
}

// Read returns the company with the given ticker along with its figures and
// derived ratios, all taken from one consistent snapshot. It returns
// ErrCompanyNotFound or ErrNoFinancialData when either row is missing.
func (s *Store) Read(ticker string) (*RatioReport, error) {
	var report RatioReport
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report.Company, "ticker = ?", ticker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		if err := tx.First(&report.Financial, "ticker = ?", ticker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoFinancialData
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read company %q: %w", ticker, err)
	}
	report.Ratios = ComputeRatios(report.Financial)
	return &report, nil
}

// Update replaces the financial figures of an existing company. The company
// row itself (name, sector) is left untouched. Updating a company that has
// no financial row returns ErrNoFinancialData.
func (s *Store) Update(ticker string, f Financial) error {
	f.Ticker = ticker
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c Company
		if err := tx.First(&c, "ticker = ?", ticker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		var existing Financial
		if err := tx.First(&existing, "ticker = ?", ticker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoFinancialData
			}
			return err
		}
		return mergeFinancial(tx, f)
	})
	if err != nil {
		return fmt.Errorf("cannot update company %q: %w", ticker, err)
	}
	return nil
}

// Delete removes the company and its financial row in one transaction.
func (s *Store) Delete(ticker string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c Company
		if err := tx.First(&c, "ticker = ?", ticker).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}
		if err := tx.Delete(&Financial{}, "ticker = ?", ticker).Error; err != nil {
			return err
		}
		return tx.Delete(&Company{}, "ticker = ?", ticker).Error
	})
	if err != nil {
		return fmt.Errorf("cannot delete company %q: %w", ticker, err)
	}
	return nil
}

// ListAll returns every company in the store, ordered by ticker.
func (s *Store) ListAll() ([]Company, error) {
	var companies []Company
	if err := s.db.Order("ticker").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("cannot list companies: %w", err)
	}
	return companies, nil
}
