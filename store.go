package investor

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DefaultStorePath is where the store lives unless the -db flag says
// otherwise.
const DefaultStorePath = "investor.db"

// Store is the embedded database holding companies and their financial
// figures.
//
// A Store is not safe for concurrent use: the program is a single-user
// console tool and every operation runs to completion before the next
// one starts.
type Store struct {
	db *gorm.DB
}

// Open opens the store at path, creating the file and migrating the schema
// as needed. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open store %q: %w", path, err)
	}
	if strings.Contains(path, ":memory:") {
		// a second pooled connection would open a second, empty database
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := db.AutoMigrate(&Company{}, &Financial{}); err != nil {
		return nil, fmt.Errorf("cannot migrate store %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// Clear deletes every company and every financial row in one transaction.
// The schema stays in place.
func (s *Store) Clear() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&Financial{}).Error; err != nil {
			return err
		}
		return all.Delete(&Company{}).Error
	})
	if err != nil {
		return fmt.Errorf("cannot clear the store: %w", err)
	}
	return nil
}

// count returns the number of companies visible to tx.
func count(tx *gorm.DB) (int64, error) {
	var n int64
	if err := tx.Model(&Company{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// mergeCompany inserts c, or replaces the row sharing its ticker.
func mergeCompany(tx *gorm.DB, c Company) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&c).Error
}

// mergeFinancial inserts f, or replaces the row sharing its ticker.
func mergeFinancial(tx *gorm.DB, f Financial) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&f).Error
}
