// Package investor provides the types and operations behind a small
// single-user stock analysis tool. It keeps a catalog of listed companies
// and their reported figures in an embedded SQLite database, and derives
// the classic valuation and solvency ratios from them.
//
// The core functionalities include:
//   - Storage: an embedded relational store (GORM over SQLite) holding one
//     company row and one financial row per ticker, with merge-on-conflict
//     semantics so re-inserting a ticker replaces its data.
//   - Bulk Loading: seeding the store from a pair of CSV files
//     (companies.csv and financial.csv) in a single all-or-nothing
//     transaction.
//   - Record Operations: create, read, update, delete and list companies,
//     including fuzzy search by company name.
//   - Ratio Engine: deriving P/E, P/S, P/B, ND/EBITDA, ROE, ROA and L/A
//     from reported figures, where any missing figure or zero denominator
//     makes a ratio unknown rather than an error, and ranking the top ten
//     companies by a chosen metric.
//   - Data Exchange: importing and exporting the whole catalog as a
//     human-readable JSONL stream.
//
// This package serves as the foundational logic for the `ivc` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package investor
