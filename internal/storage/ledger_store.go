// Package storage loads the session's transaction history from an embedded
// SQLite database. The store is a read-only fixture: migrations create and
// seed the schema, and the snapshot is taken once at startup. Submissions
// never write here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/bank-dashboard/internal/ledger"
)

const dateLayout = "2006-01-02"

// LedgerStore is the SQLite-backed ledger.Store.
type LedgerStore struct {
	db       *sql.DB
	snapshot []ledger.Transaction
}

// Open opens (creating if needed) the database at dbPath, runs migrations,
// and loads the full transaction snapshot ordered by insertion.
func Open(dbPath string) (*LedgerStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	snapshot, err := loadSnapshot(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &LedgerStore{db: db, snapshot: snapshot}, nil
}

// All returns a copy of the transaction snapshot in insertion order.
func (s *LedgerStore) All() []ledger.Transaction {
	transactions := make([]ledger.Transaction, len(s.snapshot))
	copy(transactions, s.snapshot)
	return transactions
}

// Close releases the underlying database handle.
func (s *LedgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func loadSnapshot(db *sql.DB) ([]ledger.Transaction, error) {
	rows, err := db.Query(`
		SELECT id, tx_date, description, amount, status, initiated_by, running_balance, category, icon
		FROM transactions
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []ledger.Transaction
	for rows.Next() {
		var (
			t                            ledger.Transaction
			txDate, amount, runningBalance, status string
		)
		if err := rows.Scan(&t.ID, &txDate, &t.Description, &amount, &status,
			&t.InitiatedBy, &runningBalance, &t.Category, &t.Icon); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}

		t.Date, err = time.Parse(dateLayout, txDate)
		if err != nil {
			return nil, fmt.Errorf("parse tx_date %q: %w", txDate, err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		t.RunningBalance, err = decimal.NewFromString(runningBalance)
		if err != nil {
			return nil, fmt.Errorf("parse running_balance %q: %w", runningBalance, err)
		}
		t.Status = ledger.Status(status)

		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}
