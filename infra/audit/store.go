// Package audit persists security-relevant gateway outcomes: 3-D callback
// hash verifications and bank-declared business failures. The store is an
// append-only journal backed by SQLite.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed audit journal. It implements pos.AuditSink.
type Store struct {
	db   *sql.DB
	path string
}

// Record is one persisted audit row.
type Record struct {
	ID           int64
	Gateway      string
	OrderID      string
	Kind         string
	HashOK       bool
	ProvidedHash string
	ComputedHash string
	ErrorCode    string
	ErrorMessage string
	CreatedAt    time.Time
}

// Record kinds.
const (
	KindHashVerification = "hash_verification"
	KindBankFailure      = "bank_failure"
)

// NewStore opens (or creates) the audit database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// WAL keeps concurrent verification writes from blocking each other.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_timeout=20000", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS audit_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		gateway TEXT NOT NULL,
		order_id TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL,
		hash_ok INTEGER NOT NULL DEFAULT 0,
		provided_hash TEXT NOT NULL DEFAULT '',
		computed_hash TEXT NOT NULL DEFAULT '',
		error_code TEXT NOT NULL DEFAULT '',
		error_message TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_audit_gateway_order ON audit_records(gateway, order_id);
	CREATE INDEX IF NOT EXISTS idx_audit_created ON audit_records(created_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// retryOperation retries a write when SQLite reports the database busy.
func (s *Store) retryOperation(operation func() error, maxRetries int) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		if strings.Contains(err.Error(), "SQLITE_BUSY") || strings.Contains(err.Error(), "database is locked") {
			lastErr = err
			if attempt < maxRetries {
				backoff := time.Duration(10*(1<<attempt)) * time.Millisecond
				time.Sleep(backoff)
				continue
			}
		} else {
			return err
		}
	}
	return fmt.Errorf("operation failed after %d retries, last error: %w", maxRetries+1, lastErr)
}

// HashVerification persists a 3-D callback hash verification outcome. It
// satisfies pos.AuditSink; persistence failures are logged, never raised,
// because the verification result itself already reached the caller.
func (s *Store) HashVerification(ctx context.Context, gateway, orderID string, ok bool, provided, computed string) {
	err := s.retryOperation(func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO audit_records (gateway, order_id, kind, hash_ok, provided_hash, computed_hash)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			gateway, orderID, KindHashVerification, boolToInt(ok), provided, computed)
		return err
	}, 3)
	if err != nil {
		log.Printf("audit: failed to persist hash verification: %v", err)
	}
}

// BankFailure persists a bank-declared business failure with the bank's
// own code and message.
func (s *Store) BankFailure(ctx context.Context, gateway, orderID, code, message string) error {
	return s.retryOperation(func() error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO audit_records (gateway, order_id, kind, error_code, error_message)
			 VALUES (?, ?, ?, ?, ?)`,
			gateway, orderID, KindBankFailure, code, message)
		return err
	}, 3)
}

// Recent returns the newest records for a gateway, most recent first.
func (s *Store) Recent(ctx context.Context, gateway string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, gateway, order_id, kind, hash_ok, provided_hash, computed_hash, error_code, error_message, created_at
		 FROM audit_records WHERE gateway = ? ORDER BY id DESC LIMIT ?`,
		gateway, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var hashOK int
		if err := rows.Scan(&r.ID, &r.Gateway, &r.OrderID, &r.Kind, &hashOK,
			&r.ProvidedHash, &r.ComputedHash, &r.ErrorCode, &r.ErrorMessage, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.HashOK = hashOK == 1
		records = append(records, r)
	}
	return records, rows.Err()
}

// Purge deletes records older than the retention window.
func (s *Store) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM audit_records WHERE created_at < ?`, time.Now().Add(-retention))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
