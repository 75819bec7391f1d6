// Package storage keeps an imported copy of the incident dataset in sqlite.
// Only source rows are stored; derived counts are always recomputed.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wolfstats/internal/core"
	"wolfstats/internal/dataset"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ dataset.IncidentStore = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadIncidents implements dataset.IncidentReader. An empty table means
// nothing was imported yet and is reported as dataset.ErrSourceUnavailable.
func (r *SQLiteRepository) ReadIncidents(ctx context.Context) ([]core.IncidentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT row_num, date, victims, fields FROM incidents ORDER BY row_num`)
	if err != nil {
		return nil, fmt.Errorf("query incidents: %w", err)
	}
	defer rows.Close()

	var out []core.IncidentRecord
	for rows.Next() {
		var (
			rec    core.IncidentRecord
			fields string
		)
		if err := rows.Scan(&rec.Row, &rec.Date, &rec.Victims, &fields); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return nil, fmt.Errorf("decode fields of row %d: %w", rec.Row, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incidents: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: incidents table is empty, run import first", dataset.ErrSourceUnavailable)
	}
	return out, nil
}

// ReplaceIncidents implements dataset.IncidentWriter. The previous import is
// dropped in the same transaction.
func (r *SQLiteRepository) ReplaceIncidents(ctx context.Context, records []core.IncidentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM incidents`); err != nil {
		return fmt.Errorf("clear incidents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO incidents (row_num, date, victims, fields) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		row := rec.Row
		if row == 0 {
			row = i + 1
		}
		fields := rec.Fields
		if fields == nil {
			fields = map[string]string{}
		}
		b, err := json.Marshal(fields)
		if err != nil {
			return fmt.Errorf("encode fields of row %d: %w", row, err)
		}
		if _, err := stmt.ExecContext(ctx, row, rec.Date, rec.Victims, string(b)); err != nil {
			return fmt.Errorf("insert row %d: %w", row, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Count returns the number of stored incidents.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incidents`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}
	return n, nil
}
