package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
	"github.com/baraldiruffer/heritage/internal/infrastructure/config"
	"github.com/baraldiruffer/heritage/internal/infrastructure/parsers"
)

// Compile-time interface check.
var _ ports.Uploader = (*UploadHandler)(nil)

// UploadHandler loads nested process records into the five activity tables,
// recreating them on every push. Tool lists are stored comma-joined.
type UploadHandler struct {
	db   *sql.DB
	path string
}

// NewUploadHandler opens (or creates) the provenance database for loading.
func NewUploadHandler(cfg config.SQLiteConfig) (*UploadHandler, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}
	return &UploadHandler{db: db, path: cfg.Path}, nil
}

// Close closes the database connection.
func (u *UploadHandler) Close() error {
	return u.db.Close()
}

// Push reads the process record JSON at path and loads it into the database.
// Records sharing an object id collapse to the last one seen.
func (u *UploadHandler) Push(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	records, err := (&parsers.ProcessJSON{}).Parse(f)
	if err != nil {
		return fmt.Errorf("parsing process file: %w", err)
	}
	records = parsers.Dedup(records)

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := recreateTables(ctx, tx); err != nil {
		return err
	}
	for _, rec := range records {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

func recreateTables(ctx context.Context, tx *sql.Tx) error {
	for _, table := range activityTables {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("dropping table %s: %w", table, err)
		}

		cols := "object_id TEXT, responsible_institute TEXT, responsible_person TEXT, "
		if table == "Acquisition" {
			cols += "technique TEXT, "
		}
		cols += "tool TEXT, start_date TEXT, end_date TEXT"
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, cols)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating table %s: %w", table, err)
		}
	}
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, rec parsers.ProcessRecord) error {
	blocks := map[string]parsers.ActivityRecord{
		"Acquisition": rec.Acquisition,
		"Processing":  rec.Processing,
		"Modelling":   rec.Modelling,
		"Optimising":  rec.Optimising,
		"Exporting":   rec.Exporting,
	}

	for _, table := range activityTables {
		block := blocks[table]
		tool := joinTools(block.Tool)

		var err error
		if table == "Acquisition" {
			_, err = tx.ExecContext(ctx, `INSERT INTO Acquisition
    (object_id, responsible_institute, responsible_person, technique, tool, start_date, end_date)
    VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.ObjectID, block.ResponsibleInstitute, block.ResponsiblePerson,
				block.Technique, tool, block.StartDate, block.EndDate)
		} else {
			_, err = tx.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s
    (object_id, responsible_institute, responsible_person, tool, start_date, end_date)
    VALUES (?, ?, ?, ?, ?, ?)`, table),
				rec.ObjectID, block.ResponsibleInstitute, block.ResponsiblePerson,
				tool, block.StartDate, block.EndDate)
		}
		if err != nil {
			return fmt.Errorf("inserting %s row for %s: %w", table, rec.ObjectID, err)
		}
	}
	return nil
}

// joinTools stores a tool list in the comma-joined column form. NULL when
// the record carries no tools, matching the read side's absent-column
// convention.
func joinTools(tools []string) any {
	if len(tools) == 0 {
		return nil
	}
	return strings.Join(tools, ", ")
}
