// Package sqlite provides the SQLite adapters for the provenance store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/baraldiruffer/heritage/internal/domain/ports"
	"github.com/baraldiruffer/heritage/internal/infrastructure/config"
)

// activityTables are the five per-kind tables, logically one table unioned
// with a literal type tag. Only Acquisition carries a technique column.
var activityTables = []string{"Acquisition", "Processing", "Modelling", "Optimising", "Exporting"}

// Compile-time interface check.
var _ ports.ProcessQuery = (*ProcessHandler)(nil)

// ProcessHandler implements ports.ProcessQuery against a SQLite database.
// SQL errors are logged and degrade to an empty table.
type ProcessHandler struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// NewProcessHandler opens the provenance database.
func NewProcessHandler(cfg config.SQLiteConfig) (*ProcessHandler, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}
	return &ProcessHandler{db: db, path: cfg.Path, log: slog.Default()}, nil
}

// open opens a SQLite database with the settings shared by the query and
// upload handlers.
func open(cfg config.SQLiteConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (h *ProcessHandler) Close() error {
	return h.db.Close()
}

// Source returns the database file path.
func (h *ProcessHandler) Source() string { return h.path }

// AllActivities returns the full union of the five activity tables.
func (h *ProcessHandler) AllActivities(ctx context.Context) ports.Table {
	return h.query(ctx, unionQuery(""))
}

// ActivitiesByInstitution filters by responsible institute substring.
func (h *ProcessHandler) ActivitiesByInstitution(ctx context.Context, institute string) ports.Table {
	return h.query(ctx, unionQuery("responsible_institute LIKE ?"), likeParams(institute)...)
}

// ActivitiesByPerson filters by responsible person substring.
func (h *ProcessHandler) ActivitiesByPerson(ctx context.Context, person string) ports.Table {
	return h.query(ctx, unionQuery("responsible_person LIKE ?"), likeParams(person)...)
}

// ActivitiesUsingTool filters by substring over the comma-joined tool
// column.
func (h *ProcessHandler) ActivitiesUsingTool(ctx context.Context, tool string) ports.Table {
	return h.query(ctx, unionQuery("tool LIKE ?"), likeParams(tool)...)
}

// ActivitiesStartedAfter keeps rows with a non-empty start_date >= date
// under lexicographic comparison.
func (h *ProcessHandler) ActivitiesStartedAfter(ctx context.Context, date string) ports.Table {
	return h.query(ctx, unionQuery("start_date >= ? AND start_date <> ''"), repeatParam(date)...)
}

// ActivitiesEndedBefore keeps rows with a non-empty end_date <= date under
// lexicographic comparison.
func (h *ProcessHandler) ActivitiesEndedBefore(ctx context.Context, date string) ports.Table {
	return h.query(ctx, unionQuery("end_date <= ? AND end_date <> ''"), repeatParam(date)...)
}

// AcquisitionsByTechnique filters Acquisition rows by technique substring.
// Technique exists only on the Acquisition table, so no union is needed.
func (h *ProcessHandler) AcquisitionsByTechnique(ctx context.Context, technique string) ports.Table {
	const q = `SELECT object_id, responsible_institute, responsible_person, technique, tool,
       start_date, end_date, 'Acquisition' AS type
FROM Acquisition WHERE technique LIKE ?`
	return h.query(ctx, q, "%"+technique+"%")
}

// unionQuery builds the five-table union with an optional per-table WHERE
// clause; non-Acquisition tables bind NULL for technique.
func unionQuery(where string) string {
	parts := make([]string, 0, len(activityTables))
	for _, table := range activityTables {
		technique := "technique"
		if table != "Acquisition" {
			technique = "NULL AS technique"
		}
		sel := fmt.Sprintf(
			"SELECT object_id, responsible_institute, responsible_person, %s, tool, start_date, end_date, '%s' AS type FROM %s",
			technique, table, table)
		if where != "" {
			sel += " WHERE " + where
		}
		parts = append(parts, sel)
	}
	return strings.Join(parts, "\nUNION ALL\n")
}

// likeParams repeats a LIKE pattern for every table in the union.
func likeParams(s string) []any {
	return repeatParam("%" + s + "%")
}

func repeatParam(v any) []any {
	params := make([]any, len(activityTables))
	for i := range params {
		params[i] = v
	}
	return params
}

// query runs the SQL and normalizes the rows into a table; NULL cells become
// absent columns.
func (h *ProcessHandler) query(ctx context.Context, query string, args ...any) ports.Table {
	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		h.log.Warn("process query degraded to empty result", "path", h.path, "err", err)
		return nil
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		h.log.Warn("process query degraded to empty result", "path", h.path, "err", err)
		return nil
	}

	var table ports.Table
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			h.log.Warn("process query degraded to empty result", "path", h.path, "err", err)
			return nil
		}

		row := make(ports.Row, len(cols))
		for i, col := range cols {
			if values[i].Valid {
				row[col] = values[i].String
			}
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		h.log.Warn("process query degraded to empty result", "path", h.path, "err", err)
		return nil
	}
	return table
}
