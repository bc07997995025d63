// Package mocks provides in-memory implementations of the query ports for
// tests. The mocks filter their canned tables with the same matching rules
// the real backends apply, so mashup tests exercise genuine semantics.
package mocks

import (
	"context"
	"strings"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// MetadataQuery is a mock implementation of ports.MetadataQuery.
type MetadataQuery struct {
	Endpoint string

	// IDTables is keyed by the identifier passed to ByID.
	IDTables map[string]ports.Table
	// People backs AllPeople.
	People ports.Table
	// Objects backs AllObjects and the derived filters.
	Objects ports.Table
	// ObjectAuthors is keyed by the identifier passed to AuthorsOfObject.
	ObjectAuthors map[string]ports.Table
	// Authored is keyed by the identifier passed to ObjectsAuthoredBy.
	Authored map[string]ports.Table
}

// Source returns the mock endpoint.
func (m *MetadataQuery) Source() string { return m.Endpoint }

// ByID returns the canned table for the given identifier.
func (m *MetadataQuery) ByID(_ context.Context, id string) ports.Table {
	return m.IDTables[id]
}

// AllPeople returns the canned people table.
func (m *MetadataQuery) AllPeople(_ context.Context) ports.Table { return m.People }

// AllObjects returns the canned objects table.
func (m *MetadataQuery) AllObjects(_ context.Context) ports.Table { return m.Objects }

// AuthorsOfObject returns the canned authors table for the identifier.
func (m *MetadataQuery) AuthorsOfObject(_ context.Context, objectID string) ports.Table {
	return m.ObjectAuthors[objectID]
}

// ObjectsAuthoredBy returns the canned authored-objects table for the
// identifier.
func (m *MetadataQuery) ObjectsAuthoredBy(_ context.Context, personID string) ports.Table {
	return m.Authored[personID]
}

// ObjectsByOwner filters the objects table by case-insensitive substring
// match on the owner column.
func (m *MetadataQuery) ObjectsByOwner(_ context.Context, owner string) ports.Table {
	var out ports.Table
	for _, row := range m.Objects {
		if row.Has(ports.ColOwner) && containsFold(row.Get(ports.ColOwner), owner) {
			out = append(out, row)
		}
	}
	return out
}

// ObjectsCreatedAfter filters the objects table by effective year.
func (m *MetadataQuery) ObjectsCreatedAfter(_ context.Context, year int) ports.Table {
	var out ports.Table
	for _, row := range m.Objects {
		if y, ok := effectiveYear(row.Get(ports.ColDate)); ok && y > year {
			out = append(out, row)
		}
	}
	return out
}

// AuthorsOfObjectsCreatedAfter projects the author columns of the objects
// selected by ObjectsCreatedAfter.
func (m *MetadataQuery) AuthorsOfObjectsCreatedAfter(ctx context.Context, year int) ports.Table {
	var out ports.Table
	for _, row := range m.ObjectsCreatedAfter(ctx, year) {
		if row.Has(ports.ColAuthorID) && row.Has(ports.ColAuthorName) {
			out = append(out, ports.Row{
				ports.ColID:   row.Get(ports.ColAuthorID),
				ports.ColName: row.Get(ports.ColAuthorName),
			})
		}
	}
	return out
}

// effectiveYear extracts the comparison year from a free-text date: the end
// year of a range if present, else the only year token, else any digit run.
func effectiveYear(date string) (int, bool) {
	if i := strings.IndexByte(date, '-'); i >= 0 {
		if y, ok := digits(date[i+1:]); ok {
			return y, true
		}
	}
	return digits(date)
}

func digits(s string) (int, bool) {
	n, seen := 0, false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
		}
	}
	return n, seen
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
