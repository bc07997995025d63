// Package ports defines the interfaces between the mashup and the storage
// backends, plus the normalized tabular result shape they exchange.
package ports

// Column names shared by both backend adapters and the mashup. A column that
// is absent from a row means the backend produced no binding for it, which is
// distinct from a present-but-empty value.
const (
	ColID         = "id"
	ColName       = "name"
	ColTitle      = "title"
	ColDate       = "date"
	ColOwner      = "owner"
	ColPlace      = "place"
	ColAuthorID   = "author_id"
	ColAuthorName = "author_name"
	ColTypeName   = "type_name"
	ColObject     = "object"

	ColObjectID  = "object_id"
	ColInstitute = "responsible_institute"
	ColPerson    = "responsible_person"
	ColTechnique = "technique"
	ColTool      = "tool"
	ColStartDate = "start_date"
	ColEndDate   = "end_date"
	ColType      = "type"
)

// Row is one match: column name to bound value. Missing bindings are simply
// absent keys.
type Row map[string]string

// Get returns the value bound to col, or "" if absent.
func (r Row) Get(col string) string { return r[col] }

// Has reports whether col carries a binding.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Table is a normalized query result: one row per match. A nil table is an
// empty result; callers cannot tell a failed backend call from a genuinely
// empty one.
type Table []Row

// Empty reports whether the table has no rows.
func (t Table) Empty() bool { return len(t) == 0 }
