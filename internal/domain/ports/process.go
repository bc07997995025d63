package ports

import "context"

// ProcessQuery answers relational queries against the provenance store. The
// five activity tables are logically one table unioned with a literal type
// tag; ColTechnique is bound only on Acquisition rows.
//
// Columns on every operation: ColObjectID, ColInstitute, ColPerson,
// ColTechnique, ColTool, ColStartDate, ColEndDate, ColType.
//
// Like MetadataQuery, every operation degrades to an empty table on backend
// failure.
type ProcessQuery interface {
	// Source returns the database path the handler queries.
	Source() string

	// AllActivities returns the full union of the five activity tables.
	AllActivities(ctx context.Context) Table

	// ActivitiesByInstitution filters by responsible institute, matching the
	// text case-insensitively as a substring.
	ActivitiesByInstitution(ctx context.Context, institute string) Table

	// ActivitiesByPerson filters by responsible person, case-insensitive
	// substring.
	ActivitiesByPerson(ctx context.Context, person string) Table

	// ActivitiesUsingTool filters by tool, case-insensitive substring over
	// the comma-joined tool column.
	ActivitiesUsingTool(ctx context.Context, tool string) Table

	// ActivitiesStartedAfter keeps rows with start_date >= date under
	// lexicographic comparison. Rows with an empty start_date are excluded.
	ActivitiesStartedAfter(ctx context.Context, date string) Table

	// ActivitiesEndedBefore keeps rows with end_date <= date under
	// lexicographic comparison. Rows with an empty end_date are excluded.
	ActivitiesEndedBefore(ctx context.Context, date string) Table

	// AcquisitionsByTechnique filters Acquisition rows by technique,
	// case-insensitive substring.
	AcquisitionsByTechnique(ctx context.Context, technique string) Table
}
