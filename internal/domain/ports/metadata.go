package ports

import "context"

// MetadataQuery answers graph-pattern queries against the metadata store.
//
// Every operation degrades to an empty table on backend failure: adapters
// catch transport faults and malformed responses at their own boundary and
// never raise them to the caller.
type MetadataQuery interface {
	// Source returns the endpoint the handler queries.
	Source() string

	// ByID looks up a single entity. An identifier containing a scheme
	// separator (":") is treated as a person identifier and answered with a
	// person-shaped query; anything else gets an object-shaped query.
	// Columns (person): ColName, ColID. Columns (object): ColObject,
	// ColTitle, ColTypeName, ColDate, ColOwner, ColPlace, ColAuthorID,
	// ColAuthorName.
	ByID(ctx context.Context, id string) Table

	// AllPeople lists every author. Columns: ColID, ColName.
	AllPeople(ctx context.Context) Table

	// AllObjects lists every cultural heritage object. Columns: ColID,
	// ColTitle, ColDate, ColOwner, ColPlace, ColAuthorID, ColAuthorName,
	// ColTypeName.
	AllObjects(ctx context.Context) Table

	// AuthorsOfObject lists the authors of the object (or of the works of
	// the author) with the given identifier. Columns: ColID, ColName,
	// ColTitle.
	AuthorsOfObject(ctx context.Context, objectID string) Table

	// ObjectsAuthoredBy lists objects created by the person with the given
	// identifier, either directly or through a shared creator. Same columns
	// as AllObjects.
	ObjectsAuthoredBy(ctx context.Context, personID string) Table

	// ObjectsByOwner lists objects whose owner matches the given text
	// case-insensitively as a substring. Same columns as AllObjects.
	ObjectsByOwner(ctx context.Context, owner string) Table

	// ObjectsCreatedAfter lists objects whose effective year (end of range,
	// else single year, else any digit run in the date) is greater than
	// year. Records without an extractable year are excluded. Same columns
	// as AllObjects.
	ObjectsCreatedAfter(ctx context.Context, year int) Table

	// AuthorsOfObjectsCreatedAfter lists the authors of the objects selected
	// by ObjectsCreatedAfter. Columns: ColID, ColName.
	AuthorsOfObjectsCreatedAfter(ctx context.Context, year int) Table
}
