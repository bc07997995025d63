// Package services implements the mashup aggregation layer: fan-out across
// registered backend handlers, identifier-based merge and dedup, and the
// cross-store join that turns provenance rows into typed activities.
package services

import (
	"context"
	"strings"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// personSchemes are the identifier schemes that classify a ByID lookup as a
// person rather than an object.
var personSchemes = map[string]bool{"VIAF": true, "ULAN": true}

// BasicMashup owns an ordered collection of metadata handlers and an ordered
// collection of process handlers. Fan-out walks handlers in registration
// order, and on duplicate identifiers the earliest-registered handler wins.
// A BasicMashup holds no other state and is meant for a single logical
// caller; concurrent registration and querying would need outside locking.
type BasicMashup struct {
	metadata []ports.MetadataQuery
	process  []ports.ProcessQuery
}

// NewBasicMashup creates a mashup with no registered handlers.
func NewBasicMashup() *BasicMashup {
	return &BasicMashup{}
}

// AddMetadataHandler appends a metadata handler. Duplicates are permitted.
func (m *BasicMashup) AddMetadataHandler(h ports.MetadataQuery) {
	m.metadata = append(m.metadata, h)
}

// AddProcessHandler appends a process handler. Duplicates are permitted.
func (m *BasicMashup) AddProcessHandler(h ports.ProcessQuery) {
	m.process = append(m.process, h)
}

// CleanMetadataHandlers removes every registered metadata handler.
func (m *BasicMashup) CleanMetadataHandlers() { m.metadata = nil }

// CleanProcessHandlers removes every registered process handler.
func (m *BasicMashup) CleanProcessHandlers() { m.process = nil }

// EntityByID resolves an identifier to a typed entity using the first
// metadata handler that returns a non-empty result. Identifiers with a
// VIAF/ULAN scheme prefix become a Person; everything else becomes a
// CulturalHeritageObject. Returns nil when no handler finds the identifier.
func (m *BasicMashup) EntityByID(ctx context.Context, id string) entities.Entity {
	var table ports.Table
	for _, h := range m.metadata {
		if t := h.ByID(ctx, id); !t.Empty() {
			table = t
			break
		}
	}
	if table.Empty() {
		return nil
	}
	row := table[0]

	if scheme, _, ok := strings.Cut(id, ":"); ok && personSchemes[strings.ToUpper(scheme)] {
		name := row.Get(ports.ColName)
		if name == "" {
			name = "Unknown"
		}
		return &entities.Person{ID: id, Name: name}
	}

	objID := row.Get(ports.ColObject)
	if objID == "" {
		objID = id
	}
	title := row.Get(ports.ColTitle)
	if title == "" {
		title = "Unknown"
	}
	kind, _ := entities.ObjectKindFromTag(row.Get(ports.ColTypeName))
	return &entities.CulturalHeritageObject{
		ID:         objID,
		Kind:       kind,
		Title:      title,
		Date:       row.Get(ports.ColDate),
		Owner:      row.Get(ports.ColOwner),
		Place:      row.Get(ports.ColPlace),
		AuthorID:   row.Get(ports.ColAuthorID),
		AuthorName: row.Get(ports.ColAuthorName),
	}
}

// AllPeople merges the people of every metadata handler, deduplicated by
// identifier with first-registered-handler-wins.
func (m *BasicMashup) AllPeople(ctx context.Context) []*entities.Person {
	return m.mergePeople(func(h ports.MetadataQuery) ports.Table {
		return h.AllPeople(ctx)
	})
}

// AllObjects merges the objects of every metadata handler, deduplicated by
// identifier with first-registered-handler-wins. Rows with an unrecognized
// type tag are skipped.
func (m *BasicMashup) AllObjects(ctx context.Context) []*entities.CulturalHeritageObject {
	return m.mergeObjects(func(h ports.MetadataQuery) ports.Table {
		return h.AllObjects(ctx)
	})
}

// ObjectsByOwner merges the objects whose owner matches the given text
// case-insensitively as a substring, with the same dedup rule as AllObjects.
func (m *BasicMashup) ObjectsByOwner(ctx context.Context, owner string) []*entities.CulturalHeritageObject {
	return m.mergeObjects(func(h ports.MetadataQuery) ports.Table {
		return h.ObjectsByOwner(ctx, owner)
	})
}

// ObjectsCreatedAfter merges the objects whose effective year is greater
// than year, with the same dedup rule as AllObjects.
func (m *BasicMashup) ObjectsCreatedAfter(ctx context.Context, year int) []*entities.CulturalHeritageObject {
	return m.mergeObjects(func(h ports.MetadataQuery) ports.Table {
		return h.ObjectsCreatedAfter(ctx, year)
	})
}

// AuthorsOfObjectsCreatedAfter merges the authors of objects whose effective
// year is greater than year, with the same dedup rule as AllPeople.
func (m *BasicMashup) AuthorsOfObjectsCreatedAfter(ctx context.Context, year int) []*entities.Person {
	return m.mergePeople(func(h ports.MetadataQuery) ports.Table {
		return h.AuthorsOfObjectsCreatedAfter(ctx, year)
	})
}

// AuthorsOfObject collects the authors of the identified object from every
// metadata handler, in discovery order and without dedup.
func (m *BasicMashup) AuthorsOfObject(ctx context.Context, objectID string) []*entities.Person {
	people := make([]*entities.Person, 0)
	for _, h := range m.metadata {
		for _, row := range h.AuthorsOfObject(ctx, objectID) {
			if p := personFromRow(row); p != nil {
				people = append(people, p)
			}
		}
	}
	return people
}

// ObjectsAuthoredBy reconstructs the objects authored by the identified
// person, consulting only the first registered metadata handler.
func (m *BasicMashup) ObjectsAuthoredBy(ctx context.Context, personID string) []*entities.CulturalHeritageObject {
	objects := make([]*entities.CulturalHeritageObject, 0)
	if len(m.metadata) == 0 {
		return objects
	}
	for _, row := range m.metadata[0].ObjectsAuthoredBy(ctx, personID) {
		if obj := objectFromRow(row, true); obj != nil {
			objects = append(objects, obj)
		}
	}
	return objects
}

// AllActivities reconstructs every activity of every process handler,
// resolving each row's object identifier against the metadata handlers.
func (m *BasicMashup) AllActivities(ctx context.Context) []*entities.Activity {
	return m.collectActivities(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.AllActivities(ctx)
	})
}

// ActivitiesByResponsibleInstitution filters activities by institute
// substring across every process handler.
func (m *BasicMashup) ActivitiesByResponsibleInstitution(ctx context.Context, institute string) []*entities.Activity {
	return m.collectActivities(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesByInstitution(ctx, institute)
	})
}

// ActivitiesByResponsiblePerson filters activities by person substring
// across every process handler.
func (m *BasicMashup) ActivitiesByResponsiblePerson(ctx context.Context, person string) []*entities.Activity {
	return m.collectActivities(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesByPerson(ctx, person)
	})
}

// ActivitiesStartedAfter keeps activities whose non-empty start date is on
// or after the given date, across every process handler.
func (m *BasicMashup) ActivitiesStartedAfter(ctx context.Context, date string) []*entities.Activity {
	return m.collectActivities(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesStartedAfter(ctx, date)
	})
}

// ActivitiesEndedBefore keeps activities whose non-empty end date is on or
// before the given date, across every process handler.
func (m *BasicMashup) ActivitiesEndedBefore(ctx context.Context, date string) []*entities.Activity {
	return m.collectActivities(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesEndedBefore(ctx, date)
	})
}

// ActivitiesUsingTool filters activities by tool substring. Unlike the other
// activity filters this consults only the first registered process handler;
// the asymmetry is part of the published contract.
func (m *BasicMashup) ActivitiesUsingTool(ctx context.Context, tool string) []*entities.Activity {
	activities := make([]*entities.Activity, 0)
	if len(m.process) == 0 {
		return activities
	}
	for _, row := range m.process[0].ActivitiesUsingTool(ctx, tool) {
		activities = append(activities, activityFromRow(row, m.resolveObject(ctx, row.Get(ports.ColObjectID))))
	}
	return activities
}

// AcquisitionsByTechnique filters Acquisition activities by technique
// substring, consulting only the first registered process handler (same
// asymmetry as ActivitiesUsingTool). One acquisition per object identifier
// is kept; when the object cannot be resolved in the metadata store the
// reference is a stub carrying only the identifier, so the join key stays
// visible to the caller.
func (m *BasicMashup) AcquisitionsByTechnique(ctx context.Context, technique string) []*entities.Activity {
	acquisitions := make([]*entities.Activity, 0)
	if len(m.process) == 0 {
		return acquisitions
	}
	seen := make(map[string]struct{})
	for _, row := range m.process[0].AcquisitionsByTechnique(ctx, technique) {
		objectID := row.Get(ports.ColObjectID)
		if objectID == "" {
			continue
		}
		if _, dup := seen[objectID]; dup {
			continue
		}
		seen[objectID] = struct{}{}

		refersTo := m.resolveObject(ctx, objectID)
		if refersTo == nil {
			refersTo = &entities.CulturalHeritageObject{ID: objectID}
		}
		act := activityFromRow(row, refersTo)
		if act.Kind != entities.ActivityAcquisition {
			continue
		}
		acquisitions = append(acquisitions, act)
	}
	return acquisitions
}

func (m *BasicMashup) mergePeople(fetch func(ports.MetadataQuery) ports.Table) []*entities.Person {
	people := make([]*entities.Person, 0)
	seen := make(map[string]struct{})
	for _, h := range m.metadata {
		for _, row := range fetch(h) {
			p := personFromRow(row)
			if p == nil {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			people = append(people, p)
		}
	}
	return people
}

func (m *BasicMashup) mergeObjects(fetch func(ports.MetadataQuery) ports.Table) []*entities.CulturalHeritageObject {
	objects := make([]*entities.CulturalHeritageObject, 0)
	seen := make(map[string]struct{})
	for _, h := range m.metadata {
		for _, row := range fetch(h) {
			obj := objectFromRow(row, true)
			if obj == nil {
				continue
			}
			if _, dup := seen[obj.ID]; dup {
				continue
			}
			seen[obj.ID] = struct{}{}
			objects = append(objects, obj)
		}
	}
	return objects
}

// collectActivities fans fetch out across every process handler in
// registration order and rebuilds one activity per row, joining each row's
// object identifier against the metadata handlers.
func (m *BasicMashup) collectActivities(ctx context.Context, fetch func(ports.ProcessQuery) ports.Table) []*entities.Activity {
	activities := make([]*entities.Activity, 0)
	for _, h := range m.process {
		for _, row := range fetch(h) {
			activities = append(activities, activityFromRow(row, m.resolveObject(ctx, row.Get(ports.ColObjectID))))
		}
	}
	return activities
}

// resolveObject is the cross-store join: a provenance row's bare object
// identifier becomes a typed object reference, or nil when the metadata
// store knows nothing about it (the activity is still returned).
func (m *BasicMashup) resolveObject(ctx context.Context, objectID string) *entities.CulturalHeritageObject {
	if objectID == "" {
		return nil
	}
	obj, _ := m.EntityByID(ctx, objectID).(*entities.CulturalHeritageObject)
	return obj
}
