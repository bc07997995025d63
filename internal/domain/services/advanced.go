package services

import (
	"context"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// AdvancedMashup extends BasicMashup with composite queries that need both
// stores in a single call.
type AdvancedMashup struct {
	BasicMashup
}

// NewAdvancedMashup creates an advanced mashup with no registered handlers.
func NewAdvancedMashup() *AdvancedMashup {
	return &AdvancedMashup{}
}

// ActivitiesOnObjectsAuthoredBy returns every activity touching an object
// authored by the identified person. The authored-object set comes from the
// first metadata handler only; activities come from every process handler.
func (m *AdvancedMashup) ActivitiesOnObjectsAuthoredBy(ctx context.Context, authorID string) []*entities.Activity {
	activities := make([]*entities.Activity, 0)
	if len(m.metadata) == 0 {
		return activities
	}

	authored := make(map[string]struct{})
	for _, row := range m.metadata[0].ObjectsAuthoredBy(ctx, authorID) {
		if id := row.Get(ports.ColID); id != "" {
			authored[id] = struct{}{}
		}
	}
	if len(authored) == 0 {
		return activities
	}

	for _, h := range m.process {
		for _, row := range h.AllActivities(ctx) {
			objectID := row.Get(ports.ColObjectID)
			if _, ok := authored[objectID]; !ok {
				continue
			}
			activities = append(activities, activityFromRow(row, m.resolveObject(ctx, objectID)))
		}
	}
	return activities
}

// ObjectsHandledByResponsiblePerson returns the objects touched by any
// activity whose responsible person matches the given substring.
func (m *AdvancedMashup) ObjectsHandledByResponsiblePerson(ctx context.Context, person string) []*entities.CulturalHeritageObject {
	return m.objectsHandledBy(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesByPerson(ctx, person)
	})
}

// ObjectsHandledByResponsibleInstitution returns the objects touched by any
// activity whose responsible institute matches the given substring.
func (m *AdvancedMashup) ObjectsHandledByResponsibleInstitution(ctx context.Context, institute string) []*entities.CulturalHeritageObject {
	return m.objectsHandledBy(ctx, func(h ports.ProcessQuery) ports.Table {
		return h.ActivitiesByInstitution(ctx, institute)
	})
}

// AuthorsOfObjectsAcquiredInTimeFrame returns the deduplicated authors of
// objects with some Acquisition started on/after start and some Acquisition
// ended on/before end. The two conditions are evaluated as independent
// identifier sets and intersected; they need not hold on the same row.
func (m *AdvancedMashup) AuthorsOfObjectsAcquiredInTimeFrame(ctx context.Context, start, end string) []*entities.Person {
	started := make(map[string]struct{})
	ended := make(map[string]struct{})
	for _, h := range m.process {
		for _, row := range h.AllActivities(ctx) {
			if row.Get(ports.ColType) != string(entities.ActivityAcquisition) {
				continue
			}
			objectID := row.Get(ports.ColObjectID)
			if objectID == "" {
				continue
			}
			if s := row.Get(ports.ColStartDate); s != "" && s >= start {
				started[objectID] = struct{}{}
			}
			if e := row.Get(ports.ColEndDate); e != "" && e <= end {
				ended[objectID] = struct{}{}
			}
		}
	}

	authors := make([]*entities.Person, 0)
	if len(m.metadata) == 0 {
		return authors
	}
	seen := make(map[string]struct{})
	for _, row := range m.metadata[0].AllObjects(ctx) {
		id := row.Get(ports.ColID)
		if _, ok := started[id]; !ok {
			continue
		}
		if _, ok := ended[id]; !ok {
			continue
		}
		authorID := row.Get(ports.ColAuthorID)
		if authorID == "" {
			continue
		}
		if _, dup := seen[authorID]; dup {
			continue
		}
		seen[authorID] = struct{}{}
		authors = append(authors, &entities.Person{ID: authorID, Name: row.Get(ports.ColAuthorName)})
	}
	return authors
}

// ObjectsByAuthorAndOwner returns the objects of the given owner (substring
// match, first metadata handler) whose author identifier or object
// identifier equals personID. The OR is a deliberately loose match policy.
func (m *AdvancedMashup) ObjectsByAuthorAndOwner(ctx context.Context, personID, owner string) []*entities.CulturalHeritageObject {
	objects := make([]*entities.CulturalHeritageObject, 0)
	if len(m.metadata) == 0 {
		return objects
	}
	for _, row := range m.metadata[0].ObjectsByOwner(ctx, owner) {
		if row.Get(ports.ColAuthorID) != personID && row.Get(ports.ColID) != personID {
			continue
		}
		if obj := objectFromRow(row, false); obj != nil {
			objects = append(objects, obj)
		}
	}
	return objects
}

// objectsHandledBy unions the object identifiers of the matching activities
// across every process handler, then reconstructs those objects from the
// first metadata handler's full listing. Unrecognized type tags fall back to
// the unclassified kind here rather than being skipped.
func (m *AdvancedMashup) objectsHandledBy(ctx context.Context, fetch func(ports.ProcessQuery) ports.Table) []*entities.CulturalHeritageObject {
	handled := make(map[string]struct{})
	for _, h := range m.process {
		for _, row := range fetch(h) {
			if id := row.Get(ports.ColObjectID); id != "" {
				handled[id] = struct{}{}
			}
		}
	}

	objects := make([]*entities.CulturalHeritageObject, 0)
	if len(m.metadata) == 0 || len(handled) == 0 {
		return objects
	}
	for _, row := range m.metadata[0].AllObjects(ctx) {
		if _, ok := handled[row.Get(ports.ColID)]; !ok {
			continue
		}
		if obj := objectFromRow(row, false); obj != nil {
			objects = append(objects, obj)
		}
	}
	return objects
}
