package services

import (
	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// personFromRow builds a Person from a people-shaped row. Returns nil when
// the row carries no identifier.
func personFromRow(row ports.Row) *entities.Person {
	id := row.Get(ports.ColID)
	if id == "" {
		return nil
	}
	return &entities.Person{ID: id, Name: row.Get(ports.ColName)}
}

// objectFromRow builds a CulturalHeritageObject from an objects-shaped row.
// When strict is true, rows whose type tag falls outside the closed kind set
// are dropped (nil); otherwise they fall back to the unclassified kind.
func objectFromRow(row ports.Row, strict bool) *entities.CulturalHeritageObject {
	id := row.Get(ports.ColID)
	if id == "" {
		return nil
	}
	kind, known := entities.ObjectKindFromTag(row.Get(ports.ColTypeName))
	if strict && !known {
		return nil
	}
	obj := &entities.CulturalHeritageObject{
		ID:         id,
		Kind:       kind,
		Title:      row.Get(ports.ColTitle),
		Date:       row.Get(ports.ColDate),
		Owner:      row.Get(ports.ColOwner),
		Place:      row.Get(ports.ColPlace),
		AuthorID:   row.Get(ports.ColAuthorID),
		AuthorName: row.Get(ports.ColAuthorName),
	}
	if obj.AuthorID != "" && obj.AuthorName != "" {
		obj.Authors = []entities.Person{{ID: obj.AuthorID, Name: obj.AuthorName}}
	}
	return obj
}

// activityFromRow builds an Activity from a unioned process row. The caller
// supplies the resolved object reference; a nil refersTo means the object
// identifier matched nothing in the metadata store.
func activityFromRow(row ports.Row, refersTo *entities.CulturalHeritageObject) *entities.Activity {
	act := &entities.Activity{
		Kind:      entities.ActivityKindFromTag(row.Get(ports.ColType)),
		RefersTo:  refersTo,
		Institute: row.Get(ports.ColInstitute),
		Person:    row.Get(ports.ColPerson),
		Tools:     entities.SplitTools(row.Get(ports.ColTool)),
		Start:     row.Get(ports.ColStartDate),
		End:       row.Get(ports.ColEndDate),
	}
	if act.Kind == entities.ActivityAcquisition {
		act.Technique = row.Get(ports.ColTechnique)
	}
	return act
}
