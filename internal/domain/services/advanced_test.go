package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/mocks"
	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

func newTestAdvancedMashup() *AdvancedMashup {
	metadata := testMetadata()
	metadata.Authored = map[string]ports.Table{
		"VIAF:64013650": {
			{ports.ColID: "1", ports.ColTitle: "Night Watch", ports.ColTypeName: "Painting"},
		},
	}

	m := NewAdvancedMashup()
	m.AddMetadataHandler(metadata)
	m.AddProcessHandler(testProcess())
	return m
}

func TestAdvancedMashup_ActivitiesOnObjectsAuthoredBy(t *testing.T) {
	m := newTestAdvancedMashup()

	activities := m.ActivitiesOnObjectsAuthoredBy(context.Background(), "VIAF:64013650")
	require.Len(t, activities, 2)

	for _, act := range activities {
		require.NotNil(t, act.RefersTo)
		assert.Equal(t, "1", act.RefersTo.ID)
	}
	assert.Equal(t, entities.ActivityAcquisition, activities[0].Kind)
	assert.Equal(t, entities.ActivityProcessing, activities[1].Kind)
}

func TestAdvancedMashup_ActivitiesOnObjectsAuthoredBy_UnknownAuthor(t *testing.T) {
	m := newTestAdvancedMashup()
	assert.Empty(t, m.ActivitiesOnObjectsAuthoredBy(context.Background(), "VIAF:0"))
}

func TestAdvancedMashup_ObjectsHandledByResponsiblePerson(t *testing.T) {
	m := newTestAdvancedMashup()

	objects := m.ObjectsHandledByResponsiblePerson(context.Background(), "alice rossi")
	require.Len(t, objects, 2)
	assert.Equal(t, "1", objects[0].ID)
	assert.Equal(t, "2", objects[1].ID)
}

func TestAdvancedMashup_ObjectsHandledByResponsibleInstitution(t *testing.T) {
	m := newTestAdvancedMashup()

	objects := m.ObjectsHandledByResponsibleInstitution(context.Background(), "palazzo poggi")
	require.Len(t, objects, 1)
	assert.Equal(t, "2", objects[0].ID)
	assert.Equal(t, entities.KindHerbarium, objects[0].Kind)
}

func TestAdvancedMashup_ObjectsHandledBy_KeepsUnrecognizedKind(t *testing.T) {
	m := NewAdvancedMashup()
	m.AddMetadataHandler(testMetadata())
	m.AddProcessHandler(&mocks.ProcessQuery{
		Activities: ports.Table{
			{ports.ColObjectID: "9", ports.ColType: "Processing", ports.ColPerson: "Carla Verdi"},
		},
	})

	// The reconstruction here is lenient: the Sculpture row that AllObjects
	// drops comes back unclassified.
	objects := m.ObjectsHandledByResponsiblePerson(context.Background(), "verdi")
	require.Len(t, objects, 1)
	assert.Equal(t, "9", objects[0].ID)
	assert.Equal(t, entities.KindUnclassified, objects[0].Kind)
}

func TestAdvancedMashup_AuthorsOfObjectsAcquiredInTimeFrame(t *testing.T) {
	m := newTestAdvancedMashup()

	people := m.AuthorsOfObjectsAcquiredInTimeFrame(context.Background(), "2023-03-01", "2023-03-10")
	require.Len(t, people, 1)
	assert.Equal(t, "VIAF:64013650", people[0].ID)
	assert.Equal(t, "Rembrandt", people[0].Name)

	// The herbarium's acquisition falls in frame too, but the object carries
	// no author, so nothing more is reported.
	people = m.AuthorsOfObjectsAcquiredInTimeFrame(context.Background(), "2023-01-01", "2023-12-31")
	assert.Len(t, people, 1)
}

func TestAdvancedMashup_AuthorsOfObjectsAcquiredInTimeFrame_IndependentBounds(t *testing.T) {
	m := NewAdvancedMashup()
	m.AddMetadataHandler(testMetadata())
	m.AddProcessHandler(&mocks.ProcessQuery{
		Activities: ports.Table{
			// Two acquisitions of the same object: one satisfies the start
			// bound, the other the end bound. The bounds are checked as
			// independent sets, so the object still qualifies.
			{
				ports.ColObjectID: "1", ports.ColType: "Acquisition",
				ports.ColStartDate: "2023-06-01", ports.ColEndDate: "2023-06-30",
			},
			{
				ports.ColObjectID: "1", ports.ColType: "Acquisition",
				ports.ColStartDate: "2023-01-01", ports.ColEndDate: "2023-01-31",
			},
		},
	})

	people := m.AuthorsOfObjectsAcquiredInTimeFrame(context.Background(), "2023-06-01", "2023-01-31")
	require.Len(t, people, 1)
	assert.Equal(t, "VIAF:64013650", people[0].ID)
}

func TestAdvancedMashup_AuthorsOfObjectsAcquiredInTimeFrame_IgnoresOtherKinds(t *testing.T) {
	m := NewAdvancedMashup()
	m.AddMetadataHandler(testMetadata())
	m.AddProcessHandler(&mocks.ProcessQuery{
		Activities: ports.Table{
			{
				ports.ColObjectID: "1", ports.ColType: "Processing",
				ports.ColStartDate: "2023-03-01", ports.ColEndDate: "2023-03-10",
			},
		},
	})

	assert.Empty(t, m.AuthorsOfObjectsAcquiredInTimeFrame(context.Background(), "2023-03-01", "2023-03-10"))
}

func TestAdvancedMashup_ObjectsByAuthorAndOwner(t *testing.T) {
	m := newTestAdvancedMashup()

	objects := m.ObjectsByAuthorAndOwner(context.Background(), "VIAF:64013650", "rijksmuseum")
	require.Len(t, objects, 1)
	assert.Equal(t, "1", objects[0].ID)

	// A matching owner alone is not enough.
	assert.Empty(t, m.ObjectsByAuthorAndOwner(context.Background(), "VIAF:64013650", "palazzo"))
}

func TestAdvancedMashup_ObjectsByAuthorAndOwner_MatchesObjectID(t *testing.T) {
	m := newTestAdvancedMashup()

	// The person identifier may also hit the object identifier; the loose OR
	// keeps such rows.
	objects := m.ObjectsByAuthorAndOwner(context.Background(), "9", "rijksmuseum")
	require.Len(t, objects, 1)
	assert.Equal(t, "9", objects[0].ID)
	assert.Equal(t, entities.KindUnclassified, objects[0].Kind)
}
