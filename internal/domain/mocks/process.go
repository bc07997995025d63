package mocks

import (
	"context"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// ProcessQuery is a mock implementation of ports.ProcessQuery backed by one
// canned activity table in the unioned shape.
type ProcessQuery struct {
	Path       string
	Activities ports.Table
}

// Source returns the mock database path.
func (m *ProcessQuery) Source() string { return m.Path }

// AllActivities returns the canned activity table.
func (m *ProcessQuery) AllActivities(_ context.Context) ports.Table { return m.Activities }

// ActivitiesByInstitution filters by case-insensitive substring on the
// responsible institute.
func (m *ProcessQuery) ActivitiesByInstitution(_ context.Context, institute string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		return containsFold(row.Get(ports.ColInstitute), institute)
	})
}

// ActivitiesByPerson filters by case-insensitive substring on the
// responsible person.
func (m *ProcessQuery) ActivitiesByPerson(_ context.Context, person string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		return containsFold(row.Get(ports.ColPerson), person)
	})
}

// ActivitiesUsingTool filters by case-insensitive substring on the
// comma-joined tool column.
func (m *ProcessQuery) ActivitiesUsingTool(_ context.Context, tool string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		return containsFold(row.Get(ports.ColTool), tool)
	})
}

// ActivitiesStartedAfter keeps rows with a non-empty start_date >= date.
func (m *ProcessQuery) ActivitiesStartedAfter(_ context.Context, date string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		start := row.Get(ports.ColStartDate)
		return start != "" && start >= date
	})
}

// ActivitiesEndedBefore keeps rows with a non-empty end_date <= date.
func (m *ProcessQuery) ActivitiesEndedBefore(_ context.Context, date string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		end := row.Get(ports.ColEndDate)
		return end != "" && end <= date
	})
}

// AcquisitionsByTechnique filters Acquisition rows by case-insensitive
// substring on the technique.
func (m *ProcessQuery) AcquisitionsByTechnique(_ context.Context, technique string) ports.Table {
	return m.filter(func(row ports.Row) bool {
		return row.Get(ports.ColType) == "Acquisition" &&
			containsFold(row.Get(ports.ColTechnique), technique)
	})
}

func (m *ProcessQuery) filter(keep func(ports.Row) bool) ports.Table {
	var out ports.Table
	for _, row := range m.Activities {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}
