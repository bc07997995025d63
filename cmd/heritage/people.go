package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/services"
)

func newPeopleCmd() *cobra.Command {
	var (
		ofObject     string
		createdAfter int
		acquiredFrom string
		acquiredTo   string
	)

	cmd := &cobra.Command{
		Use:   "people",
		Short: "List people",
		Long:  "Lists authors known to the metadata store with optional filtering.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeople(cmd, ofObject, createdAfter, acquiredFrom, acquiredTo)
		},
	}

	cmd.Flags().StringVar(&ofObject, "of-object", "", "Keep authors of the identified object")
	cmd.Flags().IntVar(&createdAfter, "created-after", 0, "Keep authors of objects with an effective year greater than this")
	cmd.Flags().StringVar(&acquiredFrom, "acquired-from", "", "Keep authors of objects with an acquisition started on/after this date")
	cmd.Flags().StringVar(&acquiredTo, "acquired-to", "", "Keep authors of objects with an acquisition ended on/before this date")

	return cmd
}

func runPeople(cmd *cobra.Command, ofObject string, createdAfter int, acquiredFrom, acquiredTo string) error {
	ctx := cmd.Context()

	if (acquiredFrom == "") != (acquiredTo == "") {
		return errors.New("--acquired-from and --acquired-to must be given together")
	}

	return withMashup(func(m *services.AdvancedMashup) error {
		var people []*entities.Person

		switch {
		case ofObject != "":
			people = m.AuthorsOfObject(ctx, ofObject)
		case acquiredFrom != "":
			people = m.AuthorsOfObjectsAcquiredInTimeFrame(ctx, acquiredFrom, acquiredTo)
		case createdAfter > 0:
			people = m.AuthorsOfObjectsCreatedAfter(ctx, createdAfter)
		default:
			people = m.AllPeople(ctx)
		}

		displayPeople(people)
		return nil
	})
}
