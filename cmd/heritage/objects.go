package main

import (
	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/services"
)

func newObjectsCmd() *cobra.Command {
	var (
		owner         string
		author        string
		createdAfter  int
		handledPerson string
		handledInst   string
	)

	cmd := &cobra.Command{
		Use:   "objects",
		Short: "List cultural heritage objects",
		Long:  "Lists cultural heritage objects from the metadata store with optional filtering.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObjects(cmd, owner, author, createdAfter, handledPerson, handledInst)
		},
	}

	cmd.Flags().StringVarP(&owner, "owner", "o", "", "Filter by owner (case-insensitive substring)")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Filter by author identifier")
	cmd.Flags().IntVar(&createdAfter, "created-after", 0, "Keep objects with an effective year greater than this")
	cmd.Flags().StringVar(&handledPerson, "handled-by-person", "", "Keep objects touched by activities of this responsible person")
	cmd.Flags().StringVar(&handledInst, "handled-by-institution", "", "Keep objects touched by activities of this responsible institute")

	return cmd
}

func runObjects(cmd *cobra.Command, owner, author string, createdAfter int, handledPerson, handledInst string) error {
	ctx := cmd.Context()

	return withMashup(func(m *services.AdvancedMashup) error {
		var objects []*entities.CulturalHeritageObject

		switch {
		case author != "" && owner != "":
			objects = m.ObjectsByAuthorAndOwner(ctx, author, owner)
		case author != "":
			objects = m.ObjectsAuthoredBy(ctx, author)
		case owner != "":
			objects = m.ObjectsByOwner(ctx, owner)
		case handledPerson != "":
			objects = m.ObjectsHandledByResponsiblePerson(ctx, handledPerson)
		case handledInst != "":
			objects = m.ObjectsHandledByResponsibleInstitution(ctx, handledInst)
		case createdAfter > 0:
			objects = m.ObjectsCreatedAfter(ctx, createdAfter)
		default:
			objects = m.AllObjects(ctx)
		}

		displayObjects(objects)
		return nil
	})
}
