package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/services"
)

func newEntityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entity <id>",
		Short: "Resolve an identifier to a person or a cultural heritage object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMashup(func(m *services.AdvancedMashup) error {
				entity := m.EntityByID(cmd.Context(), args[0])
				if entity == nil {
					fmt.Println("No entity found.")
					return nil
				}

				switch e := entity.(type) {
				case *entities.Person:
					displayPerson(e)
				case *entities.CulturalHeritageObject:
					displayObject(e)
				default:
					fmt.Printf("ID: %s\n", entity.Identifier())
				}
				return nil
			})
		},
	}
}
