package main

import (
	"github.com/spf13/cobra"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
	"github.com/baraldiruffer/heritage/internal/domain/services"
)

func newActivitiesCmd() *cobra.Command {
	var (
		institution  string
		person       string
		tool         string
		startedAfter string
		endedBefore  string
		technique    string
		authoredBy   string
	)

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List provenance activities",
		Long:  "Lists digitisation activities from the provenance store with optional filtering.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivities(cmd, institution, person, tool, startedAfter, endedBefore, technique, authoredBy)
		},
	}

	cmd.Flags().StringVarP(&institution, "institution", "i", "", "Filter by responsible institute (case-insensitive substring)")
	cmd.Flags().StringVarP(&person, "person", "p", "", "Filter by responsible person (case-insensitive substring)")
	cmd.Flags().StringVarP(&tool, "tool", "t", "", "Filter by tool (case-insensitive substring)")
	cmd.Flags().StringVar(&startedAfter, "started-after", "", "Keep activities with a start date on/after this date")
	cmd.Flags().StringVar(&endedBefore, "ended-before", "", "Keep activities with an end date on/before this date")
	cmd.Flags().StringVar(&technique, "technique", "", "Keep acquisitions using this technique (case-insensitive substring)")
	cmd.Flags().StringVar(&authoredBy, "authored-by", "", "Keep activities on objects authored by this person identifier")

	return cmd
}

func runActivities(cmd *cobra.Command, institution, person, tool, startedAfter, endedBefore, technique, authoredBy string) error {
	ctx := cmd.Context()

	return withMashup(func(m *services.AdvancedMashup) error {
		var activities []*entities.Activity

		switch {
		case authoredBy != "":
			activities = m.ActivitiesOnObjectsAuthoredBy(ctx, authoredBy)
		case technique != "":
			activities = m.AcquisitionsByTechnique(ctx, technique)
		case institution != "":
			activities = m.ActivitiesByResponsibleInstitution(ctx, institution)
		case person != "":
			activities = m.ActivitiesByResponsiblePerson(ctx, person)
		case tool != "":
			activities = m.ActivitiesUsingTool(ctx, tool)
		case startedAfter != "":
			activities = m.ActivitiesStartedAfter(ctx, startedAfter)
		case endedBefore != "":
			activities = m.ActivitiesEndedBefore(ctx, endedBefore)
		default:
			activities = m.AllActivities(ctx)
		}

		displayActivities(activities)
		return nil
	})
}
