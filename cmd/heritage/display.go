package main

import (
	"fmt"

	"github.com/baraldiruffer/heritage/internal/domain/entities"
)

func displayPerson(p *entities.Person) {
	fmt.Printf("ID: %s\n", p.ID)
	fmt.Printf("  Name: %s\n", p.Name)
	fmt.Println()
}

func displayPeople(people []*entities.Person) {
	if len(people) == 0 {
		fmt.Println("No people found.")
		return
	}
	fmt.Printf("Showing %d people:\n\n", len(people))
	for _, p := range people {
		displayPerson(p)
	}
}

func displayObject(obj *entities.CulturalHeritageObject) {
	fmt.Printf("ID: %s\n", obj.ID)
	kind := string(obj.Kind)
	if kind == "" {
		kind = "Unclassified"
	}
	fmt.Printf("  [%s] %s\n", kind, obj.Title)
	if obj.Date != "" {
		fmt.Printf("  Date: %s\n", obj.Date)
	}
	if obj.Owner != "" {
		fmt.Printf("  Owner: %s\n", obj.Owner)
	}
	if obj.Place != "" {
		fmt.Printf("  Place: %s\n", obj.Place)
	}
	for _, a := range obj.Authors {
		fmt.Printf("  Author: %s (%s)\n", a.Name, a.ID)
	}
	if len(obj.Authors) == 0 && obj.AuthorName != "" {
		fmt.Printf("  Author: %s (%s)\n", obj.AuthorName, obj.AuthorID)
	}
	fmt.Println()
}

func displayObjects(objects []*entities.CulturalHeritageObject) {
	if len(objects) == 0 {
		fmt.Println("No objects found.")
		return
	}
	fmt.Printf("Showing %d objects:\n\n", len(objects))
	for _, obj := range objects {
		displayObject(obj)
	}
}

func displayActivity(act *entities.Activity) {
	kind := string(act.Kind)
	if kind == "" {
		kind = "Activity"
	}
	fmt.Printf("[%s] institute: %s\n", kind, act.Institute)
	if act.RefersTo != nil {
		fmt.Printf("  Object: %s %s\n", act.RefersTo.ID, act.RefersTo.Title)
	}
	if act.Person != "" {
		fmt.Printf("  Person: %s\n", act.Person)
	}
	if act.Technique != "" {
		fmt.Printf("  Technique: %s\n", act.Technique)
	}
	if len(act.Tools) > 0 {
		fmt.Printf("  Tools: %v\n", act.Tools)
	}
	if act.Start != "" {
		fmt.Printf("  Start: %s\n", act.Start)
	}
	if act.End != "" {
		fmt.Printf("  End: %s\n", act.End)
	}
	fmt.Println()
}

func displayActivities(activities []*entities.Activity) {
	if len(activities) == 0 {
		fmt.Println("No activities found.")
		return
	}
	fmt.Printf("Showing %d activities:\n\n", len(activities))
	for _, act := range activities {
		displayActivity(act)
	}
}
