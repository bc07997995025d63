package entities

import "strings"

// ActivityKind classifies a provenance activity. The zero value is the
// undifferentiated base activity, used as fallback when a row carries a tag
// outside the closed set.
type ActivityKind string

// Recognized activity kinds.
const (
	ActivityGeneric     ActivityKind = ""
	ActivityAcquisition ActivityKind = "Acquisition"
	ActivityProcessing  ActivityKind = "Processing"
	ActivityModelling   ActivityKind = "Modelling"
	ActivityOptimising  ActivityKind = "Optimising"
	ActivityExporting   ActivityKind = "Exporting"
)

var activityKinds = map[string]ActivityKind{
	"Acquisition": ActivityAcquisition,
	"Processing":  ActivityProcessing,
	"Modelling":   ActivityModelling,
	"Optimising":  ActivityOptimising,
	"Exporting":   ActivityExporting,
}

// ActivityKindFromTag maps a row type tag to its kind, falling back to
// ActivityGeneric for unrecognized tags.
func ActivityKindFromTag(tag string) ActivityKind {
	if kind, ok := activityKinds[tag]; ok {
		return kind
	}
	return ActivityGeneric
}

// Activity is a provenance record reconstructed from the process store.
// RefersTo is a reference to the object the activity describes; it is nil
// when the object identifier resolved to no metadata entity. Activities are
// rebuilt fresh on every query and never persisted by this layer.
type Activity struct {
	Kind      ActivityKind            `json:"kind,omitempty"`
	RefersTo  *CulturalHeritageObject `json:"refers_to,omitempty"`
	Institute string                  `json:"responsible_institute"`
	Person    string                  `json:"responsible_person,omitempty"`
	Technique string                  `json:"technique,omitempty"` // Acquisition only
	Tools     []string                `json:"tools,omitempty"`
	Start     string                  `json:"start_date,omitempty"`
	End       string                  `json:"end_date,omitempty"`
}

// SplitTools normalizes the comma-joined storage form of the tool column
// into a list. A single tool string becomes a one-element list; an empty
// column becomes nil.
func SplitTools(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tools = append(tools, p)
		}
	}
	return tools
}
