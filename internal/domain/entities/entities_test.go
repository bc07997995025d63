package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKindFromTag(t *testing.T) {
	kind, ok := ObjectKindFromTag("NauticalChart")
	assert.True(t, ok)
	assert.Equal(t, KindNauticalChart, kind)

	kind, ok = ObjectKindFromTag("Sculpture")
	assert.False(t, ok)
	assert.Equal(t, KindUnclassified, kind)

	// Tags are case-sensitive bare class names, not display labels.
	_, ok = ObjectKindFromTag("nautical chart")
	assert.False(t, ok)
}

func TestActivityKindFromTag(t *testing.T) {
	assert.Equal(t, ActivityAcquisition, ActivityKindFromTag("Acquisition"))
	assert.Equal(t, ActivityExporting, ActivityKindFromTag("Exporting"))
	assert.Equal(t, ActivityGeneric, ActivityKindFromTag("Restoration"))
	assert.Equal(t, ActivityGeneric, ActivityKindFromTag(""))
}

func TestSplitTools(t *testing.T) {
	assert.Nil(t, SplitTools(""))
	assert.Nil(t, SplitTools("   "))
	assert.Equal(t, []string{"Laser scanner"}, SplitTools("Laser scanner"))
	assert.Equal(t, []string{"Laser scanner", "Tripod"}, SplitTools("Laser scanner, Tripod"))
	assert.Equal(t, []string{"a", "b"}, SplitTools(" a ,, b "))
}

func TestPersonIdentifier(t *testing.T) {
	p := &Person{ID: "VIAF:100190422", Name: "Galilei, Galileo"}
	assert.Equal(t, "VIAF:100190422", p.Identifier())
}

func TestCulturalHeritageObjectIdentifier(t *testing.T) {
	obj := &CulturalHeritageObject{ID: "33", Kind: KindPrintedVolume, Title: "Sidereus Nuncius"}
	assert.Equal(t, "33", obj.Identifier())
}
