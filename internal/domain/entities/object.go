package entities

// ObjectKind classifies a cultural heritage object. The ten kinds are
// behaviorally identical; the kind is a classification tag carried from the
// catalog, not a behavioral variant.
type ObjectKind string

// Recognized object kinds. The zero value marks an object whose catalog type
// is outside the closed set.
const (
	KindUnclassified     ObjectKind = ""
	KindNauticalChart    ObjectKind = "NauticalChart"
	KindManuscriptPlate  ObjectKind = "ManuscriptPlate"
	KindManuscriptVolume ObjectKind = "ManuscriptVolume"
	KindPrintedVolume    ObjectKind = "PrintedVolume"
	KindPrintedMaterial  ObjectKind = "PrintedMaterial"
	KindHerbarium        ObjectKind = "Herbarium"
	KindSpecimen         ObjectKind = "Specimen"
	KindPainting         ObjectKind = "Painting"
	KindModel            ObjectKind = "Model"
	KindMap              ObjectKind = "Map"
)

var objectKinds = map[string]ObjectKind{
	"NauticalChart":    KindNauticalChart,
	"ManuscriptPlate":  KindManuscriptPlate,
	"ManuscriptVolume": KindManuscriptVolume,
	"PrintedVolume":    KindPrintedVolume,
	"PrintedMaterial":  KindPrintedMaterial,
	"Herbarium":        KindHerbarium,
	"Specimen":         KindSpecimen,
	"Painting":         KindPainting,
	"Model":            KindModel,
	"Map":              KindMap,
}

// ObjectKindFromTag maps a bare type tag (namespace already stripped) to its
// kind. ok is false for tags outside the closed set.
func ObjectKindFromTag(tag string) (ObjectKind, bool) {
	kind, ok := objectKinds[tag]
	return kind, ok
}

// CulturalHeritageObject is a catalog record reconstructed from the metadata
// store. Date is free text: a single year, a range "YYYY-YYYY", "Unknown" or
// empty. AuthorID/AuthorName are flattened convenience fields used when only
// one author is known; Authors keeps discovery order and is not deduplicated
// within one object.
type CulturalHeritageObject struct {
	ID         string     `json:"id"`
	Kind       ObjectKind `json:"kind,omitempty"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Owner      string     `json:"owner,omitempty"`
	Place      string     `json:"place,omitempty"`
	Authors    []Person   `json:"authors,omitempty"`
	AuthorID   string     `json:"author_id,omitempty"`
	AuthorName string     `json:"author_name,omitempty"`
}

// Identifier returns the object identifier.
func (o *CulturalHeritageObject) Identifier() string { return o.ID }
