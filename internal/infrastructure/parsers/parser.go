// Package parsers provides parsers for the two bulk-load source formats: the
// tabular catalog CSV feeding the metadata store and the nested process
// record JSON feeding the provenance store.
package parsers

// CatalogRecord is one catalog CSV row before any vocabulary mapping. Author
// keeps the raw "Name Surname (SCHEME:id)" form; splitting happens at upload
// time.
type CatalogRecord struct {
	ID     string
	Type   string
	Title  string
	Date   string
	Author string
	Owner  string
	Place  string
}

// ActivityRecord is one activity block inside a process record. Technique is
// only populated on acquisition blocks.
type ActivityRecord struct {
	ResponsibleInstitute string   `json:"responsible institute"`
	ResponsiblePerson    string   `json:"responsible person"`
	Technique            string   `json:"technique,omitempty"`
	Tool                 []string `json:"tool"`
	StartDate            string   `json:"start date"`
	EndDate              string   `json:"end date"`
}

// ProcessRecord is one nested per-object process record: the five activity
// blocks keyed by the object they describe.
type ProcessRecord struct {
	ObjectID    string         `json:"object id"`
	Acquisition ActivityRecord `json:"acquisition"`
	Processing  ActivityRecord `json:"processing"`
	Modelling   ActivityRecord `json:"modelling"`
	Optimising  ActivityRecord `json:"optimising"`
	Exporting   ActivityRecord `json:"exporting"`
}
