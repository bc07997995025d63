package sparql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
	"github.com/baraldiruffer/heritage/internal/infrastructure/parsers"
)

const (
	rdfType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfsLabel = "http://www.w3.org/2000/01/rdf-schema#label"
)

// typeURIs maps the catalog CSV type labels to their class URIs.
var typeURIs = map[string]string{
	"Nautical chart":    schemaNS + "NauticalChart",
	"Manuscript plate":  schemaNS + "ManuscriptPlate",
	"Manuscript volume": schemaNS + "ManuscriptVolume",
	"Printed volume":    schemaNS + "PrintedVolume",
	"Printed material":  schemaNS + "PrintedMaterial",
	"Herbarium":         schemaNS + "Herbarium",
	"Specimen":          schemaNS + "Specimen",
	"Painting":          schemaNS + "Painting",
	"Model":             schemaNS + "Model",
	"Map":               schemaNS + "Map",
}

// reAuthorID extracts the parenthesized external identifier from a catalog
// author field such as "Dioscorides Pedanius (VIAF:87656622)".
var reAuthorID = regexp.MustCompile(`\((.*?)\)`)

// triple is one statement ready for serialization. object is a URI unless
// literal is set.
type triple struct {
	subject   string
	predicate string
	object    string
	literal   bool
}

// Compile-time interface check.
var _ ports.Uploader = (*UploadHandler)(nil)

// UploadHandler loads a catalog CSV into the metadata store: each row
// becomes a typed resource under the base URI, authors become linked Author
// resources. A Turtle snapshot of the generated triples is written next to
// the source file before the endpoint is updated.
type UploadHandler struct {
	client  *Client
	baseURI string
	log     *slog.Logger
}

// NewUploadHandler creates an upload handler minting resource URIs under
// baseURI.
func NewUploadHandler(endpoint, baseURI string) *UploadHandler {
	return &UploadHandler{
		client:  NewClient(endpoint),
		baseURI: baseURI,
		log:     slog.Default(),
	}
}

// Push reads the catalog CSV at path and loads it into the endpoint.
func (u *UploadHandler) Push(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	records, err := (&parsers.CatalogCSV{}).Parse(f)
	if err != nil {
		return fmt.Errorf("parsing catalog file: %w", err)
	}

	triples := u.buildTriples(records)
	if len(triples) == 0 {
		return fmt.Errorf("no loadable records in %s", path)
	}

	if err := writeTurtle(snapshotPath(path), triples); err != nil {
		return fmt.Errorf("writing turtle snapshot: %w", err)
	}

	if err := u.client.Update(ctx, insertData(triples)); err != nil {
		return fmt.Errorf("updating endpoint: %w", err)
	}
	return nil
}

// buildTriples maps catalog records onto the fixed vocabulary. Records with
// a type label outside the known set are skipped.
func (u *UploadHandler) buildTriples(records []parsers.CatalogRecord) []triple {
	var triples []triple
	for _, rec := range records {
		classURI, ok := typeURIs[rec.Type]
		if !ok {
			u.log.Warn("skipping record with unknown type", "id", rec.ID, "type", rec.Type)
			continue
		}

		resource := u.baseURI + rec.ID
		date := rec.Date
		if date == "" {
			date = "Unknown"
		}

		triples = append(triples,
			triple{resource, rdfType, classURI, false},
			triple{resource, schemaNS + "identifier", rec.ID, true},
			triple{resource, schemaNS + "name", rec.Title, true},
			triple{resource, schemaNS + "dateCreated", date, true},
			triple{resource, schemaNS + "provider", rec.Owner, true},
			triple{resource, schemaNS + "contentLocation", rec.Place, true},
		)

		if rec.Author != "" {
			triples = append(triples, u.authorTriples(resource, rec.Author)...)
		}
	}
	return triples
}

// authorTriples links a resource to its author. The author field carries
// "Name Surname (SCHEME:id)"; an author without the parenthesized identifier
// gets a minted one so distinct unidentified authors stay distinct.
func (u *UploadHandler) authorTriples(resource, author string) []triple {
	name := strings.TrimSpace(strings.SplitN(author, " (", 2)[0])
	if name == "" {
		return nil
	}

	authorID := ""
	if m := reAuthorID.FindStringSubmatch(author); m != nil {
		authorID = m[1]
	}
	if authorID == "" {
		authorID = "local:" + uuid.NewString()
	}

	authorIRI := u.baseURI + strings.NewReplacer(" ", "_", ",", "").Replace(name)
	return []triple{
		{resource, schemaNS + "creator", authorIRI, false},
		{authorIRI, schemaNS + "identifier", authorID, true},
		{authorIRI, rdfType, schemaNS + "Author", false},
		{authorIRI, rdfsLabel, name, true},
	}
}

// snapshotPath is the Turtle file written beside the source CSV.
func snapshotPath(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".ttl"
}

// writeTurtle serializes the triples as N-Triples (a valid Turtle subset).
func writeTurtle(path string, triples []triple) error {
	var b strings.Builder
	for _, t := range triples {
		b.WriteString(formatTriple(t))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func formatTriple(t triple) string {
	if t.literal {
		return fmt.Sprintf("<%s> <%s> %s .", t.subject, t.predicate, quoteLiteral(t.object))
	}
	return fmt.Sprintf("<%s> <%s> <%s> .", t.subject, t.predicate, t.object)
}

func quoteLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return `"` + s + `"`
}

// insertData wraps the triples in a single INSERT DATA update.
func insertData(triples []triple) string {
	var b strings.Builder
	b.WriteString("INSERT DATA {\n")
	for _, t := range triples {
		b.WriteString("    ")
		b.WriteString(formatTriple(t))
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.String()
}
