package sparql

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baraldiruffer/heritage/internal/infrastructure/parsers"
)

const testBaseURI = "https://example.org/heritage/"

func TestUploadHandler_BuildTriples(t *testing.T) {
	u := NewUploadHandler("http://unused", testBaseURI)

	records := []parsers.CatalogRecord{
		{
			ID: "1", Type: "Printed volume", Title: "Sidereus Nuncius",
			Date: "1610", Author: "Galilei Galileo (VIAF:100190422)",
			Owner: "Biblioteca Universitaria", Place: "Bologna",
		},
		{ID: "2", Type: "Sculpture", Title: "Not Loadable"},
	}

	triples := u.buildTriples(records)

	// The unknown type is skipped entirely.
	for _, tr := range triples {
		assert.NotContains(t, tr.subject, "/2")
	}

	resource := testBaseURI + "1"
	assert.Contains(t, triples, triple{resource, rdfType, schemaNS + "PrintedVolume", false})
	assert.Contains(t, triples, triple{resource, schemaNS + "identifier", "1", true})
	assert.Contains(t, triples, triple{resource, schemaNS + "dateCreated", "1610", true})
	assert.Contains(t, triples, triple{resource, schemaNS + "provider", "Biblioteca Universitaria", true})

	authorIRI := testBaseURI + "Galilei_Galileo"
	assert.Contains(t, triples, triple{resource, schemaNS + "creator", authorIRI, false})
	assert.Contains(t, triples, triple{authorIRI, rdfType, schemaNS + "Author", false})
	assert.Contains(t, triples, triple{authorIRI, schemaNS + "identifier", "VIAF:100190422", true})
	assert.Contains(t, triples, triple{authorIRI, rdfsLabel, "Galilei Galileo", true})
}

func TestUploadHandler_BuildTriples_MissingDateBecomesUnknown(t *testing.T) {
	u := NewUploadHandler("http://unused", testBaseURI)

	triples := u.buildTriples([]parsers.CatalogRecord{
		{ID: "3", Type: "Map", Title: "Ptolemaic Map"},
	})
	assert.Contains(t, triples, triple{testBaseURI + "3", schemaNS + "dateCreated", "Unknown", true})
}

func TestUploadHandler_AuthorTriples_MintsMissingIdentifier(t *testing.T) {
	u := NewUploadHandler("http://unused", testBaseURI)

	triples := u.authorTriples(testBaseURI+"4", "Anonymous Engraver")
	require.Len(t, triples, 4)

	var id string
	for _, tr := range triples {
		if tr.predicate == schemaNS+"identifier" {
			id = tr.object
		}
	}
	assert.True(t, strings.HasPrefix(id, "local:"), "minted id %q", id)
	assert.Greater(t, len(id), len("local:"))

	// A second anonymous author gets a different identifier.
	other := u.authorTriples(testBaseURI+"5", "Anonymous Engraver")
	var otherID string
	for _, tr := range other {
		if tr.predicate == schemaNS+"identifier" {
			otherID = tr.object
		}
	}
	assert.NotEqual(t, id, otherID)
}

func TestUploadHandler_AuthorTriples_NameNormalization(t *testing.T) {
	u := NewUploadHandler("http://unused", testBaseURI)

	triples := u.authorTriples(testBaseURI+"6", "Aldrovandi, Ulisse (ULAN:500010879)")
	require.NotEmpty(t, triples)
	assert.Equal(t, testBaseURI+"Aldrovandi_Ulisse", triples[0].object)
	assert.Contains(t, triples, triple{testBaseURI + "Aldrovandi_Ulisse", rdfsLabel, "Aldrovandi, Ulisse", true})
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `"plain"`, quoteLiteral("plain"))
	assert.Equal(t, `"a \"quoted\" word"`, quoteLiteral(`a "quoted" word`))
	assert.Equal(t, `"back\\slash"`, quoteLiteral(`back\slash`))
	assert.Equal(t, `"two\nlines"`, quoteLiteral("two\nlines"))
}

func TestSnapshotPath(t *testing.T) {
	assert.Equal(t, "data/meta.ttl", snapshotPath("data/meta.csv"))
	assert.Equal(t, "catalog.ttl", snapshotPath("catalog.csv"))
}

func TestUploadHandler_Push(t *testing.T) {
	var update string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/sparql-update", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		update = string(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "meta.csv")
	content := `Id,Type,Title,Date,Author,Owner,Place
1,Painting,Night Watch,1642,Rembrandt (VIAF:64013650),Rijksmuseum,Amsterdam
`
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	u := NewUploadHandler(srv.URL, testBaseURI)
	require.NoError(t, u.Push(context.Background(), csvPath))

	assert.True(t, strings.HasPrefix(update, "INSERT DATA {"))
	assert.Contains(t, update, schemaNS+"Painting")
	assert.Contains(t, update, `"Night Watch"`)

	// The Turtle snapshot lands next to the source file.
	snapshot, err := os.ReadFile(filepath.Join(dir, "meta.ttl"))
	require.NoError(t, err)
	assert.Contains(t, string(snapshot), `"Rijksmuseum"`)
}

func TestUploadHandler_Push_NoLoadableRecords(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "meta.csv")
	content := `Id,Type,Title
1,Sculpture,Unknown Statue
`
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	u := NewUploadHandler("http://unused", testBaseURI)
	err := u.Push(context.Background(), csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loadable records")
}

func TestUploadHandler_Push_EndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "meta.csv")
	content := `Id,Type,Title
1,Map,Ptolemaic Map
`
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	u := NewUploadHandler(srv.URL, testBaseURI)
	err := u.Push(context.Background(), csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
