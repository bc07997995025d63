package sparql

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// resultsJSON wraps bindings in the SPARQL 1.1 JSON results envelope.
func resultsJSON(bindings string) string {
	return `{"head": {"vars": []}, "results": {"bindings": [` + bindings + `]}}`
}

func newTestEndpoint(t *testing.T, handler http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHandler(srv.URL)
}

func TestHandler_AllObjects(t *testing.T) {
	h := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.Query().Get("query"), "SELECT")

		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(resultsJSON(`
			{"id": {"type": "literal", "value": "1"},
			 "title": {"type": "literal", "value": "Sidereus Nuncius"},
			 "type_name": {"type": "literal", "value": "PrintedVolume"},
			 "owner": {"type": "literal", "value": "Biblioteca Universitaria"}},
			{"id": {"type": "literal", "value": "2"},
			 "title": {"type": "literal", "value": "Alpine Herbarium"},
			 "type_name": {"type": "literal", "value": "Herbarium"}}`)))
	})

	table := h.AllObjects(context.Background())
	require.Len(t, table, 2)

	assert.Equal(t, "1", table[0].Get(ports.ColID))
	assert.Equal(t, "Sidereus Nuncius", table[0].Get(ports.ColTitle))
	assert.Equal(t, "PrintedVolume", table[0].Get(ports.ColTypeName))

	// Unbound variables stay absent rather than empty.
	assert.False(t, table[1].Has(ports.ColOwner))
}

func TestHandler_ByID_QueryShapeFollowsScheme(t *testing.T) {
	var lastQuery string
	h := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query().Get("query")
		w.Write([]byte(resultsJSON("")))
	})

	ctx := context.Background()

	h.ByID(ctx, "VIAF:100190422")
	assert.Contains(t, lastQuery, "?person")
	assert.Contains(t, lastQuery, `"VIAF:100190422"`)

	h.ByID(ctx, "12")
	assert.Contains(t, lastQuery, "?object")
	assert.NotContains(t, lastQuery, "?person")
}

func TestHandler_DegradesToEmptyOnServerError(t *testing.T) {
	h := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	ctx := context.Background()
	assert.Nil(t, h.AllObjects(ctx))
	assert.Nil(t, h.AllPeople(ctx))
	assert.Nil(t, h.ByID(ctx, "1"))
	assert.Nil(t, h.ObjectsByOwner(ctx, "museo"))
}

func TestHandler_DegradesToEmptyOnUnreachableEndpoint(t *testing.T) {
	h := NewHandler("http://127.0.0.1:1/sparql")
	assert.Nil(t, h.AllObjects(context.Background()))
}

func TestHandler_DegradesToEmptyOnMalformedBody(t *testing.T) {
	h := newTestEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})
	assert.Nil(t, h.AllPeople(context.Background()))
}

func TestHandler_Source(t *testing.T) {
	h := NewHandler("http://example.org/sparql")
	assert.Equal(t, "http://example.org/sparql", h.Source())
}

func TestQueries_EscapeLiterals(t *testing.T) {
	q := objectsByOwnerQuery(`Museo "Civico"`)
	assert.Contains(t, q, `\"Civico\"`)

	q = personByIDQuery(`VIAF:1\2`)
	assert.Contains(t, q, `VIAF:1\\2`)
	assert.False(t, strings.Contains(q, `"VIAF:1\2"`))
}

func TestQueries_CreatedAfterBindsYear(t *testing.T) {
	q := objectsCreatedAfterQuery(1850)
	assert.Contains(t, q, "?effective_year > 1850")

	q = authorsOfObjectsCreatedAfterQuery(1610)
	assert.Contains(t, q, "?effective_year > 1610")
	assert.Contains(t, q, "(?author_id AS ?id)")
}
