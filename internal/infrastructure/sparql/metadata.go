package sparql

import (
	"context"
	"log/slog"
	"strings"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// Compile-time interface check.
var _ ports.MetadataQuery = (*Handler)(nil)

// Handler implements ports.MetadataQuery against a SPARQL endpoint. Backend
// failures are logged and degrade to an empty table; callers cannot tell a
// failed round trip from an empty result.
type Handler struct {
	client *Client
	log    *slog.Logger
}

// NewHandler creates a metadata query handler for the given endpoint.
func NewHandler(endpoint string) *Handler {
	return &Handler{
		client: NewClient(endpoint),
		log:    slog.Default(),
	}
}

// Source returns the endpoint URL.
func (h *Handler) Source() string { return h.client.Endpoint() }

// ByID looks up a single entity. An identifier containing a scheme separator
// is answered with the person-shaped query, anything else with the
// object-shaped one; a misclassified identifier yields an empty result, not
// a wrong one.
func (h *Handler) ByID(ctx context.Context, id string) ports.Table {
	if strings.Contains(id, ":") {
		return h.run(ctx, personByIDQuery(id))
	}
	return h.run(ctx, objectByIDQuery(id))
}

// AllPeople lists every author.
func (h *Handler) AllPeople(ctx context.Context) ports.Table {
	return h.run(ctx, allPeopleQuery)
}

// AllObjects lists every cultural heritage object.
func (h *Handler) AllObjects(ctx context.Context) ports.Table {
	return h.run(ctx, allObjectsQuery)
}

// AuthorsOfObject lists the authors reachable from the given identifier.
func (h *Handler) AuthorsOfObject(ctx context.Context, objectID string) ports.Table {
	return h.run(ctx, authorsOfObjectQuery(objectID))
}

// ObjectsAuthoredBy lists the objects created by the identified person.
func (h *Handler) ObjectsAuthoredBy(ctx context.Context, personID string) ports.Table {
	return h.run(ctx, objectsAuthoredByQuery(personID))
}

// ObjectsByOwner lists objects whose owner matches case-insensitively as a
// substring.
func (h *Handler) ObjectsByOwner(ctx context.Context, owner string) ports.Table {
	return h.run(ctx, objectsByOwnerQuery(owner))
}

// ObjectsCreatedAfter lists objects whose effective year is greater than
// year.
func (h *Handler) ObjectsCreatedAfter(ctx context.Context, year int) ports.Table {
	return h.run(ctx, objectsCreatedAfterQuery(year))
}

// AuthorsOfObjectsCreatedAfter lists the authors of objects whose effective
// year is greater than year.
func (h *Handler) AuthorsOfObjectsCreatedAfter(ctx context.Context, year int) ports.Table {
	return h.run(ctx, authorsOfObjectsCreatedAfterQuery(year))
}

func (h *Handler) run(ctx context.Context, query string) ports.Table {
	table, err := h.client.Select(ctx, query)
	if err != nil {
		h.log.Warn("metadata query degraded to empty result",
			"endpoint", h.client.Endpoint(), "err", err)
		return nil
	}
	return table
}
