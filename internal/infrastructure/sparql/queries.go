package sparql

import (
	"fmt"
	"strings"
)

// schemaNS is the vocabulary namespace; type URIs are minted under it and
// stripped back to bare tags in query results.
const schemaNS = "https://schema.org/"

const prefixes = `PREFIX rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>
PREFIX rdfs: <http://www.w3.org/2000/01/rdf-schema#>
PREFIX schema: <https://schema.org/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX xsd: <http://www.w3.org/2001/XMLSchema#>
`

// escape makes a string safe for embedding in a quoted SPARQL literal.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// personByIDQuery matches a person by exact identifier, falling back to a
// substring test over owl:sameAs links when the exact match fails.
func personByIDQuery(id string) string {
	id = escape(id)
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?person ?name ?id
WHERE {
    { ?person schema:identifier "%s" . }
    UNION
    { ?person owl:sameAs ?external . FILTER (CONTAINS(STR(?external), "%s")) }

    OPTIONAL { ?person rdfs:label ?name . }
    OPTIONAL { ?person schema:identifier ?id . }
}`, id, id)
}

// objectByIDQuery matches an object by exact identifier or sameAs substring,
// binding every descriptive property it can find.
func objectByIDQuery(id string) string {
	id = escape(id)
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?object ?title ?type_name ?date ?owner ?place ?author_id ?author_name
WHERE {
    { ?object schema:identifier "%s" . }
    UNION
    { ?object owl:sameAs ?external . FILTER (CONTAINS(STR(?external), "%s")) }

    OPTIONAL { ?object rdf:type ?type . }
    OPTIONAL { ?object schema:name ?title . }
    OPTIONAL { ?object rdfs:label ?title . }
    OPTIONAL { ?object schema:dateCreated ?date . }
    OPTIONAL { ?object schema:provider ?owner . }
    OPTIONAL { ?object schema:contentLocation ?place . }
    OPTIONAL {
        ?object schema:creator ?author .
        ?author rdfs:label ?author_name .
        ?author schema:identifier ?author_id .
    }

    BIND(REPLACE(STR(COALESCE(?type, "")), "%s", "") AS ?type_name)
}`, id, id, schemaNS)
}

const allPeopleQuery = prefixes + `
SELECT DISTINCT ?id ?name
WHERE {
    ?person rdf:type schema:Author ;
            rdfs:label ?name ;
            schema:identifier ?id .
}`

// objectPattern is the shared body listing every non-Author entity with its
// optional descriptive properties.
const objectPattern = `
    ?entity rdf:type ?type .
    BIND(REPLACE(STR(?type), "` + schemaNS + `", "") AS ?type_name)
    FILTER(?type_name != "Author")

    OPTIONAL { ?entity schema:name ?title . }
    OPTIONAL { ?entity schema:identifier ?id . }
    OPTIONAL { ?entity schema:dateCreated ?date . }
    OPTIONAL { ?entity schema:provider ?owner . }
    OPTIONAL { ?entity schema:contentLocation ?place . }

    OPTIONAL {
        ?entity schema:creator ?author .
        OPTIONAL { ?author schema:identifier ?author_id . }
        OPTIONAL { ?author rdfs:label ?author_name . }
    }
`

const allObjectsQuery = prefixes + `
SELECT DISTINCT ?id ?title ?date ?owner ?place ?author_id ?author_name ?type_name
WHERE {` + objectPattern + `}`

// objectsByOwnerQuery filters the full object listing by a case-insensitive
// owner substring.
func objectsByOwnerQuery(owner string) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?id ?title ?date ?owner ?place ?author_id ?author_name ?type_name
WHERE {`+objectPattern+`
    FILTER(BOUND(?owner) && REGEX(STR(?owner), "%s", "i"))
}`, escape(owner))
}

// effectiveYearPattern derives the comparison year of a free-text date: the
// end year of a range if present, else the only year, else any digit run.
// Records without an extractable year fail the BOUND filter and drop out.
const effectiveYearPattern = `
    BIND(xsd:integer(REPLACE(STRBEFORE(STR(?date), "-"), "[^0-9]", "")) AS ?start_year)
    BIND(xsd:integer(REPLACE(STRAFTER(STR(?date), "-"), "[^0-9]", "")) AS ?end_year)
    BIND(
        COALESCE(
            ?end_year,
            ?start_year,
            xsd:integer(REPLACE(STR(?date), "[^0-9]", ""))
        ) AS ?effective_year
    )
`

func objectsCreatedAfterQuery(year int) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?id ?title ?date ?owner ?place ?author_id ?author_name ?type_name
WHERE {`+objectPattern+effectiveYearPattern+`
    FILTER(BOUND(?effective_year) && ?effective_year > %d)
}`, year)
}

func authorsOfObjectsCreatedAfterQuery(year int) string {
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT (?author_id AS ?id) (?author_name AS ?name)
WHERE {`+objectPattern+effectiveYearPattern+`
    FILTER(BOUND(?effective_year) && ?effective_year > %d)
    FILTER(BOUND(?author_id) && BOUND(?author_name))
}`, year)
}

// authorsOfObjectQuery resolves the authors reachable from the identifier,
// whether it names the work or the author.
func authorsOfObjectQuery(id string) string {
	id = escape(id)
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?id ?name ?title
WHERE {
    {
        ?work schema:identifier "%s" .
        ?work schema:name ?title .
        ?work schema:creator ?author .
    }
    UNION
    {
        ?author schema:identifier "%s" .
        ?work schema:creator ?author .
        ?work schema:name ?title .
    }
    OPTIONAL { ?author rdfs:label ?name . }
    OPTIONAL { ?author schema:name ?name . }
    OPTIONAL { ?author schema:identifier ?id . }
}`, id, id)
}

// objectsAuthoredByQuery selects the fully described objects created by the
// identified person, reached either directly or through a work sharing the
// same creator.
func objectsAuthoredByQuery(personID string) string {
	personID = escape(personID)
	return prefixes + fmt.Sprintf(`
SELECT DISTINCT ?type_name ?id ?title ?date ?owner ?place ?author_id ?author_name
WHERE {
    {
        ?author schema:identifier "%s" .
        ?object schema:creator ?author .
        ?object rdf:type ?type .
        ?object schema:name ?title .
        ?object schema:identifier ?id .
        ?object schema:dateCreated ?date .
        ?object schema:provider ?owner .
        ?object schema:contentLocation ?place .
    }
    UNION
    {
        ?entity schema:identifier "%s" .
        ?entity schema:creator ?author .
        ?object schema:creator ?author .
        ?object rdf:type ?type .
        ?object schema:name ?title .
        ?object schema:identifier ?id .
        ?object schema:dateCreated ?date .
        ?object schema:provider ?owner .
        ?object schema:contentLocation ?place .
    }
    OPTIONAL {
        ?author rdfs:label ?author_name .
        ?author schema:identifier ?author_id .
    }

    BIND(REPLACE(STR(?type), "%s", "") AS ?type_name)
}`, personID, personID, schemaNS)
}
