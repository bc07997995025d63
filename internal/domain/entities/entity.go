// Package entities contains core domain data structures.
package entities

// Entity is implemented by every domain value addressable by an identifier.
// Identifiers are opaque strings: either a scheme-prefixed external
// identifier such as "VIAF:100190422" or a minted URI-like string.
type Entity interface {
	Identifier() string
}

// Person represents an author or other named agent. Two Person values with
// the same ID denote the same real-world person; Name may be empty when the
// source could not resolve it.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Identifier returns the person identifier.
func (p *Person) Identifier() string { return p.ID }
