// Package store defines the document-store contract the rest of the server
// is written against. Collections hold schemaless documents keyed by a
// generated id; uniqueness constraints live here, at the storage layer, so
// that a constraint violation is the authoritative conflict signal rather
// than any preceding read.
package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDocument is returned when no document matches a lookup.
	ErrNoDocument = errors.New("no document found")
	// ErrUnavailable is returned when the backing engine cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// DuplicateError reports a unique-index violation on insert.
type DuplicateError struct {
	Collection string
	Fields     []string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate document in %q on (%s)", e.Collection, strings.Join(e.Fields, ","))
}

// Document is a single stored record. The generated id is stored under "_id".
type Document map[string]any

// Filter selects documents by field value. A plain value matches with
// equality; a Matcher value is consulted for anything fancier.
type Filter map[string]any

// Matcher is a filter predicate for a single field.
type Matcher interface {
	Match(v any) bool
}

// ContainsFold matches string fields containing the given substring,
// case-insensitively.
func ContainsFold(s string) Matcher {
	return containsFold(s)
}

type containsFold string

func (c containsFold) Match(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(string(c)))
}

// Store is the abstract document store consumed by the repositories.
type Store interface {
	// FindOne returns the first document matching filter, or ErrNoDocument.
	FindOne(collection string, filter Filter) (Document, error)

	// Find returns up to limit matching documents in insertion order.
	// A limit <= 0 means no limit.
	Find(collection string, filter Filter, limit int) ([]Document, error)

	// Insert stores a new document and returns its generated id.
	// Returns a *DuplicateError when a unique index would be violated.
	Insert(collection string, doc Document) (string, error)

	// Update merges patch into the document with the given id.
	Update(collection, id string, patch Document) error

	// Collections lists the collection names currently present.
	Collections() ([]string, error)
}

// Matches reports whether doc satisfies every clause of filter.
func Matches(doc Document, filter Filter) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if m, isMatcher := want.(Matcher); isMatcher {
			if !m.Match(got) {
				return false
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}
