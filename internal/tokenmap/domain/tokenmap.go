// Package domain defines the token map: the reversible mapping between opaque
// placeholder tokens and the original sensitive values of one document. The
// map is the sole capability that makes restoration possible; it is never
// deleted by this application.
package domain

import (
	"time"
)

// TokenMap records, for a single source document, every placeholder token and
// the original value it replaced. Tokens are category-qualified and
// sequence-numbered by the detection service (e.g. "[PERSON_1]"); the store
// treats them as opaque keys.
type TokenMap struct {
	// File is the source document identifier (its base name).
	File string `json:"file"`
	// Created is when the map was first built.
	Created time.Time `json:"created"`
	// Tokens maps placeholder token to original value.
	Tokens map[string]string `json:"tokens"`
}

// Conflict records a token that two map fragments assign different values.
// The merge applies last-writer-wins, but deliberately: every conflict is
// returned so callers can warn the operator instead of hiding the overwrite.
type Conflict struct {
	Token    string
	Existing string
	Incoming string
}

// New creates an empty token map for the given document.
func New(file string, now time.Time) *TokenMap {
	return &TokenMap{
		File:    file,
		Created: now.UTC(),
		Tokens:  map[string]string{},
	}
}

// Merge folds a detection fragment into the map. The merge is monotonic: no
// existing entry is ever removed, and tokens absent from the fragment are
// untouched. A token present on both sides with the same value is a no-op; a
// token present with a different value is recorded as a conflict and the
// incoming value wins.
func (m *TokenMap) Merge(fragment map[string]string) []Conflict {
	if m.Tokens == nil {
		m.Tokens = map[string]string{}
	}

	var conflicts []Conflict
	for token, value := range fragment {
		existing, ok := m.Tokens[token]
		if ok && existing != value {
			conflicts = append(conflicts, Conflict{
				Token:    token,
				Existing: existing,
				Incoming: value,
			})
		}
		m.Tokens[token] = value
	}
	return conflicts
}

// Count returns the number of tokens in the map.
func (m *TokenMap) Count() int {
	return len(m.Tokens)
}

// IsEmpty reports whether the map holds no tokens.
func (m *TokenMap) IsEmpty() bool {
	return len(m.Tokens) == 0
}
