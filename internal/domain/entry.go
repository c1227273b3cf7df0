// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// EntryKind distinguishes the two collections an Entry can live in.
type EntryKind string

// Entry kinds.
const (
	KindQuote EntryKind = "quote"
	KindPoem  EntryKind = "poem"
)

// Valid reports whether the kind is one of the two known kinds.
func (k EntryKind) Valid() bool {
	return k == KindQuote || k == KindPoem
}

// IDPrefix returns the single-character prefix used for entry IDs of this kind.
func (k EntryKind) IDPrefix() string {
	if k == KindPoem {
		return "p"
	}
	return "q"
}

// Entry is a stored quote or poem.
// Poem text may contain embedded newlines; they are significant and must
// survive storage and rendering.
type Entry struct {
	// ID is the unique identifier: kind prefix ("q" or "p") plus 8 hex chars.
	ID string `json:"id"`

	// Text is the quote or poem body. Never empty for a stored entry.
	Text string `json:"text"`

	// Author is who said or wrote it. Never empty for a stored entry.
	Author string `json:"author"`

	// History is optional free-text context; "" means none.
	History string `json:"history"`

	// Images are ordered image references. Nothing in this service
	// populates them; they exist for hand-edited data files.
	Images []string `json:"images"`
}

// Validate checks the creation-time invariants: text and author must be
// non-blank after trimming. Stored entries are never re-validated.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Text) == "" {
		return NewValidationError("text", "must not be blank")
	}
	if strings.TrimSpace(e.Author) == "" {
		return NewValidationError("author", "must not be blank")
	}
	return nil
}

// Store is the full persisted collection: two ordered lists of entries.
// Entries are only ever appended; nothing deletes or mutates them.
type Store struct {
	Quotes []Entry `json:"quotes"`
	Poems  []Entry `json:"poems"`
}

// NewStore returns an empty store with both collections allocated, so a
// fresh store serializes as {"quotes": [], "poems": []} rather than nulls.
func NewStore() *Store {
	return &Store{Quotes: []Entry{}, Poems: []Entry{}}
}

// Append adds the entry to the collection named by kind, preserving
// insertion order. The caller is responsible for persisting the store.
func (s *Store) Append(kind EntryKind, e Entry) {
	if kind == KindPoem {
		s.Poems = append(s.Poems, e)
		return
	}
	s.Quotes = append(s.Quotes, e)
}

// HasID reports whether any entry in either collection carries the ID.
func (s *Store) HasID(id string) bool {
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			return true
		}
	}
	for i := range s.Poems {
		if s.Poems[i].ID == id {
			return true
		}
	}
	return false
}

// DailySelection is the quote and poem chosen for one calendar date.
// It is derived on every page view and never persisted. A nil field
// means the corresponding collection was empty.
type DailySelection struct {
	Date  time.Time
	Quote *Entry
	Poem  *Entry
}

// Picture is an externally supplied picture-of-the-day with metadata.
// Pointer fields are nil when the provider response omitted them; they
// are never defaulted to empty strings.
type Picture struct {
	URL         *string
	HDURL       *string
	Title       *string
	Explanation *string
	MediaType   *string
	Copyright   *string
}

// IsVideo reports whether the picture should be rendered as an
// embeddable player instead of a static image.
func (p *Picture) IsVideo() bool {
	return p.MediaType != nil && *p.MediaType == "video"
}

// BestURL returns the HD URL when present, falling back to the plain
// URL, or "" when neither is set.
func (p *Picture) BestURL() string {
	if p.HDURL != nil && *p.HDURL != "" {
		return *p.HDURL
	}
	if p.URL != nil {
		return *p.URL
	}
	return ""
}
