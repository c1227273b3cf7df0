package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen/motivation-page/internal/domain"
	"github.com/jsamuelsen/motivation-page/internal/platform/metrics"
	"github.com/jsamuelsen/motivation-page/internal/ports"
)

// idSuffixLen is the number of hex characters after the kind prefix.
const idSuffixLen = 8

// EntryService orchestrates entry creation and listing.
type EntryService struct {
	store   ports.EntryStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// EntryServiceConfig contains configuration for the entry service.
type EntryServiceConfig struct {
	Store   ports.EntryStore
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewEntryService creates a new entry service with the provided dependencies.
func NewEntryService(cfg EntryServiceConfig) *EntryService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &EntryService{
		store:   cfg.Store,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

// NewEntryInput carries the caller-supplied fields for a new entry.
type NewEntryInput struct {
	Kind    domain.EntryKind
	Text    string
	Author  string
	History string
}

// AddEntry validates the input, appends the entry to the matching
// collection, and persists the store. Text and author must be non-blank
// after trimming; history is optional. Text keeps its internal
// whitespace, poem line breaks included.
func (s *EntryService) AddEntry(ctx context.Context, input NewEntryInput) (*domain.Entry, error) {
	if !input.Kind.Valid() {
		return nil, domain.NewValidationError("kind", fmt.Sprintf("unknown kind %q", input.Kind))
	}

	entry := domain.Entry{
		Text:    strings.TrimSpace(input.Text),
		Author:  strings.TrimSpace(input.Author),
		History: strings.TrimSpace(input.History),
		Images:  []string{},
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry.ID = newEntryID(input.Kind, store)

	store.Append(input.Kind, entry)

	if err := s.store.Save(ctx, store); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.EntriesAdded.WithLabelValues(string(input.Kind)).Inc()
	}

	s.logger.InfoContext(ctx, "entry added",
		slog.String("entry_id", entry.ID),
		slog.String("kind", string(input.Kind)),
		slog.String("author", entry.Author),
	)

	return &entry, nil
}

// List returns the full collection.
func (s *EntryService) List(ctx context.Context) (*domain.Store, error) {
	return s.store.Load(ctx)
}

// newEntryID generates an ID that does not collide with any stored entry.
// IDs are the kind prefix plus the first 8 hex chars of a random UUID;
// the loop re-rolls on the astronomically rare collision.
func newEntryID(kind domain.EntryKind, store *domain.Store) string {
	for {
		hex := strings.ReplaceAll(uuid.New().String(), "-", "")
		id := kind.IDPrefix() + hex[:idSuffixLen]
		if !store.HasID(id) {
			return id
		}
	}
}
