// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application
// layer to depend on abstractions rather than concrete implementations.
//
// Port design principles:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types
package ports

import (
	"context"

	"github.com/jsamuelsen/motivation-page/internal/domain"
)

// EntryStore is the persistence contract for the quote/poem collection.
//
// The whole store travels as one value: callers load it, mutate the
// in-memory copy, and save it back. There is no record-level access and
// no locking; concurrent writers race on the read-modify-write cycle
// and the last writer wins. Acceptable under the single-user assumption
// this tool is built for.
type EntryStore interface {
	// Load reads the full store from the backing file.
	// A missing file yields an empty store without creating the file.
	// Returns domain.ErrCorruptStore if the file exists but does not
	// parse into the expected shape.
	Load(ctx context.Context) (*domain.Store, error)

	// Save serializes the full store, creating the containing directory
	// if needed and overwriting any previous contents.
	// Returns domain.ErrStoreIO on write failure.
	Save(ctx context.Context, store *domain.Store) error
}

// PictureClient fetches the externally supplied picture of the day.
// It is a soft dependency: callers must treat any error as "no picture"
// and carry on.
type PictureClient interface {
	// FetchToday retrieves today's picture with metadata.
	// Returns domain.ErrUnavailable for network errors, non-success
	// statuses, and unparsable bodies.
	FetchToday(ctx context.Context) (*domain.Picture, error)
}

// SiteBuilder regenerates the static snapshot of the public page.
// The build itself is an external program; this port only triggers it.
type SiteBuilder interface {
	// Regenerate runs the build step to completion.
	// Returns domain.ErrRegeneration with the build output on failure.
	Regenerate(ctx context.Context) error
}
