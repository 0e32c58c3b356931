package storage

import (
	"context"

	"github.com/poiesic/locate/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// SnapshotRepository provides operations for managing page snapshots.
type SnapshotRepository interface {
	Repository
	// AddSnapshots stores one or more snapshots.
	// For snapshots with ID=0, derives the ID from the HTML content.
	// Sets InsertedAt, and CapturedAt when zero.
	// Returns ErrDuplicateKey if a name is already used by different content.
	AddSnapshots(ctx context.Context, snapshots ...*core.Snapshot) ([]*core.Snapshot, error)

	// DeleteSnapshots removes snapshots by their IDs.
	// Returns ErrNotFound if any snapshot doesn't exist.
	DeleteSnapshots(ctx context.Context, ids ...core.ID) error

	// GetSnapshot retrieves a single snapshot by ID.
	// Returns ErrNotFound if the snapshot doesn't exist.
	GetSnapshot(ctx context.Context, id core.ID) (*core.Snapshot, error)

	// FindSnapshotByName retrieves a snapshot by its name.
	// Returns ErrNotFound if no snapshot has that name.
	FindSnapshotByName(ctx context.Context, name string) (*core.Snapshot, error)

	// ListSnapshots returns every snapshot ordered by name.
	ListSnapshots(ctx context.Context) ([]*core.Snapshot, error)
}

// AliasRepository provides operations for managing saved locators.
type AliasRepository interface {
	Repository
	// SaveAlias creates or replaces the alias with the same name.
	// Sets UpdatedAt.
	SaveAlias(ctx context.Context, alias *core.Alias) (*core.Alias, error)

	// GetAlias retrieves an alias by name.
	// Returns ErrNotFound if the alias doesn't exist.
	GetAlias(ctx context.Context, name string) (*core.Alias, error)

	// DeleteAlias removes an alias by name.
	// Returns ErrNotFound if the alias doesn't exist.
	DeleteAlias(ctx context.Context, name string) error

	// ListAliases returns every alias ordered by name.
	ListAliases(ctx context.Context) ([]*core.Alias, error)

	// Names returns the alias names starting with prefix, ordered.
	Names(ctx context.Context, prefix string) ([]string, error)
}
