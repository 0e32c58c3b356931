package badger

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/storage"
)

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(backend *Backend) (*SnapshotRepository, error) {
	return &SnapshotRepository{
		backend: backend,
	}, nil
}

// Close releases resources. SnapshotRepository has no resources to release.
func (r *SnapshotRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SnapshotRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSnapshots adds one or more snapshots to storage.
func (r *SnapshotRepository) AddSnapshots(ctx context.Context, snapshots ...*core.Snapshot) ([]*core.Snapshot, error) {
	for _, snapshot := range snapshots {
		if err := core.ValidateSnapshot(snapshot); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, snapshot := range snapshots {
			// Use content-based ID if not set
			if snapshot.Id == 0 {
				snapshot.Id = core.IDFromContent(snapshot.HTML)
			}
			if snapshot.Name == "" {
				snapshot.Name = fmt.Sprintf("%016x", uint64(snapshot.Id))
			}

			// Names are unique across different content
			nameKey := makeSnapshotNameKey(snapshot.Name)
			existing, err := readID(tx, nameKey)
			if err != nil {
				return err
			}
			if existing != 0 && existing != snapshot.Id {
				return fmt.Errorf("%w: snapshot name %q", storage.ErrDuplicateKey, snapshot.Name)
			}

			// Set timestamps
			snapshot.InsertedAt = time.Now().UTC()
			if snapshot.CapturedAt.IsZero() {
				snapshot.CapturedAt = snapshot.InsertedAt
			}

			// Replacing a snapshot under a new name drops the old name
			key := makeSnapshotKey(snapshot.Id)
			old, err := readSnapshot(tx, key)
			if err != nil {
				return err
			}
			if old != nil && old.Name != snapshot.Name {
				if err := tx.Delete(makeSnapshotNameKey(old.Name)); err != nil {
					return err
				}
			}

			// Store primary record
			if err := tx.Set(key, storage.MarshalSnapshot(snapshot)); err != nil {
				return err
			}

			// Store name index
			if err := tx.Set(nameKey, storage.MarshalID(snapshot.Id)); err != nil {
				return err
			}
		}
		return commit(tx)
	}, true)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("snapshots added", "count", len(snapshots))
	return snapshots, nil
}

// DeleteSnapshots removes snapshots by their IDs.
func (r *SnapshotRepository) DeleteSnapshots(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSnapshotKey(id)

			// Read snapshot to get the name for index cleanup
			snapshot, err := readSnapshot(tx, key)
			if err != nil {
				return err
			}
			if snapshot == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeSnapshotNameKey(snapshot.Name)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return commit(tx)
	}, true)
}

// GetSnapshot retrieves a single snapshot by ID.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, id core.ID) (*core.Snapshot, error) {
	var result *core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readSnapshot(tx, makeSnapshotKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindSnapshotByName retrieves a snapshot by its name.
func (r *SnapshotRepository) FindSnapshotByName(ctx context.Context, name string) (*core.Snapshot, error) {
	var result *core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from name index
		id, err := readID(tx, makeSnapshotNameKey(name))
		if err != nil {
			return err
		}
		if id == 0 {
			return storage.ErrNotFound
		}

		result, err = readSnapshot(tx, makeSnapshotKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListSnapshots retrieves all snapshots ordered by name.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context) ([]*core.Snapshot, error) {
	var results []*core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(snapshotPrefix)
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()

			// Stop if we've moved past snapshot keys
			if !hasPrefix(item.Key(), prefix) {
				break
			}

			var snapshot *core.Snapshot
			err := item.Value(func(val []byte) error {
				var err error
				snapshot, err = storage.UnmarshalSnapshot(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, snapshot)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.Snapshot) int {
		return strings.Compare(a.Name, b.Name)
	})
	return results, nil
}

// Helper methods

// readSnapshot reads a snapshot from the transaction.
// Returns nil, nil when the key doesn't exist.
func readSnapshot(tx *badger.Txn, key []byte) (*core.Snapshot, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var snapshot *core.Snapshot
	err = item.Value(func(val []byte) error {
		var err error
		snapshot, err = storage.UnmarshalSnapshot(val)
		return err
	})
	return snapshot, err
}

// readID reads an index entry. Returns 0 when the key doesn't exist.
func readID(tx *badger.Txn, key []byte) (core.ID, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var err error
		id, err = storage.UnmarshalID(val)
		return err
	})
	return id, err
}
