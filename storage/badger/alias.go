package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/storage"
)

// AliasRepository implements storage.AliasRepository for BadgerDB.
type AliasRepository struct {
	backend *Backend
}

var _ storage.AliasRepository = (*AliasRepository)(nil)

// NewAliasRepository creates a new AliasRepository.
func NewAliasRepository(backend *Backend) (*AliasRepository, error) {
	return &AliasRepository{
		backend: backend,
	}, nil
}

// Close releases resources. AliasRepository has no resources to release.
func (r *AliasRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *AliasRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveAlias creates or replaces an alias.
func (r *AliasRepository) SaveAlias(ctx context.Context, alias *core.Alias) (*core.Alias, error) {
	if err := core.ValidateAlias(alias); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		alias.UpdatedAt = time.Now().UTC()
		if err := tx.Set(makeAliasKey(alias.Name), storage.MarshalAlias(alias)); err != nil {
			return err
		}
		return commit(tx)
	}, true)
	if err != nil {
		return nil, err
	}
	return alias, nil
}

// GetAlias retrieves an alias by name.
func (r *AliasRepository) GetAlias(ctx context.Context, name string) (*core.Alias, error) {
	var result *core.Alias
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAliasKey(name))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			result, err = storage.UnmarshalAlias(val)
			return err
		})
	}, false)
	return result, err
}

// DeleteAlias removes an alias by name.
func (r *AliasRepository) DeleteAlias(ctx context.Context, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAliasKey(name)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return commit(tx)
	}, true)
}

// ListAliases retrieves all aliases. Keys are sorted, so the result is
// ordered by name.
func (r *AliasRepository) ListAliases(ctx context.Context) ([]*core.Alias, error) {
	var results []*core.Alias
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(aliasPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var alias *core.Alias
			err := iter.Item().Value(func(val []byte) error {
				var err error
				alias, err = storage.UnmarshalAlias(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, alias)
		}
		return nil
	}, false)
	return results, err
}

// Names returns the alias names starting with prefix, in order.
func (r *AliasRepository) Names(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = makeAliasKey(prefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			names = append(names, strings.TrimPrefix(string(iter.Item().Key()), aliasPrefix))
		}
		return nil
	}, false)
	return names, err
}
