package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/storage"
)

func TestAliasBasics(t *testing.T) {
	snapshotRepo, aliasRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { aliasRepo.Close(); snapshotRepo.Close(); backend.Close() }()

	ctx := context.Background()

	saved, err := aliasRepo.SaveAlias(ctx, &core.Alias{Name: "submit", Locator: "By.id(submit)"})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	alias, err := aliasRepo.GetAlias(ctx, "submit")
	require.NoError(t, err)
	assert.Equal(t, "By.id(submit)", alias.Locator)

	t.Run("replace", func(t *testing.T) {
		_, err := aliasRepo.SaveAlias(ctx, &core.Alias{Name: "submit", Locator: "By.name(submit)"})
		require.NoError(t, err)

		alias, err := aliasRepo.GetAlias(ctx, "submit")
		require.NoError(t, err)
		assert.Equal(t, "By.name(submit)", alias.Locator)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := aliasRepo.GetAlias(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := aliasRepo.SaveAlias(ctx, &core.Alias{Name: "", Locator: "By.id(x)"})
		assert.ErrorIs(t, err, core.ErrInvalidAlias)
		_, err = aliasRepo.SaveAlias(ctx, &core.Alias{Name: "x"})
		assert.ErrorIs(t, err, core.ErrEmptyLocator)
	})
}

func TestListAndDeleteAliases(t *testing.T) {
	snapshotRepo, aliasRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer func() { aliasRepo.Close(); snapshotRepo.Close(); backend.Close() }()

	ctx := context.Background()

	for _, name := range []string{"nav.home", "form.submit", "nav.about"} {
		_, err := aliasRepo.SaveAlias(ctx, &core.Alias{Name: name, Locator: "By.id(" + name + ")"})
		require.NoError(t, err)
	}

	aliases, err := aliasRepo.ListAliases(ctx)
	require.NoError(t, err)
	require.Len(t, aliases, 3)
	assert.Equal(t, "form.submit", aliases[0].Name)
	assert.Equal(t, "nav.about", aliases[1].Name)
	assert.Equal(t, "nav.home", aliases[2].Name)

	repo := aliasRepo.(*AliasRepository)
	names, err := repo.Names(ctx, "nav.")
	require.NoError(t, err)
	assert.Equal(t, []string{"nav.about", "nav.home"}, names)

	require.NoError(t, aliasRepo.DeleteAlias(ctx, "nav.home"))
	assert.ErrorIs(t, aliasRepo.DeleteAlias(ctx, "nav.home"), storage.ErrNotFound)

	aliases, err = aliasRepo.ListAliases(ctx)
	require.NoError(t, err)
	assert.Len(t, aliases, 2)
}
