package repository_test

import (
	"context"
	"testing"

	"github.com/lucasferreira/webquest/internal/repository"
	"github.com/lucasferreira/webquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSnapshotRepo_SaveLoad(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "webquest-user-state", `{"score":100}`))

	got, err := repo.Load(ctx, "webquest-user-state")
	require.NoError(t, err)
	assert.Equal(t, `{"score":100}`, got)
}

func TestSQLiteSnapshotRepo_SaveOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", "one"))
	require.NoError(t, repo.Save(ctx, "k", "two"))

	got, err := repo.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestSQLiteSnapshotRepo_LoadMissingKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)

	_, err := repo.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteSnapshotRepo_KeysAreIndependent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "webquest-user-state", "progress"))
	require.NoError(t, repo.Save(ctx, "webquest-settings", "settings"))

	require.NoError(t, repo.Delete(ctx, "webquest-settings"))

	got, err := repo.Load(ctx, "webquest-user-state")
	require.NoError(t, err)
	assert.Equal(t, "progress", got)

	_, err = repo.Load(ctx, "webquest-settings")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteSnapshotRepo_DeleteMissingKeyIsNoOp(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)

	assert.NoError(t, repo.Delete(context.Background(), "absent"))
}
