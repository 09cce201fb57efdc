package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/lucasferreira/webquest/internal/db"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/progress"
	"github.com/lucasferreira/webquest/internal/repository"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/lucasferreira/webquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dataFixture struct {
	progressStore *progress.Store
	settingsStore *progress.SettingsStore
	progressSvc   service.ProgressService
	dataSvc       service.DataService
	repo          *repository.SQLiteSnapshotRepo
}

func newDataFixture(t *testing.T) *dataFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	progressStore := progress.NewStore(ctx, repo)
	settingsStore := progress.NewSettingsStore(ctx, repo, nil)
	uow := db.NewSQLiteUnitOfWork(database)

	return &dataFixture{
		progressStore: progressStore,
		settingsStore: settingsStore,
		progressSvc:   service.NewProgressService(progressStore, nil),
		dataSvc:       service.NewDataService(progressStore, settingsStore, uow),
		repo:          repo,
	}
}

func TestExport_BundleShape(t *testing.T) {
	f := newDataFixture(t)
	ctx := context.Background()

	_, err := f.progressSvc.CompleteMission(ctx, 0)
	require.NoError(t, err)

	out, err := f.dataSvc.Export(ctx)
	require.NoError(t, err)

	var bundle map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &bundle))
	assert.Contains(t, bundle, "progress")
	assert.Contains(t, bundle, "settings")
	assert.Contains(t, bundle, "exportDate")

	var exported struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(bundle["progress"], &exported))
	assert.Equal(t, 150, exported.Score)
}

func TestImport_AppliesSettingsOnly(t *testing.T) {
	f := newDataFixture(t)
	ctx := context.Background()

	_, err := f.progressSvc.CompleteMission(ctx, 0)
	require.NoError(t, err)
	scoreBefore := f.progressStore.Get().Score

	bundle := []byte(`{
		"progress": {"score": 9999, "completedSteps": [0,1,2,3,4,5,6]},
		"settings": {"theme": "dark", "soundEnabled": false, "animationsEnabled": true, "hintsEnabled": false, "difficulty": "hard"},
		"exportDate": "2025-01-01T00:00:00Z"
	}`)

	settings, err := f.dataSvc.Import(ctx, bundle)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeDark, settings.Theme)
	assert.False(t, settings.SoundEnabled)
	assert.Equal(t, domain.DifficultyHard, settings.Difficulty)

	// Progress in the bundle is ignored.
	assert.Equal(t, scoreBefore, f.progressStore.Get().Score)
	assert.Len(t, f.progressStore.Get().CompletedSteps, 1)
}

func TestImport_RejectsMalformedBundles(t *testing.T) {
	f := newDataFixture(t)
	ctx := context.Background()

	_, err := f.dataSvc.Import(ctx, []byte("not json"))
	assert.Error(t, err)

	_, err = f.dataSvc.Import(ctx, []byte(`{"progress": {}}`))
	assert.Error(t, err, "a bundle without settings is rejected")
}

func TestExportImport_RoundTrip(t *testing.T) {
	f := newDataFixture(t)
	ctx := context.Background()

	_, err := f.settingsStore.Update(ctx, domain.SettingsPatch{
		Theme:      themePtr(domain.ThemeDark),
		Difficulty: difficultyPtr(domain.DifficultyEasy),
	})
	require.NoError(t, err)

	out, err := f.dataSvc.Export(ctx)
	require.NoError(t, err)

	// Import into a fresh installation.
	other := newDataFixture(t)
	settings, err := other.dataSvc.Import(ctx, out)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeDark, settings.Theme)
	assert.Equal(t, domain.DifficultyEasy, settings.Difficulty)
}

func TestReset_ReturnsToFirstRun(t *testing.T) {
	f := newDataFixture(t)
	ctx := context.Background()

	_, err := f.progressSvc.CompleteMission(ctx, 0)
	require.NoError(t, err)
	_, err = f.settingsStore.Update(ctx, domain.SettingsPatch{Theme: themePtr(domain.ThemeDark)})
	require.NoError(t, err)

	require.NoError(t, f.dataSvc.Reset(ctx))

	p := f.progressStore.Get()
	assert.Equal(t, 0, p.Score)
	assert.Empty(t, p.CompletedSteps)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, domain.DefaultSettings(), f.settingsStore.Get())

	// Both persisted keys are gone.
	_, err = f.repo.Load(ctx, progress.ProgressKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.repo.Load(ctx, progress.SettingsKey)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func themePtr(v domain.Theme) *domain.Theme { return &v }

func difficultyPtr(v domain.Difficulty) *domain.Difficulty { return &v }
