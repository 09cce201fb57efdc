package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasferreira/webquest/internal/db"
	"github.com/lucasferreira/webquest/internal/notify"
	"github.com/lucasferreira/webquest/internal/progress"
	"github.com/lucasferreira/webquest/internal/repository"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/lucasferreira/webquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires a full App over an in-memory database, with interactive
// forms disabled so commands exercise their flag paths.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	ctx := context.Background()

	notices := notify.NewEmitter()
	progressStore := progress.NewStore(ctx, repo, progress.WithNotifier(notices))
	settingsStore := progress.NewSettingsStore(ctx, repo, nil)
	uow := db.NewSQLiteUnitOfWork(database)

	return &App{
		Progress:      service.NewProgressService(progressStore, notices),
		Settings:      service.NewSettingsService(settingsStore),
		Data:          service.NewDataService(progressStore, settingsStore, uow),
		Notices:       notices,
		IsInteractive: func() bool { return false },
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStatusCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Lv 1")
	assert.Contains(t, out, "0 of 7")
	assert.Contains(t, out, "ACHIEVEMENTS")
}

func TestMissionsCmd_List(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "missions")
	require.NoError(t, err)

	assert.Contains(t, out, "Type the URL")
	assert.Contains(t, out, "Rendering")
	assert.Contains(t, out, "AVAILABLE")
	assert.Contains(t, out, "LOCKED")
}

func TestMissionsCmd_Complete(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "missions", "complete", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Mission complete")
	assert.Contains(t, out, "+100 XP")
	assert.Contains(t, out, "Achievement unlocked!")

	out, err = runCommand(t, app, "missions", "complete", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "already completed")
}

func TestMissionsCmd_CompleteLocked(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "missions", "complete", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")

	_, err = runCommand(t, app, "missions", "complete", "not-a-number")
	require.Error(t, err)
}

func TestMissionsCmd_CompleteSuggestsQuiz(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "missions", "complete", "0")
	require.NoError(t, err)
	_, err = runCommand(t, app, "missions", "complete", "1")
	require.NoError(t, err)

	_, err = runCommand(t, app, "missions", "complete", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webquest quiz 1")
}

func TestQuizCmd_WithAnswersFlag(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "quiz", "0", "--answers", "2,3,2")
	require.NoError(t, err)

	assert.Contains(t, out, "3/3 (100%)")
	assert.Contains(t, out, "+200 XP")
	assert.Contains(t, out, "Quiz complete!")
}

func TestQuizCmd_WrongAnswersShowExplanations(t *testing.T) {
	app := newTestApp(t)

	// Hints are on by default, so wrong answers get their explanations and
	// each one counts as a hint used.
	out, err := runCommand(t, app, "quiz", "0", "--answers", "1,1,1")
	require.NoError(t, err)

	assert.Contains(t, out, "answer:")
	p := app.Progress.Progress(context.Background())
	assert.Greater(t, p.HintsUsed, 0)
}

func TestQuizCmd_BadInput(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "quiz", "0", "--answers", "1,2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 answers")

	_, err = runCommand(t, app, "quiz", "0", "--answers", "0,1,2")
	require.Error(t, err)

	// No terminal and no flag.
	_, err = runCommand(t, app, "quiz", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--answers")
}

func TestChallengeCmd_List(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "challenge")
	require.NoError(t, err)

	assert.Contains(t, out, "speed-basic")
	assert.Contains(t, out, "Basic Speed Run")
	assert.Contains(t, out, "2:00")
}

func TestChallengeCmd_RecordRun(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "challenge", "speed-basic", "--correct", "3", "--elapsed", "40")
	require.NoError(t, err)

	assert.Contains(t, out, "3/3 correct")
	assert.Contains(t, out, "New best time: 0:40")

	out, err = runCommand(t, app, "challenge", "speed-basic", "--correct", "3", "--elapsed", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Best time stays at 0:40")
}

func TestChallengeCmd_UnknownID(t *testing.T) {
	app := newTestApp(t)

	_, err := runCommand(t, app, "challenge", "nope", "--correct", "1", "--elapsed", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown challenge")
}

func TestFundamentalsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "fundamentals")
	require.NoError(t, err)
	assert.Contains(t, out, "The OSI Model")

	out, err = runCommand(t, app, "fundamentals", "read", "dns-system")
	require.NoError(t, err)
	assert.Contains(t, out, "THE DNS SYSTEM")

	p := app.Progress.Progress(context.Background())
	assert.True(t, p.HasReadFundamental("dns-system"))

	_, err = runCommand(t, app, "fundamentals", "read", "nope")
	require.Error(t, err)
}

func TestAPICmd_Create(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "api", "create", "get", "/users")
	require.NoError(t, err)
	assert.Contains(t, out, "GET")
	assert.Contains(t, out, "/users")
	assert.Contains(t, out, "APIs built: 1")

	_, err = runCommand(t, app, "api", "create", "YEET", "/users")
	require.Error(t, err)

	_, err = runCommand(t, app, "api", "create", "get", "users")
	require.Error(t, err)
}

func TestSettingsCmd(t *testing.T) {
	app := newTestApp(t)

	out, err := runCommand(t, app, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "system")
	assert.Contains(t, out, "medium")

	out, err = runCommand(t, app, "settings", "set", "--theme", "dark", "--difficulty", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
	assert.Contains(t, out, "hard")

	_, err = runCommand(t, app, "settings", "set", "--theme", "neon")
	require.Error(t, err)
}

func TestDataCmd_ExportImportReset(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := runCommand(t, app, "missions", "complete", "0")
	require.NoError(t, err)
	_, err = runCommand(t, app, "settings", "set", "--theme", "dark")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "dump.json")
	out, err := runCommand(t, app, "data", "export", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to")

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"score"`)

	// Reset needs confirmation when not interactive.
	_, err = runCommand(t, app, "data", "reset")
	require.Error(t, err)

	out, err = runCommand(t, app, "data", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")
	assert.Equal(t, 0, app.Progress.Progress(ctx).Score)

	// Importing the dump restores the settings, not the progress.
	out, err = runCommand(t, app, "data", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "dark")
	assert.Equal(t, 0, app.Progress.Progress(ctx).Score)
}

func TestFlagNormalization(t *testing.T) {
	app := newTestApp(t)

	// Underscore spellings resolve to the dashed flag names.
	out, err := runCommand(t, app, "quiz", "0", "--ANSWERS", "2,3,2")
	require.NoError(t, err)
	assert.Contains(t, out, "100%")
}
