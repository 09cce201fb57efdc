package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lucasferreira/webquest/internal/db"
	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/progress"
	"github.com/lucasferreira/webquest/internal/repository"
)

// exportBundle is the human-readable dump shape. Progress and settings are
// embedded in their persisted JSON forms.
type exportBundle struct {
	Progress   json.RawMessage `json:"progress"`
	Settings   json.RawMessage `json:"settings"`
	ExportDate string          `json:"exportDate"`
}

type dataService struct {
	progressStore *progress.Store
	settingsStore *progress.SettingsStore
	uow           db.UnitOfWork
}

// NewDataService creates the export/import/reset service. Reset clears both
// snapshot keys inside one transaction.
func NewDataService(progressStore *progress.Store, settingsStore *progress.SettingsStore, uow db.UnitOfWork) DataService {
	return &dataService{
		progressStore: progressStore,
		settingsStore: settingsStore,
		uow:           uow,
	}
}

func (s *dataService) Export(ctx context.Context) ([]byte, error) {
	progressJSON, err := progress.EncodeProgress(s.progressStore.Get())
	if err != nil {
		return nil, fmt.Errorf("exporting progress: %w", err)
	}
	settingsJSON, err := progress.EncodeSettings(s.settingsStore.Get())
	if err != nil {
		return nil, fmt.Errorf("exporting settings: %w", err)
	}

	bundle := exportBundle{
		Progress:   json.RawMessage(progressJSON),
		Settings:   json.RawMessage(settingsJSON),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
	out, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export bundle: %w", err)
	}
	return out, nil
}

// Import applies the settings portion of a bundle. Progress in the bundle is
// deliberately ignored: restoring progress from arbitrary files would bypass
// every invariant the store enforces.
func (s *dataService) Import(ctx context.Context, data []byte) (domain.Settings, error) {
	var bundle exportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return domain.Settings{}, fmt.Errorf("parsing import bundle: %w", err)
	}
	if len(bundle.Settings) == 0 {
		return domain.Settings{}, fmt.Errorf("import bundle has no settings section")
	}
	settings, err := progress.DecodeSettings(string(bundle.Settings))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("parsing imported settings: %w", err)
	}
	return s.settingsStore.Replace(ctx, settings)
}

// Reset clears both persisted keys transactionally and drops the in-memory
// stores back to defaults. A subsequent load is indistinguishable from a
// first run.
func (s *dataService) Reset(ctx context.Context) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSnapshotRepo(tx)
		if err := repo.Delete(ctx, progress.ProgressKey); err != nil {
			return err
		}
		return repo.Delete(ctx, progress.SettingsKey)
	})
	if err != nil {
		return fmt.Errorf("clearing persisted state: %w", err)
	}

	s.progressStore.Reset()
	s.settingsStore.Reset()
	return nil
}
