package service

import (
	"context"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/progress"
)

type settingsService struct {
	store *progress.SettingsStore
}

// NewSettingsService creates the settings entry point over the given store.
func NewSettingsService(store *progress.SettingsStore) SettingsService {
	return &settingsService{store: store}
}

func (s *settingsService) Get(ctx context.Context) domain.Settings {
	return s.store.Get()
}

func (s *settingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	return s.store.Update(ctx, patch)
}
