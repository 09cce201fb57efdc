package progress

import (
	"context"
	"fmt"
	"sync"

	"github.com/lucasferreira/webquest/internal/domain"
	"github.com/lucasferreira/webquest/internal/repository"
)

// SettingsStore owns the Settings value, mirrored to its own snapshot key.
// Settings carry no derived fields or events; updates are plain merges.
type SettingsStore struct {
	mu      sync.Mutex
	current domain.Settings
	repo    repository.SnapshotRepo
	logf    func(format string, args ...any)
}

// NewSettingsStore loads persisted settings (or defaults) and returns a
// ready store.
func NewSettingsStore(ctx context.Context, repo repository.SnapshotRepo, logf func(format string, args ...any)) *SettingsStore {
	return &SettingsStore{
		current: LoadSettings(ctx, repo, logf),
		repo:    repo,
		logf:    logf,
	}
}

// Get returns the current settings.
func (s *SettingsStore) Get() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update merges present fields, validates enum values, persists, and returns
// the new settings. Invalid enum values reject the whole patch.
func (s *SettingsStore) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Theme != nil && !domain.ValidThemes[*patch.Theme] {
		return domain.Settings{}, fmt.Errorf("theme %q: %w", *patch.Theme, ErrInvalidUpdate)
	}
	if patch.Difficulty != nil && !domain.ValidDifficulties[*patch.Difficulty] {
		return domain.Settings{}, fmt.Errorf("difficulty %q: %w", *patch.Difficulty, ErrInvalidUpdate)
	}

	next := s.current
	if patch.Theme != nil {
		next.Theme = *patch.Theme
	}
	if patch.SoundEnabled != nil {
		next.SoundEnabled = *patch.SoundEnabled
	}
	if patch.AnimationsEnabled != nil {
		next.AnimationsEnabled = *patch.AnimationsEnabled
	}
	if patch.HintsEnabled != nil {
		next.HintsEnabled = *patch.HintsEnabled
	}
	if patch.Difficulty != nil {
		next.Difficulty = *patch.Difficulty
	}

	payload, err := EncodeSettings(next)
	if err != nil {
		if s.logf != nil {
			s.logf("encoding settings snapshot: %v", err)
		}
	} else if err := s.repo.Save(ctx, SettingsKey, payload); err != nil && s.logf != nil {
		s.logf("persisting settings snapshot: %v", err)
	}

	s.current = next
	return next, nil
}

// Reset drops the in-memory settings back to defaults. The caller clears
// the persisted key; Reset writes nothing.
func (s *SettingsStore) Reset() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = domain.DefaultSettings()
	return s.current
}

// Replace overwrites the whole settings value, used by the import path.
func (s *SettingsStore) Replace(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	patch := domain.SettingsPatch{
		Theme:             &settings.Theme,
		SoundEnabled:      &settings.SoundEnabled,
		AnimationsEnabled: &settings.AnimationsEnabled,
		HintsEnabled:      &settings.HintsEnabled,
		Difficulty:        &settings.Difficulty,
	}
	return s.Update(ctx, patch)
}
