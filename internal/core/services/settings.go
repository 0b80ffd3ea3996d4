package services

import (
	"fmt"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
	"github.com/markpy98/masteryai/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyUserName    = "user.name"
	keyThemeColor  = "theme.color"
	keyDetailLevel = "detail.level"
)

// SettingsService manages the singleton user preference record.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid stored values
// fall back per field to the defaults; the store is not written.
func (s *SettingsService) Get() (*domain.Settings, error) {
	stored := domain.Settings{
		UserName:    s.configStore.GetString(keyUserName),
		ThemeColor:  domain.ThemeColor(s.configStore.GetString(keyThemeColor)),
		DetailLevel: domain.DetailLevel(s.configStore.GetString(keyDetailLevel)),
	}
	normalized := stored.Normalized()
	return &normalized, nil
}

// Save persists settings wholesale. Invalid enum values are rejected
// before any key is written.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if !settings.ThemeColor.IsValid() {
		return fmt.Errorf("unknown theme color %q: %w", settings.ThemeColor, domain.ErrInvalidInput)
	}
	if !settings.DetailLevel.IsValid() {
		return fmt.Errorf("unknown detail level %q: %w", settings.DetailLevel, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(keyUserName, settings.UserName); err != nil {
		return fmt.Errorf("save user name: %w", err)
	}
	if err := s.configStore.Set(keyThemeColor, settings.ThemeColor.String()); err != nil {
		return fmt.Errorf("save theme color: %w", err)
	}
	if err := s.configStore.Set(keyDetailLevel, settings.DetailLevel.String()); err != nil {
		return fmt.Errorf("save detail level: %w", err)
	}
	return nil
}
