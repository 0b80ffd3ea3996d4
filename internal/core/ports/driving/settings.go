package driving

import "github.com/markpy98/masteryai/internal/core/domain"

// SettingsService manages the singleton user preference record.
type SettingsService interface {
	// Get retrieves the current settings, falling back to defaults
	// for missing or invalid values.
	Get() (*domain.Settings, error)

	// Save overwrites the settings wholesale. Invalid enum values are
	// rejected before anything is written.
	Save(settings *domain.Settings) error
}
