package interfaces

import domaintypes "radixconv/internal/domain/types"

// PreferencesStore loads and saves the user's CLI defaults.
type PreferencesStore interface {
	Load() (domaintypes.Preferences, error)
	Save(p domaintypes.Preferences) error
}
