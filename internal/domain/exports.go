package domain

import (
	interfaces "radixconv/internal/domain/interfaces"
	types "radixconv/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Radix             = types.Radix
	Numeral           = types.Numeral
	ConversionRequest = types.ConversionRequest
	Conversion        = types.Conversion
	Rendering         = types.Rendering
	Preferences       = types.Preferences
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ConversionService = interfaces.ConversionService
	PreferencesStore  = interfaces.PreferencesStore
)

// DefaultPreferences returns the settings used when nothing is stored.
func DefaultPreferences() Preferences { return types.DefaultPreferences() }

// InspectRadices are the bases the inspect command renders into.
var InspectRadices = types.InspectRadices
