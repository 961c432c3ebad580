package interfaces

import (
	"context"

	domaintypes "radixconv/internal/domain/types"
)

// ConversionService converts numerals between bases.
type ConversionService interface {
	Convert(
		ctx context.Context,
		req domaintypes.ConversionRequest,
	) (domaintypes.Conversion, error)
	Describe(
		ctx context.Context,
		input domaintypes.Numeral,
		from domaintypes.Radix,
	) (int64, []domaintypes.Rendering, error)
}
