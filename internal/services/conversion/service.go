package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"radixconv/internal/domain"
	"radixconv/internal/logging"
	"radixconv/internal/radix"
)

// Service converts numerals using the radix engine.
type Service struct {
	log *slog.Logger
}

// New returns a conversion service that logs to l. A nil logger discards.
func New(l *slog.Logger) *Service {
	if l == nil {
		l = logging.Discard()
	}
	return &Service{log: l}
}

// Convert rewrites req.Input from req.From into req.To.
//
// Failures keep their radix.Kind so callers can map them to messages with
// radix.KindOf or errors.Is.
func (s *Service) Convert(
	ctx context.Context,
	req domain.ConversionRequest,
) (domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, err
	}

	input := strings.TrimSpace(req.Input.String())
	out, err := radix.Convert(input, int(req.From), int(req.To))
	if err != nil {
		s.log.InfoContext(ctx, "conversion.rejected",
			"input", input, "from", int(req.From), "to", int(req.To),
			"kind", string(radix.KindOf(err)))
		return domain.Conversion{}, fmt.Errorf("convert %q from base %d: %w", input, req.From, err)
	}

	// Convert already proved the input parses.
	dec, err := radix.Parse(input, int(req.From))
	if err != nil {
		return domain.Conversion{}, err
	}

	s.log.DebugContext(ctx, "conversion.ok",
		"input", input, "from", int(req.From), "to", int(req.To), "output", out)

	return domain.Conversion{
		Input:   domain.Numeral(input),
		From:    req.From,
		To:      req.To,
		Output:  domain.Numeral(out),
		Decimal: dec,
	}, nil
}

// Describe parses input once and renders it in each of domain.InspectRadices.
func (s *Service) Describe(
	ctx context.Context,
	input domain.Numeral,
	from domain.Radix,
) (int64, []domain.Rendering, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}

	in := strings.TrimSpace(input.String())
	// Convert runs the full validation pipeline; its output is discarded.
	if _, err := radix.Convert(in, int(from), int(from)); err != nil {
		s.log.InfoContext(ctx, "describe.rejected",
			"input", in, "from", int(from), "kind", string(radix.KindOf(err)))
		return 0, nil, fmt.Errorf("describe %q: %w", in, err)
	}
	v, err := radix.Parse(in, int(from))
	if err != nil {
		return 0, nil, err
	}

	out := make([]domain.Rendering, 0, len(domain.InspectRadices))
	for _, r := range domain.InspectRadices {
		n, err := radix.Render(v, int(r))
		if err != nil {
			return 0, nil, err
		}
		out = append(out, domain.Rendering{Radix: r, Numeral: domain.Numeral(n)})
	}
	s.log.DebugContext(ctx, "describe.ok", "input", in, "from", int(from), "decimal", v)
	return v, out, nil
}

var _ domain.ConversionService = (*Service)(nil)
