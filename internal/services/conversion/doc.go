// Package conversion exposes the radix engine as a domain.ConversionService.
//
// It maps domain requests onto internal/radix, records the canonical decimal
// value alongside the rendered output, and logs outcomes with structured
// attributes. The engine itself stays free of I/O.
package conversion
