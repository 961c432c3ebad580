// Package radix converts numerals between positional bases 2 through 36.
//
// The engine is a pipeline of pure functions:
//
//   - CharToVal / ValToChar map between digit bytes and digit values
//   - IsValidInput checks a numeral against a radix
//   - Parse reads a numeral into an int64, detecting overflow
//   - Render writes an int64 as a numeral in a radix
//   - Convert composes the above
//
// # Notes
//
// Parsing accumulates the magnitude in a uint64 and only maps it into the
// signed range once all digits are consumed, so the one magnitude that only
// fits as a negative value (2^63) still parses to math.MinInt64.
//
// Nothing here performs I/O or keeps state between calls; every function is
// safe for concurrent use.
package radix
