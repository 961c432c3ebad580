// Package commands defines the radixconv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - convert      Convert one number between bases
//   - inspect      Show one number in bases 2, 8, 10, 16 and 36
//   - interactive  Prompt for bases and numbers until the user quits
//   - config       Show or change the stored default bases and log level
//
// Negative numbers must follow "--" so they are not read as flags:
//
//	radixconv convert --from 10 --to 16 -- -255
//
// # Implementation
//
// The root command loads preferences from the home directory and builds the
// app (store, logger, conversion service) before any subcommand runs. All
// arithmetic is delegated to internal/radix through the conversion service.
package commands
