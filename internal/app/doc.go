// Package app wires application dependencies for the CLI.
//
// It builds the preferences store, the logger and the conversion service from
// Config, exposing them via the App struct for commands to use.
package app
