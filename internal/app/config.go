package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string    // config directory, e.g. $HOME/.radixconv
	LogLevel  string    // optional; defaults to the stored preference
	LogOutput io.Writer // optional; defaults to os.Stderr
}
