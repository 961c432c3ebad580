package main

import (
	"os"

	"radixconv/cmd/radixconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
