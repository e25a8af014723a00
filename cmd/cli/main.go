package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/specialistvlad/jmxforge/internal/cli"
)

// main is the entrypoint for the jmxforge application.
func main() {
	// Use a minimal logger until a command configures the full one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
