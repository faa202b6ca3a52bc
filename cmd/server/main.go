package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/madhatterpub/site/cmd/madhatter/cmd"
)

// AppTemplates can be set at build time to force where static assets are
// served from.
// Example: go build -ldflags "-X 'main.AppTemplates=embed'"
var AppTemplates string

func main() {
	if AppTemplates != "" {
		os.Setenv("APP_TEMPLATES", AppTemplates)
	}
	if err := cmd.Serve(context.Background()); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
