package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/madhatterpub/site/internal/config"
	"github.com/madhatterpub/site/internal/logging"
)

// ProjectRoot walks up from the working directory to the folder holding
// go.mod.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}

// ConfigForTests loads the .env.test file and returns a valid config.Provider.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(ProjectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}

	// t.Setenv restores the previous values when the test ends.
	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New(env["LOG_FORMAT"], env["LOG_LEVEL"])
	return config.FromEnv()
}
