package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/pyoushmadan10/chatify/internal/config"
	"github.com/pyoushmadan10/chatify/internal/logging"
)

// ConfigForTests loads .env.test from the project root and returns the
// resulting configuration. Tests are skipped when no database is configured.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Logf("No .env.test file found, relying on environment variables: %v", err)
	}
	// t.Setenv scopes the values to this test.
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg := config.Load()
	if cfg.GetDBURL() == "" || cfg.GetDBNs() == "" || cfg.GetDBDb() == "" {
		t.Skip("SURREAL_URL, SURREAL_NS and SURREAL_DB must be set for integration tests")
	}

	logging.New()
	return cfg
}
