package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment line\nFOO=bar\nQUOTED=\"hello world\"\n\nBROKENLINE\nPRESET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("PRESET", "from-env")
	t.Setenv("FOO", "")
	t.Setenv("QUOTED", "")

	LoadEnvFile(path)

	if got := os.Getenv("FOO"); got != "bar" {
		t.Errorf("FOO = %q, want bar", got)
	}
	if got := os.Getenv("QUOTED"); got != "hello world" {
		t.Errorf("QUOTED = %q, want unquoted value", got)
	}
	if got := os.Getenv("PRESET"); got != "from-env" {
		t.Errorf("PRESET = %q, existing environment must win", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	// Must not panic or alter the environment.
	LoadEnvFile(filepath.Join(t.TempDir(), "does-not-exist"))
}
