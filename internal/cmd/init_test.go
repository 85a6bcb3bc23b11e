package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCmd_WritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cmd := newInitCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config.yaml to exist: %v", err)
	}
	if !strings.Contains(buf.String(), path) {
		t.Errorf("output = %q, want it to contain %q", buf.String(), path)
	}
}

func TestInitCmd_DefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("RNG_RENAME_CONFIG", path)

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config at %s: %v", path, err)
	}
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("length: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %q, want it to contain 'already exists'", err.Error())
	}

	cmd = newInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--force", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
}
