package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultsToUserHome(t *testing.T) {
	d, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if filepath.Base(d.Path()) != DefaultDirName {
		t.Errorf("path = %q", d.Path())
	}
}

func TestPaths(t *testing.T) {
	root := t.TempDir()
	d, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if d.ConfigPath() != filepath.Join(root, "config.yaml") {
		t.Errorf("ConfigPath = %q", d.ConfigPath())
	}
	if d.RuntimePackPath() != filepath.Join(root, "data", "prompts.runtime.json") {
		t.Errorf("RuntimePackPath = %q", d.RuntimePackPath())
	}
}

func TestEnsureExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "home")
	d, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if d.Exists() {
		t.Fatal("directory should not exist yet")
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}
	if !d.Exists() {
		t.Fatal("directory should exist")
	}
	if _, err := os.Stat(d.DataPath()); err != nil {
		t.Errorf("data dir missing: %v", err)
	}
	if d.ConfigExists() {
		t.Error("config file should not exist")
	}
}
