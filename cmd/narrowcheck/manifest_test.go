package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "narrowcheck.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[package]
name = "demo"

[check]
paths = ["src", "lib"]
werror = true
`)

	manifest, ok, err := loadProjectManifest(dir)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Errorf("package name = %q", manifest.Config.Package.Name)
	}
	if !manifest.Config.Check.Werror {
		t.Error("werror should be true")
	}

	targets := manifest.checkTargets()
	if len(targets) != 2 {
		t.Fatalf("want 2 targets, got %v", targets)
	}
	if targets[0] != filepath.Join(manifest.Root, "src") {
		t.Errorf("unexpected target %q", targets[0])
	}
}

func TestLoadProjectManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `[package]
name = "demo"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := loadProjectManifest(nested)
	if err != nil {
		t.Fatalf("loadProjectManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	// Без [check].paths проверяется весь проект.
	targets := manifest.checkTargets()
	if len(targets) != 1 || targets[0] != manifest.Root {
		t.Fatalf("want project root, got %v", targets)
	}
}

func TestLoadProjectManifestRejectsMissingName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `[check]
werror = true
`)

	_, ok, err := loadProjectManifest(dir)
	if !ok {
		t.Fatal("manifest file exists, ok should be true")
	}
	if err == nil {
		t.Fatal("want error for missing [package].name")
	}
}

func TestFindNarrowcheckTomlMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := findNarrowcheckToml(dir)
	if err != nil {
		t.Fatalf("findNarrowcheckToml: %v", err)
	}
	if ok {
		t.Fatal("no manifest should be found in an empty temp dir")
	}
}
