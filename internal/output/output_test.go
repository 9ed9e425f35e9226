package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "LandingPage", "content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "LandingPage.jsx") {
		t.Fatalf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	if _, err := Write(dir, "Page", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected dir created: %v", err)
	}
}

func TestWriteAvoidsCollisions(t *testing.T) {
	dir := t.TempDir()

	first, err := Write(dir, "Page", "one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Write(dir, "Page", "two")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := Write(dir, "Page", "three")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != filepath.Join(dir, "Page.jsx") {
		t.Fatalf("unexpected first path %q", first)
	}
	if second != filepath.Join(dir, "Page_1.jsx") {
		t.Fatalf("unexpected second path %q", second)
	}
	if third != filepath.Join(dir, "Page_2.jsx") {
		t.Fatalf("unexpected third path %q", third)
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("first file overwritten: %q", data)
	}
}
