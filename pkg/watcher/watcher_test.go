package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDeliversDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scan.stl")
	if err := os.WriteFile(file, []byte("solid scan\nendsolid scan\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{file}, func(path string) {
		changed <- path
	}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(file, []byte("solid scan2\nendsolid scan2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(file)
		if path != abs {
			t.Errorf("Change path failed: expected %s, got %s", abs, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("No change event delivered")
	}
}

func TestWatchMissingFileFails(t *testing.T) {
	fw, err := New(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()

	if err := fw.Watch([]string{"/does/not/exist.stl"}, func(string) {}); err == nil {
		t.Error("Watching a missing file should fail")
	}
}
