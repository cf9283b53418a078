package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"title": "before"}`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"title": "after"}`), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				continue
			}
			if r.Config.Title == "after" {
				return
			}
		case <-deadline:
			t.Fatal("no reload within 3s")
		}
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Updates():
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_CloseClosesUpdates(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	select {
	case _, ok := <-w.Updates():
		if ok {
			t.Error("Updates should be closed")
		}
	case <-time.After(time.Second):
		t.Error("Updates not closed after Close")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	if _, err := Watch("/nonexistent/dir/config.json"); err == nil {
		t.Error("watching a missing directory should fail")
	}
}
