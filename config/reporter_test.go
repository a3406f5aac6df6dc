package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_CloseWritesArchive(t *testing.T) {
	tmpDir := t.TempDir()

	stored := filepath.Join(tmpDir, "stored.txt")
	if err := os.WriteFile(stored, []byte("file payload"), 0644); err != nil {
		t.Fatalf("failed to write stored file: %v", err)
	}

	conf := &ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.Store("stored.txt", stored)
	r.StoreData("config/active.yaml", []byte("version: 1\n"))
	r.Store("missing.log", filepath.Join(tmpDir, "no-such-file"))

	name := r.Name()
	if name == "" {
		t.Fatal("Name() returned empty string")
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("report is not a readable zip: %v", err)
	}
	defer zr.Close()

	got := make(map[string]bool)
	for _, f := range zr.File {
		got[f.Name] = true
	}

	for _, want := range []string{"MANIFEST", "stored.txt", "config/active.yaml"} {
		if !got[want] {
			t.Errorf("archive misses %q", want)
		}
	}
	if got["missing.log"] {
		t.Error("archive contains entry for an absent file")
	}
}

func TestReport_NilSafe(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("c", []byte("d"))
	if r.Name() != "" {
		t.Error("Name() on nil reporter should be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil reporter error = %v", err)
	}
}
