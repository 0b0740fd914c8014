package ops

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"entrypoint/internal/catalog"
	"entrypoint/internal/errors"
	"entrypoint/internal/posting"
)

func TestExportWritesCatalog(t *testing.T) {
	cat := catalog.Load(nil, 0)
	path := filepath.Join(t.TempDir(), "out.json")

	out, err := Export(cat, ExportInput{Path: path})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out.Count != len(posting.Seed()) {
		t.Errorf("Count = %d, want %d", out.Count, len(posting.Seed()))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var envelope struct {
		Export   bool              `json:"_entrypoint_export"`
		Count    int               `json:"count"`
		Postings []json.RawMessage `json:"postings"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if !envelope.Export || envelope.Count != len(envelope.Postings) {
		t.Errorf("envelope mismatch: %+v", envelope)
	}
}

func TestExportDefaultPath(t *testing.T) {
	cat := catalog.Load(nil, 0)
	base := t.TempDir()

	out, err := Export(cat, ExportInput{BaseDir: base})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if filepath.Dir(out.Path) != filepath.Join(base, "exports") {
		t.Errorf("default path = %q, want under %s/exports", out.Path, base)
	}
	if _, err := os.Stat(out.Path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestExportUnwritablePath(t *testing.T) {
	cat := catalog.Load(nil, 0)
	path := filepath.Join(t.TempDir(), "taken")
	if err := os.Mkdir(path, 0700); err != nil {
		t.Fatal(err)
	}

	_, err := Export(cat, ExportInput{Path: path})
	if !errors.Is(err, errors.ErrStoreUnavailable) {
		t.Errorf("err = %v, want STORE_UNAVAILABLE", err)
	}
}

func TestExportUserOnly(t *testing.T) {
	cat := catalog.Load(nil, 0)
	path := filepath.Join(t.TempDir(), "user.json")

	out, err := Export(cat, ExportInput{Path: path, UserOnly: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out.Count != 0 {
		t.Errorf("Count = %d, want 0 user postings", out.Count)
	}
}
