package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"testing"

	"entrypoint/internal/catalog"
	"entrypoint/internal/config"
	"entrypoint/internal/ops"
	"entrypoint/internal/posting"
	"entrypoint/internal/store"
)

// setupCatalog creates a store-backed catalog for testing.
func setupCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	st := store.Open(t.TempDir())
	t.Cleanup(func() { st.Close() })
	return catalog.Load(st, 0)
}

// runApp runs the CLI with args and captures stdout.
func runApp(t *testing.T, cat *catalog.Catalog, args ...string) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStdout := os.Stdout
	os.Stdout = w

	app := newCLIApp(cat, config.DefaultConfig(), nil, t.TempDir())
	runErr := app.Run(append([]string{"entrypoint"}, args...))

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String(), runErr
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty string", input: "", expected: nil},
		{name: "single value", input: "backend", expected: []string{"backend"}},
		{name: "multiple values", input: "backend,qa", expected: []string{"backend", "qa"}},
		{name: "values with spaces", input: " Go , SQL ", expected: []string{"Go", "SQL"}},
		{name: "blanks dropped", input: "a,,b,", expected: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCLIList(t *testing.T) {
	cat := setupCatalog(t)

	out, err := runApp(t, cat, "list", "--directions", "qa")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var result ops.ListOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(result.Items) == 0 {
		t.Fatal("no QA postings listed")
	}
	for _, item := range result.Items {
		if item.Direction != posting.DirQA {
			t.Errorf("item %s has direction %s", item.ID, item.Direction)
		}
	}
}

func TestCLIGet(t *testing.T) {
	cat := setupCatalog(t)

	out, err := runApp(t, cat, "get", "avito-backend-go-intern")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	var result ops.GetOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.ID != "avito-backend-go-intern" {
		t.Errorf("id = %q", result.ID)
	}
}

func TestCLIGetUnknownID(t *testing.T) {
	cat := setupCatalog(t)

	_, err := runApp(t, cat, "get", "no-such-posting")
	if err == nil {
		t.Fatal("get with unknown id should fail")
	}
}

func TestCLICreate(t *testing.T) {
	cat := setupCatalog(t)

	out, err := runApp(t, cat, "create",
		"--company", "Рога и Копыта",
		"--title", "Go Intern",
		"--format", "Remote",
		"--pitch", "Пишем сервисы",
		"--telegram", "https://t.me/roga",
		"--email", "hr@roga.ru",
	)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var result ops.CreateOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.City != posting.CityAny {
		t.Errorf("remote posting city = %q, want Any", result.City)
	}
	if _, ok := cat.ByID(result.ID); !ok {
		t.Error("created posting not in catalog")
	}
}

func TestCLIShare(t *testing.T) {
	cat := setupCatalog(t)

	out, err := runApp(t, cat, "share", "avito-backend-go-intern",
		"--base-url", "https://entrypoint.example")
	if err != nil {
		t.Fatalf("share: %v", err)
	}

	var result ops.ShareOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.URL != "https://entrypoint.example/#/internship/avito-backend-go-intern" {
		t.Errorf("url = %q", result.URL)
	}
}

func TestCLIUniversities(t *testing.T) {
	cat := setupCatalog(t)

	out, err := runApp(t, cat, "universities", "бауманка")
	if err != nil {
		t.Fatalf("universities: %v", err)
	}

	var result ops.MatchUniversitiesOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].ID != "BMSTU" {
		t.Errorf("candidates = %+v, want BMSTU first", result.Candidates)
	}
}

func TestCLIExport(t *testing.T) {
	cat := setupCatalog(t)
	path := t.TempDir() + "/export.json"

	out, err := runApp(t, cat, "export", "--path", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var result ops.ExportOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if result.Count != len(posting.Seed()) {
		t.Errorf("Count = %d, want %d", result.Count, len(posting.Seed()))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
