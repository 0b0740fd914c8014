package ops

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"

	"entrypoint/internal/catalog"
	"entrypoint/internal/errors"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path     string `json:"path,omitempty"` // default: baseDir/exports/catalog-<date>.json
	UserOnly bool   `json:"userOnly,omitempty"`
	BaseDir  string `json:"-"`
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// exportEnvelope is the on-disk export layout.
type exportEnvelope struct {
	Export     bool   `json:"_entrypoint_export"`
	ExportedAt string `json:"exported_at"`
	Count      int    `json:"count"`
	Postings   any    `json:"postings"`
}

// Export writes the merged catalog (or only the user-created postings)
// to a JSON file. The write is atomic: an existing file survives a
// failed export intact.
func Export(cat *catalog.Catalog, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

	posts := cat.All()
	if input.UserOnly {
		posts = cat.UserPosts()
	}

	exportPath := input.Path
	if exportPath == "" {
		name := fmt.Sprintf("catalog-%s.json", now.Format("2006-01-02"))
		exportPath = filepath.Join(input.BaseDir, "exports", name)
	}

	if err := os.MkdirAll(filepath.Dir(exportPath), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	data, err := json.MarshalIndent(exportEnvelope{
		Export:     true,
		ExportedAt: now.Format(time.RFC3339),
		Count:      len(posts),
		Postings:   posts,
	}, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to encode export: %w", err))
	}

	if err := atomic.WriteFile(exportPath, bytes.NewReader(data)); err != nil {
		return nil, errors.NewStoreUnavailable(fmt.Sprintf("failed to write export: %v", err))
	}

	return &ExportOutput{
		Path:       exportPath,
		Count:      len(posts),
		ExportedAt: now.Unix(),
	}, nil
}
