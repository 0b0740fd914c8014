package ops

import (
	"strings"

	"entrypoint/internal/catalog"
	"entrypoint/internal/errors"
	"entrypoint/internal/route"
)

// ShareInput contains parameters for the Share operation.
type ShareInput struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// ShareOutput contains the share fragment and, when a base URL was
// given, the full link.
type ShareOutput struct {
	ID       string `json:"id"`
	Fragment string `json:"fragment"`
	URL      string `json:"url,omitempty"`
}

// Share builds the shareable fragment for a posting. The posting must
// exist in the catalog.
func Share(cat *catalog.Catalog, input ShareInput) (*ShareOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id must not be empty")
	}
	if _, ok := cat.ByID(id); !ok {
		return nil, errors.NewNotFound(id)
	}

	out := &ShareOutput{
		ID:       id,
		Fragment: route.ShareFragment(id),
	}
	if base := strings.TrimSpace(input.BaseURL); base != "" {
		out.URL = strings.TrimRight(base, "/") + "/" + out.Fragment
	}
	return out, nil
}
