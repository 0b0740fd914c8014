// Package ops implements the operations exposed by the CLI, HTTP, and
// MCP surfaces. Each operation takes an Input struct and returns an
// Output struct, keeping the surfaces thin.
package ops

import (
	"time"

	"entrypoint/internal/posting"
)

// Limits shared across operations.
const (
	DefaultListLimit    = 50
	MaxListLimit        = 200
	DefaultSuggestLimit = 12
	MaxSuggestLimit     = 50
	MaxStackTags        = 12
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// Summary is the listing-row projection of a posting.
type Summary struct {
	ID            string   `json:"id"`
	Company       string   `json:"company"`
	LogoText      string   `json:"logoText"`
	RoleTitle     string   `json:"roleTitle"`
	SalaryLabel   string   `json:"salaryLabel"`
	LocationLabel string   `json:"locationLabel"`
	Direction     string   `json:"direction"`
	Format        string   `json:"format"`
	City          string   `json:"city"`
	Stack         []string `json:"stack"`
	Season        string   `json:"season"`
	ASAP          bool     `json:"asap,omitempty"`
	Hot           bool     `json:"hot,omitempty"`
	PostedLabel   string   `json:"postedLabel"`
	ShortPitch    string   `json:"shortPitch"`
	UserCreated   bool     `json:"userCreated,omitempty"`
}

// postedLabel renders the publication date relative to now.
func postedLabel(p *posting.Posting, now time.Time) string {
	return posting.FormatRelativeDate(p.PostedAt, now)
}

// summarize projects a posting onto its listing row.
func summarize(p *posting.Posting, postedLabel string) Summary {
	stack := p.Stack
	if stack == nil {
		stack = []string{}
	}
	return Summary{
		ID:            p.ID,
		Company:       p.Company,
		LogoText:      posting.LogoText(p.Company),
		RoleTitle:     p.RoleTitle,
		SalaryLabel:   p.SalaryLabel,
		LocationLabel: p.LocationLabel,
		Direction:     p.Direction,
		Format:        p.Format,
		City:          p.City,
		Stack:         stack,
		Season:        p.Season,
		ASAP:          p.ASAP,
		Hot:           p.Hot,
		PostedLabel:   postedLabel,
		ShortPitch:    p.ShortPitch,
		UserCreated:   p.UserCreated,
	}
}
