package ops

import (
	"entrypoint/internal/university"
)

// MatchUniversitiesInput contains parameters for the MatchUniversities
// operation.
type MatchUniversitiesInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"` // default: 12, max: 50
}

// MatchUniversitiesOutput contains the ranked candidate list.
type MatchUniversitiesOutput struct {
	Candidates []university.Candidate `json:"candidates"`
	Total      int                    `json:"total"`
}

// MatchUniversities resolves a free-text query into a ranked, bounded
// list of university candidates. An empty query yields no candidates.
func MatchUniversities(input MatchUniversitiesInput) (*MatchUniversitiesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	if limit > MaxSuggestLimit {
		limit = MaxSuggestLimit
	}

	candidates := university.Match(input.Query)
	total := len(candidates)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if candidates == nil {
		candidates = []university.Candidate{}
	}

	return &MatchUniversitiesOutput{
		Candidates: candidates,
		Total:      total,
	}, nil
}
