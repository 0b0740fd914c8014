package university

import (
	"slices"
	"strings"
	"unicode/utf8"

	"entrypoint/internal/posting"
)

// Match score tiers, best first. The first tier that applies wins; an
// entry matching no tier is excluded entirely.
const (
	scoreShortPrefix   = 0
	scoreFullPrefix    = 1
	scoreAliasPrefix   = 2
	scoreShortContains = 3
	scoreFullContains  = 4
	scoreAliasContains = 5
)

// Candidate is one ranked match against the reference list.
type Candidate struct {
	ID    string `json:"id"`
	Short string `json:"short"`
	Full  string `json:"full"`
	Score int    `json:"score"`
}

// Match ranks the reference list against a free-text query. The query is
// normalized first, so Match(q) and Match(Normalize(q)) are identical.
// Results are sorted by score, then by ascending short-label length so
// concise canonical names win ties. The full list is evaluated on every
// call; an empty or whitespace-only query yields no candidates.
func Match(query string) []Candidate {
	q := posting.Normalize(query)
	if q == "" {
		return nil
	}

	var out []Candidate
	for _, e := range Entries {
		score, ok := scoreEntry(e, q)
		if !ok {
			continue
		}
		out = append(out, Candidate{ID: e.ID, Short: e.Short, Full: e.Full, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if a.Score != b.Score {
			return a.Score - b.Score
		}
		return utf8.RuneCountInString(a.Short) - utf8.RuneCountInString(b.Short)
	})
	return out
}

// scoreEntry evaluates the tiers in fixed order for one entry against a
// normalized query.
func scoreEntry(e Entry, q string) (int, bool) {
	short := posting.Normalize(e.Short)
	full := posting.Normalize(e.Full)
	aliases := make([]string, len(e.Aliases))
	for i, a := range e.Aliases {
		aliases[i] = posting.Normalize(a)
	}

	switch {
	case strings.HasPrefix(short, q):
		return scoreShortPrefix, true
	case strings.HasPrefix(full, q):
		return scoreFullPrefix, true
	case anyPrefix(aliases, q):
		return scoreAliasPrefix, true
	case strings.Contains(short, q):
		return scoreShortContains, true
	case strings.Contains(full, q):
		return scoreFullContains, true
	case anyContains(aliases, q):
		return scoreAliasContains, true
	}
	return 0, false
}

func anyPrefix(ss []string, q string) bool {
	for _, s := range ss {
		if strings.HasPrefix(s, q) {
			return true
		}
	}
	return false
}

func anyContains(ss []string, q string) bool {
	for _, s := range ss {
		if strings.Contains(s, q) {
			return true
		}
	}
	return false
}
