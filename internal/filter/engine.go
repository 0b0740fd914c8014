package filter

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"entrypoint/internal/posting"
)

// Tolerance absorbs decimal-rounding noise on the numeric clause
// boundaries so entering "7.0" against a 7.0 minimum never flickers.
const Tolerance = 1e-6

// StartASAP is re-exported for callers assembling start-token sets.
const StartASAP = posting.StartASAP

// Matches reports whether a posting passes every active filter clause.
// Clauses combine with AND across dimensions; within a dimension the
// selected values combine with OR, and an empty selection passes
// unconditionally.
func Matches(p *posting.Posting, s *State) bool {
	if q := posting.Normalize(s.Query); q != "" {
		blob := posting.Normalize(strings.Join([]string{
			p.Company, p.RoleTitle, p.ShortPitch,
			strings.Join(p.Stack, " "), p.LocationLabel,
		}, " "))
		if !strings.Contains(blob, q) {
			return false
		}
	}

	if !s.Universities.IsEmpty() && !intersects(s.Universities, p.Universities) {
		return false
	}
	if !s.Cities.IsEmpty() && !s.Cities.Contains(p.City) {
		return false
	}
	if !s.Directions.IsEmpty() && !s.Directions.Contains(p.Direction) {
		return false
	}
	if !s.Formats.IsEmpty() && !s.Formats.Contains(p.Format) {
		return false
	}
	if !s.Stack.IsEmpty() && !intersects(s.Stack, p.Stack) {
		return false
	}

	if !s.Starts.IsEmpty() {
		okSeason := s.Starts.Contains(p.Season)
		okASAP := s.Starts.Contains(StartASAP) && p.ASAP
		if !okSeason && !okASAP {
			return false
		}
	}

	// Postings without a declared GPA minimum are never excluded here.
	if s.ProfileGPA != nil && p.MinGPA != nil {
		if *s.ProfileGPA+Tolerance < *p.MinGPA {
			return false
		}
	}

	if s.ProfileCourse != nil {
		course := float64(*s.ProfileCourse)
		if p.CourseMin != nil && course+Tolerance < float64(*p.CourseMin) {
			return false
		}
		if p.CourseMax != nil && course-Tolerance > float64(*p.CourseMax) {
			return false
		}
	}

	// Unlike GPA and course, a posting without a declared salary fails
	// the salary floor.
	if s.SalaryMin != nil {
		if p.SalaryMin == nil {
			return false
		}
		if float64(*p.SalaryMin)+Tolerance < float64(*s.SalaryMin) {
			return false
		}
	}

	return true
}

// FilterAll returns the postings matching s, preserving catalog order.
// The engine never truncates; display caps are the caller's concern.
func FilterAll(ps []*posting.Posting, s *State) []*posting.Posting {
	out := make([]*posting.Posting, 0, len(ps))
	for _, p := range ps {
		if Matches(p, s) {
			out = append(out, p)
		}
	}
	return out
}

// intersects reports whether any element of values is in set.
func intersects(set mapset.Set[string], values []string) bool {
	for _, v := range values {
		if set.Contains(v) {
			return true
		}
	}
	return false
}
