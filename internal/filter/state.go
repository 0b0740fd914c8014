// Package filter implements the multi-dimensional predicate engine that
// decides whether a posting matches the active filter set.
package filter

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// State is the query a user is currently expressing. Selection sets are
// independent dimensions; an empty set means "no constraint" for that
// dimension. The engine reads State but never mutates it.
type State struct {
	Query string

	Universities mapset.Set[string]
	Cities       mapset.Set[string]
	Directions   mapset.Set[string]
	Formats      mapset.Set[string]
	// Starts holds start tokens: season labels or the ASAP literal.
	Starts mapset.Set[string]
	Stack  mapset.Set[string]

	// ProfileGPA is the student's average grade on the 0-10 scale.
	ProfileGPA *float64
	// ProfileCourse is the student's course number, 1-4.
	ProfileCourse *int
	// SalaryMin is the salary floor in rubles.
	SalaryMin *int
}

// NewState returns an empty filter state: every dimension unconstrained.
func NewState() *State {
	return &State{
		Universities: mapset.NewSet[string](),
		Cities:       mapset.NewSet[string](),
		Directions:   mapset.NewSet[string](),
		Formats:      mapset.NewSet[string](),
		Starts:       mapset.NewSet[string](),
		Stack:        mapset.NewSet[string](),
	}
}

// Reset clears every dimension in place.
func (s *State) Reset() {
	s.Query = ""
	s.Universities.Clear()
	s.Cities.Clear()
	s.Directions.Clear()
	s.Formats.Clear()
	s.Starts.Clear()
	s.Stack.Clear()
	s.ProfileGPA = nil
	s.ProfileCourse = nil
	s.SalaryMin = nil
}

// Toggle flips membership of value in set.
func Toggle(set mapset.Set[string], value string) {
	if set.Contains(value) {
		set.Remove(value)
	} else {
		set.Add(value)
	}
}
