// Package session owns the per-session filter state and the debounced
// recomputation loop that keeps results in sync with it.
package session

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"entrypoint/internal/catalog"
	"entrypoint/internal/filter"
	"entrypoint/internal/ops"
	"entrypoint/internal/posting"
	"entrypoint/internal/sched"
)

// DefaultResultCap bounds the result prefix delivered to the renderer.
// The engine itself never truncates.
const DefaultResultCap = 50

// Options configures a session.
type Options struct {
	// DebounceWindow is the trailing window for recomputation.
	// Non-positive values fall back to the scheduler default.
	DebounceWindow time.Duration
	// ResultCap bounds delivered results. Non-positive means DefaultResultCap.
	ResultCap int
	// OnResults receives the capped result set after each recomputation.
	OnResults func([]*posting.Posting)
}

// Session wires user input to the filter engine. Mutators update the
// filter state synchronously and schedule a debounced recomputation;
// a burst of mutations yields a single recomputation reflecting the
// final state. The debounced recomputation runs on a timer goroutine,
// so state and results are guarded by a mutex shared with the mutators.
// A session still expects a single mutating caller.
type Session struct {
	id  string
	cat *catalog.Catalog
	deb *sched.Debouncer

	mu      sync.Mutex
	state   *filter.State
	cap     int
	onRes   func([]*posting.Posting)
	results []*posting.Posting
}

// New creates a session over the given catalog.
func New(cat *catalog.Catalog, opts Options) *Session {
	capN := opts.ResultCap
	if capN <= 0 {
		capN = DefaultResultCap
	}
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	s := &Session{
		id:    ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String(),
		cat:   cat,
		state: filter.NewState(),
		deb:   sched.New(opts.DebounceWindow),
		cap:   capN,
		onRes: opts.OnResults,
	}
	s.Recompute()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State exposes the filter state for read-only consumers.
func (s *Session) State() *filter.State { return s.state }

// Results returns the result set from the last recomputation, capped
// for display.
func (s *Session) Results() []*posting.Posting {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cappedLocked()
}

// TotalMatches returns the uncapped match count from the last
// recomputation.
func (s *Session) TotalMatches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// cappedLocked returns the capped prefix. Callers hold s.mu.
func (s *Session) cappedLocked() []*posting.Posting {
	if len(s.results) > s.cap {
		return s.results[:s.cap]
	}
	return s.results
}

// Recompute runs the filter engine immediately, bypassing the debounce
// window, and delivers capped results to the callback.
func (s *Session) Recompute() {
	s.deb.CancelPending()
	s.recompute()
}

// recompute runs the engine over the current state and publishes the
// results. The callback is invoked outside the lock so it may read the
// session without deadlocking.
func (s *Session) recompute() {
	s.mu.Lock()
	s.results = filter.FilterAll(s.cat.All(), s.state)
	capped := s.cappedLocked()
	s.mu.Unlock()
	if s.onRes != nil {
		s.onRes(capped)
	}
}

// schedule queues a debounced recomputation. Later calls supersede
// earlier pending ones; the fired callback observes the state as of
// the moment it runs.
func (s *Session) schedule() {
	s.deb.Schedule(s.recompute)
}

// CreatePosting adds a posting to the underlying catalog and recomputes
// the result set immediately so the new posting is visible without
// waiting out the debounce window.
func (s *Session) CreatePosting(input ops.CreateInput) (*ops.CreateOutput, error) {
	out, err := ops.Create(s.cat, input)
	if err != nil {
		return nil, err
	}
	s.Recompute()
	return out, nil
}

// Flush runs any pending recomputation now. Tests use it to observe
// results without waiting out the window.
func (s *Session) Flush() { s.deb.Flush() }

// Close stops the scheduler.
func (s *Session) Close() { s.deb.Stop() }

// mutate applies fn to the filter state under the lock, then schedules
// a debounced recomputation.
func (s *Session) mutate(fn func(*filter.State)) {
	s.mu.Lock()
	fn(s.state)
	s.mu.Unlock()
	s.schedule()
}

// SetQuery replaces the free-text query.
func (s *Session) SetQuery(q string) {
	s.mutate(func(st *filter.State) { st.Query = q })
}

// ToggleUniversity flips a university selection.
func (s *Session) ToggleUniversity(id string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Universities, id) })
}

// ToggleCity flips a city selection.
func (s *Session) ToggleCity(city string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Cities, city) })
}

// ToggleDirection flips a direction selection.
func (s *Session) ToggleDirection(dir string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Directions, dir) })
}

// ToggleFormat flips a work-format selection.
func (s *Session) ToggleFormat(format string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Formats, format) })
}

// ToggleStart flips a start-token selection (season label or ASAP).
func (s *Session) ToggleStart(start string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Starts, start) })
}

// ToggleStack flips a stack-tag selection.
func (s *Session) ToggleStack(tag string) {
	s.mutate(func(st *filter.State) { filter.Toggle(st.Stack, tag) })
}

// ToggleCourse selects the course number, or clears it when the same
// course is toggled again. Values are clamped to 1-4.
func (s *Session) ToggleCourse(course int) {
	s.mutate(func(st *filter.State) {
		if st.ProfileCourse != nil && *st.ProfileCourse == course {
			st.ProfileCourse = nil
			return
		}
		c := clampInt(course, 1, 4)
		st.ProfileCourse = &c
	})
}

// SetGPAInput parses a free-form GPA entry. A decimal comma is accepted;
// unparseable or empty input clears the field. Values clamp to 0-10.
func (s *Session) SetGPAInput(raw string) {
	s.mutate(func(st *filter.State) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			st.ProfileGPA = nil
			return
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			st.ProfileGPA = nil
			return
		}
		v = math.Max(0, math.Min(10, v))
		st.ProfileGPA = &v
	})
}

// SetSalaryInput parses a free-form salary floor. Embedded spaces are
// tolerated (digit grouping); unparseable or empty input clears the
// field. Values clamp to 0-10,000,000 rubles.
func (s *Session) SetSalaryInput(raw string) {
	s.mutate(func(st *filter.State) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			st.SalaryMin = nil
			return
		}
		compact := strings.ReplaceAll(raw, " ", "")
		compact = strings.ReplaceAll(compact, " ", "")
		v, err := strconv.Atoi(compact)
		if err != nil {
			st.SalaryMin = nil
			return
		}
		v = clampInt(v, 0, 10_000_000)
		st.SalaryMin = &v
	})
}

// Reset clears every filter dimension and recomputes.
func (s *Session) Reset() {
	s.mutate(func(st *filter.State) { st.Reset() })
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
