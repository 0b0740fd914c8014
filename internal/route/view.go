package route

import "entrypoint/internal/posting"

// Renderer receives view transitions. Rendering itself lives outside the
// engine; implementations translate these calls into whatever surface is
// attached (tests use a recording fake).
type Renderer interface {
	// MountList builds the list view. Called exactly once, on the first
	// navigation; afterwards the list is only shown or hidden so widget
	// and scroll state survive.
	MountList()
	ShowList()
	HideList()
	ShowDetail(p *posting.Posting)
	ShowNotFound()
	// ResetScroll jumps the viewport back to the top.
	ResetScroll()
	// SyncFilters re-asserts filter widgets from the authoritative filter
	// state, never trusting whatever the surface currently displays.
	SyncFilters()
	ShowWelcome()
	DismissWelcome()
}

// Lookup resolves a posting by ID for detail views.
type Lookup interface {
	ByID(id string) (*posting.Posting, bool)
}

// WelcomeGate reports whether the first-run overlay has been dismissed.
type WelcomeGate interface {
	WelcomeSeen() bool
}

// ViewController is the route/view state machine. Transitions happen
// only on Navigate calls (external navigation signals); there is no
// polling.
type ViewController struct {
	lookup      Lookup
	renderer    Renderer
	welcome     WelcomeGate
	recompute   func()
	listMounted bool
	current     Route
}

// NewViewController wires the state machine to its collaborators.
// recompute is invoked whenever the list view becomes active so results
// reflect the authoritative filter state.
func NewViewController(lookup Lookup, r Renderer, welcome WelcomeGate, recompute func()) *ViewController {
	return &ViewController{
		lookup:    lookup,
		renderer:  r,
		welcome:   welcome,
		recompute: recompute,
	}
}

// Current returns the active route.
func (vc *ViewController) Current() Route {
	return vc.current
}

// Navigate parses token and transitions to the corresponding view.
func (vc *ViewController) Navigate(token string) Route {
	r := Parse(token)

	if !vc.listMounted {
		vc.renderer.MountList()
		vc.listMounted = true
	}

	if r.Kind == List {
		vc.renderer.ShowList()
		vc.renderer.SyncFilters()
		if vc.recompute != nil {
			vc.recompute()
		}
		if vc.welcome != nil && !vc.welcome.WelcomeSeen() {
			vc.renderer.ShowWelcome()
		}
		vc.current = r
		return r
	}

	// Leaving the list: the overlay never follows onto other views.
	vc.renderer.DismissWelcome()
	vc.renderer.HideList()

	if r.Kind == Detail {
		if p, ok := vc.lookup.ByID(r.ID); ok {
			vc.renderer.ShowDetail(p)
		} else {
			vc.renderer.ShowNotFound()
		}
	} else {
		vc.renderer.ShowNotFound()
	}
	vc.renderer.ResetScroll()

	vc.current = r
	return r
}
