// Package route derives navigational state from location tokens and
// drives the list/detail view lifecycle.
package route

import "strings"

// Kind enumerates the three view states.
type Kind int

const (
	// List is the filtered-list view.
	List Kind = iota
	// Detail is the single-posting view; Route.ID names the posting.
	Detail
	// NotFound is the fallback for unresolvable tokens. Not an error.
	NotFound
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case List:
		return "list"
	case Detail:
		return "detail"
	default:
		return "notfound"
	}
}

// Route is the parsed navigational state. It has no storage of its own;
// it is recomputed from the location token on every navigation event.
type Route struct {
	Kind Kind
	// ID is set only for Detail routes.
	ID string
}

// detailPrefix is the fixed path segment for detail routes.
const detailPrefix = "internship"

// Parse maps a location token to a Route:
//
//	"" or "/"            → List
//	"/internship/<id>"   → Detail(id)
//	anything else        → NotFound
//
// A leading "#" is stripped so hash-style tokens parse the same way;
// empty path segments are dropped.
func Parse(token string) Route {
	token = strings.TrimPrefix(token, "#")

	parts := make([]string, 0, 3)
	for _, p := range strings.Split(token, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		return Route{Kind: List}
	}
	if parts[0] == detailPrefix && len(parts) > 1 {
		return Route{Kind: Detail, ID: parts[1]}
	}
	return Route{Kind: NotFound}
}

// ShareFragment builds the shareable location token for a posting.
func ShareFragment(id string) string {
	return "#/" + detailPrefix + "/" + id
}
