package router

import (
	"fmt"
	"net/url"
	"strings"
)

// Route addresses one article as /{category}/{id}.
type Route struct {
	Category string
	ID       string
}

// Path renders the route with both segments escaped.
func (r Route) Path() string {
	return "/" + url.PathEscape(r.Category) + "/" + url.PathEscape(r.ID)
}

func (r Route) String() string {
	return r.Path()
}

// ParseRoute is the inverse of Route.Path.
func ParseRoute(path string) (Route, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Route{}, fmt.Errorf("router: %q is not a /{category}/{id} path", path)
	}

	category, err := url.PathUnescape(parts[0])
	if err != nil {
		return Route{}, fmt.Errorf("router: category: %w", err)
	}
	id, err := url.PathUnescape(parts[1])
	if err != nil {
		return Route{}, fmt.Errorf("router: id: %w", err)
	}
	return Route{Category: category, ID: id}, nil
}

// Navigator collects the route a screen asked to open. It satisfies the
// deck's navigation sink; the owning screen checks Pending once per frame.
type Navigator struct {
	pending *Route
}

// Navigate records the requested article. A later call replaces an earlier
// one that has not been taken yet.
func (n *Navigator) Navigate(category, id string) {
	n.pending = &Route{Category: category, ID: id}
}

// Pending reports the requested route without consuming it.
func (n *Navigator) Pending() (Route, bool) {
	if n.pending == nil {
		return Route{}, false
	}
	return *n.pending, true
}

// Take returns and clears the requested route.
func (n *Navigator) Take() (Route, bool) {
	r, ok := n.Pending()
	n.pending = nil
	return r, ok
}
