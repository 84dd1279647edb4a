package greeting

import "strings"

// Route is the classification outcome of a request path. It selects the
// handling logic for one dispatch.
type Route int

const (
	// RouteRoot is a request for `/` with no further path segments.
	RouteRoot Route = iota
	// RouteNotFound is any other path.
	RouteNotFound
)

func (r Route) String() string {
	if r == RouteRoot {
		return "root"
	}

	return "not_found"
}

// Classify maps a request path onto a Route. Only an empty path segment
// sequence selects RouteRoot; there is no prefix, wildcard or
// parameter-based matching.
func Classify(path string) Route {
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			return RouteNotFound
		}
	}

	return RouteRoot
}
