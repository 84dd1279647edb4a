package greeting

import (
	"fmt"
	"net/http"

	"gitlab.com/tachyons/greeter/internal/logging"
	"gitlab.com/tachyons/greeter/internal/request"
	"gitlab.com/tachyons/greeter/metrics"
)

// DefaultName is substituted into the greeting when the request carries no
// usable `name` parameter.
const DefaultName = "world"

const contentTypePlain = "text/plain"

// Leading and trailing newlines are part of the greeting.
const greetingFormat = `
hello %s
you are visitor number %d

pass the 'name' parameter to receive a warm personal greeting.
`

// Handler dispatches classified requests against the state of one server
// instance. It always produces a Response; only the root route mutates
// state.
type Handler struct {
	state       *State
	defaultName string
}

// NewHandler returns a Handler bound to the given state. An empty
// defaultName falls back to DefaultName.
func NewHandler(state *State, defaultName string) *Handler {
	if defaultName == "" {
		defaultName = DefaultName
	}

	return &Handler{
		state:       state,
		defaultName: defaultName,
	}
}

// Handle produces the response for an already classified request.
func (h *Handler) Handle(route Route, r *http.Request) Response {
	if route != RouteRoot {
		return h.notFound(r)
	}

	return h.greet(r)
}

func (h *Handler) greet(r *http.Request) Response {
	name := request.Param(r, "name", h.defaultName)

	count := h.state.NextVisit()
	metrics.GreetingsServed.Inc()

	logging.LogRequest(r).Info("serving greeting")

	return OK(fmt.Sprintf(greetingFormat, name, count), contentTypePlain)
}

func (h *Handler) notFound(r *http.Request) Response {
	logging.LogRequest(r).Info("not found")

	return FromStatus(http.StatusNotFound, "Not Found: "+r.URL.Path, contentTypePlain)
}

// ServeHTTP classifies the request and writes the resulting response. This
// is the single handler the listeners are configured with.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Handle(Classify(r.URL.Path), r)

	if err := resp.Write(w); err != nil {
		logging.LogRequest(r).WithError(err).Error("failed to write response")
	}
}
