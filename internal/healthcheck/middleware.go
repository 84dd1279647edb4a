package healthcheck

import (
	"io"
	"net/http"
)

// NewMiddleware short-circuits requests for the configured status path so
// they never reach the greeting handler or count as visits.
func NewMiddleware(handler http.Handler, statusPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != statusPath {
			handler.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "success\n")
	})
}
