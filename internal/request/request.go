package request

import "net/http"

// SchemeHTTP name for the HTTP scheme
const SchemeHTTP = "http"

// SchemeHTTPS name for the HTTPS scheme
const SchemeHTTPS = "https"

// IsHTTPS checks whether the request originated from HTTP or HTTPS
func IsHTTPS(r *http.Request) bool {
	return r.URL.Scheme == SchemeHTTPS
}

// Param returns the value of the given query parameter, or fallback when
// the parameter is absent or empty. When a key repeats, the first
// occurrence wins, matching url.Values.Get.
func Param(r *http.Request, key, fallback string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}

	return fallback
}
