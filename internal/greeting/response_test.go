package greeting

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseForms(t *testing.T) {
	ok := OK("hi", "text/plain")
	require.Equal(t, http.StatusOK, ok.Status)

	teapot := FromStatus(http.StatusTeapot, "short and stout", "text/plain")
	require.Equal(t, http.StatusTeapot, teapot.Status)
	require.Equal(t, "short and stout", teapot.Body)
}

func TestResponseWritePassesThroughUnchanged(t *testing.T) {
	resp := FromStatus(http.StatusNotFound, "Not Found: /missing", "text/plain")

	rr := httptest.NewRecorder()
	require.NoError(t, resp.Write(rr))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	require.Equal(t, "19", rr.Header().Get("Content-Length"))
	require.Equal(t, "Not Found: /missing", rr.Body.String())
}
