package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/tachyons/greeter/internal/config"
	"gitlab.com/tachyons/greeter/internal/testhelpers"
)

func testConfig() *config.Config {
	return &config.Config{
		General: config.General{
			StatusPath:             "/-/status",
			PropagateCorrelationID: true,
		},
		Greeting: config.Greeting{DefaultName: "world"},
		Log:      config.Log{Format: "json"},
	}
}

func TestAppServesGreetingScenario(t *testing.T) {
	handler, err := newApp(testConfig()).buildHandler()
	require.NoError(t, err)

	rr := testhelpers.PerformRequest(t, handler, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "hello world")
	require.Contains(t, rr.Body.String(), "visitor number 1")

	rr = testhelpers.PerformRequest(t, handler, http.MethodGet, "/?name=Ada")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "hello Ada")
	require.Contains(t, rr.Body.String(), "visitor number 2")

	rr = testhelpers.PerformRequest(t, handler, http.MethodGet, "/foo")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Not Found: /foo", rr.Body.String())
}

func TestAppServesStatusPage(t *testing.T) {
	app := newApp(testConfig())
	handler, err := app.buildHandler()
	require.NoError(t, err)

	rr := testhelpers.PerformRequest(t, handler, http.MethodGet, "/-/status")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "success\n", rr.Body.String())

	require.Equal(t, uint64(0), app.state.Visits(), "status checks are not visits")
}

func TestAppStateIsSharedAcrossDispatches(t *testing.T) {
	app := newApp(testConfig())
	handler, err := app.buildHandler()
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		testhelpers.PerformRequest(t, handler, http.MethodGet, "/")
	}

	require.Equal(t, uint64(3), app.state.Visits())
}
