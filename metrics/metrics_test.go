package metrics

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsCanBeScraped(t *testing.T) {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		GreetingsServed,
		RequestsTotal,
		SessionsActive,
	)

	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	testServer := httptest.NewServer(handler)
	defer testServer.Close()

	GreetingsServed.Inc()
	RequestsTotal.WithLabelValues("200", "GET").Inc()
	SessionsActive.Set(1)

	c, err := RequestsTotal.GetMetricWithLabelValues("200", "GET")
	require.NoError(t, err)
	require.Equal(t, float64(1), testutil.ToFloat64(c))

	res, err := http.Get(testServer.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := ioutil.ReadAll(res.Body)

	require.Contains(t, string(body), "greeter_greetings_served_total 1")
	require.Contains(t, string(body), `greeter_http_requests_total{code="200",method="GET"} 1`)
	require.Contains(t, string(body), "greeter_http_sessions_active 1")
}
