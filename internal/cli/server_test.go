package cli

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"testing/fstest"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRunServer(t *testing.T) {
	resetGlobals(t)
	port, metricsPort := freePort(t), freePort(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_PORT", strconv.Itoa(metricsPort))
	t.Setenv("APP_ENV", "integration")
	require.NoError(t, initializeConfig(&cobra.Command{}))

	frontendFS = fstest.MapFS{"public/index.html": {Data: []byte("<h1>landing</h1>")}}
	StartTime = time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx) }()

	base := "http://127.0.0.1:" + strconv.Itoa(port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get(base + "/api/health")
	require.NoError(t, err)
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "integration", health["environment"])

	resp, err = http.Get(base + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "landing")

	resp, err = http.Get("http://127.0.0.1:" + strconv.Itoa(metricsPort) + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "example_requests_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_PortInUse(t *testing.T) {
	resetGlobals(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))
	require.NoError(t, initializeConfig(&cobra.Command{}))
	frontendFS = fstest.MapFS{"public/index.html": {Data: []byte("x")}}

	err = runServer(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}

func TestRunServer_MissingAssets(t *testing.T) {
	resetGlobals(t)
	require.NoError(t, initializeConfig(&cobra.Command{}))
	frontendFS = fstest.MapFS{}

	err := runServer(context.Background())
	assert.ErrorContains(t, err, "public assets")
}

func TestUptime(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{500 * time.Millisecond, "now"},
		{45 * time.Second, "45 seconds"},
		{90 * time.Second, "1 minute"},
		{3 * time.Hour, "3 hours"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, uptime(start, start.Add(tc.elapsed)), tc.elapsed.String())
	}
}
