package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uafields/pkg/logger"
	"github.com/dmitrymomot/uafields/pkg/metrics"
	"github.com/dmitrymomot/uafields/pkg/requestid"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	h := newHandler(logger.New(logger.WithOutput(&logs)), metrics.New(metrics.Config{Namespace: "svc"}))
	srv := httptest.NewServer(h)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/track", strings.NewReader(`{"event":"signup","properties":{"plan":"pro"}}`))
	require.NoError(t, err)
	req.Header.Set("User-Agent", chromeWindows)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	assert.JSONEq(t, `{"data":{"event":"signup","properties":{"plan":"pro","$browser":"Chrome","$browser_version":91,"$os":"Windows"}}}`, string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `svc_classifications_total{browser="Chrome",device="none",os="Windows"} 1`)
	assert.Contains(t, logs.String(), `"path":"/track"`)
	assert.NotContains(t, logs.String(), `"path":"/metrics"`)
}
