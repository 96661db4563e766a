package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderExposesObservations(t *testing.T) {
	rec := NewRecorder()
	rec.Observe("control_light", "ok", 42*time.Millisecond)
	rec.Observe("control_light", "invalid", time.Millisecond)

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `casa_tool_calls_total{outcome="ok",tool="control_light"} 1`)
	assert.Contains(t, string(body), `casa_tool_calls_total{outcome="invalid",tool="control_light"} 1`)
	assert.Contains(t, string(body), "casa_tool_call_duration_seconds")
}

func TestRecordersDoNotCollide(t *testing.T) {
	// Each recorder owns its registry, so two instances can coexist.
	assert.NotPanics(t, func() {
		_ = NewRecorder()
		_ = NewRecorder()
	})
}
