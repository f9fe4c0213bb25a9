package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBuild(t *testing.T) {
	before := testutil.ToFloat64(BuildsCounter("unknown", OutcomeMissingConfiguration))
	ObserveBuild("", OutcomeMissingConfiguration)
	assert.Equal(t, before+1, testutil.ToFloat64(BuildsCounter("unknown", OutcomeMissingConfiguration)))
}

func TestObserveStoreWritten(t *testing.T) {
	before := testutil.ToFloat64(StoresCounter(KindKeystore))
	ObserveStoreWritten(KindKeystore)
	assert.Equal(t, before+1, testutil.ToFloat64(StoresCounter(KindKeystore)))
}

func TestHandlerExposesCounters(t *testing.T) {
	ObserveBuild("SSL", OutcomeOK)

	rec := httptest.NewRecorder()
	NewPromHttpHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `kafkaconn_builds_total{outcome="ok",protocol="SSL"}`)
}
