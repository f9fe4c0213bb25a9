// Package metrics exposes Prometheus counters for connection config builds.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Build outcomes.
const (
	OutcomeOK                   = "ok"
	OutcomeMissingConfiguration = "missing_configuration"
	OutcomeInvalidArgument      = "invalid_argument"
	OutcomeError                = "error"
)

// Store kinds.
const (
	KindTruststore = "truststore"
	KindKeystore   = "keystore"
)

// ObserveBuild counts one build. protocol is empty when the URL never parsed.
func ObserveBuild(protocol, outcome string) {
	if protocol == "" {
		protocol = "unknown"
	}
	buildsTotal.WithLabelValues(protocol, outcome).Inc()
}

// ObserveStoreWritten counts one store file.
func ObserveStoreWritten(kind string) {
	storesWrittenTotal.WithLabelValues(kind).Inc()
}

// BuildsCounter returns the counter for a protocol/outcome pair; used by tests.
func BuildsCounter(protocol, outcome string) prometheus.Counter {
	return buildsTotal.WithLabelValues(protocol, outcome)
}

// StoresCounter returns the counter for a store kind; used by tests.
func StoresCounter(kind string) prometheus.Counter {
	return storesWrittenTotal.WithLabelValues(kind)
}

// NewPromHttpHandler returns the /metrics handler.
func NewPromHttpHandler() http.Handler { return promhttp.Handler() }
