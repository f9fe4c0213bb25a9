package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	buildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "kafkaconn_builds_total", Help: "connection config builds by protocol and outcome"},
		[]string{"protocol", "outcome"},
	)

	storesWrittenTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "kafkaconn_credential_stores_written_total", Help: "credential store files written"},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		buildsTotal,
		storesWrittenTotal,
	)
}
