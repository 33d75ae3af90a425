package connect

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymdesk",
		Subsystem: "connect",
		Name:      "session_attempts_total",
		Help:      "Account-info fetch attempts made while establishing an embedding session.",
	})
	sessionRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymdesk",
		Subsystem: "connect",
		Name:      "session_retries_total",
		Help:      "Attempts retried because the connected account was not provisioned yet.",
	})
	sessionFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymdesk",
		Subsystem: "connect",
		Name:      "session_failures_total",
		Help:      "Session establishment runs that ended without an embedding handle.",
	})
)

func init() {
	prometheus.MustRegister(sessionAttempts, sessionRetries, sessionFailures)
}
