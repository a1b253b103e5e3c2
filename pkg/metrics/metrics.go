package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formdrop", Name: "submissions_total", Help: "Form submissions by result (stored|invalid|unavailable|failed)."},
		[]string{"result"},
	)
	SeedReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formdrop", Name: "seed_reads_total", Help: "Static seed reads by result (ok|error)."},
		[]string{"result"},
	)
	DBAvailable = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "formdrop", Name: "db_available", Help: "1 when the document store handle is connected, 0 when unavailable."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formdrop", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "formdrop", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(Submissions)
	reg.MustRegister(SeedReads)
	reg.MustRegister(DBAvailable)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

// SetDBAvailable records the handle state observed at startup.
func SetDBAvailable(ok bool) {
	if ok {
		DBAvailable.Set(1)
		return
	}
	DBAvailable.Set(0)
}
