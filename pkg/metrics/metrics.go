package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_submission_attempts_total",
			Help: "Total number of property creation requests sent, by outcome",
		},
		[]string{"outcome"},
	)
	SubmissionRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "property_submission_retries_total",
			Help: "Total number of property creation retries after a 503",
		},
	)
	SubmissionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "property_submission_duration_seconds",
			Help:    "Duration of a full property submission including retries",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	MongoOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)
	MongoErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_errors_total",
			Help: "Total number of MongoDB errors",
		},
		[]string{"operation", "collection"},
	)
)

// Init registers every collector with reg, or the default registry when reg is nil.
func Init(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(SubmissionAttemptsTotal)
	reg.MustRegister(SubmissionRetriesTotal)
	reg.MustRegister(SubmissionDuration)
	reg.MustRegister(HTTPRequestsTotal)
	reg.MustRegister(HTTPRequestDuration)
	reg.MustRegister(MongoOperationDuration)
	reg.MustRegister(MongoErrorsTotal)
}
