package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_registrations_total",
			Help: "Total number of member registrations",
		},
	)

	ReferralBonusesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_referral_bonuses_total",
			Help: "Total number of referral bonus credits",
		},
	)

	WithdrawalsResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_withdrawals_resolved_total",
			Help: "Total number of resolved withdraw requests",
		},
		[]string{"status"},
	)

	ROICreditsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_roi_credits_total",
			Help: "Total number of ROI credit operations",
		},
	)
)
