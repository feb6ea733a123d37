package share

import "github.com/zeromicro/go-zero/core/metric"

var (
	sharesSent = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailgallery",
		Subsystem: "share",
		Name:      "sent_total",
		Help:      "Total shares delivered successfully.",
		Labels:    []string{"language"},
	})

	sharesFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailgallery",
		Subsystem: "share",
		Name:      "failed_total",
		Help:      "Total shares that failed delivery.",
		Labels:    []string{"language", "reason"},
	})

	sharesRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailgallery",
		Subsystem: "share",
		Name:      "retried_total",
		Help:      "Total share delivery retries.",
		Labels:    []string{"language"},
	})

	deliveryDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "mailgallery",
		Subsystem: "share",
		Name:      "delivery_duration_seconds",
		Help:      "Share delivery duration in seconds.",
		Labels:    []string{"language"},
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "mailgallery",
		Subsystem: "share",
		Name:      "queue_depth",
		Help:      "Current share count by tracked status.",
		Labels:    []string{"status"},
	})
)
