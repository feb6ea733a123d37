package gallery

import "github.com/zeromicro/go-zero/core/metric"

var (
	reloadsTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailgallery",
		Subsystem: "gallery",
		Name:      "reloads_total",
		Help:      "Dataset reloads by language and outcome",
		Labels:    []string{"language", "result"},
	})

	reloadDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "mailgallery",
		Subsystem: "gallery",
		Name:      "reload_duration_seconds",
		Help:      "Full translation fan-out duration in seconds",
		Labels:    []string{"language"},
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
)
