package fontface

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/zeromicro/go-zero/core/metric"
	"github.com/zeromicro/go-zero/core/prometheus"
)

var (
	fetchTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "fontface",
		Subsystem: "fetch",
		Name:      "requests_total",
		Help:      "Stylesheet requests by outcome",
		Labels:    []string{"result"},
	})

	fetchDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "fontface",
		Subsystem: "fetch",
		Name:      "duration_seconds",
		Help:      "Stylesheet fetch and write duration in seconds",
		Labels:    []string{"result"},
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

func observeFetch(result string, start time.Time) {
	fetchTotal.Inc(result)
	fetchDuration.ObserveFloat(time.Since(start).Seconds(), result)
}

// EnableMetrics turns on recording of the fetch metrics.
func EnableMetrics() {
	prometheus.Enable()
}

// WriteMetrics writes every registered metric to path in the text format
// read by the node_exporter textfile collector.
func WriteMetrics(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	return prom.WriteToTextfile(path, prom.DefaultGatherer)
}
