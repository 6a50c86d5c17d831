package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus returns a registry carrying the runtime collectors,
// a fitplan_build_info gauge labelled with the running version, and any extra collectors.
func SetupPrometheus(versionInfo string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	if versionInfo == "" {
		versionInfo = "unknown"
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "fitplan",
			Name:        "build_info",
			Help:        "Always 1, labelled with the running version",
			ConstLabels: prometheus.Labels{"version": versionInfo},
		}, func() float64 { return 1 }),
	)
	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}

// NewEntriesGauge exposes a size func, e.g. the plan cache entry count, as a gauge.
func NewEntriesGauge(namespace, subsystem, name string, entries func() int64) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      "Current number of entries",
	}, func() float64 { return float64(entries()) })
}
