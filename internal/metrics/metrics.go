package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssembliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptbuilder_assemblies_total",
		Help: "Prompts assembled, by template and surface (web, api, cli).",
	}, []string{"template", "surface"})

	AssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "promptbuilder_assembly_duration_seconds",
		Help:    "Time spent substituting values into a template.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	AssemblyOutputBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "promptbuilder_assembly_output_bytes",
		Help:    "Size of assembled prompts.",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptbuilder_validation_failures_total",
		Help: "Submitted field values rejected by validation, by surface.",
	}, []string{"surface"})

	CatalogReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptbuilder_catalog_reloads_total",
		Help: "Catalog reloads triggered by file changes, by result.",
	}, []string{"result"})

	DraftResetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "promptbuilder_draft_resets_total",
		Help: "Drafts cleared by the annotator.",
	})
)

// ObserveAssembly records one assembled prompt.
func ObserveAssembly(template, surface string, started time.Time, output string) {
	AssembliesTotal.WithLabelValues(template, surface).Inc()
	AssemblyDuration.Observe(time.Since(started).Seconds())
	AssemblyOutputBytes.Observe(float64(len(output)))
}
