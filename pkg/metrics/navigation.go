package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NavigationFilterPasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deskflow_navigation_filter_passes_total",
		Help: "Completed navigation filter passes.",
	})

	// kind is one of: source, permissions, empty_result.
	NavigationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deskflow_navigation_fallbacks_total",
		Help: "Degraded-mode substitutions during navigation composition.",
	}, []string{"kind"})

	NavigationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deskflow_navigation_cache_hits_total",
		Help: "Filtered navigation trees served from cache.",
	})

	NavigationCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deskflow_navigation_cache_misses_total",
		Help: "Navigation requests that required a fresh filter pass.",
	})

	NavigationStaleResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deskflow_navigation_stale_results_total",
		Help: "Filter passes whose result was superseded before completion.",
	})
)
