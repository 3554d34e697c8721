package observability

import (
	"context"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "statenav"

// Metrics holds the collectors updated by the navigation hooks.
type Metrics struct {
	Navigations        *prometheus.CounterVec
	NavigationDuration *prometheus.HistogramVec
	Transitions        *prometheus.CounterVec
	TransitionDuration prometheus.Histogram
	PathAttempts       prometheus.Counter
	PathScore          prometheus.Histogram
	ActiveChanges      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Navigations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigations_total",
			Help:      "Completed OpenState calls by outcome.",
		}, []string{"outcome"}),
		NavigationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "navigation_duration_seconds",
			Help:      "Duration of OpenState calls, recovery included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Executed transitions by result.",
		}, []string{"result"}),
		TransitionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transition_duration_seconds",
			Help:      "Duration of single transition hops.",
			Buckets:   prometheus.DefBuckets,
		}),
		PathAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_attempts_total",
			Help:      "Paths the navigator started to walk.",
		}),
		PathScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_score",
			Help:      "Score of attempted paths.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		ActiveChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "active_state_changes_total",
			Help:      "Active-set changes by direction.",
		}, []string{"change"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.Navigations,
			m.NavigationDuration,
			m.Transitions,
			m.TransitionDuration,
			m.PathAttempts,
			m.PathScore,
			m.ActiveChanges,
		)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(result(e.OK)).Inc()
			m.TransitionDuration.Observe(e.Duration.Seconds())
		},
		OnPathAttempt: func(_ context.Context, e *domain.PathEvent) {
			m.PathAttempts.Inc()
			m.PathScore.Observe(float64(e.Score))
		},
		OnNavigation: func(_ context.Context, e *domain.NavigationEvent) {
			outcome := string(e.Outcome)
			m.Navigations.WithLabelValues(outcome).Inc()
			m.NavigationDuration.WithLabelValues(outcome).Observe(e.Duration.Seconds())
		},
		OnStateChanged: func(_ context.Context, e *domain.StateEvent) {
			m.ActiveChanges.WithLabelValues(change(e)).Inc()
		},
	}
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

func change(e *domain.StateEvent) string {
	switch {
	case e.Active:
		return "activated"
	case e.Hidden:
		return "hidden"
	}
	return "deactivated"
}

