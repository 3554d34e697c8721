/*
Package observability turns navigation lifecycle events into Prometheus metrics.

Metrics is fed through domain.LifecycleHooks, so it composes with any other hook
consumer via LifecycleHooks.Merge:

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	engine, err := statenav.New("app.yaml", statenav.WithLifecycleHooks(metrics.Hooks()))
*/
package observability
