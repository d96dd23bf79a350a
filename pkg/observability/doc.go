/*
Package observability exposes Prometheus metrics for the scrambler engine.

Metrics are fed through domain.LifecycleHooks, so the engine itself stays free
of any metrics dependency:

	m := observability.NewMetrics(prometheus.DefaultRegisterer)
	eng := scrambler.New(scrambler.WithLifecycleHooks(m.Hooks()))
*/
package observability
