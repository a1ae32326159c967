/*
Package observability turns dispatch loop events into Prometheus metrics.

Metrics registers its collectors on a caller-supplied registry and exposes them as
domain.LoopHooks, so the loop itself never imports Prometheus:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	r := runner.NewRunner(runner.WithHooks(m.Hooks()))

	go http.ListenAndServe(":9090", observability.Handler(reg))
*/
package observability
