// Package metrics provides operational metrics collection for the dashboard.
//
// # Metric Categories
//
//   - Latency: remote API request duration by operation
//   - Errors: remote API outcomes by operation and error code
//   - Polling: refresh runs, skipped ticks and failures per view
//
// # Integration
//
// The API client and pollers record into a Registry, and the dashboard serves
// the registry in Prometheus exposition format on /metrics.
package metrics
