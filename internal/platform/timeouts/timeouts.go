// Package timeouts defines shared timeout constants used across the dashboard.
// Centralizing these values keeps HTTP server and remote API budgets aligned.
package timeouts

import "time"

// APIRequest caps a single call from the dashboard to the remote order API
// when no explicit timeout is configured.
const APIRequest = 10 * time.Second

// PageRequest caps the upstream work a page handler may do while rendering.
const PageRequest = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
