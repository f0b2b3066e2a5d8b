// Package storage defines persistence contracts for operator-side state.
//
// The dashboard keeps almost nothing locally: orders, analytics and QR codes
// live behind the remote API. What survives restarts is the operator
// credential, so handlers and the session store depend on these interfaces
// rather than a concrete SQLite schema.
package storage
