// Package admin serves the Progressive Bar operator dashboard.
//
// The dashboard is a thin client over the remote order API. It keeps one
// process-wide operator session and caches the latest dashboard, order and
// QR results so pages render without blocking on the network. Only the
// view an operator has open is refreshed in the background.
package admin
