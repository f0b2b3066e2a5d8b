// Package sqlite provides SQLite-backed persistence for the operator credential.
package sqlite
