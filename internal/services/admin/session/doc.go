// Package session holds the operator's credential and identity for the
// dashboard process.
//
// A Store is constructed once and passed to every consumer. The credential
// is persisted through storage.CredentialStore so it survives restarts; the
// identity is only ever populated after the server confirms the credential,
// either at login or through Validate.
package session
