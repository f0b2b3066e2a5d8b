// Package apiclient is the dashboard's gateway to the remote order API.
//
// Every call attaches the current operator credential as a bearer token when
// one exists, tags the request with an X-Request-ID, and normalizes the
// {success, data, error} envelope into typed errors from platform/errors:
//
//   - transport failures and undecodable bodies become NETWORK_FAILURE
//   - 401/403 responses become SESSION_INVALID
//   - login rejections become AUTHENTICATION_FAILED
//   - any other success:false, even on HTTP 200, becomes REQUEST_REJECTED
package apiclient
