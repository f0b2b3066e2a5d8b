// Package errors provides the dashboard's structured error taxonomy.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"

	// CodeAuthentication marks rejected operator credentials at login.
	CodeAuthentication Code = "AUTHENTICATION_FAILED"
	// CodeSessionInvalid marks a stale or server-rejected credential.
	CodeSessionInvalid Code = "SESSION_INVALID"
	// CodeNetwork marks transport failures and undecodable responses.
	CodeNetwork Code = "NETWORK_FAILURE"
	// CodeValidation marks input rejected locally before any request is sent.
	CodeValidation Code = "VALIDATION_FAILED"
	// CodeRejected marks an application-level failure reported by the API
	// envelope (success:false) outside of login.
	CodeRejected Code = "REQUEST_REJECTED"
)

// HTTPStatus maps domain codes to the status the dashboard responds with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeAuthentication, CodeSessionInvalid:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeRejected:
		return http.StatusConflict
	case CodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the i18n key used to describe the code to operators.
func (c Code) MessageKey() string {
	switch c {
	case CodeAuthentication:
		return "error.authentication"
	case CodeSessionInvalid:
		return "error.session_invalid"
	case CodeNetwork:
		return "error.network"
	case CodeValidation:
		return "error.validation"
	case CodeRejected:
		return "error.rejected"
	default:
		return "error.unknown"
	}
}
