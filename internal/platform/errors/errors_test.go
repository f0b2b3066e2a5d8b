package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load orders: %w", Wrap(CodeNetwork, "fetch orders", stderrors.New("dial tcp: refused")))

	if !stderrors.Is(err, ErrNetwork) {
		t.Fatal("expected wrapped error to match ErrNetwork")
	}
	if stderrors.Is(err, ErrValidation) {
		t.Fatal("did not expect wrapped error to match ErrValidation")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: New(CodeValidation, "table number is required"), want: "table number is required"},
		{name: "message and cause", err: Wrap(CodeNetwork, "fetch orders", stderrors.New("timeout")), want: "fetch orders: timeout"},
		{name: "cause only", err: Wrap(CodeNetwork, "", stderrors.New("timeout")), want: "timeout"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf(plain) = %q, want %q", got, CodeUnknown)
	}
	wrapped := fmt.Errorf("login: %w", New(CodeAuthentication, "Invalid credentials"))
	if got := CodeOf(wrapped); got != CodeAuthentication {
		t.Fatalf("CodeOf(wrapped) = %q, want %q", got, CodeAuthentication)
	}
	if got := MessageOf(wrapped); got != "Invalid credentials" {
		t.Fatalf("MessageOf(wrapped) = %q", got)
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeAuthentication: http.StatusUnauthorized,
		CodeSessionInvalid: http.StatusUnauthorized,
		CodeValidation:     http.StatusUnprocessableEntity,
		CodeRejected:       http.StatusConflict,
		CodeNetwork:        http.StatusBadGateway,
		CodeUnknown:        http.StatusInternalServerError,
	}
	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Fatalf("%s.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
}
