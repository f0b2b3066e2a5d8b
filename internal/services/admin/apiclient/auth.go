package apiclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	apperrors "github.com/louisbranch/tableside/internal/platform/errors"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges operator credentials for a bearer token and identity.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.call(ctx, opLogin, c.credential(), http.MethodPost, "/admin/login", func(req *resty.Request) {
		req.SetBody(loginRequest{Email: email, Password: password})
	}, &result)
	if err != nil {
		return LoginResult{}, err
	}
	if strings.TrimSpace(result.Token) == "" {
		return LoginResult{}, apperrors.New(apperrors.CodeAuthentication, "Login failed")
	}
	return result, nil
}

// CurrentUser resolves the identity behind token via GET /admin/me.
// The token is sent explicitly so a credential can be checked before it is
// adopted by the session.
func (c *Client) CurrentUser(ctx context.Context, token string) (User, error) {
	if strings.TrimSpace(token) == "" {
		return User{}, apperrors.New(apperrors.CodeSessionInvalid, "credential is required")
	}
	var user User
	if err := c.call(ctx, opCurrentUser, token, http.MethodGet, "/admin/me", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
