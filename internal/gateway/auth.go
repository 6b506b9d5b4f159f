package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/buildmaintain/bm/internal/apiclient"
	"github.com/buildmaintain/bm/internal/types"
)

// Auth wraps the authentication endpoints. These are the only calls that go
// out without a bearer token.
type Auth struct {
	client *apiclient.Client
}

// NewAuth builds the auth gateway.
func NewAuth(client *apiclient.Client) *Auth {
	return &Auth{client: client}
}

// Login exchanges credentials for a session.
func (a *Auth) Login(ctx context.Context, creds types.LoginCredentials) (types.AuthSession, error) {
	return call[types.AuthSession](ctx, a.client, http.MethodPost, "/auth/login", creds)
}

// Register creates an account and returns the resulting session.
func (a *Auth) Register(ctx context.Context, form types.RegisterForm) (types.AuthSession, error) {
	return call[types.AuthSession](ctx, a.client, http.MethodPost, "/auth/register", form)
}

// ForgotPassword requests a reset email for the address.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := call[json.RawMessage](ctx, a.client, http.MethodPost, "/auth/forgot-password", body)
	return err
}

// ResetPassword redeems a reset token for a new password.
func (a *Auth) ResetPassword(ctx context.Context, token, password, confirmPassword string) (types.AuthSession, error) {
	body := map[string]string{
		"password":        password,
		"confirmPassword": confirmPassword,
	}
	return call[types.AuthSession](ctx, a.client, http.MethodPost, "/auth/reset-password/"+token, body)
}

// ChangePassword rotates the password for the authenticated user.
func (a *Auth) ChangePassword(ctx context.Context, currentPassword, newPassword, confirmPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}
	_, err := call[json.RawMessage](ctx, a.client, http.MethodPost, "/auth/change-password", body)
	return err
}

// Refresh exchanges a refresh token for a fresh session.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (types.AuthSession, error) {
	body := map[string]string{"refreshToken": refreshToken}
	return call[types.AuthSession](ctx, a.client, http.MethodPost, "/auth/refresh-token", body)
}
