package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/api"
)

type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) api.Result[api.AuthPayload]
	VerifyOTP(ctx context.Context, req api.OTPRequest) api.Result[api.AuthPayload]
}

// Authenticator signs in through the API and stores the resulting session.
type Authenticator struct {
	api     AuthAPI
	session *SessionStore
}

func NewAuthenticator(authAPI AuthAPI, session *SessionStore) (*Authenticator, error) {
	if authAPI == nil {
		return nil, fmt.Errorf("auth API is nil")
	}
	if session == nil {
		return nil, fmt.Errorf("session store is nil")
	}

	return &Authenticator{api: authAPI, session: session}, nil
}

func (a *Authenticator) Login(ctx context.Context, creds api.Credentials) error {
	return a.signIn(ctx, a.api.Login(ctx, creds))
}

// VerifyOTP completes a signup and signs the new account in.
func (a *Authenticator) VerifyOTP(ctx context.Context, req api.OTPRequest) error {
	return a.signIn(ctx, a.api.VerifyOTP(ctx, req))
}

func (a *Authenticator) signIn(ctx context.Context, result api.Result[api.AuthPayload]) error {
	if !result.Success {
		return errors.New(result.Error)
	}

	if err := a.session.Login(ctx, result.Data.User, result.Data.Token); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}

	return nil
}
