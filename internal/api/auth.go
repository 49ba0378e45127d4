package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nikolayk812/storefront/internal/domain"
)

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type OTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code,omitempty"`
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// AuthPayload is what a successful sign-in yields.
type AuthPayload struct {
	User  domain.User
	Token string
}

func (c *Client) Login(ctx context.Context, creds Credentials) Result[AuthPayload] {
	if err := required(map[string]string{"login": creds.Login, "password": creds.Password}); err != nil {
		return fail[AuthPayload](err)
	}
	return c.authenticate(ctx, "/auth/login", creds)
}

// Signup registers an account. The server answers with a message, the
// account becomes usable after VerifyOTP.
func (c *Client) Signup(ctx context.Context, req SignupRequest) Result[string] {
	err := required(map[string]string{"name": req.Name, "phone": req.Phone, "password": req.Password})
	if err != nil {
		return fail[string](err)
	}
	return c.message(ctx, "/auth/signup", req)
}

func (c *Client) VerifyOTP(ctx context.Context, req OTPRequest) Result[AuthPayload] {
	if err := required(map[string]string{"phone": req.Phone, "code": req.Code}); err != nil {
		return fail[AuthPayload](err)
	}
	return c.authenticate(ctx, "/auth/verify-otp", req)
}

func (c *Client) ResendOTP(ctx context.Context, phone string) Result[string] {
	if err := required(map[string]string{"phone": phone}); err != nil {
		return fail[string](err)
	}
	return c.message(ctx, "/auth/resend-otp", OTPRequest{Phone: phone})
}

func (c *Client) ForgotPassword(ctx context.Context, email string) Result[string] {
	if err := required(map[string]string{"email": email}); err != nil {
		return fail[string](err)
	}
	return c.message(ctx, "/auth/forgot-password", map[string]string{"email": email})
}

func (c *Client) ResetPassword(ctx context.Context, req PasswordResetRequest) Result[string] {
	err := required(map[string]string{"email": req.Email, "code": req.Code, "new password": req.NewPassword})
	if err != nil {
		return fail[string](err)
	}
	return c.message(ctx, "/auth/reset-password", req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) Result[AuthPayload] {
	var dto authDTO
	if err := c.do(ctx, http.MethodPost, path, nil, body, &dto); err != nil {
		return fail[AuthPayload](err)
	}

	if dto.Token == "" {
		return fail[AuthPayload](fmt.Errorf("token is empty"))
	}

	user, err := dto.User.toDomain()
	if err != nil {
		return fail[AuthPayload](err)
	}

	return ok(AuthPayload{User: user, Token: dto.Token})
}

func (c *Client) message(ctx context.Context, path string, body any) Result[string] {
	var dto messageDTO
	if err := c.do(ctx, http.MethodPost, path, nil, body, &dto); err != nil {
		return fail[string](err)
	}
	return ok(dto.Message)
}
