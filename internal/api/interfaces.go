package api

import (
	"context"

	"savoia/internal/models"
)

// IBackend is the surface the flow controller drives. *Client is the real
// implementation; tests substitute mocks.
type IBackend interface {
	Login(ctx context.Context, identifier, password string) (string, error)
	SendEmailCode(ctx context.Context, form models.RegistrationForm) error
	SendEmailCodeTo(ctx context.Context, email string) error
	VerifyEmailCode(ctx context.Context, email, code string) error
	RegisterLegacy(ctx context.Context, form models.RegistrationForm) error
	ForgotStart(ctx context.Context, email string) error
	ForgotVerify(ctx context.Context, email, code string) (string, error)
	ForgotReset(ctx context.Context, resetToken, newPassword string) error
}

var _ IBackend = (*Client)(nil)
