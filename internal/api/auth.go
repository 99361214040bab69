package api

import (
	"context"
	"errors"
	"strings"

	"savoia/internal/configuration"
	"savoia/internal/masks"
	"savoia/internal/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeCode(code string) string {
	d := masks.OnlyDigits(code)
	if len(d) > configuration.VerificationCodeLength {
		d = d[:configuration.VerificationCodeLength]
	}
	return d
}

// Login authenticates with a CPF or an e-mail address. E-mail identifiers
// are trimmed and lowercased, anything else is reduced to its digits.
func (c *Client) Login(ctx context.Context, identifier, password string) (string, error) {
	if masks.IsValidEmail(identifier) {
		identifier = normalizeEmail(identifier)
	} else {
		identifier = masks.OnlyDigits(identifier)
	}

	var out models.LoginResponse
	err := c.post(ctx, configuration.PathLogin, models.LoginBody{
		Identifier: identifier,
		Password:   password,
	}, &out)
	if err != nil {
		return "", err
	}

	token := out.BearerToken()
	if token == "" {
		return "", errors.New("login succeeded but the response carried no token")
	}
	return token, nil
}

// SendEmailCode starts registration by dispatching a verification code. The
// unconfirmed credentials ride along so the backend can stage the account;
// nothing is persisted client-side until the code is verified.
func (c *Client) SendEmailCode(ctx context.Context, form models.RegistrationForm) error {
	form.Name = masks.NormSpaces(form.Name)
	form.CPF = masks.OnlyDigits(form.CPF)
	form.Email = normalizeEmail(form.Email)
	form.Phone = masks.OnlyDigits(form.Phone)
	return c.post(ctx, configuration.PathRegisterStart, form, nil)
}

// SendEmailCodeTo requests a plain code resend for an e-mail already staged.
func (c *Client) SendEmailCodeTo(ctx context.Context, email string) error {
	return c.post(ctx, configuration.PathRegisterStart, models.RegistrationForm{
		Email: normalizeEmail(email),
	}, nil)
}

func (c *Client) VerifyEmailCode(ctx context.Context, email, code string) error {
	return c.post(ctx, configuration.PathRegisterConfirm, models.VerifyEmailBody{
		Email: normalizeEmail(email),
		Code:  normalizeCode(code),
	}, nil)
}

// RegisterLegacy is the pre-verification single-shot registration endpoint,
// kept for backends that have not rolled out the confirmation flow.
func (c *Client) RegisterLegacy(ctx context.Context, form models.RegistrationForm) error {
	return c.post(ctx, configuration.PathRegisterLegacy, models.RegisterBody{
		Name:     masks.NormSpaces(form.Name),
		CPF:      masks.OnlyDigits(form.CPF),
		Email:    normalizeEmail(form.Email),
		Password: form.Password,
		Phone:    masks.OnlyDigits(form.Phone),
	}, nil)
}

func (c *Client) ForgotStart(ctx context.Context, email string) error {
	return c.post(ctx, configuration.PathForgotStart, models.ForgotStartBody{
		Email: normalizeEmail(email),
	}, nil)
}

// ForgotVerify exchanges the e-mailed code for a short-lived reset token.
func (c *Client) ForgotVerify(ctx context.Context, email, code string) (string, error) {
	var out models.ForgotVerifyResponse
	err := c.post(ctx, configuration.PathForgotVerify, models.ForgotVerifyBody{
		Email: normalizeEmail(email),
		Code:  normalizeCode(code),
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("forgot-verify succeeded but the reset token is missing")
	}
	return out.Token, nil
}

func (c *Client) ForgotReset(ctx context.Context, resetToken, newPassword string) error {
	return c.post(ctx, configuration.PathForgotReset, models.ForgotResetBody{
		Token:       resetToken,
		NewPassword: newPassword,
	}, nil)
}
