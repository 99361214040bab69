// Package flow sequences the authentication screens: splash, login,
// registration, e-mail verification, password recovery and home. The
// controller is the single writer of the current screen; it gates
// submissions with an explicit busy flag (at most one backend call in
// flight, no queueing, no cancellation) and owns the resend cooldowns.
package flow

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"savoia/internal/api"
	"savoia/internal/configuration"
	"savoia/internal/masks"
	"savoia/internal/models"
	"savoia/internal/storage"

	"go.uber.org/zap"
)

// User-facing messages, mirrored from the mobile product copy.
const (
	msgInvalidCPF        = "CPF inválido."
	msgInvalidEmail      = "E-mail inválido."
	msgPasswordRequired  = "Informe a senha."
	msgInvalidName       = "Informe nome e sobrenome (apenas letras)."
	msgShortPassword     = "Senha muito curta (mín. 6)."
	msgPasswordMismatch  = "As senhas não coincidem."
	msgInvalidPhone      = "Telefone inválido."
	msgLoginFailed       = "Erro ao entrar."
	msgRegisterFailed    = "Falha ao iniciar verificação."
	msgCPFTaken          = "Este CPF já está vinculado a um usuário."
	msgEmailTaken        = "Este E-mail já está vinculado a um usuário."
	msgWaitBeforeResend  = "Aguarde alguns segundos antes de solicitar novo código."
	msgEmailMissing      = "E-mail não informado."
	msgCodeFormat        = "Digite o código numérico de 6 dígitos."
	msgCodeInvalid       = "Código inválido ou expirado."
	msgEmailVerified     = "E-mail verificado com sucesso."
	msgResendFailed      = "Falha ao reenviar código."
	msgUserNotFound      = "Usuário não encontrado para este e-mail."
	msgForgotStartFailed = "Não foi possível iniciar a recuperação."
	msgForgotCodeSent    = "Enviamos um código de 6 dígitos."
	msgResetCodeFormat   = "Digite o código de 6 dígitos."
	msgCodeExpired       = "Código não encontrado ou expirado. Reenvie o código."
	msgTooManyAttempts   = "Muitas tentativas. Reenvie um novo código."
	msgResetCodeInvalid  = "Código inválido."
	msgResendOK          = "Reenviado. Verifique seu e-mail."
	msgResendImpossible  = "Não foi possível reenviar."
	msgPasswordUpdated   = "Senha atualizada!"
	msgSessionExpired    = "Sessão expirada. Refaça a verificação do código."
	msgResetFailed       = "Não foi possível trocar a senha."
)

var reCode = regexp.MustCompile(`^\d{6}$`)

type Controller struct {
	backend api.IBackend
	tokens  storage.ITokenStore
	logger  *zap.Logger

	// tick is the cooldown granularity, one second in production.
	tick time.Duration

	mu           sync.Mutex
	busy         bool
	screen       Screen
	fieldErrors  map[string]string
	notice       string
	prefillEmail string
	challenge    *VerificationChallenge
	resetEmail   string
	resetToken   string
}

func NewController(backend api.IBackend, tokens storage.ITokenStore, logger *zap.Logger) *Controller {
	return &Controller{
		backend:     backend,
		tokens:      tokens,
		logger:      logger,
		tick:        time.Second,
		screen:      ScreenSplash,
		fieldErrors: map[string]string{},
	}
}

// --- state accessors ---

func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Notice is the screen-level message (toast equivalent), cleared on the next
// submission or navigation.
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// PrefillEmail carries a verified e-mail back to the login form.
func (c *Controller) PrefillEmail() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefillEmail
}

func (c *Controller) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.fieldErrors))
	for k, v := range c.fieldErrors {
		out[k] = v
	}
	return out
}

func (c *Controller) FieldError(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors[name]
}

// ChallengeEmail is the address the active code challenge was sent to.
func (c *Controller) ChallengeEmail() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.challenge == nil {
		return ""
	}
	return c.challenge.Email
}

// CooldownRemaining is the resend countdown in seconds, zero when there is
// no active challenge.
func (c *Controller) CooldownRemaining() int {
	c.mu.Lock()
	ch := c.challenge
	c.mu.Unlock()
	if ch == nil {
		return 0
	}
	return ch.cooldown.Remaining()
}

func (c *Controller) CanResend() bool {
	c.mu.Lock()
	ch := c.challenge
	busy := c.busy
	c.mu.Unlock()
	return !busy && ch != nil && ch.cooldown.Ready()
}

// --- guards and helpers ---

func (c *Controller) begin(expected Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != expected {
		return fmt.Errorf("%w: on %s", ErrWrongScreen, c.screen)
	}
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	c.notice = ""
	return nil
}

func (c *Controller) finish() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) setFieldErrors(errs map[string]string) {
	c.mu.Lock()
	c.fieldErrors = errs
	c.mu.Unlock()
}

func (c *Controller) setFieldError(name, message string) {
	c.mu.Lock()
	c.fieldErrors = map[string]string{name: message}
	c.mu.Unlock()
}

func (c *Controller) setNotice(message string) {
	c.mu.Lock()
	c.notice = message
	c.mu.Unlock()
}

// --- splash ---

// Start resolves the splash screen, the sole entry point: a stored session
// goes straight home, anything else lands on login.
func (c *Controller) Start() Screen {
	token := c.tokens.Get()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen == ScreenSplash {
		if token != "" {
			c.screen = ScreenHome
		} else {
			c.screen = ScreenLogin
		}
	}
	return c.screen
}

// --- login ---

func (c *Controller) SubmitLogin(ctx context.Context, form LoginForm) error {
	if err := c.begin(ScreenLogin); err != nil {
		return err
	}
	defer c.finish()

	errs := map[string]string{}
	var identifier string
	switch form.Mode {
	case LoginModeEmail:
		if !masks.IsValidEmail(form.Email) {
			errs["user"] = msgInvalidEmail
		}
		identifier = form.Email
	default:
		if !masks.IsValidCPF(form.CPF) {
			errs["user"] = msgInvalidCPF
		}
		identifier = form.CPF
	}
	if form.Password == "" {
		errs["senha"] = msgPasswordRequired
	}
	c.setFieldErrors(errs)
	if len(errs) > 0 {
		return ErrValidation
	}

	token, err := c.backend.Login(ctx, identifier, form.Password)
	if err != nil {
		c.logger.Warn("Login failed", zap.Error(err))
		c.setFieldError("senha", api.MessageOf(err, msgLoginFailed))
		return err
	}

	c.tokens.Set(token)

	c.mu.Lock()
	c.prefillEmail = ""
	c.screen = ScreenHome
	c.mu.Unlock()
	return nil
}

// --- registration ---

func (c *Controller) SubmitRegister(ctx context.Context, input RegistrationInput) error {
	if err := c.begin(ScreenRegister); err != nil {
		return err
	}
	defer c.finish()

	errs := map[string]string{}
	if !masks.IsValidFullName(input.Name) {
		errs["nome"] = msgInvalidName
	}
	if !masks.IsValidCPF(input.CPF) {
		errs["cpf"] = msgInvalidCPF
	}
	if !masks.IsValidEmail(input.Email) {
		errs["email"] = msgInvalidEmail
	}
	if !masks.IsStrongPassword(input.Password) {
		errs["senha"] = msgShortPassword
	}
	if input.ConfirmPassword != input.Password {
		errs["confirma"] = msgPasswordMismatch
	}
	if !masks.IsValidPhoneBR(input.Phone) {
		errs["numero"] = msgInvalidPhone
	}
	c.setFieldErrors(errs)
	if len(errs) > 0 {
		return ErrValidation
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	err := c.backend.SendEmailCode(ctx, models.RegistrationForm{
		Name:     masks.SanitizeName(input.Name),
		CPF:      input.CPF,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
	})
	switch {
	case err == nil:
		c.enterVerifyEmail(email, configuration.ResendEmailCooldownSeconds)
		return nil

	case api.IsStatus(err, http.StatusConflict):
		fields := api.ConflictFieldsOf(err)
		conflict := map[string]string{}
		if fields.CPF {
			conflict["cpf"] = msgCPFTaken
		}
		if fields.Email {
			conflict["email"] = msgEmailTaken
		}
		c.setFieldErrors(conflict)
		c.setNotice(api.MessageOf(err, msgRegisterFailed))
		return err

	case api.IsStatus(err, http.StatusTooManyRequests):
		// A code was most likely dispatched moments ago; advance anyway
		// with a fresh cooldown.
		c.setNotice(msgWaitBeforeResend)
		c.enterVerifyEmail(email, configuration.ResendEmailCooldownSeconds)
		return err

	case api.IsStatus(err, http.StatusBadRequest),
		api.IsStatus(err, http.StatusUnprocessableEntity):
		c.setNotice(api.MessageOf(err, msgRegisterFailed))
		return err

	default:
		c.logger.Warn("Registration start failed", zap.Error(err))
		c.setNotice(api.MessageOf(err, msgRegisterFailed))
		return err
	}
}

func (c *Controller) enterVerifyEmail(email string, seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fieldErrors = map[string]string{}
	if email == "" {
		c.notice = msgEmailMissing
		c.screen = ScreenLogin
		return
	}

	c.challenge.destroy()
	c.challenge = newChallenge(email, seconds, configuration.ResendEmailCooldownSeconds, c.tick)
	c.screen = ScreenVerifyEmail
}

// --- e-mail verification ---

func (c *Controller) SubmitVerificationCode(ctx context.Context, code string) error {
	if err := c.begin(ScreenVerifyEmail); err != nil {
		return err
	}
	defer c.finish()

	c.mu.Lock()
	email := c.challenge.Email
	c.mu.Unlock()

	normalized := masks.OnlyDigits(code)
	if len(normalized) > configuration.VerificationCodeLength {
		normalized = normalized[:configuration.VerificationCodeLength]
	}
	if !reCode.MatchString(normalized) {
		c.setFieldError("codigo", msgCodeFormat)
		return ErrValidation
	}

	if err := c.backend.VerifyEmailCode(ctx, email, normalized); err != nil {
		c.setFieldError("codigo", api.MessageOf(err, msgCodeInvalid))
		return err
	}

	c.mu.Lock()
	c.challenge.destroy()
	c.challenge = nil
	c.prefillEmail = email
	c.fieldErrors = map[string]string{}
	c.notice = msgEmailVerified
	c.screen = ScreenLogin
	c.mu.Unlock()
	return nil
}

func (c *Controller) ResendVerificationCode(ctx context.Context) error {
	c.mu.Lock()
	if c.screen != ScreenVerifyEmail {
		c.mu.Unlock()
		return fmt.Errorf("%w: on %s", ErrWrongScreen, c.screen)
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	ch := c.challenge
	if ch == nil || !ch.cooldown.Ready() {
		c.mu.Unlock()
		return ErrCooldownActive
	}
	c.busy = true
	c.notice = ""
	c.mu.Unlock()
	defer c.finish()

	if err := c.backend.SendEmailCodeTo(ctx, ch.Email); err != nil {
		// Zero the cooldown so the user can retry right away.
		ch.cooldown.Reset(0)
		c.setNotice(api.MessageOf(err, msgResendFailed))
		return err
	}

	ch.cooldown.Reset(configuration.ResendEmailCooldownSeconds)
	return nil
}

// --- password recovery ---

func (c *Controller) SubmitForgotEmail(ctx context.Context, email string) error {
	if err := c.begin(ScreenForgotEmail); err != nil {
		return err
	}
	defer c.finish()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if !masks.IsValidEmail(normalized) {
		c.setFieldError("email", msgInvalidEmail)
		return ErrValidation
	}
	c.setFieldErrors(map[string]string{})

	err := c.backend.ForgotStart(ctx, normalized)
	switch {
	case err == nil:
		c.mu.Lock()
		c.resetEmail = normalized
		c.challenge.destroy()
		c.challenge = newChallenge(
			normalized,
			configuration.ResendResetCooldownSeconds,
			configuration.ResendResetCooldownSeconds,
			c.tick,
		)
		c.notice = msgForgotCodeSent
		c.screen = ScreenForgotCode
		c.mu.Unlock()
		return nil

	case api.IsStatus(err, http.StatusNotFound):
		c.setFieldError("email", msgUserNotFound)
		return err
	case api.IsStatus(err, http.StatusTooManyRequests):
		c.setFieldError("email", msgWaitBeforeResend)
		return err
	case api.IsStatus(err, http.StatusBadRequest):
		c.setFieldError("email", msgInvalidEmail)
		return err
	default:
		c.logger.Warn("Password recovery start failed", zap.Error(err))
		c.setFieldError("email", api.MessageOf(err, msgForgotStartFailed))
		return err
	}
}

func (c *Controller) SubmitForgotCode(ctx context.Context, code string) error {
	if err := c.begin(ScreenForgotCode); err != nil {
		return err
	}
	defer c.finish()

	c.mu.Lock()
	email := c.resetEmail
	c.mu.Unlock()

	normalized := masks.OnlyDigits(code)
	if len(normalized) > configuration.VerificationCodeLength {
		normalized = normalized[:configuration.VerificationCodeLength]
	}
	if !reCode.MatchString(normalized) {
		c.setFieldError("codigo", msgResetCodeFormat)
		return ErrValidation
	}

	resetToken, err := c.backend.ForgotVerify(ctx, email, normalized)
	switch {
	case err == nil:
		c.mu.Lock()
		c.challenge.destroy()
		c.challenge = nil
		c.resetToken = resetToken
		c.fieldErrors = map[string]string{}
		c.screen = ScreenForgotReset
		c.mu.Unlock()
		return nil

	case api.IsStatus(err, http.StatusGone):
		c.setFieldError("codigo", msgCodeExpired)
		return err
	case api.IsStatus(err, http.StatusTooManyRequests):
		c.setFieldError("codigo", msgTooManyAttempts)
		return err
	case api.IsStatus(err, http.StatusBadRequest):
		c.setFieldError("codigo", msgResetCodeInvalid)
		return err
	default:
		c.logger.Warn("Reset code verification failed", zap.Error(err))
		c.setFieldError("codigo", api.MessageOf(err, msgResetCodeInvalid))
		return err
	}
}

func (c *Controller) ResendForgotCode(ctx context.Context) error {
	c.mu.Lock()
	if c.screen != ScreenForgotCode {
		c.mu.Unlock()
		return fmt.Errorf("%w: on %s", ErrWrongScreen, c.screen)
	}
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	ch := c.challenge
	if ch == nil || !ch.cooldown.Ready() {
		c.mu.Unlock()
		return ErrCooldownActive
	}
	c.busy = true
	c.notice = ""
	c.mu.Unlock()
	defer c.finish()

	if err := c.backend.ForgotStart(ctx, ch.Email); err != nil {
		// Unlike the verification screen, the countdown is left alone here;
		// the backend enforces its own dispatch window for reset codes.
		c.setFieldError("codigo", api.MessageOf(err, msgResendImpossible))
		return err
	}

	ch.cooldown.Reset(configuration.ResendResetCooldownSeconds)
	c.setNotice(msgResendOK)
	return nil
}

func (c *Controller) SubmitPasswordReset(ctx context.Context, password, confirm string) error {
	if err := c.begin(ScreenForgotReset); err != nil {
		return err
	}
	defer c.finish()

	errs := map[string]string{}
	if !masks.IsStrongPassword(password) {
		errs["senha"] = msgShortPassword
	}
	if confirm != password {
		errs["confirma"] = msgPasswordMismatch
	}
	c.setFieldErrors(errs)
	if len(errs) > 0 {
		return ErrValidation
	}

	c.mu.Lock()
	resetToken := c.resetToken
	c.mu.Unlock()

	err := c.backend.ForgotReset(ctx, resetToken, password)
	switch {
	case err == nil:
		c.mu.Lock()
		c.resetToken = ""
		c.resetEmail = ""
		c.notice = msgPasswordUpdated
		c.screen = ScreenLogin
		c.mu.Unlock()
		return nil

	case api.IsStatus(err, http.StatusUnprocessableEntity):
		c.setFieldError("senha", msgShortPassword)
		return err

	case api.IsStatus(err, http.StatusUnauthorized),
		api.IsStatus(err, http.StatusForbidden):
		c.setNotice(msgSessionExpired)
		return err

	default:
		c.logger.Warn("Password reset failed", zap.Error(err))
		c.setNotice(api.MessageOf(err, msgResetFailed))
		return err
	}
}

// --- home ---

// Logout removes the stored token and always returns to login; a failed
// removal is logged by the store and deliberately not surfaced.
func (c *Controller) Logout() error {
	if err := c.begin(ScreenHome); err != nil {
		return err
	}
	defer c.finish()

	c.tokens.Remove()

	c.mu.Lock()
	c.prefillEmail = ""
	c.screen = ScreenLogin
	c.mu.Unlock()
	return nil
}

// --- user navigation (no backend calls) ---

func (c *Controller) GoToRegister() error {
	return c.navigate(ScreenLogin, ScreenRegister)
}

func (c *Controller) GoToForgotPassword() error {
	return c.navigate(ScreenLogin, ScreenForgotEmail)
}

// BackToLogin abandons registration, verification or recovery.
func (c *Controller) BackToLogin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.screen {
	case ScreenRegister, ScreenVerifyEmail, ScreenForgotEmail, ScreenForgotReset:
	default:
		return fmt.Errorf("%w: on %s", ErrWrongScreen, c.screen)
	}
	if c.busy {
		return ErrBusy
	}
	c.leaveTo(ScreenLogin)
	return nil
}

// BackToForgotEmail returns from the code screen to re-enter the address.
func (c *Controller) BackToForgotEmail() error {
	return c.navigate(ScreenForgotCode, ScreenForgotEmail)
}

func (c *Controller) navigate(from, to Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.screen != from {
		return fmt.Errorf("%w: on %s", ErrWrongScreen, c.screen)
	}
	if c.busy {
		return ErrBusy
	}
	c.leaveTo(to)
	return nil
}

// leaveTo must run with the mutex held. Leaving a screen destroys its
// challenge and clears transient messages.
func (c *Controller) leaveTo(to Screen) {
	c.challenge.destroy()
	c.challenge = nil
	c.fieldErrors = map[string]string{}
	c.notice = ""
	c.screen = to
}
