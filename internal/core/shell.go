package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"savoia/internal/flow"
	"savoia/internal/masks"
)

var errQuit = errors.New("shell: quit")

// Shell drives the flow controller from a terminal. Each screen prints its
// prompts, reads one line per field and hands the result to the controller;
// notices and field errors set by the controller are rendered on the next
// pass through the loop.
type Shell struct {
	controller *flow.Controller
	in         *bufio.Scanner
	out        io.Writer
}

func NewShell(controller *flow.Controller, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		controller: controller,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

func (s *Shell) Run(ctx context.Context) error {
	s.controller.Start()

	for {
		s.renderStatus()

		var err error
		switch s.controller.Screen() {
		case flow.ScreenLogin:
			err = s.loginScreen(ctx)
		case flow.ScreenRegister:
			err = s.registerScreen(ctx)
		case flow.ScreenVerifyEmail:
			err = s.verifyEmailScreen(ctx)
		case flow.ScreenForgotEmail:
			err = s.forgotEmailScreen(ctx)
		case flow.ScreenForgotCode:
			err = s.forgotCodeScreen(ctx)
		case flow.ScreenForgotReset:
			err = s.forgotResetScreen(ctx)
		case flow.ScreenHome:
			err = s.homeScreen()
		default:
			return fmt.Errorf("shell: unexpected screen %q", s.controller.Screen())
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		s.report(err)
	}
}

func (s *Shell) renderStatus() {
	if notice := s.controller.Notice(); notice != "" {
		fmt.Fprintf(s.out, "\n%s\n", notice)
	}
	for field, message := range s.controller.FieldErrors() {
		fmt.Fprintf(s.out, "  %s: %s\n", field, message)
	}
}

func (s *Shell) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, flow.ErrValidation):
		// Field errors carry the detail; rendered on the next pass.
	case errors.Is(err, flow.ErrCooldownActive):
	case errors.Is(err, flow.ErrBusy):
		fmt.Fprintln(s.out, "Aguarde, uma operação ainda está em andamento.")
	default:
		fmt.Fprintln(s.out, "Não foi possível concluir a operação. Tente novamente.")
	}
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) loginScreen(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n== Entrar ==  (:cadastro, :esqueci, :sair)")

	identifier, err := s.readLine("CPF ou e-mail: ")
	if err != nil {
		return err
	}
	switch identifier {
	case ":cadastro":
		return s.controller.GoToRegister()
	case ":esqueci":
		return s.controller.GoToForgotPassword()
	case ":sair":
		return errQuit
	}
	if identifier == "" {
		identifier = s.controller.PrefillEmail()
	}

	password, err := s.readLine("Senha: ")
	if err != nil {
		return err
	}

	form := flow.LoginForm{Password: password}
	if strings.ContainsRune(identifier, '@') {
		form.Mode = flow.LoginModeEmail
		form.Email = identifier
	} else {
		form.Mode = flow.LoginModeCPF
		form.CPF = masks.FormatCPF(identifier)
	}
	return s.controller.SubmitLogin(ctx, form)
}

func (s *Shell) registerScreen(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n== Criar conta ==  (:voltar)")

	input := flow.RegistrationInput{}
	fields := []struct {
		prompt string
		dest   *string
		format func(string) string
	}{
		{"Nome completo: ", &input.Name, masks.SanitizeName},
		{"CPF: ", &input.CPF, masks.FormatCPF},
		{"E-mail: ", &input.Email, nil},
		{"Senha: ", &input.Password, nil},
		{"Confirmar senha: ", &input.ConfirmPassword, nil},
		{"Celular (opcional): ", &input.Phone, masks.FormatPhone},
	}
	for _, field := range fields {
		value, err := s.readLine(field.prompt)
		if err != nil {
			return err
		}
		if value == ":voltar" {
			return s.controller.BackToLogin()
		}
		if field.format != nil {
			value = field.format(value)
		}
		*field.dest = value
	}

	return s.controller.SubmitRegister(ctx, input)
}

func (s *Shell) verifyEmailScreen(ctx context.Context) error {
	fmt.Fprintf(s.out, "\n== Confirmar e-mail ==  código enviado para %s\n", s.controller.ChallengeEmail())
	if left := s.controller.CooldownRemaining(); left > 0 {
		fmt.Fprintf(s.out, "Reenvio disponível em %ds.\n", left)
	}

	code, err := s.readLine("Código (:reenviar, :voltar): ")
	if err != nil {
		return err
	}
	switch code {
	case ":reenviar":
		return s.controller.ResendVerificationCode(ctx)
	case ":voltar":
		return s.controller.BackToLogin()
	}
	return s.controller.SubmitVerificationCode(ctx, code)
}

func (s *Shell) forgotEmailScreen(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n== Recuperar senha ==  (:voltar)")

	email, err := s.readLine("E-mail cadastrado: ")
	if err != nil {
		return err
	}
	if email == ":voltar" {
		return s.controller.BackToLogin()
	}
	return s.controller.SubmitForgotEmail(ctx, email)
}

func (s *Shell) forgotCodeScreen(ctx context.Context) error {
	fmt.Fprintf(s.out, "\n== Código de recuperação ==  enviado para %s\n", s.controller.ChallengeEmail())
	if left := s.controller.CooldownRemaining(); left > 0 {
		fmt.Fprintf(s.out, "Reenvio disponível em %ds.\n", left)
	}

	code, err := s.readLine("Código (:reenviar, :voltar): ")
	if err != nil {
		return err
	}
	switch code {
	case ":reenviar":
		return s.controller.ResendForgotCode(ctx)
	case ":voltar":
		return s.controller.BackToForgotEmail()
	}
	return s.controller.SubmitForgotCode(ctx, code)
}

func (s *Shell) forgotResetScreen(ctx context.Context) error {
	fmt.Fprintln(s.out, "\n== Nova senha ==  (:voltar)")

	password, err := s.readLine("Nova senha: ")
	if err != nil {
		return err
	}
	if password == ":voltar" {
		return s.controller.BackToLogin()
	}
	confirm, err := s.readLine("Confirmar nova senha: ")
	if err != nil {
		return err
	}
	return s.controller.SubmitPasswordReset(ctx, password, confirm)
}

func (s *Shell) homeScreen() error {
	fmt.Fprintln(s.out, "\n== Início ==  você está autenticado.")

	action, err := s.readLine("(sair = encerrar sessão, :sair = fechar): ")
	if err != nil {
		return err
	}
	switch action {
	case "sair":
		return s.controller.Logout()
	case ":sair":
		return errQuit
	}
	return nil
}
