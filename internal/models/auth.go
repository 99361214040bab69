package models

// Wire types for the usuarios backend. Field names follow the backend's
// Portuguese JSON contract.

type LoginBody struct {
	Identifier string `json:"identificador"`
	Password   string `json:"senha"`
}

// LoginResponse tolerates the token key variants the backend has shipped
// over time; BearerToken resolves them in precedence order.
type LoginResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
	JWT         string `json:"jwt"`
}

func (r LoginResponse) BearerToken() string {
	switch {
	case r.Token != "":
		return r.Token
	case r.AccessToken != "":
		return r.AccessToken
	default:
		return r.JWT
	}
}

// RegistrationForm starts e-mail verification. Only the e-mail is mandatory;
// a bare {email} payload requests a plain code resend.
type RegistrationForm struct {
	Name     string `json:"nome,omitempty"`
	CPF      string `json:"cpf,omitempty"`
	Email    string `json:"email"`
	Password string `json:"senha,omitempty"`
	Phone    string `json:"numero,omitempty"`
}

type VerifyEmailBody struct {
	Email string `json:"email"`
	Code  string `json:"codigo"`
}

// RegisterBody is the legacy single-shot registration payload; every field
// is required there.
type RegisterBody struct {
	Name     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Phone    string `json:"numero"`
}

type ForgotStartBody struct {
	Email string `json:"email"`
}

type ForgotVerifyBody struct {
	Email string `json:"email"`
	Code  string `json:"codigo"`
}

type ForgotVerifyResponse struct {
	Token string `json:"token"`
}

type ForgotResetBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"nova_senha"`
}

// ConflictFields is the 409 payload attributing a duplicate registration to
// specific fields. The backend may omit it entirely, in which case callers
// fall back to a generic message.
type ConflictFields struct {
	CPF   bool `json:"cpf"`
	Email bool `json:"email"`
}

type ErrorPayload struct {
	Erro    string         `json:"erro"`
	Message string         `json:"message"`
	Fields  ConflictFields `json:"campos"`
}

// BestMessage prefers the backend's erro key, then message.
func (p ErrorPayload) BestMessage() string {
	if p.Erro != "" {
		return p.Erro
	}
	return p.Message
}
