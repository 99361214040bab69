package flow

// LoginMode selects which identifier the login form carries.
type LoginMode string

const (
	LoginModeCPF   LoginMode = "cpf"
	LoginModeEmail LoginMode = "email"
)

type LoginForm struct {
	Mode     LoginMode
	CPF      string
	Email    string
	Password string
}

// RegistrationInput is the raw register form; the controller validates and
// normalizes it before anything touches the network.
type RegistrationInput struct {
	Name            string
	CPF             string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}
