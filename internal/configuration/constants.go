package configuration

const AppName = "savoia"

// Backend routes. The wire contract keeps the backend's Portuguese field
// names; see internal/models.
const (
	PathLogin           = "/api/usuarios/login"
	PathRegisterStart   = "/api/usuarios/confirmacao/enviar"
	PathRegisterConfirm = "/api/usuarios/confirmacao/validar"
	PathRegisterLegacy  = "/api/usuarios/cadastro"
	PathForgotStart     = "/api/usuarios/auth/forgot/start"
	PathForgotVerify    = "/api/usuarios/auth/forgot/verify"
	PathForgotReset     = "/api/usuarios/auth/forgot/reset"
)

const (
	// VerificationCodeLength is the length of e-mail and password-reset codes.
	VerificationCodeLength = 6
	// ResendEmailCooldownSeconds gates the verification-code resend action.
	ResendEmailCooldownSeconds = 30
	// ResendResetCooldownSeconds gates the password-reset code resend action.
	ResendResetCooldownSeconds = 60
)

const TokenStorageKey = "token"

const DefaultRequestTimeoutSeconds = 15

// Storage provider types.
const (
	ProviderSQLite = "sqlite"
	ProviderMemory = "memory"
)

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
