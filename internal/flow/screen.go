package flow

// Screen is a step of the authentication journey. The controller owns the
// current screen and every transition between them.
type Screen string

const (
	ScreenSplash      Screen = "splash"
	ScreenLogin       Screen = "login"
	ScreenRegister    Screen = "register"
	ScreenVerifyEmail Screen = "verify_email"
	ScreenForgotEmail Screen = "forgot_email"
	ScreenForgotCode  Screen = "forgot_code"
	ScreenForgotReset Screen = "forgot_reset"
	ScreenHome        Screen = "home"
)
