package flow

import "time"

// VerificationChallenge is an in-flight code challenge: the e-mail the code
// was sent to plus the resend cooldown. It lives as long as the screen that
// uses it; destroy cancels the countdown goroutine.
type VerificationChallenge struct {
	Email    string
	cooldown *Cooldown
}

func newChallenge(email string, initial, window int, tick time.Duration) *VerificationChallenge {
	cd := NewCooldown(initial, window)
	cd.Start(tick)
	return &VerificationChallenge{Email: email, cooldown: cd}
}

func (ch *VerificationChallenge) destroy() {
	if ch != nil {
		ch.cooldown.Stop()
	}
}
