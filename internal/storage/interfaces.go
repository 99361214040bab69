package storage

// ITokenStore persists the session bearer token on the device. All three
// operations are fire-and-forget: implementations log failures and never
// surface them, so callers always proceed as though the call succeeded.
type ITokenStore interface {
	Get() string
	Set(token string)
	Remove()
}
