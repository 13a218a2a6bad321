package models

// Identity is the authenticated principal as reported by the auth provider.
// The client only observes its presence or absence; token internals belong
// to the provider.
type Identity struct {
	ID    string
	Email string
}
