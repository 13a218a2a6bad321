package gateway

import (
	"context"

	"pilotdeck/internal/client/models"
)

// Row is a single record in its wire shape: flat, snake_cased field names,
// JSON-typed values (strings, float64 numbers, bools).
type Row map[string]any

// Record collections exposed by the remote store.
const (
	CollectionFlights        = "flights"
	CollectionCertifications = "certifications"
	CollectionAvailability   = "availability"
)

// Gateway is the remote relational store as seen by the controllers. Every
// operation is scoped to the owning identity.
type Gateway interface {
	// Select returns the owner's rows from a collection, ordered by the
	// given column descending (newest first).
	Select(ctx context.Context, collection, ownerID, orderBy string) ([]Row, error)

	// Insert stores a row and returns the stored row as echoed by the
	// service, including server-assigned fields such as the id.
	Insert(ctx context.Context, collection string, row Row) (Row, error)

	// Delete removes the row with the given id, constrained to the owner.
	Delete(ctx context.Context, collection, id, ownerID string) error
}

// Credentials carry a password sign-in request.
type Credentials struct {
	Email    string
	Password string
}

// AuthResult is the provider's answer to a successful sign-in or sign-up.
type AuthResult struct {
	AccessToken string
	Identity    models.Identity
}

// Authenticator is the auth provider as seen by the session. Token
// internals (refresh, verification) are the provider's own business.
type Authenticator interface {
	SignIn(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignUp(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignOut(ctx context.Context, accessToken string) error
}

// TokenSource supplies the current access token for outbound requests.
// An empty token means no identity is signed in.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
