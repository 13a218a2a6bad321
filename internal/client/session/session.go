// Package session holds the current authenticated identity and notifies
// subscribers when it changes. The session is an explicit object injected
// into every controller at construction; nothing reads identity state from
// a package-level variable.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/logging"
)

// Session is the process-wide holder of the signed-in identity.
// Lifecycle: app start (unauthenticated) → sign-in (populated) → sign-out
// (cleared). Safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	auth      gateway.Authenticator
	log       logging.Logger
	identity  *models.Identity
	token     string
	expiresAt time.Time
	subs      []func(*models.Identity)
}

func New(auth gateway.Authenticator, log logging.Logger) *Session {
	return &Session{auth: auth, log: log}
}

// Current returns the signed-in identity, or nil when signed out. The
// returned value is a copy; callers cannot mutate session state through it.
func (s *Session) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	ident := *s.identity
	return &ident
}

// Token returns the provider's access token, or "" when signed out. Used by
// the gateway to authorize outbound requests.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// OnChange registers a callback invoked synchronously on every identity
// transition: with the new identity on sign-in, with nil on sign-out.
func (s *Session) OnChange(fn func(*models.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SignIn authenticates against the provider and publishes the new identity
// to subscribers.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	res, err := s.auth.SignIn(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	s.accept(ctx, res)
	return nil
}

// SignUp registers a new account and, when the provider returns a token
// right away, signs the session in.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	res, err := s.auth.SignUp(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	if res.AccessToken == "" {
		// provider requires confirmation before the first sign-in
		return nil
	}
	s.accept(ctx, res)
	return nil
}

// SignOut revokes the token with the provider and clears the session. The
// local session is cleared even when revocation fails; the failure is only
// logged.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.identity = nil
	s.token = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if token != "" {
		if err := s.auth.SignOut(ctx, token); err != nil {
			s.log.Warn(ctx, "revoking token", "err", err)
		}
	}

	s.notify(nil)
	return nil
}

func (s *Session) accept(ctx context.Context, res *gateway.AuthResult) {
	ident := res.Identity
	sub, exp := peekClaims(res.AccessToken)
	if ident.ID == "" {
		ident.ID = sub
	}

	s.mu.Lock()
	s.identity = &ident
	s.token = res.AccessToken
	s.expiresAt = exp
	s.mu.Unlock()

	s.log.Info(ctx, "signed in", "identity", ident.ID)
	s.notify(&ident)
}

func (s *Session) notify(ident *models.Identity) {
	s.mu.Lock()
	subs := make([]func(*models.Identity), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		var copyForSub *models.Identity
		if ident != nil {
			c := *ident
			copyForSub = &c
		}
		fn(copyForSub)
	}
}

// peekClaims extracts the subject and expiry from the access token without
// verifying the signature. Verification is the provider's concern; the
// client only observes the claims.
func peekClaims(token string) (sub string, exp time.Time) {
	if token == "" {
		return "", time.Time{}
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return "", time.Time{}
	}
	if s, err := parsed.Claims.GetSubject(); err == nil {
		sub = s
	}
	if t, err := parsed.Claims.GetExpirationTime(); err == nil && t != nil {
		exp = t.Time
	}
	return sub, exp
}
