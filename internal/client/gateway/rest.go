package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pilotdeck/internal/client/models"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
	"pilotdeck/internal/netx"
)

// RESTGateway talks to the hosted backend over its HTTP API. It implements
// both Gateway and Authenticator.
type RESTGateway struct {
	baseURL string
	apiKey  string
	tokens  TokenSource
	client  *http.Client
	log     logging.Logger
}

func NewRESTGateway(baseURL, apiKey string, tokens TokenSource, log logging.Logger) *RESTGateway {
	return &RESTGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		tokens:  tokens,
		client:  &http.Client{},
		log:     log,
	}
}

// headers builds the per-request header set: the project API key plus a
// bearer token. Before sign-in the bearer falls back to the API key, which
// is what the service expects for anonymous calls.
func (g *RESTGateway) headers() http.Header {
	token := ""
	if g.tokens != nil {
		token = g.tokens.Token()
	}
	if token == "" {
		token = g.apiKey
	}

	h := http.Header{}
	h.Set("apikey", g.apiKey)
	h.Set("Authorization", "Bearer "+token)
	return h
}

func (g *RESTGateway) restURL(collection string, query url.Values) string {
	return fmt.Sprintf("%s/rest/v1/%s?%s", g.baseURL, collection, query.Encode())
}

func classify(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return common.ErrUnauthorized
	case status == http.StatusNotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}

func (g *RESTGateway) Select(ctx context.Context, collection, ownerID, orderBy string) ([]Row, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("pilot_id", "eq."+ownerID)
	query.Set("order", orderBy+".desc")

	var rows []Row
	status, err := netx.DoJSON(ctx, g.client, http.MethodGet, g.restURL(collection, query), g.headers(), nil, &rows)
	if err != nil {
		g.log.Warn(ctx, "gateway unreachable", "op", "select", "collection", collection, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if status != http.StatusOK {
		g.log.Warn(ctx, "unexpected status", "op", "select", "collection", collection, "status", status)
		return nil, fmt.Errorf("select %s: %w", collection, classify(status))
	}
	return rows, nil
}

func (g *RESTGateway) Insert(ctx context.Context, collection string, row Row) (Row, error) {
	h := g.headers()
	// ask the service to echo the stored representation back
	h.Set("Prefer", "return=representation")

	var echoed []Row
	status, err := netx.DoJSON(ctx, g.client, http.MethodPost,
		g.restURL(collection, url.Values{}), h, []Row{row}, &echoed)
	if err != nil {
		g.log.Warn(ctx, "gateway unreachable", "op", "insert", "collection", collection, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if status != http.StatusCreated && status != http.StatusOK {
		g.log.Warn(ctx, "unexpected status", "op", "insert", "collection", collection, "status", status)
		return nil, fmt.Errorf("insert %s: %w", collection, classify(status))
	}
	if len(echoed) != 1 {
		return nil, fmt.Errorf("insert %s: expected one echoed row, got %d", collection, len(echoed))
	}
	return echoed[0], nil
}

func (g *RESTGateway) Delete(ctx context.Context, collection, id, ownerID string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("pilot_id", "eq."+ownerID)

	status, err := netx.DoJSON(ctx, g.client, http.MethodDelete, g.restURL(collection, query), g.headers(), nil, nil)
	if err != nil {
		g.log.Warn(ctx, "gateway unreachable", "op", "delete", "collection", collection, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		g.log.Warn(ctx, "unexpected status", "op", "delete", "collection", collection, "status", status)
		return fmt.Errorf("delete %s: %w", collection, classify(status))
	}
	return nil
}

// authResponse is the provider's token payload for sign-in and sign-up.
type authResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (g *RESTGateway) SignIn(ctx context.Context, creds Credentials) (*AuthResult, error) {
	return g.authRequest(ctx, g.baseURL+"/auth/v1/token?grant_type=password", creds)
}

func (g *RESTGateway) SignUp(ctx context.Context, creds Credentials) (*AuthResult, error) {
	return g.authRequest(ctx, g.baseURL+"/auth/v1/signup", creds)
}

func (g *RESTGateway) authRequest(ctx context.Context, endpoint string, creds Credentials) (*AuthResult, error) {
	body := map[string]string{"email": creds.Email, "password": creds.Password}

	var resp authResponse
	status, err := netx.DoJSON(ctx, g.client, http.MethodPost, endpoint, g.headers(), body, &resp)
	if err != nil {
		g.log.Warn(ctx, "gateway unreachable", "op", "auth", "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	switch status {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return nil, common.ErrUnauthorized
	default:
		g.log.Warn(ctx, "unexpected status", "op", "auth", "status", status)
		return nil, fmt.Errorf("auth: unexpected status %d", status)
	}

	return &AuthResult{
		AccessToken: resp.AccessToken,
		Identity:    models.Identity{ID: resp.User.ID, Email: resp.User.Email},
	}, nil
}

func (g *RESTGateway) SignOut(ctx context.Context, accessToken string) error {
	h := http.Header{}
	h.Set("apikey", g.apiKey)
	h.Set("Authorization", "Bearer "+accessToken)

	status, err := netx.DoJSON(ctx, g.client, http.MethodPost, g.baseURL+"/auth/v1/logout", h, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return fmt.Errorf("logout: %w", classify(status))
	}
	return nil
}
