// Package cli is the interactive terminal frontend: a small REPL over the
// page controllers, the session and the blob store.
package cli

import (
	"bufio"
	"context"
	"os"

	"pilotdeck/internal/client/config"
	"pilotdeck/internal/client/controllers"
	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/client/storage"
	"pilotdeck/internal/logging"
)

// App wires the client together: one gateway, one session, one controller
// per page. All REPL commands are methods on it.
type App struct {
	config  *config.Config
	session *session.Session
	store   storage.Store

	logbook  *controllers.Logbook
	certs    *controllers.Certifications
	schedule *controllers.Schedule

	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	// The gateway authorizes requests with the session's token, but the
	// session authenticates through the gateway. The token source closes
	// over the session variable to break the construction cycle.
	var sess *session.Session
	gw := gateway.NewRESTGateway(cfg.GatewayURL, cfg.GatewayAPIKey, gateway.TokenFunc(func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	}), log)
	sess = session.New(gw, log)

	store, err := storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:      cfg.StorageEndpoint,
		Region:        cfg.StorageRegion,
		Bucket:        cfg.StorageBucket,
		AccessKey:     cfg.StorageAccessKey,
		SecretKey:     cfg.StorageSecretKey,
		PublicBaseURL: cfg.PublicBaseURL(),
	})
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		session:  sess,
		store:    store,
		logbook:  controllers.NewLogbook(gw, sess, log),
		certs:    controllers.NewCertifications(gw, store, sess, log),
		schedule: controllers.NewSchedule(gw, sess, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isSignedIn() bool {
	return a.session.Current() != nil
}

// status renders the prompt suffix: the signed-in email, or nothing.
func (a *App) status() string {
	if ident := a.session.Current(); ident != nil {
		return ident.Email
	}
	return ""
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
