package controllers

import (
	"context"
	"fmt"
	"io"

	"pilotdeck/internal/client/export"
	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/mappers"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
)

// Logbook synchronizes the flight collection. Flights are created and
// exported; there is no delete path for them.
type Logbook struct {
	syncState
	gw      gateway.Gateway
	session *session.Session
	log     logging.Logger
	mapper  mappers.Flight
	flights *cache[models.Flight]
}

func NewLogbook(gw gateway.Gateway, sess *session.Session, log logging.Logger) *Logbook {
	l := &Logbook{
		gw:      gw,
		session: sess,
		log:     log.With("component", "logbook"),
		flights: newCache(func(f models.Flight) string { return f.ID }),
	}
	sess.OnChange(l.identityChanged)
	return l
}

func (l *Logbook) identityChanged(ident *models.Identity) {
	if ident == nil {
		l.signedOut()
		l.flights.clear()
		return
	}
	gen := l.beginLoad()
	go l.load(context.Background(), ident.ID, gen)
}

func (l *Logbook) load(ctx context.Context, ownerID string, gen uint64) {
	items := l.fetch(ctx, ownerID)
	l.finishLoad(gen, func() { l.flights.replace(items) })
}

// fetch runs the scoped read. Any failure is logged and yields an empty
// collection; load errors never surface to the user.
func (l *Logbook) fetch(ctx context.Context, ownerID string) []models.Flight {
	rows, err := l.gw.Select(ctx, gateway.CollectionFlights, ownerID, "date")
	if err != nil {
		l.log.Error(ctx, "loading flights", "err", err)
		return nil
	}

	out := make([]models.Flight, 0, len(rows))
	for _, row := range rows {
		f, err := l.mapper.ToDomain(row)
		if err != nil {
			l.log.Error(ctx, "mapping flight row", "err", err)
			return nil
		}
		out = append(out, f)
	}
	return out
}

// Create inserts a new flight scoped to the signed-in identity and prepends
// the gateway's echo to the local collection. The ID and PilotID of the
// input are ignored: the service assigns the id, the session supplies the
// owner.
func (l *Logbook) Create(ctx context.Context, flight models.Flight) (models.Flight, error) {
	ident := l.session.Current()
	if ident == nil {
		return models.Flight{}, common.ErrSignedOut
	}

	row := l.mapper.ToRow(flight)
	row["pilot_id"] = ident.ID

	echo, err := l.gw.Insert(ctx, gateway.CollectionFlights, row)
	if err != nil {
		return models.Flight{}, fmt.Errorf("saving flight: %w", err)
	}

	created, err := l.mapper.ToDomain(echo)
	if err != nil {
		return models.Flight{}, fmt.Errorf("reading saved flight: %w", err)
	}

	l.flights.prepend(created)
	return created, nil
}

// Flights returns the local collection, newest first.
func (l *Logbook) Flights() []models.Flight {
	return l.flights.list()
}

// State reports where the controller is in its load lifecycle.
func (l *Logbook) State() State {
	return l.current()
}

// ExportCSV writes the current collection as a flight-log CSV.
func (l *Logbook) ExportCSV(w io.Writer) error {
	return export.FlightLog(w, l.flights.list())
}
