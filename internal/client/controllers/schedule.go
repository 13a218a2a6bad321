package controllers

import (
	"context"
	"fmt"

	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/mappers"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
)

// Schedule synchronizes the availability collection. Entries are created
// only; there is no edit or delete path.
type Schedule struct {
	syncState
	gw      gateway.Gateway
	session *session.Session
	log     logging.Logger
	mapper  mappers.Availability
	entries *cache[models.Availability]
}

func NewSchedule(gw gateway.Gateway, sess *session.Session, log logging.Logger) *Schedule {
	s := &Schedule{
		gw:      gw,
		session: sess,
		log:     log.With("component", "schedule"),
		entries: newCache(func(a models.Availability) string { return a.ID }),
	}
	sess.OnChange(s.identityChanged)
	return s
}

func (s *Schedule) identityChanged(ident *models.Identity) {
	if ident == nil {
		s.signedOut()
		s.entries.clear()
		return
	}
	gen := s.beginLoad()
	go s.load(context.Background(), ident.ID, gen)
}

func (s *Schedule) load(ctx context.Context, ownerID string, gen uint64) {
	items := s.fetch(ctx, ownerID)
	s.finishLoad(gen, func() { s.entries.replace(items) })
}

func (s *Schedule) fetch(ctx context.Context, ownerID string) []models.Availability {
	rows, err := s.gw.Select(ctx, gateway.CollectionAvailability, ownerID, "start_date")
	if err != nil {
		s.log.Error(ctx, "loading availability", "err", err)
		return nil
	}

	out := make([]models.Availability, 0, len(rows))
	for _, row := range rows {
		a, err := s.mapper.ToDomain(row)
		if err != nil {
			s.log.Error(ctx, "mapping availability row", "err", err)
			return nil
		}
		out = append(out, a)
	}
	return out
}

// Create inserts a new availability range scoped to the signed-in identity
// and prepends the echo to the local collection.
func (s *Schedule) Create(ctx context.Context, entry models.Availability) (models.Availability, error) {
	ident := s.session.Current()
	if ident == nil {
		return models.Availability{}, common.ErrSignedOut
	}

	row := s.mapper.ToRow(entry)
	row["pilot_id"] = ident.ID

	echo, err := s.gw.Insert(ctx, gateway.CollectionAvailability, row)
	if err != nil {
		return models.Availability{}, fmt.Errorf("saving availability: %w", err)
	}

	created, err := s.mapper.ToDomain(echo)
	if err != nil {
		return models.Availability{}, fmt.Errorf("reading saved availability: %w", err)
	}

	s.entries.prepend(created)
	return created, nil
}

// Availability returns the local collection, newest first.
func (s *Schedule) Availability() []models.Availability {
	return s.entries.list()
}

func (s *Schedule) State() State {
	return s.current()
}
