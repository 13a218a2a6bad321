package controllers

import (
	"context"
	"fmt"

	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/mappers"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/client/storage"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
)

// Certifications synchronizes the certification collection, including the
// image attachment sub-flow. It is the only controller with a delete path.
type Certifications struct {
	syncState
	gw      gateway.Gateway
	store   storage.Store
	session *session.Session
	log     logging.Logger
	mapper  mappers.Certification
	certs   *cache[models.Certification]
}

func NewCertifications(gw gateway.Gateway, store storage.Store, sess *session.Session, log logging.Logger) *Certifications {
	c := &Certifications{
		gw:      gw,
		store:   store,
		session: sess,
		log:     log.With("component", "certifications"),
		certs:   newCache(func(c models.Certification) string { return c.ID }),
	}
	sess.OnChange(c.identityChanged)
	return c
}

func (c *Certifications) identityChanged(ident *models.Identity) {
	if ident == nil {
		c.signedOut()
		c.certs.clear()
		return
	}
	gen := c.beginLoad()
	go c.load(context.Background(), ident.ID, gen)
}

func (c *Certifications) load(ctx context.Context, ownerID string, gen uint64) {
	items := c.fetch(ctx, ownerID)
	c.finishLoad(gen, func() { c.certs.replace(items) })
}

func (c *Certifications) fetch(ctx context.Context, ownerID string) []models.Certification {
	rows, err := c.gw.Select(ctx, gateway.CollectionCertifications, ownerID, "created_at")
	if err != nil {
		c.log.Error(ctx, "loading certifications", "err", err)
		return nil
	}

	out := make([]models.Certification, 0, len(rows))
	for _, row := range rows {
		cert, err := c.mapper.ToDomain(row)
		if err != nil {
			c.log.Error(ctx, "mapping certification row", "err", err)
			return nil
		}
		c.resolveImage(&cert)
		out = append(out, cert)
	}
	return out
}

// resolveImage applies the image URL policy: rows carry the raw storage
// key, the domain entity additionally carries the public URL. Applied
// uniformly on load and on the create echo.
func (c *Certifications) resolveImage(cert *models.Certification) {
	if cert.ImageKey != "" {
		cert.ImageURL = c.store.ResolvePublicURL(cert.ImageKey)
	}
}

// Create inserts a new certification, optionally uploading an image
// attachment first. The attachment is validated before any network call.
//
// Upload and insert are two sequential operations with no compensating
// transaction: when the insert fails after a successful upload the blob
// stays behind, orphaned.
func (c *Certifications) Create(ctx context.Context, cert models.Certification, attachment *storage.Attachment) (models.Certification, error) {
	ident := c.session.Current()
	if ident == nil {
		return models.Certification{}, common.ErrSignedOut
	}

	row := c.mapper.ToRow(cert)

	if attachment != nil {
		if err := attachment.Validate(); err != nil {
			return models.Certification{}, err
		}
		key := attachment.StorageKey()
		if err := c.store.Upload(ctx, key, attachment.Data, attachment.ContentType); err != nil {
			return models.Certification{}, fmt.Errorf("uploading certificate image: %w", err)
		}
		row["image_url"] = key
	}

	row["pilot_id"] = ident.ID

	echo, err := c.gw.Insert(ctx, gateway.CollectionCertifications, row)
	if err != nil {
		return models.Certification{}, fmt.Errorf("saving certification: %w", err)
	}

	created, err := c.mapper.ToDomain(echo)
	if err != nil {
		return models.Certification{}, fmt.Errorf("reading saved certification: %w", err)
	}
	c.resolveImage(&created)

	c.certs.prepend(created)
	return created, nil
}

// Delete removes a certification by id, scoped to the signed-in identity.
// The identity gate runs locally, before any network call.
func (c *Certifications) Delete(ctx context.Context, id string) error {
	ident := c.session.Current()
	if ident == nil {
		return common.ErrSignedOut
	}

	if err := c.gw.Delete(ctx, gateway.CollectionCertifications, id, ident.ID); err != nil {
		return fmt.Errorf("deleting certification: %w", err)
	}

	c.certs.remove(id)
	return nil
}

// Certifications returns the local collection, newest first.
func (c *Certifications) Certifications() []models.Certification {
	return c.certs.list()
}

func (c *Certifications) State() State {
	return c.current()
}
