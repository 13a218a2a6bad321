package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
	"pilotdeck/internal/client/session"
	"pilotdeck/internal/client/storage"
	"pilotdeck/internal/common"
	"pilotdeck/internal/logging"
)

// fakeStore records uploads and, to pin the upload-before-insert order,
// the gateway's insert count at the moment each upload lands.
type fakeStore struct {
	gw        *fakeGateway
	uploadErr error

	keys            []string
	insertsAtUpload []int
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	_, inserts, _ := f.gw.calls()
	f.keys = append(f.keys, key)
	f.insertsAtUpload = append(f.insertsAtUpload, inserts)
	return nil
}

func (f *fakeStore) ResolvePublicURL(key string) string {
	return "https://cdn.example/certificates/" + key
}

func certRow(id, imageKey string) gateway.Row {
	row := gateway.Row{
		"id":          id,
		"type":        "Medical Certificate",
		"number":      "MC-100",
		"issue_date":  "2024-01-01",
		"expiry_date": "2025-01-01",
		"pilot_id":    "pilot-1",
	}
	if imageKey != "" {
		row["image_url"] = imageKey
	}
	return row
}

func validAttachment() *storage.Attachment {
	return &storage.Attachment{
		Name:        "scan.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 'P', 'N', 'G'},
	}
}

func newCertifications(gw *fakeGateway) (*Certifications, *fakeStore, *session.Session) {
	store := &fakeStore{gw: gw}
	sess := newTestSession("pilot-1")
	return NewCertifications(gw, store, sess, logging.NewDiscard()), store, sess
}

func TestCertifications_LoadResolvesImageURL(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionCertifications: {
			certRow("c2", "abc.png"),
			certRow("c1", ""),
		},
	}}
	c, _, sess := newCertifications(gw)

	signIn(t, sess)
	waitReady(t, c)

	certs := c.Certifications()
	require.Len(t, certs, 2)
	require.Equal(t, "abc.png", certs[0].ImageKey)
	require.Equal(t, "https://cdn.example/certificates/abc.png", certs[0].ImageURL)
	require.Empty(t, certs[1].ImageKey)
	require.Empty(t, certs[1].ImageURL)
	require.Equal(t, "created_at", gw.lastOrderBy)
}

func TestCertifications_CreateWithAttachmentUploadsThenInserts(t *testing.T) {
	gw := &fakeGateway{}
	c, store, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	created, err := c.Create(context.Background(), models.Certification{
		Type:       "Type Rating",
		Number:     "TR-7",
		IssueDate:  day("2024-01-01"),
		ExpiryDate: day("2026-01-01"),
	}, validAttachment())
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	require.Equal(t, []int{0}, store.insertsAtUpload, "upload must precede insert")

	key := store.keys[0]
	require.Equal(t, key, gw.lastInsert["image_url"])
	require.Equal(t, "pilot-1", gw.lastInsert["pilot_id"])

	require.Equal(t, key, created.ImageKey)
	require.Equal(t, "https://cdn.example/certificates/"+key, created.ImageURL)

	certs := c.Certifications()
	require.Len(t, certs, 1)
	require.Equal(t, created, certs[0])
}

func TestCertifications_CreateWithoutAttachment(t *testing.T) {
	gw := &fakeGateway{}
	c, store, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	created, err := c.Create(context.Background(), models.Certification{
		Type:       "Medical Certificate",
		Number:     "MC-1",
		IssueDate:  day("2024-01-01"),
		ExpiryDate: day("2025-01-01"),
	}, nil)
	require.NoError(t, err)

	require.Empty(t, store.keys)
	require.Nil(t, gw.lastInsert["image_url"])
	require.Empty(t, created.ImageURL)
}

func TestCertifications_InvalidAttachmentAbortsBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{}
	c, store, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	oversize := validAttachment()
	oversize.Data = make([]byte, 6<<20)

	_, err := c.Create(context.Background(), models.Certification{}, oversize)
	require.ErrorIs(t, err, storage.ErrAttachmentTooLarge)

	require.Empty(t, store.keys)
	_, inserts, _ := gw.calls()
	require.Zero(t, inserts)
}

func TestCertifications_UploadErrorSkipsInsert(t *testing.T) {
	gw := &fakeGateway{}
	c, store, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	store.uploadErr = errors.New("boom")
	_, err := c.Create(context.Background(), models.Certification{}, validAttachment())
	require.Error(t, err)

	_, inserts, _ := gw.calls()
	require.Zero(t, inserts)
	require.Empty(t, c.Certifications())
}

func TestCertifications_DeleteRemovesOnlyMatching(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionCertifications: {
			certRow("c2", ""),
			certRow("c1", ""),
		},
	}}
	c, _, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	require.NoError(t, c.Delete(context.Background(), "c1"))

	require.Equal(t, "c1", gw.lastDeleteID)
	require.Equal(t, "pilot-1", gw.lastDeleteOwn)

	certs := c.Certifications()
	require.Len(t, certs, 1)
	require.Equal(t, "c2", certs[0].ID)
}

func TestCertifications_DeleteSignedOut(t *testing.T) {
	gw := &fakeGateway{}
	c, _, _ := newCertifications(gw)

	err := c.Delete(context.Background(), "c1")
	require.ErrorIs(t, err, common.ErrSignedOut)

	_, _, deletes := gw.calls()
	require.Zero(t, deletes)
}

func TestCertifications_DeleteErrorKeepsLocalCollection(t *testing.T) {
	gw := &fakeGateway{rows: map[string][]gateway.Row{
		gateway.CollectionCertifications: {certRow("c1", "")},
	}}
	c, _, sess := newCertifications(gw)
	signIn(t, sess)
	waitReady(t, c)

	gw.mu.Lock()
	gw.deleteErr = errors.New("boom")
	gw.mu.Unlock()
	require.Error(t, c.Delete(context.Background(), "c1"))
	require.Len(t, c.Certifications(), 1)
}
