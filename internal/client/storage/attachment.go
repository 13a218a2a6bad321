package storage

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxAttachmentBytes is the largest certificate image accepted for upload.
const MaxAttachmentBytes = 5 << 20 // 5 MiB

var (
	// ErrAttachmentTooLarge means the file exceeds MaxAttachmentBytes.
	ErrAttachmentTooLarge = errors.New("file size must be less than 5MB")

	// ErrAttachmentType means the file is not a JPEG, PNG or GIF image.
	ErrAttachmentType = errors.New("file must be an image (JPEG, PNG, or GIF)")
)

// extensions by accepted content type, used when the original file name
// carries none
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Attachment is an image file staged for upload. ContentType is sniffed
// from the bytes, never trusted from the file name.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// LoadAttachment reads a file from disk and sniffs its content type.
// Validation is a separate step so callers can surface violations before
// any network traffic.
func LoadAttachment(path string) (*Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	return &Attachment{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// Validate checks the size and type limits. It must pass before the
// attachment touches the network.
func (a *Attachment) Validate() error {
	if len(a.Data) > MaxAttachmentBytes {
		return ErrAttachmentTooLarge
	}
	if _, ok := imageExtensions[a.ContentType]; !ok {
		return ErrAttachmentType
	}
	return nil
}

// StorageKey generates a globally unique key for the attachment: a random
// UUID plus the original file extension (falling back to one derived from
// the sniffed content type).
func (a *Attachment) StorageKey() string {
	ext := strings.ToLower(filepath.Ext(a.Name))
	if ext == "" {
		ext = imageExtensions[a.ContentType]
	}
	return uuid.NewString() + ext
}
