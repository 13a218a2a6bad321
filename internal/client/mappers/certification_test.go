package mappers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pilotdeck/internal/client/gateway"
)

func validCertificationRow() gateway.Row {
	return gateway.Row{
		"id":          "c-1",
		"type":        "Instrument Rating",
		"number":      "IR-4471",
		"issue_date":  "2023-06-01",
		"expiry_date": "2025-06-01",
		"pilot_id":    "pilot-1",
		"image_url":   "3f2b7c9a.png",
		"created_at":  "2023-06-01T09:00:00Z",
	}
}

func TestCertification_ToDomain(t *testing.T) {
	c, err := Certification{}.ToDomain(validCertificationRow())
	require.NoError(t, err)

	require.Equal(t, "c-1", c.ID)
	require.Equal(t, "Instrument Rating", c.Type)
	require.Equal(t, "IR-4471", c.Number)
	require.Equal(t, "3f2b7c9a.png", c.ImageKey)
	require.Empty(t, c.ImageURL, "the mapper never resolves public URLs")
}

func TestCertification_RoundTrip(t *testing.T) {
	row := validCertificationRow()

	c, err := Certification{}.ToDomain(row)
	require.NoError(t, err)
	back := Certification{}.ToRow(c)

	want := gateway.Row{}
	for k, v := range row {
		switch k {
		case "id", "pilot_id", "created_at":
		default:
			want[k] = v
		}
	}
	require.Equal(t, want, back)
}

func TestCertification_NullImageRoundTrips(t *testing.T) {
	row := validCertificationRow()
	row["image_url"] = nil

	c, err := Certification{}.ToDomain(row)
	require.NoError(t, err)
	require.Empty(t, c.ImageKey)

	back := Certification{}.ToRow(c)
	require.Contains(t, back, "image_url")
	require.Nil(t, back["image_url"])
}

func TestCertification_MissingRequiredFieldFails(t *testing.T) {
	for _, field := range []string{"id", "type", "number", "issue_date", "expiry_date", "pilot_id"} {
		t.Run(field, func(t *testing.T) {
			row := validCertificationRow()
			delete(row, field)
			_, err := Certification{}.ToDomain(row)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}
