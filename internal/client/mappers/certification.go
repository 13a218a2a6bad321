package mappers

import (
	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
)

// Certification maps certification rows. The image_url wire field always
// carries the raw storage key; resolving it to a public URL is the
// controller's job so the mapper stays pure.
type Certification struct{}

func (Certification) ToDomain(row gateway.Row) (models.Certification, error) {
	var c models.Certification
	var err error

	if c.ID, err = stringField(row, "id"); err != nil {
		return models.Certification{}, err
	}
	if c.Type, err = stringField(row, "type"); err != nil {
		return models.Certification{}, err
	}
	if c.Number, err = stringField(row, "number"); err != nil {
		return models.Certification{}, err
	}
	if c.IssueDate, err = dateField(row, "issue_date"); err != nil {
		return models.Certification{}, err
	}
	if c.ExpiryDate, err = dateField(row, "expiry_date"); err != nil {
		return models.Certification{}, err
	}
	if c.PilotID, err = stringField(row, "pilot_id"); err != nil {
		return models.Certification{}, err
	}
	if c.ImageKey, err = optionalStringField(row, "image_url"); err != nil {
		return models.Certification{}, err
	}
	return c, nil
}

func (Certification) ToRow(c models.Certification) gateway.Row {
	row := gateway.Row{
		"type":        c.Type,
		"number":      c.Number,
		"issue_date":  wireDate(c.IssueDate),
		"expiry_date": wireDate(c.ExpiryDate),
		"image_url":   nil,
	}
	if c.ImageKey != "" {
		row["image_url"] = c.ImageKey
	}
	return row
}
