package mappers

import (
	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
)

// Availability maps schedule availability rows.
type Availability struct{}

func (Availability) ToDomain(row gateway.Row) (models.Availability, error) {
	var a models.Availability
	var err error

	if a.ID, err = stringField(row, "id"); err != nil {
		return models.Availability{}, err
	}
	if a.PilotID, err = stringField(row, "pilot_id"); err != nil {
		return models.Availability{}, err
	}
	if a.StartDate, err = dateField(row, "start_date"); err != nil {
		return models.Availability{}, err
	}
	if a.EndDate, err = dateField(row, "end_date"); err != nil {
		return models.Availability{}, err
	}
	if a.IsAvailable, err = boolField(row, "is_available"); err != nil {
		return models.Availability{}, err
	}
	return a, nil
}

func (Availability) ToRow(a models.Availability) gateway.Row {
	return gateway.Row{
		"start_date":   wireDate(a.StartDate),
		"end_date":     wireDate(a.EndDate),
		"is_available": a.IsAvailable,
	}
}
