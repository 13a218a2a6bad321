package mappers

import (
	"pilotdeck/internal/client/gateway"
	"pilotdeck/internal/client/models"
)

// Flight maps logbook rows. Wire fields: id, date, aircraft_type,
// departure_airport, arrival_airport, total_time, night_time,
// instrument_time, is_ifr, remarks, pilot_id.
type Flight struct{}

func (Flight) ToDomain(row gateway.Row) (models.Flight, error) {
	var f models.Flight
	var err error

	if f.ID, err = stringField(row, "id"); err != nil {
		return models.Flight{}, err
	}
	if f.Date, err = dateField(row, "date"); err != nil {
		return models.Flight{}, err
	}
	if f.AircraftType, err = stringField(row, "aircraft_type"); err != nil {
		return models.Flight{}, err
	}
	if f.DepartureAirport, err = stringField(row, "departure_airport"); err != nil {
		return models.Flight{}, err
	}
	if f.ArrivalAirport, err = stringField(row, "arrival_airport"); err != nil {
		return models.Flight{}, err
	}
	if f.TotalTime, err = numberField(row, "total_time"); err != nil {
		return models.Flight{}, err
	}
	if f.NightTime, err = numberField(row, "night_time"); err != nil {
		return models.Flight{}, err
	}
	if f.InstrumentTime, err = numberField(row, "instrument_time"); err != nil {
		return models.Flight{}, err
	}
	if f.IsIFR, err = boolField(row, "is_ifr"); err != nil {
		return models.Flight{}, err
	}
	if f.Remarks, err = optionalStringField(row, "remarks"); err != nil {
		return models.Flight{}, err
	}
	if f.PilotID, err = stringField(row, "pilot_id"); err != nil {
		return models.Flight{}, err
	}
	return f, nil
}

// ToRow emits the value fields only. The id is assigned by the service and
// the owner id is stamped by the controller, never taken from the entity.
func (Flight) ToRow(f models.Flight) gateway.Row {
	return gateway.Row{
		"date":              wireDate(f.Date),
		"aircraft_type":     f.AircraftType,
		"departure_airport": f.DepartureAirport,
		"arrival_airport":   f.ArrivalAirport,
		"total_time":        f.TotalTime,
		"night_time":        f.NightTime,
		"instrument_time":   f.InstrumentTime,
		"is_ifr":            f.IsIFR,
		"remarks":           f.Remarks,
	}
}
