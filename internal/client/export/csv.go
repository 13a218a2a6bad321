// Package export renders local collections into downloadable files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"pilotdeck/internal/client/models"
)

// FlightLogFileName is the file name the exported logbook is saved under.
const FlightLogFileName = "flight-log.csv"

var flightLogHeader = []string{
	"Date", "Aircraft", "From", "To", "Total Time", "Night", "Instrument", "Type", "Remarks",
}

// FlightLog writes the flight collection as CSV in collection order: a
// header row, then one row per flight with the IFR flag rendered as the
// literal IFR/VFR. Hours keep their minimal decimal form (2.3, not 2.30).
func FlightLog(w io.Writer, flights []models.Flight) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(flightLogHeader); err != nil {
		return err
	}
	for _, f := range flights {
		record := []string{
			f.Date.Format(time.DateOnly),
			f.AircraftType,
			f.DepartureAirport,
			f.ArrivalAirport,
			hours(f.TotalTime),
			hours(f.NightTime),
			hours(f.InstrumentTime),
			f.FlightRules(),
			f.Remarks,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
