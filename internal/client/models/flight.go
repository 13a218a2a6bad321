// Package models defines the pilotdeck domain entities. Every record is
// owned by exactly one identity; reads and writes are always scoped to the
// owner.
package models

import "time"

// Flight is a single logbook entry. Times are decimal hours.
//
// Flights are immutable once created and have no delete path; only
// certifications can be deleted. NightTime and InstrumentTime are expected
// to stay within TotalTime but the rule is not enforced anywhere.
type Flight struct {
	ID               string
	Date             time.Time
	AircraftType     string
	DepartureAirport string
	ArrivalAirport   string
	TotalTime        float64
	NightTime        float64
	InstrumentTime   float64
	IsIFR            bool
	Remarks          string
	PilotID          string
}

// FlightRules renders the IFR flag as the literal "IFR" or "VFR".
func (f Flight) FlightRules() string {
	if f.IsIFR {
		return "IFR"
	}
	return "VFR"
}
