package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"pilotdeck/internal/client/controllers"
	"pilotdeck/internal/client/export"
	"pilotdeck/internal/client/models"
)

// Flights prints the flight log, newest first.
func (a *App) Flights(ctx context.Context) error {
	if a.logbook.State() != controllers.Ready {
		fmt.Println("Flight log is", a.logbook.State())
		return nil
	}

	flights := a.logbook.Flights()
	if len(flights) == 0 {
		fmt.Println("No flights logged yet.")
		return nil
	}

	for _, f := range flights {
		fmt.Printf("%s  %-12s %s-%s  %5.1fh  %s  %s\n",
			f.Date.Format(time.DateOnly), f.AircraftType,
			f.DepartureAirport, f.ArrivalAirport,
			f.TotalTime, f.FlightRules(), f.Remarks)
	}
	return nil
}

// AddFlight prompts for the logbook entry fields and creates the flight.
func (a *App) AddFlight(ctx context.Context) error {
	date, err := GetDate(a.reader, "Date", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	aircraft, err := getSimpleText(a.reader, "Aircraft type", os.Stdout)
	if err != nil {
		return err
	}
	departure, err := getSimpleText(a.reader, "Departure airport", os.Stdout)
	if err != nil {
		return err
	}
	arrival, err := getSimpleText(a.reader, "Arrival airport", os.Stdout)
	if err != nil {
		return err
	}
	total, err := GetHours(a.reader, "Total time (hours)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	night, err := GetHours(a.reader, "Night time (hours)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	instrument, err := GetHours(a.reader, "Instrument time (hours)", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	isIFR, err := GetYesNo(a.reader, "IFR flight?", os.Stdout)
	if err != nil {
		return err
	}
	remarks, err := getSimpleText(a.reader, "Remarks (optional)", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.logbook.Create(ctx, models.Flight{
		Date:             date,
		AircraftType:     aircraft,
		DepartureAirport: departure,
		ArrivalAirport:   arrival,
		TotalTime:        total,
		NightTime:        night,
		InstrumentTime:   instrument,
		IsIFR:            isIFR,
		Remarks:          remarks,
	})
	if err != nil {
		fmt.Println("Could not save flight:", err)
		return err
	}

	fmt.Println("Flight logged.")
	return nil
}

// Export writes the flight log as CSV into the current directory.
func (a *App) Export(ctx context.Context) error {
	f, err := os.Create(export.FlightLogFileName)
	if err != nil {
		fmt.Println("Could not create file:", err)
		return err
	}
	defer f.Close()

	if err := a.logbook.ExportCSV(f); err != nil {
		fmt.Println("Export failed:", err)
		return err
	}

	fmt.Println("Exported to", export.FlightLogFileName)
	return nil
}
