package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"pilotdeck/internal/client/controllers"
	"pilotdeck/internal/client/models"
)

// Avail prints the availability ranges, newest first.
func (a *App) Avail(ctx context.Context) error {
	if a.schedule.State() != controllers.Ready {
		fmt.Println("Schedule is", a.schedule.State())
		return nil
	}

	entries := a.schedule.Availability()
	if len(entries) == 0 {
		fmt.Println("No availability set yet.")
		return nil
	}

	for _, e := range entries {
		label := "unavailable"
		if e.IsAvailable {
			label = "available"
		}
		fmt.Printf("%s  %s to %s  %s\n",
			e.ID, e.StartDate.Format(time.DateOnly), e.EndDate.Format(time.DateOnly), label)
	}
	return nil
}

// AddAvail prompts for a date range and creates the availability entry.
func (a *App) AddAvail(ctx context.Context) error {
	start, err := GetDate(a.reader, "Start date", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	end, err := GetDate(a.reader, "End date", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}
	available, err := GetYesNo(a.reader, "Available for assignments?", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.schedule.Create(ctx, models.Availability{
		StartDate:   start,
		EndDate:     end,
		IsAvailable: available,
	})
	if err != nil {
		fmt.Println("Could not save availability:", err)
		return err
	}

	fmt.Println("Availability saved.")
	return nil
}
