package cli

import (
	"context"
	"fmt"
	"time"

	"pilotdeck/internal/client/stats"
)

// Stats prints the dashboard aggregates computed from the local
// collections.
func (a *App) Stats(ctx context.Context) error {
	s := stats.Compute(a.logbook.Flights(), a.certs.Certifications(), time.Now())

	fmt.Printf("Total flight hours:    %.1f\n", s.TotalHours)
	fmt.Printf("Hours, last 90 days:   %.1f\n", s.Last90DaysHours)
	fmt.Printf("Flights logged:        %d\n", s.Flights)
	fmt.Printf("Active certifications: %d\n", s.ActiveCertifications)
	return nil
}
