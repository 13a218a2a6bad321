// Package stats computes the dashboard aggregates from the local
// collections. Pure functions; the caller supplies the clock.
package stats

import (
	"time"

	"pilotdeck/internal/client/models"
)

// Summary is the figure set shown on the dashboard.
type Summary struct {
	TotalHours           float64
	Last90DaysHours      float64
	Flights              int
	ActiveCertifications int
}

// Compute aggregates the collections as of now. A certification counts as
// active while it is not expired (expiring-soon still counts).
func Compute(flights []models.Flight, certs []models.Certification, now time.Time) Summary {
	var s Summary

	cutoff := now.AddDate(0, 0, -90)
	for _, f := range flights {
		s.TotalHours += f.TotalTime
		if !f.Date.Before(cutoff) {
			s.Last90DaysHours += f.TotalTime
		}
	}
	s.Flights = len(flights)

	for _, c := range certs {
		if c.Status(now) != models.CertificationExpired {
			s.ActiveCertifications++
		}
	}
	return s
}
