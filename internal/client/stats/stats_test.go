package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pilotdeck/internal/client/models"
)

func TestCompute(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	flights := []models.Flight{
		{Date: now.AddDate(0, 0, -10), TotalTime: 2.3},
		{Date: now.AddDate(0, 0, -100), TotalTime: 4.0},
		{Date: now.AddDate(0, 0, -90), TotalTime: 1.2},
	}
	certs := []models.Certification{
		{ExpiryDate: now.AddDate(0, 0, 60)},  // current
		{ExpiryDate: now.AddDate(0, 0, 10)},  // expiring, still active
		{ExpiryDate: now.AddDate(0, 0, -1)},  // expired
	}

	s := Compute(flights, certs, now)

	require.InDelta(t, 7.5, s.TotalHours, 1e-9)
	require.InDelta(t, 3.5, s.Last90DaysHours, 1e-9)
	require.Equal(t, 3, s.Flights)
	require.Equal(t, 2, s.ActiveCertifications)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, nil, time.Now())
	require.Zero(t, s.TotalHours)
	require.Zero(t, s.Flights)
	require.Zero(t, s.ActiveCertifications)
}
