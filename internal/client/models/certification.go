package models

import (
	"math"
	"time"
)

// CertificationStatus classifies a certification by how close it is to its
// expiry date.
type CertificationStatus string

const (
	CertificationCurrent  CertificationStatus = "current"
	CertificationExpiring CertificationStatus = "expiring"
	CertificationExpired  CertificationStatus = "expired"
)

// ExpiryWarningDays is the window within which a certification counts as
// expiring.
const ExpiryWarningDays = 30

// Certification is a pilot license, rating or medical certificate.
//
// ImageKey is the raw storage key of the attached certificate scan as stored
// in the remote row; ImageURL is the publicly resolvable URL derived from it
// by the owning controller. Only ImageKey round-trips through the wire.
type Certification struct {
	ID         string
	Type       string
	Number     string
	IssueDate  time.Time
	ExpiryDate time.Time
	PilotID    string
	ImageKey   string
	ImageURL   string
}

// DaysUntilExpiry returns the number of days from now until the expiry date,
// rounded up. Zero or negative means the certification has expired.
func (c Certification) DaysUntilExpiry(now time.Time) int {
	return int(math.Ceil(c.ExpiryDate.Sub(now).Hours() / 24))
}

// Status classifies the certification relative to now: expired when the
// expiry date has passed, expiring within ExpiryWarningDays, current
// otherwise.
func (c Certification) Status(now time.Time) CertificationStatus {
	days := c.DaysUntilExpiry(now)
	switch {
	case days <= 0:
		return CertificationExpired
	case days <= ExpiryWarningDays:
		return CertificationExpiring
	default:
		return CertificationCurrent
	}
}

// CertificationTypes lists the license and rating names offered by the
// certification form.
var CertificationTypes = []string{
	"Private Pilot License",
	"Commercial Pilot License",
	"Airline Transport Pilot License",
	"Flight Instructor Certificate",
	"Medical Certificate",
	"Instrument Rating",
	"Multi-Engine Rating",
}
