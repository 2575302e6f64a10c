package store

import "time"

// EnergyRecord is one cached per-fuel-tech energy observation as held in
// the embedded database.
type EnergyRecord struct {
	Network  string
	Interval string // "1M" or "1D"
	Period   string // "YYYY-MM" or "YYYY-MM-DD"
	FuelTech string
	Value    float64
}

// ShareRun is the audit log entry for one completed share computation.
type ShareRun struct {
	Network   string
	AsOf      time.Time
	CreatedAt time.Time
	Months    int
}
