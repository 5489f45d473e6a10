package domain

import "time"

type AccountStatus string

const (
	StatusActive  AccountStatus = "active"
	StatusRemoved AccountStatus = "removed"
)

type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Company      string
	Avatar       string
	Status       AccountStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) Removed() bool {
	return a.Status == StatusRemoved
}

// GeoInfo is the network metadata snapshot captured when an IP is first
// seen. It is never refreshed afterwards.
type GeoInfo struct {
	Country     string
	CountryCode string
	Region      string
	City        string
	Timezone    string
	Org         string
	Postal      string
	Latitude    *float64
	Longitude   *float64
}

// AccessEntry is the per-IP audit record. One row exists per distinct
// source address; the counters only ever grow.
type AccessEntry struct {
	IP           string
	Geo          GeoInfo
	Attempts     int
	SuccessCount int
	FailCount    int
	FirstSeen    time.Time
	LastSeen     time.Time
}
