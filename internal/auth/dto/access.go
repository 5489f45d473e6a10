package dto

import "time"

type AccessEntryOutput struct {
	IP           string    `json:"ip"`
	Country      string    `json:"country"`
	CountryCode  string    `json:"country_code"`
	Region       string    `json:"region"`
	City         string    `json:"city"`
	Timezone     string    `json:"timezone"`
	Org          string    `json:"org"`
	Postal       string    `json:"postal"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	Attempts     int       `json:"attempts"`
	SuccessCount int       `json:"success_count"`
	FailCount    int       `json:"fail_count"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
}
