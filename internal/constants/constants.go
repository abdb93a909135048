package constants

import "time"

const (
	CacheTTL      = 5 * time.Minute
	SweepInterval = 10 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	UserAgent         = "freefire-stats-bot/1.0"
	DefaultRegion     = "IND"
	SearchResultLimit = 10
)

// Regions accepted by the upstream API. Validated at the command surface,
// not inside the fetch pipeline.
var Regions = []string{"IND", "BR", "SG", "RU", "ID", "TW", "US", "VN", "TH", "ME", "PK", "CIS", "BD"}

func IsValidRegion(code string) bool {
	for _, r := range Regions {
		if r == code {
			return true
		}
	}
	return false
}
