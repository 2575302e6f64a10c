package domain

import "fmt"

// NetworkProfile describes one electricity market feed: where to fetch
// its monthly and daily statsets and how to label output produced for it.
type NetworkProfile struct {
	Name         string // profile name, e.g. "nem"
	Code         string // network code used in series ids, e.g. "NEM"
	Country      string // country prefix used in series ids, e.g. "au"
	Source       string // source label for output metadata, e.g. "nemweb"
	MonthlyURL   string // monthly energy statset endpoint
	DailyURL     string // daily statset endpoint, {year} placeholder expanded per request
	UTCOffsetHrs int    // market timezone offset, used for created_at stamps
}

func (p NetworkProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Code)
}
