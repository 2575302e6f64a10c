package adapters

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/grid-tools/fuelmix/pkg/models/api"
	"github.com/grid-tools/fuelmix/pkg/models/domain"
)

const (
	statSetType    = "energy_share"
	statSetVersion = "v4"
)

// MapShareSeriesToStatSet serializes a computed share series into the v4
// statset wire format: one series per tracked group, history data arrays
// positionally aligned to the months from the first to the last point
// inclusive. NaN share points (zero-generation windows) become JSON nulls.
func MapShareSeriesToStatSet(
	series domain.ShareSeries,
	profile domain.NetworkProfile,
	createdAt time.Time,
) (api.StatSet, error) {
	if len(series) == 0 {
		return api.StatSet{}, fmt.Errorf("share series is empty")
	}

	start := series[0].Month.String()
	last := series[len(series)-1].Month.String()
	note := seriesNote(series)

	fossil := make([]*float64, 0, len(series))
	renewable := make([]*float64, 0, len(series))
	for _, point := range series {
		fossil = append(fossil, shareValue(point.FossilPct))
		renewable = append(renewable, shareValue(point.RenewablePct))
	}

	zone := time.FixedZone("", profile.UTCOffsetHrs*3600)
	return api.StatSet{
		Type:      statSetType,
		Version:   statSetVersion,
		Network:   profile.Code,
		CreatedAt: createdAt.In(zone).Format(time.RFC3339),
		Data: []api.StatSeries{
			{
				ID:          groupSeriesID(profile, "fossils"),
				Type:        statSetType,
				Units:       "%",
				Network:     profile.Code,
				Source:      profile.Source,
				Description: "12-month rolling average of fossil fuel share of total generation",
				Note:        note,
				History:     api.History{Start: start, Last: last, Interval: IntervalMonthly, Data: fossil},
			},
			{
				ID:          groupSeriesID(profile, "renewables"),
				Type:        statSetType,
				Units:       "%",
				Network:     profile.Code,
				Source:      profile.Source,
				Description: "12-month rolling average of renewable energy share of total generation",
				Note:        note,
				History:     api.History{Start: start, Last: last, Interval: IntervalMonthly, Data: renewable},
			},
		},
	}, nil
}

func groupSeriesID(profile domain.NetworkProfile, group string) string {
	return fmt.Sprintf("%s.%s.fuel_tech_group.%s.energy_share",
		profile.Country, strings.ToLower(profile.Code), group)
}

func seriesNote(series domain.ShareSeries) string {
	note := "Shares calculated as percentage of total generation including all sources."
	final := series[len(series)-1]
	if final.Estimate {
		note = fmt.Sprintf("%s Last value (%s) is an %s", note, final.Month, final.Note)
	}
	return note
}

func shareValue(pct float64) *float64 {
	if math.IsNaN(pct) {
		return nil
	}
	v := pct
	return &v
}
