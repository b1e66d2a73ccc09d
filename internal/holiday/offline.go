package holiday

import (
	"context"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// stateHolidays lists the public holidays each German state observes on top
// of the nationwide set.
var stateHolidays = map[string][]*cal.Holiday{
	"BW": {de.HeiligeDreiKoenige, de.Fronleichnam, de.Allerheiligen},
	"BY": {de.HeiligeDreiKoenige, de.Fronleichnam, de.MariaHimmelfahrt, de.Allerheiligen},
	"BE": {de.Frauentag},
	"BB": {de.Reformationstag},
	"HB": {de.Reformationstag},
	"HH": {de.Reformationstag},
	"HE": {de.Fronleichnam},
	"MV": {de.Reformationstag},
	"NI": {de.Reformationstag},
	"NW": {de.Fronleichnam, de.Allerheiligen},
	"RP": {de.Fronleichnam, de.Allerheiligen},
	"SL": {de.Fronleichnam, de.MariaHimmelfahrt, de.Allerheiligen},
	"SN": {de.Reformationstag, de.BussUndBettag},
	"ST": {de.HeiligeDreiKoenige, de.Reformationstag},
	"SH": {de.Reformationstag},
	"TH": {de.Weltkindertag, de.Reformationstag},
}

// OfflineSource answers from a computed holiday calendar for the configured
// German state. Unknown region codes fall back to the nationwide holidays.
type OfflineSource struct {
	calendar *cal.Calendar
	region   string
}

func NewOfflineSource(region string) *OfflineSource {
	region = strings.ToUpper(strings.TrimSpace(region))

	calendar := &cal.Calendar{Name: "Germany/" + region}
	calendar.AddHoliday(de.Holidays...)
	calendar.AddHoliday(stateHolidays[region]...)

	return &OfflineSource{
		calendar: calendar,
		region:   region,
	}
}

func (s *OfflineSource) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	actual, observed, _ := s.calendar.IsHoliday(date)
	return actual || observed, nil
}
