package settings

import (
	"time"

	"github.com/Antonellome/riso-server/internal/config"
	"github.com/Antonellome/riso-server/pkg/rates"
	"github.com/Antonellome/riso-server/pkg/report"
)

type UserSettings struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

type WorkSettings struct {
	DefaultStartTime    string        `json:"defaultStartTime"`
	DefaultEndTime      string        `json:"defaultEndTime"`
	DefaultPauseMinutes int           `json:"defaultPauseMinutes"`
	HourlyRates         []rates.Entry `json:"hourlyRates"`
}

// AppSettings is the whole settings document: work defaults, the rate table
// source, and the pick lists offered by the report form.
type AppSettings struct {
	User UserSettings `json:"user"`
	Work WorkSettings `json:"work"`
	// WeekFirstDay anchors the statistics week. Sunday matches the mobile
	// app; Monday-start locales change it here instead of patching the code.
	WeekFirstDay time.Weekday `json:"weekFirstDay"`
	Ships        []string     `json:"ships"`
	Locations    []string     `json:"locations"`
	Technicians  []string     `json:"technicians"`
}

// DefaultsFromConfig builds the settings used until a document is stored.
func DefaultsFromConfig(work config.Work) AppSettings {
	hourlyRates := make([]rates.Entry, 0, len(work.Rates))
	for _, r := range work.Rates {
		hourlyRates = append(hourlyRates, rates.Entry{Type: report.ShiftType(r.Type), Rate: r.Rate})
	}
	return AppSettings{
		Work: WorkSettings{
			DefaultStartTime:    work.DefaultStartTime,
			DefaultEndTime:      work.DefaultEndTime,
			DefaultPauseMinutes: work.DefaultPauseMinutes,
			HourlyRates:         hourlyRates,
		},
		WeekFirstDay: time.Sunday,
		Ships:        []string{},
		Locations:    []string{},
		Technicians:  []string{},
	}
}
