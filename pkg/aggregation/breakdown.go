package aggregation

import (
	"sort"

	"github.com/Antonellome/riso-server/pkg/report"
)

// TechnicianHours is one co-worker row of a report breakdown.
type TechnicianHours struct {
	Name         string  `json:"name"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	PauseMinutes int     `json:"pauseMinutes"`
	Hours        float64 `json:"hours"`
}

// ReportBreakdown is the per-report hour split shown on the daily report
// view: the primary technician plus every co-worker block.
type ReportBreakdown struct {
	PrimaryHours float64           `json:"primaryHours"`
	Technicians  []TechnicianHours `json:"technicians"`
	TotalHours   float64           `json:"totalHours"`
}

// Breakdown computes the hour split for one report. Every co-worker block is
// computed with the parent report's pause, not its own, and rows are sorted
// by start time ascending for presentation.
func Breakdown(r report.Report) ReportBreakdown {
	primary := r.Hours()

	technicians := make([]TechnicianHours, 0, len(r.Technicians))
	for _, tech := range r.Technicians {
		technicians = append(technicians, TechnicianHours{
			Name:         tech.Name,
			StartTime:    tech.StartTime,
			EndTime:      tech.EndTime,
			PauseMinutes: r.PauseMinutes,
			Hours:        report.HoursWorked(tech.StartTime, tech.EndTime, r.PauseMinutes),
		})
	}
	sort.SliceStable(technicians, func(i, j int) bool {
		return technicians[i].StartTime < technicians[j].StartTime
	})

	total := primary
	for _, tech := range technicians {
		total += tech.Hours
	}

	return ReportBreakdown{
		PrimaryHours: primary,
		Technicians:  technicians,
		TotalHours:   total,
	}
}
