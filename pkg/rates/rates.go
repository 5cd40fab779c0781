package rates

import (
	"github.com/Antonellome/riso-server/pkg/report"
)

// Entry is one hourly rate for one shift type.
type Entry struct {
	Type report.ShiftType `json:"type"`
	Rate float64          `json:"rate"`
}

// Table maps shift types to hourly rates. It is built once from
// configuration or settings and read-only afterwards.
type Table struct {
	byType map[report.ShiftType]float64
}

// NewTable builds a rate table from entries. A duplicated shift type keeps
// the last entry.
func NewTable(entries []Entry) Table {
	byType := make(map[report.ShiftType]float64, len(entries))
	for _, e := range entries {
		byType[e.Type] = e.Rate
	}
	return Table{byType: byType}
}

// RateFor returns the hourly rate for a shift type, 0 when unknown.
func (t Table) RateFor(shiftType report.ShiftType) float64 {
	return t.byType[shiftType]
}
