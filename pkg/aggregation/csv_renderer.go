package aggregation

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/Antonellome/riso-server/pkg/report"
	log "github.com/sirupsen/logrus"
)

// MonthlyRenderer turns a monthly aggregation into a document for export.
type MonthlyRenderer interface {
	Render(monthly MonthlyAggregation) (string, error)
}

// CsvMonthlyRendererImpl renders one row per report followed by per-type and
// grand totals, for spreadsheet import.
type CsvMonthlyRendererImpl struct {
}

func NewCsvMonthlyRenderer() *CsvMonthlyRendererImpl {
	return &CsvMonthlyRendererImpl{}
}

func (t *CsvMonthlyRendererImpl) Render(monthly MonthlyAggregation) (string, error) {
	data := make([][]string, 0, len(monthly.Reports)+len(monthly.Result.HoursByType)+3)
	data = append(data, []string{"Date", "Shift", "Start", "End", "Pause", "Ship", "Location", "Hours"})

	for _, r := range monthly.Reports {
		data = append(data, []string{
			r.Date,
			string(r.ShiftType),
			r.StartTime,
			r.EndTime,
			strconv.Itoa(r.PauseMinutes),
			r.Ship,
			r.Location,
			formatHours(r.Hours()),
		})
	}

	data = append(data, []string{})
	for _, shiftType := range sortedTypes(monthly.Result.HoursByType) {
		data = append(data, []string{
			"Total " + string(shiftType),
			formatHours(monthly.Result.HoursByType[shiftType]),
			formatEarnings(monthly.Result.EarningsByType[shiftType]),
		})
	}
	data = append(data, []string{
		"TOTAL",
		formatHours(monthly.Result.TotalHours),
		formatEarnings(monthly.Result.TotalEarnings),
	})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func sortedTypes(byType map[report.ShiftType]float64) []report.ShiftType {
	types := make([]report.ShiftType, 0, len(byType))
	for shiftType := range byType {
		types = append(types, shiftType)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})
	return types
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

func formatEarnings(earnings float64) string {
	return strconv.FormatFloat(earnings, 'f', 2, 64)
}
