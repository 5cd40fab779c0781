package report

// ShiftType is the pay category of a logged shift. The values are the wire
// labels the mobile app has always stored, so they are kept verbatim.
type ShiftType string

const (
	ShiftOrdinary     ShiftType = "Ordinaria"
	ShiftOvertime     ShiftType = "Straordinaria"
	ShiftHoliday      ShiftType = "Festiva"
	ShiftVacation     ShiftType = "Ferie"
	ShiftLeave        ShiftType = "Permesso"
	ShiftSick         ShiftType = "Malattia"
	ShiftSpecialLeave ShiftType = "104"
)

// Technician is a co-worker time block attached to a report. PauseMinutes is
// carried for wire compatibility, but hour computations always apply the
// parent report's pause.
type Technician struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	PauseMinutes int    `json:"pauseMinutes"`
}

// Report is one technician's logged shift for one date.
type Report struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"` // YYYY-MM-DD
	ShiftType    ShiftType    `json:"shiftType"`
	StartTime    string       `json:"startTime"` // HH:MM
	EndTime      string       `json:"endTime"`   // HH:MM
	PauseMinutes int          `json:"pauseMinutes"`
	Ship         string       `json:"ship"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Materials    string       `json:"materials"`
	WorkDone     string       `json:"workDone"`
	Technicians  []Technician `json:"technicians"`
	CreatedAt    int64        `json:"createdAt"` // epoch millis, set by the store
	UpdatedAt    int64        `json:"updatedAt"` // epoch millis, set by the store
}

// Hours returns the primary technician's worked hours.
func (r Report) Hours() float64 {
	return HoursWorked(r.StartTime, r.EndTime, r.PauseMinutes)
}
