package event_bus

const (
	ReportCreated EventType = "report.created"
	ReportUpdated EventType = "report.updated"
	ReportDeleted EventType = "report.deleted"
)

// ReportEvent is the payload for all report lifecycle events.
type ReportEvent struct {
	ReportId string
	Date     string
}
