package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes wires all HTTP endpoints to their handlers.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Reports
	r.HandleFunc("/api/report", deps.ReportHandler.Create).Methods("POST")
	r.HandleFunc("/api/report", deps.ReportHandler.Search).Methods("GET")
	r.HandleFunc("/api/report/{reportId}/hours", deps.AggregationHandler.GetReportHours).Methods("GET")
	r.HandleFunc("/api/report/{reportId}", deps.ReportHandler.Get).Methods("GET")
	r.HandleFunc("/api/report/{reportId}", deps.ReportHandler.Update).Methods("PUT")
	r.HandleFunc("/api/report/{reportId}", deps.ReportHandler.Delete).Methods("DELETE")

	// Technicians
	r.HandleFunc("/api/technician/recent", deps.ReportHandler.RecentTechnicians).Methods("GET")

	// Aggregations. No query matchers here: the handlers report a missing
	// date or month as a 400 with details, not a bare 404.
	r.HandleFunc("/api/aggregation/daily", deps.AggregationHandler.GetDaily).Methods("GET")
	r.HandleFunc("/api/aggregation/monthly", deps.AggregationHandler.GetMonthly).Methods("GET")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetSummary).Methods("GET")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.Put).Methods("PUT")

	// Notifications
	r.HandleFunc("/api/notification", deps.NotificationHandler.List).Methods("GET")
	r.HandleFunc("/api/notification", deps.NotificationHandler.Push).Methods("POST")
	r.HandleFunc("/api/notification/{notificationId}/read", deps.NotificationHandler.MarkRead).Methods("PATCH")
	r.HandleFunc("/api/notification/{notificationId}", deps.NotificationHandler.Delete).Methods("DELETE")
}
