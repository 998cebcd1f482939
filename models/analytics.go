package models

// AnalyticsOverview is the admin dashboard summary.
type AnalyticsOverview struct {
	UsersByRole       map[string]int64 `json:"usersByRole"`
	SessionsByStatus  map[string]int64 `json:"sessionsByStatus"`
	CompletedRevenue  float64          `json:"completedRevenue"`
	OpenReports       int64            `json:"openReports"`
	PendingVerifies   int64            `json:"pendingVerifications"`
	TopTutorsByRating []TutorProfile   `json:"topTutorsByRating"`
}
