package analyticsRepo

import "educonnect/models"

// AnalyticsRepository computes the admin dashboard aggregates.
type AnalyticsRepository interface {
	Overview() (*models.AnalyticsOverview, error)
}
