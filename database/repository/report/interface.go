package reportRepo

import (
	"educonnect/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportRepository defines methods for report data access.
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id primitive.ObjectID) (*models.Report, error)
	// ListByStatus lists reports in the given status, oldest first.
	// An empty status lists everything.
	ListByStatus(status string) ([]models.Report, error)
	// Resolve marks the report resolved with the admin's note.
	Resolve(id primitive.ObjectID, resolution string) error
}
