package report

import (
	"strings"
	"time"

	reportRepo "educonnect/database/repository/report"
	userRepo "educonnect/database/repository/user"
	"educonnect/models"
	"educonnect/services/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService defines complaint filing and moderation.
type ReportService interface {
	// FileReport opens a complaint by one user against another.
	FileReport(reporterID primitive.ObjectID, targetID, reason string) (*models.Report, error)
	// ListReports lists reports, optionally filtered by status.
	ListReports(status string) ([]models.Report, error)
	// ResolveReport closes an open report with the admin's note.
	ResolveReport(id primitive.ObjectID, resolution string) (*models.Report, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Repo  reportRepo.ReportRepository
	Users userRepo.UserRepository
}

// FileReport opens a complaint against another user.
func (s *DefaultReportService) FileReport(reporterID primitive.ObjectID, targetID, reason string) (*models.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.Validation("a reason is required")
	}

	tid, err := primitive.ObjectIDFromHex(strings.TrimSpace(targetID))
	if err != nil {
		return nil, apperrors.Validation("invalid target user id %q", targetID)
	}
	if tid == reporterID {
		return nil, apperrors.Validation("cannot report yourself")
	}
	target, err := s.Users.GetByID(tid)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperrors.NotFound("reported user not found")
	}

	now := time.Now().UTC()
	rep := &models.Report{
		ReporterID: reporterID,
		TargetID:   tid,
		Reason:     reason,
		Status:     models.ReportOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// ListReports lists reports, optionally filtered by status.
func (s *DefaultReportService) ListReports(status string) ([]models.Report, error) {
	status = strings.TrimSpace(status)
	if status != "" && status != models.ReportOpen && status != models.ReportResolved {
		return nil, apperrors.Validation("status must be %q or %q", models.ReportOpen, models.ReportResolved)
	}
	return s.Repo.ListByStatus(status)
}

// ResolveReport closes an open report.
func (s *DefaultReportService) ResolveReport(id primitive.ObjectID, resolution string) (*models.Report, error) {
	rep, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, apperrors.NotFound("report not found")
	}
	if rep.Status != models.ReportOpen {
		return nil, apperrors.Conflict("report is already resolved")
	}

	resolution = strings.TrimSpace(resolution)
	if resolution == "" {
		return nil, apperrors.Validation("a resolution note is required")
	}
	if err := s.Repo.Resolve(id, resolution); err != nil {
		return nil, err
	}
	rep.Status = models.ReportResolved
	rep.Resolution = resolution
	return rep, nil
}
