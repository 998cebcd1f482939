package admin

import (
	"strings"

	analyticsRepo "educonnect/database/repository/analytics"
	tutorRepo "educonnect/database/repository/tutor"
	userRepo "educonnect/database/repository/user"
	verificationRepo "educonnect/database/repository/verification"
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier delivers a message to a user account; best-effort.
type Notifier interface {
	Notify(userID primitive.ObjectID, title, body string)
}

// AdminService defines the moderation surface.
type AdminService interface {
	// ListUsers lists users, optionally filtered by role.
	ListUsers(role string) ([]models.User, error)
	// SetUserActive activates or deactivates an account. Deactivation
	// revokes the user's tokens immediately.
	SetUserActive(id primitive.ObjectID, active bool) (*models.User, error)
	// ListVerifications lists verification requests by status.
	ListVerifications(status string) ([]models.VerificationRequest, error)
	// DecideVerification approves or rejects a pending request.
	DecideVerification(id primitive.ObjectID, approve bool, note string) (*models.VerificationRequest, error)
	// Analytics computes the dashboard overview.
	Analytics() (*models.AnalyticsOverview, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Users         userRepo.UserRepository
	Tutors        tutorRepo.TutorRepository
	Verifications verificationRepo.VerificationRepository
	Stats         analyticsRepo.AnalyticsRepository
	// Notifier is optional; nil disables delivery.
	Notifier Notifier
}

// ListUsers lists users, optionally filtered by role.
func (s *DefaultAdminService) ListUsers(role string) ([]models.User, error) {
	role = strings.TrimSpace(role)
	switch role {
	case "", models.RoleStudent, models.RoleTutor, models.RoleAdmin:
		return s.Users.GetAll(role)
	default:
		return nil, apperrors.Validation("unknown role %q", role)
	}
}

// SetUserActive flips the moderation flag. Deactivating bumps the
// tokenVersion so outstanding tokens die on their next request.
func (s *DefaultAdminService) SetUserActive(id primitive.ObjectID, active bool) (*models.User, error) {
	userRec, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, apperrors.NotFound("user not found")
	}
	if userRec.Role == models.RoleAdmin && !active {
		return nil, apperrors.Forbidden("admin accounts cannot be deactivated")
	}

	if err := s.Users.SetActive(id, active); err != nil {
		return nil, err
	}
	userRec.Active = active

	if !active {
		if _, err := s.Users.IncrementTokenVersion(id); err != nil {
			return nil, err
		}
		utils.DropAuthVersion(id.Hex())
	}
	return userRec, nil
}

// ListVerifications lists verification requests by status. An empty
// status defaults to the pending queue.
func (s *DefaultAdminService) ListVerifications(status string) ([]models.VerificationRequest, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = models.VerificationPending
	}
	switch status {
	case models.VerificationPending, models.VerificationApproved, models.VerificationRejected:
		return s.Verifications.ListByStatus(status)
	default:
		return nil, apperrors.Validation("unknown verification status %q", status)
	}
}

// DecideVerification records the admin decision on a pending request.
// Approval flips the tutor's verified badge.
func (s *DefaultAdminService) DecideVerification(id primitive.ObjectID, approve bool, note string) (*models.VerificationRequest, error) {
	req, err := s.Verifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.NotFound("verification request not found")
	}
	if req.Status != models.VerificationPending {
		return nil, apperrors.Conflict("verification request has already been decided")
	}

	status := models.VerificationRejected
	if approve {
		status = models.VerificationApproved
	}
	if err := s.Verifications.UpdateStatus(id, status, note); err != nil {
		return nil, err
	}
	req.Status = status
	req.ReviewerNote = note

	if approve {
		if err := s.Tutors.SetVerified(req.TutorID, true); err != nil {
			return nil, err
		}
	}
	s.notifyTutor(req.TutorID, approve)
	return req, nil
}

// Analytics computes the dashboard overview.
func (s *DefaultAdminService) Analytics() (*models.AnalyticsOverview, error) {
	return s.Stats.Overview()
}

func (s *DefaultAdminService) notifyTutor(tutorID primitive.ObjectID, approved bool) {
	if s.Notifier == nil {
		return
	}
	tutor, err := s.Tutors.GetByID(tutorID)
	if err != nil || tutor == nil {
		return
	}
	if approved {
		s.Notifier.Notify(tutor.UserID, "Verification approved", "Your tutor profile is now verified.")
	} else {
		s.Notifier.Notify(tutor.UserID, "Verification rejected", "Your verification request was rejected.")
	}
}
