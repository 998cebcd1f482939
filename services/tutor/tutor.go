package tutor

import (
	"strings"
	"time"

	"educonnect/models"
	"educonnect/services/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetTutor fetches a tutor's public profile.
func (s *DefaultTutorService) GetTutor(id primitive.ObjectID) (*models.TutorProfile, error) {
	profile, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("tutor not found")
	}
	return profile, nil
}

// GetOwnProfile fetches the calling tutor's profile.
func (s *DefaultTutorService) GetOwnProfile(userID primitive.ObjectID) (*models.TutorProfile, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NotFound("tutor profile not found")
	}
	return profile, nil
}

// SearchTutors lists tutors matching the filter.
func (s *DefaultTutorService) SearchTutors(filter models.TutorSearchFilter) ([]models.TutorProfile, error) {
	if filter.MinRate < 0 || filter.MaxRate < 0 {
		return nil, apperrors.Validation("rate bounds cannot be negative")
	}
	if filter.MaxRate > 0 && filter.MinRate > filter.MaxRate {
		return nil, apperrors.Validation("minimum rate cannot exceed maximum rate")
	}
	filter.Subject = strings.TrimSpace(filter.Subject)
	return s.Repo.Search(filter)
}

// UpdateOwnProfile applies the tutor's edits to their own profile.
func (s *DefaultTutorService) UpdateOwnProfile(userID primitive.ObjectID, update ProfileUpdate) (*models.TutorProfile, error) {
	profile, err := s.GetOwnProfile(userID)
	if err != nil {
		return nil, err
	}

	if update.Bio != nil {
		profile.Bio = strings.TrimSpace(*update.Bio)
	}
	if update.Subjects != nil {
		profile.Subjects = *update.Subjects
	}
	if update.HourlyRate != nil {
		if *update.HourlyRate <= 0 {
			return nil, apperrors.Validation("hourly rate must be greater than zero")
		}
		profile.HourlyRate = *update.HourlyRate
	}
	if update.Availability != nil {
		profile.Availability = strings.TrimSpace(*update.Availability)
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetEarnings summarizes the tutor's cumulative earnings and session
// counts. The total comes from the profile counter, not a sum over
// sessions, so it reflects exactly the completed transitions.
func (s *DefaultTutorService) GetEarnings(userID primitive.ObjectID) (*models.EarningsSummary, error) {
	profile, err := s.GetOwnProfile(userID)
	if err != nil {
		return nil, err
	}

	completed, err := s.Sessions.CountByTutorAndStatus(profile.ID, models.SessionCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.Sessions.CountByTutorAndStatus(profile.ID, models.SessionPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Sessions.CountByTutorAndStatus(profile.ID, models.SessionConfirmed)
	if err != nil {
		return nil, err
	}

	return &models.EarningsSummary{
		TotalEarnings:     profile.Earnings,
		CompletedSessions: int(completed),
		PendingSessions:   int(pending),
		ConfirmedSessions: int(confirmed),
	}, nil
}
