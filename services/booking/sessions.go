package booking

import (
	"educonnect/models"
	"educonnect/services/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListSessionsFor lists the caller's sessions, resolved through the
// caller's role profile.
func (s *DefaultBookingService) ListSessionsFor(userID primitive.ObjectID, role string) ([]models.Session, error) {
	switch role {
	case models.RoleStudent:
		student, err := s.Students.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperrors.NotFound("student profile not found")
		}
		return s.Sessions.ListByStudent(student.ID)
	case models.RoleTutor:
		tutor, err := s.Tutors.GetByUserID(userID)
		if err != nil {
			return nil, err
		}
		if tutor == nil {
			return nil, apperrors.NotFound("tutor profile not found")
		}
		return s.Sessions.ListByTutor(tutor.ID)
	default:
		return nil, apperrors.Forbidden("only students and tutors have sessions")
	}
}

// GetSessionFor fetches one session and verifies the caller owns it.
func (s *DefaultBookingService) GetSessionFor(id, userID primitive.ObjectID, role string) (*models.Session, error) {
	session, _, err := s.ownedSession(id, userID, role)
	return session, err
}

// ownedSession loads a session and checks the caller is one of its two
// parties. It reports whether the caller is the session's tutor.
func (s *DefaultBookingService) ownedSession(id, userID primitive.ObjectID, role string) (*models.Session, bool, error) {
	session, err := s.Sessions.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if session == nil {
		return nil, false, apperrors.NotFound("session not found")
	}

	switch role {
	case models.RoleStudent:
		student, err := s.Students.GetByUserID(userID)
		if err != nil {
			return nil, false, err
		}
		if student == nil || student.ID != session.StudentID {
			return nil, false, apperrors.Forbidden("you are not a party to this session")
		}
		return session, false, nil
	case models.RoleTutor:
		tutor, err := s.Tutors.GetByUserID(userID)
		if err != nil {
			return nil, false, err
		}
		if tutor == nil || tutor.ID != session.TutorID {
			return nil, false, apperrors.Forbidden("you are not a party to this session")
		}
		return session, true, nil
	default:
		return nil, false, apperrors.Forbidden("you are not a party to this session")
	}
}
