package booking

import (
	"errors"
	"fmt"
	"time"

	sessionRepo "educonnect/database/repository/session"
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UpdateSession edits a pending or confirmed session. A changed time
// range goes back through the transactional overlap check.
func (s *DefaultBookingService) UpdateSession(id, actorUserID primitive.ObjectID, role string, input UpdateSessionInput) (*models.Session, error) {
	session, _, err := s.ownedSession(id, actorUserID, role)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, apperrors.Conflict("only pending or confirmed sessions can be edited")
	}

	dateStr := session.Date
	startStr := session.StartTime.Format(clockLayout)
	endStr := session.EndTime.Format(clockLayout)
	timeChanged := false
	if input.Date != nil {
		dateStr = *input.Date
		timeChanged = true
	}
	if input.Start != nil {
		startStr = *input.Start
		timeChanged = true
	}
	if input.End != nil {
		endStr = *input.End
		timeChanged = true
	}

	if timeChanged {
		day, err := parseDate(dateStr)
		if err != nil {
			return nil, err
		}
		start, err := parseClock(day, startStr)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(day, endStr)
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, apperrors.Validation("end time must be after start time")
		}
		if !start.After(time.Now().UTC()) {
			return nil, apperrors.Validation("session must be scheduled in the future")
		}
		session.Date = day.Format(dateLayout)
		session.TimeSlot = fmt.Sprintf("%s - %s", start.Format(clockLayout), end.Format(clockLayout))
		session.StartTime = start
		session.EndTime = end
	}

	if input.Type != nil {
		if *input.Type != models.SessionOnline && *input.Type != models.SessionInPerson {
			return nil, apperrors.Validation("type must be %q or %q", models.SessionOnline, models.SessionInPerson)
		}
		session.Type = *input.Type
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}
	session.UpdatedAt = time.Now().UTC()

	if err := s.Sessions.UpdateIfAvailable(session); err != nil {
		if errors.Is(err, sessionRepo.ErrSlotTaken) {
			return nil, apperrors.Conflict("tutor already has a session in this time slot")
		}
		return nil, err
	}
	return session, nil
}

// DecideSession is the tutor's response to a pending request: approve
// confirms it, otherwise it is declined and canceled.
func (s *DefaultBookingService) DecideSession(id, tutorUserID primitive.ObjectID, approve bool) (*models.Session, error) {
	session, isTutor, err := s.ownedSession(id, tutorUserID, models.RoleTutor)
	if err != nil {
		return nil, err
	}
	if !isTutor {
		return nil, apperrors.Forbidden("only the session's tutor can respond to a request")
	}

	target := models.SessionCanceled
	if approve {
		target = models.SessionConfirmed
	}
	ok, err := s.Sessions.UpdateStatusFrom(id, models.SessionPending, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Conflict("only pending sessions can be responded to")
	}
	session.Status = target

	studentUserID, found := s.studentUserID(session.StudentID)
	if approve {
		if found {
			s.notify(studentUserID, "Session confirmed",
				fmt.Sprintf("Your session on %s, %s was confirmed.", session.Date, session.TimeSlot))
			s.scheduleReminder(session, studentUserID, tutorUserID)
		}
	} else if found {
		s.notify(studentUserID, "Session declined",
			fmt.Sprintf("Your session request for %s, %s was declined.", session.Date, session.TimeSlot))
	}
	return session, nil
}

// CompleteSession transitions confirmed→completed. The status guard in
// the repository makes the transition, and therefore the earnings
// credit, happen at most once per session.
func (s *DefaultBookingService) CompleteSession(id, tutorUserID primitive.ObjectID) (*models.Session, error) {
	session, isTutor, err := s.ownedSession(id, tutorUserID, models.RoleTutor)
	if err != nil {
		return nil, err
	}
	if !isTutor {
		return nil, apperrors.Forbidden("only the session's tutor can complete it")
	}

	ok, err := s.Sessions.UpdateStatusFrom(id, models.SessionConfirmed, models.SessionCompleted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Conflict("only confirmed sessions can be completed")
	}
	session.Status = models.SessionCompleted

	if err := s.Tutors.IncrementEarnings(session.TutorID, session.Amount); err != nil {
		utils.GetLogger().Error("CompleteSession: earnings credit failed",
			zap.String("sessionID", session.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("failed to credit earnings: %w", err)
	}
	if err := s.Sessions.SetPaymentStatus(id, models.PaymentPaid); err != nil {
		utils.GetLogger().Warn("CompleteSession: failed to mark session paid",
			zap.String("sessionID", session.ID.Hex()), zap.Error(err))
	} else {
		session.PaymentStatus = models.PaymentPaid
	}

	if studentUserID, found := s.studentUserID(session.StudentID); found {
		s.notify(studentUserID, "Session completed",
			fmt.Sprintf("Your session on %s, %s was marked completed.", session.Date, session.TimeSlot))
	}
	return session, nil
}

// CancelSession cancels a pending or confirmed session. Either party
// may cancel; the other one is notified.
func (s *DefaultBookingService) CancelSession(id, actorUserID primitive.ObjectID, role string) (*models.Session, error) {
	session, isTutor, err := s.ownedSession(id, actorUserID, role)
	if err != nil {
		return nil, err
	}

	ok, err := s.Sessions.UpdateStatusFrom(id, models.SessionPending, models.SessionCanceled)
	if err != nil {
		return nil, err
	}
	if !ok {
		ok, err = s.Sessions.UpdateStatusFrom(id, models.SessionConfirmed, models.SessionCanceled)
		if err != nil {
			return nil, err
		}
	}
	if !ok {
		return nil, apperrors.Conflict("session is already completed or canceled")
	}
	session.Status = models.SessionCanceled

	body := fmt.Sprintf("The session on %s, %s was canceled.", session.Date, session.TimeSlot)
	if isTutor {
		if studentUserID, found := s.studentUserID(session.StudentID); found {
			s.notify(studentUserID, "Session canceled", body)
		}
	} else if tutor, err := s.Tutors.GetByID(session.TutorID); err == nil && tutor != nil {
		s.notify(tutor.UserID, "Session canceled", body)
	}
	return session, nil
}

// studentUserID resolves a student profile to its account ID.
func (s *DefaultBookingService) studentUserID(studentID primitive.ObjectID) (primitive.ObjectID, bool) {
	student, err := s.Students.GetByID(studentID)
	if err != nil || student == nil {
		return primitive.NilObjectID, false
	}
	return student.UserID, true
}

func (s *DefaultBookingService) scheduleReminder(session *models.Session, studentUserID, tutorUserID primitive.ObjectID) {
	if s.Reminders == nil {
		return
	}
	tutorName := "your tutor"
	if tutorUser, err := s.Users.GetByID(tutorUserID); err == nil && tutorUser != nil {
		tutorName = tutorUser.Name
	}
	if err := s.Reminders.ScheduleReminder(session, studentUserID, tutorName); err != nil {
		utils.GetLogger().Warn("DecideSession: failed to schedule reminder",
			zap.String("sessionID", session.ID.Hex()), zap.Error(err))
	}
}
