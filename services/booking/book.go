package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sessionRepo "educonnect/database/repository/session"
	"educonnect/models"
	"educonnect/services/apperrors"
	"educonnect/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// BookSession creates a pending session for the student. The overlap
// check and the insert run in one transaction inside the repository, so
// two concurrent requests for the same slot cannot both succeed.
func (s *DefaultBookingService) BookSession(studentUserID primitive.ObjectID, input BookSessionInput) (*models.Session, error) {
	tid, err := parseTutorID(input.TutorID)
	if err != nil {
		return nil, err
	}

	tutor, err := s.Tutors.GetByID(tid)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, apperrors.NotFound("tutor not found")
	}
	if tutor.UserID == studentUserID {
		return nil, apperrors.Validation("cannot book a session with yourself")
	}

	student, err := s.Students.GetByUserID(studentUserID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NotFound("student profile not found")
	}

	day, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}
	start, err := parseClock(day, input.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(day, input.End)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, apperrors.Validation("end time must be after start time")
	}
	if !start.After(time.Now().UTC()) {
		return nil, apperrors.Validation("session must be scheduled in the future")
	}

	sessType := strings.TrimSpace(input.Type)
	if sessType == "" {
		sessType = models.SessionOnline
	}
	if sessType != models.SessionOnline && sessType != models.SessionInPerson {
		return nil, apperrors.Validation("type must be %q or %q", models.SessionOnline, models.SessionInPerson)
	}

	now := time.Now().UTC()
	session := &models.Session{
		StudentID: student.ID,
		TutorID:   tid,
		Date:      day.Format(dateLayout),
		TimeSlot:  fmt.Sprintf("%s - %s", start.Format(clockLayout), end.Format(clockLayout)),
		StartTime: start,
		EndTime:   end,
		Type:      sessType,
		Subject:   strings.TrimSpace(input.Subject),
		Status:    models.SessionPending,
		// Rate changes after booking do not reprice existing sessions.
		Amount:        tutor.HourlyRate,
		PaymentStatus: models.PaymentUnpaid,
		Notes:         strings.TrimSpace(input.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Sessions.InsertIfAvailable(session); err != nil {
		if errors.Is(err, sessionRepo.ErrSlotTaken) {
			return nil, apperrors.Conflict("tutor already has a session in this time slot")
		}
		utils.GetLogger().Error("BookSession: insert failed", zap.Error(err))
		return nil, err
	}

	studentUser, err := s.Users.GetByID(studentUserID)
	if err != nil || studentUser == nil {
		s.notify(tutor.UserID, "New session request",
			fmt.Sprintf("You have a new session request on %s, %s.", session.Date, session.TimeSlot))
	} else {
		s.notify(tutor.UserID, "New session request",
			fmt.Sprintf("%s requested a session on %s, %s.", studentUser.Name, session.Date, session.TimeSlot))
	}

	return session, nil
}

func (s *DefaultBookingService) notify(userID primitive.ObjectID, title, body string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Notify(userID, title, body)
}
