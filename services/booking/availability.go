package booking

import (
	"fmt"
	"strings"
	"time"

	"educonnect/models"
	"educonnect/services/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseDate parses a calendar date into its UTC day boundary.
func parseDate(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, apperrors.Validation("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}

// parseClock combines a day boundary with a wall-clock time.
func parseClock(day time.Time, s string) (time.Time, error) {
	t, err := time.ParseInLocation(clockLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, apperrors.Validation("invalid time %q, expected HH:MM", s)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}

// parseTimeSlot splits a "HH:MM - HH:MM" label into start/end times on
// the given day.
func parseTimeSlot(day time.Time, slot string) (time.Time, time.Time, error) {
	parts := strings.Split(slot, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, apperrors.Validation("invalid time slot %q, expected HH:MM - HH:MM", slot)
	}
	start, err := parseClock(day, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseClock(day, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, apperrors.Validation("end time must be after start time")
	}
	return start, end, nil
}

// overlaps reports whether [aStart,aEnd) intersects [bStart,bEnd). An
// identical start is treated as a conflict outright.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aStart.Equal(bStart) {
		return true
	}
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func parseTutorID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("invalid tutor id %q", s)
	}
	return id, nil
}

// slotTaken reports whether any non-canceled session of the tutor on
// the slot's day overlaps [start,end).
func (s *DefaultBookingService) slotTaken(tutorID primitive.ObjectID, day, start, end time.Time, exclude primitive.ObjectID) (bool, error) {
	existing, err := s.Sessions.ListActiveByTutorWindow(tutorID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return false, fmt.Errorf("failed to load tutor schedule: %w", err)
	}
	for _, sess := range existing {
		if sess.ID == exclude {
			continue
		}
		if sess.Status == models.SessionCanceled {
			continue
		}
		if overlaps(sess.StartTime, sess.EndTime, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// CheckAvailability reports whether the requested slot is free.
func (s *DefaultBookingService) CheckAvailability(tutorID, date, timeSlot string) (*AvailabilityResult, error) {
	tid, err := parseTutorID(tutorID)
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

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	start, end, err := parseTimeSlot(day, timeSlot)
	if err != nil {
		return nil, err
	}

	taken, err := s.slotTaken(tid, day, start, end, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Available: !taken,
		TutorID:   tid.Hex(),
		Date:      day.Format(dateLayout),
		TimeSlot:  fmt.Sprintf("%s - %s", start.Format(clockLayout), end.Format(clockLayout)),
	}, nil
}
