package booking

import (
	"testing"
	"time"

	"educonnect/services/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := parseDate(s)
	require.NoError(t, err)
	return day
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	cases := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(11, 0), at(9, 30), at(10, 0), true},
		{"identical start", at(9, 0), at(10, 0), at(9, 0), at(11, 0), true},
		{"back to back before", at(8, 0), at(9, 0), at(9, 0), at(10, 0), false},
		{"back to back after", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(7, 0), at(8, 0), at(9, 0), at(10, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestParseTimeSlot(t *testing.T) {
	day := mustDate(t, "2026-03-10")

	start, end, err := parseTimeSlot(day, "09:00 - 10:30")
	require.NoError(t, err)
	assert.Equal(t, day.Add(9*time.Hour), start)
	assert.Equal(t, day.Add(10*time.Hour+30*time.Minute), end)

	// Spacing around the dash is optional.
	start2, end2, err := parseTimeSlot(day, "09:00-10:30")
	require.NoError(t, err)
	assert.Equal(t, start, start2)
	assert.Equal(t, end, end2)
}

func TestParseTimeSlotRejectsBadInput(t *testing.T) {
	day := mustDate(t, "2026-03-10")

	for _, slot := range []string{"", "09:00", "nine - ten", "10:00 - 09:00", "09:00 - 09:00"} {
		_, _, err := parseTimeSlot(day, slot)
		require.Error(t, err, "slot %q", slot)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "10-03-2026", "2026/03/10", "2026-13-40"} {
		_, err := parseDate(raw)
		require.Error(t, err, "date %q", raw)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestCheckAvailability(t *testing.T) {
	svc, ids := newTestBookingService(t)

	res, err := svc.CheckAvailability(ids.tutorID.Hex(), "2030-05-01", "09:00 - 10:00")
	require.NoError(t, err)
	assert.True(t, res.Available)

	_, err = svc.BookSession(ids.studentUserID, BookSessionInput{
		TutorID: ids.tutorID.Hex(),
		Date:    "2030-05-01",
		Start:   "09:00",
		End:     "10:00",
	})
	require.NoError(t, err)

	res, err = svc.CheckAvailability(ids.tutorID.Hex(), "2030-05-01", "09:30 - 10:30")
	require.NoError(t, err)
	assert.False(t, res.Available)

	res, err = svc.CheckAvailability(ids.tutorID.Hex(), "2030-05-01", "10:00 - 11:00")
	require.NoError(t, err)
	assert.True(t, res.Available, "back-to-back slots do not conflict")
}

func TestCheckAvailabilityUnknownTutor(t *testing.T) {
	svc, _ := newTestBookingService(t)

	_, err := svc.CheckAvailability("000000000000000000000000", "2030-05-01", "09:00 - 10:00")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = svc.CheckAvailability("not-an-id", "2030-05-01", "09:00 - 10:00")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
