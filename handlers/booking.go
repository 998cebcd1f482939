package handlers

import (
	"net/http"

	"educonnect/middleware"
	bookingService "educonnect/services/booking"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// CheckAvailabilityHandler runs the advisory overlap pre-check.
func CheckAvailabilityHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tutorID := c.Query("tutorId")
		date := c.Query("date")
		timeSlot := c.Query("timeSlot")
		if tutorID == "" || date == "" || timeSlot == "" {
			utils.JSONError(c, http.StatusBadRequest, "tutorId, date and timeSlot are required")
			return
		}

		result, err := svc.CheckAvailability(tutorID, date, timeSlot)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, result)
	}
}

// BookSessionHandler creates a pending session for the calling student.
func BookSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			TutorID string `json:"tutorId"`
			Date    string `json:"date"`
			Start   string `json:"start"`
			End     string `json:"end"`
			Type    string `json:"type"`
			Subject string `json:"subject"`
			Notes   string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := svc.BookSession(userID, bookingService.BookSessionInput{
			TutorID: input.TutorID,
			Date:    input.Date,
			Start:   input.Start,
			End:     input.End,
			Type:    input.Type,
			Subject: input.Subject,
			Notes:   input.Notes,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, session)
	}
}

// ListSessionsHandler lists the caller's sessions.
func ListSessionsHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		sessions, err := svc.ListSessionsFor(userID, middleware.RoleFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, sessions)
	}
}

// GetSessionHandler returns one of the caller's sessions.
func GetSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		session, err := svc.GetSessionFor(id, userID, middleware.RoleFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, session)
	}
}

// UpdateSessionHandler edits a pending or confirmed session.
func UpdateSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Date  *string `json:"date"`
			Start *string `json:"start"`
			End   *string `json:"end"`
			Type  *string `json:"type"`
			Notes *string `json:"notes"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		session, err := svc.UpdateSession(id, userID, middleware.RoleFrom(c), bookingService.UpdateSessionInput{
			Date:  input.Date,
			Start: input.Start,
			End:   input.End,
			Type:  input.Type,
			Notes: input.Notes,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, session)
	}
}

// RespondToSessionHandler lets the tutor approve or decline a pending
// request.
func RespondToSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Approve *bool `json:"approve"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Approve == nil {
			utils.JSONError(c, http.StatusBadRequest, "an approve flag is required")
			return
		}

		session, err := svc.DecideSession(id, userID, *input.Approve)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, session)
	}
}

// CompleteSessionHandler marks a confirmed session completed and
// credits the tutor.
func CompleteSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		session, err := svc.CompleteSession(id, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, session)
	}
}

// CancelSessionHandler cancels a pending or confirmed session.
func CancelSessionHandler(svc bookingService.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		session, err := svc.CancelSession(id, userID, middleware.RoleFrom(c))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, session)
	}
}
