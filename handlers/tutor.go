package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"educonnect/middleware"
	"educonnect/models"
	reviewService "educonnect/services/review"
	tutorService "educonnect/services/tutor"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// SearchTutorsHandler lists tutors matching the query filters.
func SearchTutorsHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.TutorSearchFilter{
			Subject:      c.Query("subject"),
			VerifiedOnly: c.Query("verified") == "true",
		}
		if raw := c.Query("minRate"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid minRate parameter")
				return
			}
			filter.MinRate = v
		}
		if raw := c.Query("maxRate"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid maxRate parameter")
				return
			}
			filter.MaxRate = v
		}

		tutors, err := svc.SearchTutors(filter)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, tutors)
	}
}

// GetTutorHandler returns a tutor's public profile.
func GetTutorHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		tutor, err := svc.GetTutor(id)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, tutor)
	}
}

// GetTutorReviewsHandler lists a tutor's reviews.
func GetTutorReviewsHandler(svc reviewService.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		reviews, err := svc.ListTutorReviews(id)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, reviews)
	}
}

// GetOwnTutorProfileHandler returns the calling tutor's profile.
func GetOwnTutorProfileHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		profile, err := svc.GetOwnProfile(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, profile)
	}
}

// UpdateTutorProfileHandler edits the calling tutor's profile.
func UpdateTutorProfileHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			Bio          *string   `json:"bio"`
			Subjects     *[]string `json:"subjects"`
			HourlyRate   *float64  `json:"hourlyRate"`
			Availability *string   `json:"availability"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := svc.UpdateOwnProfile(userID, tutorService.ProfileUpdate{
			Bio:          input.Bio,
			Subjects:     input.Subjects,
			HourlyRate:   input.HourlyRate,
			Availability: input.Availability,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, profile)
	}
}

// GetEarningsHandler summarizes the calling tutor's earnings.
func GetEarningsHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		summary, err := svc.GetEarnings(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, summary)
	}
}

// SubmitVerificationHandler uploads a verification document and opens a
// pending request. Expects a multipart form with a "document" file.
func SubmitVerificationHandler(svc tutorService.TutorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		fileHeader, err := c.FormFile("document")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "a document file is required")
			return
		}
		if !allowedDocumentType(fileHeader.Filename) {
			utils.JSONError(c, http.StatusBadRequest, "document must be a PDF or image file")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "could not read uploaded file")
			return
		}
		defer file.Close()

		req, err := svc.SubmitVerification(c.Request.Context(), userID, file)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, req)
	}
}

func allowedDocumentType(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}
