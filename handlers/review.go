package handlers

import (
	"net/http"

	"educonnect/middleware"
	reviewService "educonnect/services/review"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// SubmitReviewHandler records the calling student's rating of a tutor.
func SubmitReviewHandler(svc reviewService.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			TutorID string `json:"tutorId"`
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		review, err := svc.SubmitReview(userID, reviewService.ReviewInput{
			TutorID: input.TutorID,
			Rating:  input.Rating,
			Comment: input.Comment,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, review)
	}
}
