package handlers

import (
	"net/http"

	"educonnect/middleware"
	wishlistService "educonnect/services/wishlist"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// GetWishlistHandler lists the calling student's saved tutors.
func GetWishlistHandler(svc wishlistService.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		tutors, err := svc.GetWishlist(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, tutors)
	}
}

// AddToWishlistHandler saves a tutor onto the wishlist.
func AddToWishlistHandler(svc wishlistService.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			TutorID string `json:"tutorId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.AddTutor(userID, input.TutorID); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"added": true})
	}
}

// RemoveFromWishlistHandler takes a tutor off the wishlist.
func RemoveFromWishlistHandler(svc wishlistService.WishlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := svc.RemoveTutor(userID, c.Param("tutorId")); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": true})
	}
}
