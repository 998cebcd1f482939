package handlers

import (
	"net/http"

	"educonnect/middleware"
	userService "educonnect/services/user"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// GetMeHandler returns the authenticated user's account.
func GetMeHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		userRec, err := svc.GetUserByID(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, userRec)
	}
}

// UpdateMeHandler edits the authenticated user's account fields.
func UpdateMeHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			Name     *string `json:"name"`
			FCMToken *string `json:"fcmToken"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		userRec, err := svc.UpdateProfile(userID, userService.ProfileUpdate{
			Name:     input.Name,
			FCMToken: input.FCMToken,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, userRec)
	}
}

// UpdatePasswordHandler replaces the password after verifying the
// current one. All outstanding tokens are revoked on success.
func UpdatePasswordHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.UpdatePassword(userID, input.CurrentPassword, input.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": true})
	}
}

// LogoutHandler revokes every token the user holds.
func LogoutHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := svc.RevokeAuthToken(userID); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"revoked": true})
	}
}

// DeleteMeHandler deletes the authenticated account.
func DeleteMeHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		if err := svc.DeleteAccount(userID); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
	}
}
