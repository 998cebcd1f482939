package handlers

import (
	"net/http"

	"educonnect/middleware"
	notificationService "educonnect/services/notification"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler lists the caller's notifications.
func ListNotificationsHandler(svc notificationService.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}
		notifications, err := svc.ListForUser(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, notifications)
	}
}

// MarkNotificationReadHandler flags one notification as read.
func MarkNotificationReadHandler(svc notificationService.NotificationService) gin.HandlerFunc {
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
		if err := svc.MarkRead(id, userID); err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, gin.H{"read": true})
	}
}
