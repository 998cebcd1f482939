package handlers

import (
	"net/http"

	"educonnect/middleware"
	reportService "educonnect/services/report"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// FileReportHandler opens a complaint against another user.
func FileReportHandler(svc reportService.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		var input struct {
			TargetID string `json:"targetId"`
			Reason   string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		report, err := svc.FileReport(userID, input.TargetID, input.Reason)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, report)
	}
}
