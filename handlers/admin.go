package handlers

import (
	"net/http"

	adminService "educonnect/services/admin"
	reportService "educonnect/services/report"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// AdminListUsersHandler lists users, optionally filtered by role.
func AdminListUsersHandler(svc adminService.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Query("role"))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, users)
	}
}

// AdminSetUserActiveHandler activates or deactivates an account.
func AdminSetUserActiveHandler(svc adminService.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Active *bool `json:"active"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Active == nil {
			utils.JSONError(c, http.StatusBadRequest, "an active flag is required")
			return
		}

		userRec, err := svc.SetUserActive(id, *input.Active)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, userRec)
	}
}

// AdminListVerificationsHandler lists verification requests.
func AdminListVerificationsHandler(svc adminService.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := svc.ListVerifications(c.Query("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, requests)
	}
}

// AdminDecideVerificationHandler approves or rejects a pending request.
func AdminDecideVerificationHandler(svc adminService.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Approve *bool  `json:"approve"`
			Note    string `json:"note"`
		}
		if err := c.ShouldBindJSON(&input); err != nil || input.Approve == nil {
			utils.JSONError(c, http.StatusBadRequest, "an approve flag is required")
			return
		}

		req, err := svc.DecideVerification(id, *input.Approve, input.Note)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, req)
	}
}

// AdminListReportsHandler lists complaints, optionally by status.
func AdminListReportsHandler(svc reportService.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, err := svc.ListReports(c.Query("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, reports)
	}
}

// AdminResolveReportHandler closes an open complaint.
func AdminResolveReportHandler(svc reportService.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input struct {
			Resolution string `json:"resolution"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		report, err := svc.ResolveReport(id, input.Resolution)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, report)
	}
}

// AdminAnalyticsHandler returns the dashboard overview.
func AdminAnalyticsHandler(svc adminService.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		overview, err := svc.Analytics()
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, overview)
	}
}
