package handlers

import (
	"net/http"

	userService "educonnect/services/user"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates a new account plus its role profile.
func RegisterHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name       string   `json:"name"`
			Email      string   `json:"email"`
			Password   string   `json:"password"`
			Role       string   `json:"role"`
			Bio        string   `json:"bio"`
			Subjects   []string `json:"subjects"`
			HourlyRate float64  `json:"hourlyRate"`
			GradeLevel string   `json:"gradeLevel"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		auth, err := svc.Register(userService.RegisterInput{
			Name:       input.Name,
			Email:      input.Email,
			Password:   input.Password,
			Role:       input.Role,
			Bio:        input.Bio,
			Subjects:   input.Subjects,
			HourlyRate: input.HourlyRate,
			GradeLevel: input.GradeLevel,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusCreated, auth)
	}
}

// LoginHandler exchanges credentials for a token.
func LoginHandler(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		auth, err := svc.Authenticate(input.Email, input.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, auth)
	}
}
