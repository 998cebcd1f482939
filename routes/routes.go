package routes

import (
	"net/http"

	"educonnect/handlers"
	"educonnect/middleware"
	"educonnect/models"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every endpoint group under /api/v1.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	registerHealthRoute(r)

	api := r.Group("/api/v1")
	registerAuthRoutes(api, hb)
	registerUserRoutes(api, hb)
	registerTutorRoutes(api, hb)
	registerSessionRoutes(api, hb)
	registerStudentRoutes(api, hb)
	registerAdminRoutes(api, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", hb.RegisterHandler)
		auth.POST("/login", hb.LoginHandler)

		// Logout needs a valid token to know whose versions to bump.
		auth.POST("/logout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.LogoutHandler)
	}
}

func registerUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	users.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		users.GET("/me", hb.GetMeHandler)
		users.PATCH("/me", hb.UpdateMeHandler)
		users.PUT("/me/password", hb.UpdatePasswordHandler)
		users.DELETE("/me", hb.DeleteMeHandler)

		users.GET("/me/notifications", hb.ListNotificationsHandler)
		users.PATCH("/me/notifications/:id", hb.MarkNotificationReadHandler)
		users.POST("/reports", hb.FileReportHandler)
	}
}

func registerTutorRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	tutors := api.Group("/tutors")
	{
		// Browsing is public.
		tutors.GET("", hb.SearchTutorsHandler)
		tutors.GET("/:id", hb.GetTutorHandler)
		tutors.GET("/:id/reviews", hb.GetTutorReviewsHandler)

		own := tutors.Group("/me")
		own.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleTutor))
		own.GET("/profile", hb.GetOwnTutorProfileHandler)
		own.PATCH("/profile", hb.UpdateTutorProfileHandler)
		own.GET("/earnings", hb.GetEarningsHandler)
		own.POST("/verification", hb.SubmitVerificationHandler)
	}
}

func registerSessionRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	sessions := api.Group("/sessions")
	sessions.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		sessions.GET("/availability", hb.CheckAvailabilityHandler)
		sessions.POST("", middleware.RequireRole(models.RoleStudent), hb.BookSessionHandler)
		sessions.GET("", hb.ListSessionsHandler)
		sessions.GET("/:id", hb.GetSessionHandler)
		sessions.PUT("/:id", hb.UpdateSessionHandler)
		sessions.PUT("/:id/approval", middleware.RequireRole(models.RoleTutor), hb.RespondToSessionHandler)
		sessions.PUT("/:id/complete", middleware.RequireRole(models.RoleTutor), hb.CompleteSessionHandler)
		sessions.DELETE("/:id", hb.CancelSessionHandler)
	}
}

func registerStudentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	students := api.Group("/students")
	students.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleStudent))
	{
		students.POST("/reviews", hb.SubmitReviewHandler)
		students.GET("/wishlist", hb.GetWishlistHandler)
		students.POST("/wishlist", hb.AddToWishlistHandler)
		students.DELETE("/wishlist/:tutorId", hb.RemoveFromWishlistHandler)
	}
}

func registerAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", hb.AdminListUsersHandler)
		admin.PATCH("/users/:id/active", hb.AdminSetUserActiveHandler)
		admin.GET("/verifications", hb.AdminListVerificationsHandler)
		admin.POST("/verifications/:id/decide", hb.AdminDecideVerificationHandler)
		admin.GET("/reports", hb.AdminListReportsHandler)
		admin.POST("/reports/:id/resolve", hb.AdminResolveReportHandler)
		admin.GET("/analytics", hb.AdminAnalyticsHandler)
	}
}
