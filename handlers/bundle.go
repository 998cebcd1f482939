package handlers

import (
	userRepoPkg "educonnect/database/repository/user"
	adminService "educonnect/services/admin"
	bookingService "educonnect/services/booking"
	notificationService "educonnect/services/notification"
	reportService "educonnect/services/report"
	reviewService "educonnect/services/review"
	tutorService "educonnect/services/tutor"
	userService "educonnect/services/user"
	wishlistService "educonnect/services/wishlist"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc

	// Account endpoints
	GetMeHandler          gin.HandlerFunc
	UpdateMeHandler       gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	DeleteMeHandler       gin.HandlerFunc

	// Tutor endpoints
	SearchTutorsHandler       gin.HandlerFunc
	GetTutorHandler           gin.HandlerFunc
	GetTutorReviewsHandler    gin.HandlerFunc
	GetOwnTutorProfileHandler gin.HandlerFunc
	UpdateTutorProfileHandler gin.HandlerFunc
	GetEarningsHandler        gin.HandlerFunc
	SubmitVerificationHandler gin.HandlerFunc

	// Session endpoints
	CheckAvailabilityHandler gin.HandlerFunc
	BookSessionHandler       gin.HandlerFunc
	ListSessionsHandler      gin.HandlerFunc
	GetSessionHandler        gin.HandlerFunc
	UpdateSessionHandler     gin.HandlerFunc
	RespondToSessionHandler  gin.HandlerFunc
	CompleteSessionHandler   gin.HandlerFunc
	CancelSessionHandler     gin.HandlerFunc

	// Review and wishlist endpoints
	SubmitReviewHandler       gin.HandlerFunc
	GetWishlistHandler        gin.HandlerFunc
	AddToWishlistHandler      gin.HandlerFunc
	RemoveFromWishlistHandler gin.HandlerFunc

	// Notification and report endpoints
	ListNotificationsHandler    gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
	FileReportHandler           gin.HandlerFunc

	// Admin endpoints
	AdminListUsersHandler          gin.HandlerFunc
	AdminSetUserActiveHandler      gin.HandlerFunc
	AdminListVerificationsHandler  gin.HandlerFunc
	AdminDecideVerificationHandler gin.HandlerFunc
	AdminListReportsHandler        gin.HandlerFunc
	AdminResolveReportHandler      gin.HandlerFunc
	AdminAnalyticsHandler          gin.HandlerFunc
}

// Services collects the service implementations the bundle wires up.
type Services struct {
	Users         userService.UserService
	Tutors        tutorService.TutorService
	Bookings      bookingService.BookingService
	Reviews       reviewService.ReviewService
	Wishlists     wishlistService.WishlistService
	Notifications notificationService.NotificationService
	Reports       reportService.ReportService
	Admin         adminService.AdminService
}

// NewHandlerBundle builds the bundle from the service layer.
func NewHandlerBundle(userRepo userRepoPkg.UserRepository, svcs Services) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler: RegisterHandler(svcs.Users),
		LoginHandler:    LoginHandler(svcs.Users),
		LogoutHandler:   LogoutHandler(svcs.Users),

		GetMeHandler:          GetMeHandler(svcs.Users),
		UpdateMeHandler:       UpdateMeHandler(svcs.Users),
		UpdatePasswordHandler: UpdatePasswordHandler(svcs.Users),
		DeleteMeHandler:       DeleteMeHandler(svcs.Users),

		SearchTutorsHandler:       SearchTutorsHandler(svcs.Tutors),
		GetTutorHandler:           GetTutorHandler(svcs.Tutors),
		GetTutorReviewsHandler:    GetTutorReviewsHandler(svcs.Reviews),
		GetOwnTutorProfileHandler: GetOwnTutorProfileHandler(svcs.Tutors),
		UpdateTutorProfileHandler: UpdateTutorProfileHandler(svcs.Tutors),
		GetEarningsHandler:        GetEarningsHandler(svcs.Tutors),
		SubmitVerificationHandler: SubmitVerificationHandler(svcs.Tutors),

		CheckAvailabilityHandler: CheckAvailabilityHandler(svcs.Bookings),
		BookSessionHandler:       BookSessionHandler(svcs.Bookings),
		ListSessionsHandler:      ListSessionsHandler(svcs.Bookings),
		GetSessionHandler:        GetSessionHandler(svcs.Bookings),
		UpdateSessionHandler:     UpdateSessionHandler(svcs.Bookings),
		RespondToSessionHandler:  RespondToSessionHandler(svcs.Bookings),
		CompleteSessionHandler:   CompleteSessionHandler(svcs.Bookings),
		CancelSessionHandler:     CancelSessionHandler(svcs.Bookings),

		SubmitReviewHandler:       SubmitReviewHandler(svcs.Reviews),
		GetWishlistHandler:        GetWishlistHandler(svcs.Wishlists),
		AddToWishlistHandler:      AddToWishlistHandler(svcs.Wishlists),
		RemoveFromWishlistHandler: RemoveFromWishlistHandler(svcs.Wishlists),

		ListNotificationsHandler:    ListNotificationsHandler(svcs.Notifications),
		MarkNotificationReadHandler: MarkNotificationReadHandler(svcs.Notifications),
		FileReportHandler:           FileReportHandler(svcs.Reports),

		AdminListUsersHandler:          AdminListUsersHandler(svcs.Admin),
		AdminSetUserActiveHandler:      AdminSetUserActiveHandler(svcs.Admin),
		AdminListVerificationsHandler:  AdminListVerificationsHandler(svcs.Admin),
		AdminDecideVerificationHandler: AdminDecideVerificationHandler(svcs.Admin),
		AdminListReportsHandler:        AdminListReportsHandler(svcs.Reports),
		AdminResolveReportHandler:      AdminResolveReportHandler(svcs.Reports),
		AdminAnalyticsHandler:          AdminAnalyticsHandler(svcs.Admin),
	}
}
