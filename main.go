// File: educonnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"educonnect/config"
	"educonnect/database"
	analyticsRepoPkg "educonnect/database/repository/analytics"
	notificationRepoPkg "educonnect/database/repository/notification"
	reportRepoPkg "educonnect/database/repository/report"
	reviewRepoPkg "educonnect/database/repository/review"
	sessionRepoPkg "educonnect/database/repository/session"
	studentRepoPkg "educonnect/database/repository/student"
	tutorRepoPkg "educonnect/database/repository/tutor"
	userRepoPkg "educonnect/database/repository/user"
	verificationRepoPkg "educonnect/database/repository/verification"
	wishlistRepoPkg "educonnect/database/repository/wishlist"
	"educonnect/handlers"
	"educonnect/middleware"
	"educonnect/routes"
	"educonnect/services/admin"
	"educonnect/services/booking"
	"educonnect/services/notification"
	"educonnect/services/report"
	"educonnect/services/review"
	"educonnect/services/storage"
	"educonnect/services/tasks"
	"educonnect/services/tutor"
	"educonnect/services/user"
	"educonnect/services/wishlist"
	"educonnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	var storageService storage.StorageService
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: cloudinary unavailable, verification uploads disabled: %v", err)
	} else {
		storageService = storage.NewStorageService(cld)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(corsConfig()))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	wishlistRepo := wishlistRepoPkg.NewMongoWishlistRepo()
	verificationRepo := verificationRepoPkg.NewMongoVerificationRepo()
	reportRepo := reportRepoPkg.NewMongoReportRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	analyticsRepo := analyticsRepoPkg.NewMongoAnalyticsRepo()

	// asynq client and worker for scheduled session reminders.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAsynqDB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
		Push:  utils.FCMClient,
	}
	userService := &user.DefaultUserService{
		Repo:        userRepo,
		TutorRepo:   tutorRepo,
		StudentRepo: studentRepo,
	}
	tutorService := &tutor.DefaultTutorService{
		Repo:          tutorRepo,
		Sessions:      sessionRepo,
		Verifications: verificationRepo,
		Storage:       storageService,
	}
	bookingService := &booking.DefaultBookingService{
		Sessions:  sessionRepo,
		Tutors:    tutorRepo,
		Students:  studentRepo,
		Users:     userRepo,
		Notifier:  notificationService,
		Reminders: tasks.NewScheduler(asynqClient),
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Tutors:   tutorRepo,
		Students: studentRepo,
		Sessions: sessionRepo,
	}
	wishlistService := &wishlist.DefaultWishlistService{
		Repo:     wishlistRepo,
		Students: studentRepo,
		Tutors:   tutorRepo,
	}
	reportService := &report.DefaultReportService{
		Repo:  reportRepo,
		Users: userRepo,
	}
	adminService := &admin.DefaultAdminService{
		Users:         userRepo,
		Tutors:        tutorRepo,
		Verifications: verificationRepo,
		Stats:         analyticsRepo,
		Notifier:      notificationService,
	}

	// Start the reminder worker alongside the HTTP server.
	worker := tasks.NewWorker(redisOpt, sessionRepo, notificationService)
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start task worker: %v", err)
	}
	defer worker.Shutdown()

	handlerBundle := handlers.NewHandlerBundle(userRepo, handlers.Services{
		Users:         userService,
		Tutors:        tutorService,
		Bookings:      bookingService,
		Reviews:       reviewService,
		Wishlists:     wishlistService,
		Notifications: notificationService,
		Reports:       reportService,
		Admin:         adminService,
	})

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origin := config.AppConfig.CORSOrigin
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
		cfg.AllowCredentials = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
