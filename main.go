package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stilrandevu/config"
	"stilrandevu/cron"
	"stilrandevu/database"
	appointmentRepoPkg "stilrandevu/database/repository/appointment"
	providerRepoPkg "stilrandevu/database/repository/provider"
	userRepoPkg "stilrandevu/database/repository/user"
	"stilrandevu/handlers"
	"stilrandevu/middleware"
	"stilrandevu/routes"
	appointmentSvc "stilrandevu/services/appointment"
	"stilrandevu/services/booking"
	"stilrandevu/services/favorite"
	"stilrandevu/services/notification"
	providerSvc "stilrandevu/services/provider"
	ratingSvc "stilrandevu/services/rating"
	"stilrandevu/services/tasks"
	userSvc "stilrandevu/services/user"
	"stilrandevu/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// Services.
	userService := &userSvc.DefaultUserService{Repo: userRepo}
	providerService := &providerSvc.DefaultProviderService{
		Repo:     provRepo,
		UserRepo: userRepo,
	}
	sessionService := &booking.DefaultSessionService{
		ProviderRepo: provRepo,
		ApptRepo:     apptRepo,
		Reminders:    tasks.NewAsynqScheduler(),
	}
	appointmentService := &appointmentSvc.DefaultAppointmentService{Repo: apptRepo}
	ratingService := &ratingSvc.DefaultRatingService{
		ProviderRepo: provRepo,
		ApptRepo:     apptRepo,
	}
	favoriteController := favorite.NewController(userRepo)

	// Background reminder worker.
	cron.InitReminderWorker(&notification.LogNotificationService{})

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.Handlers{
		User:        &handlers.UserHandler{UserService: userService},
		Provider:    &handlers.ProviderHandler{ProviderService: providerService},
		Booking:     &handlers.BookingHandler{SessionService: sessionService},
		Appointment: &handlers.AppointmentHandler{AppointmentService: appointmentService},
		Favorite:    &handlers.FavoriteHandler{FavoriteService: favoriteController},
		Rating:      &handlers.RatingHandler{RatingService: ratingService},
		Storage: &handlers.StorageHandler{
			StorageSvc:      cloudinaryStorageService,
			ProviderService: providerService,
		},
	}, userRepo)

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
