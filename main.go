// File: trailhead/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trailhead/config"
	"trailhead/database"
	bookingRepo "trailhead/database/repository/booking"
	notificationRepo "trailhead/database/repository/notification"
	providerRepo "trailhead/database/repository/provider"
	serviceRepo "trailhead/database/repository/service"
	syslogRepo "trailhead/database/repository/syslog"
	userRepoPkg "trailhead/database/repository/user"
	"trailhead/handlers"
	"trailhead/routes"
	"trailhead/services/booking"
	"trailhead/services/notification"
	"trailhead/services/provider"
	"trailhead/services/storage"
	"trailhead/services/user"
	"trailhead/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	db := database.DB()

	// repositories.
	services := serviceRepo.NewMongoServiceRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	providers := providerRepo.NewMongoProviderRepo(db)
	notifications := notificationRepo.NewMongoNotificationRepo(db)
	syslog := syslogRepo.NewMongoSystemLogRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: users}
	providerService := &provider.DefaultProviderService{
		Repo:     providers,
		Services: services,
		Cache:    utils.GetCacheClient(),
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:      notifications,
		Providers: providers,
	}
	bookingEngine := &booking.DefaultBookingEngine{
		Bookings: bookings,
		Services: services,
		Notifier: notificationService,
		Cache:    utils.GetCacheClient(),
	}

	var storageService storage.StorageService
	if cloudinaryStorage, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Sugar().Warnf("main: photo uploads disabled: %v", err)
	} else {
		storageService = cloudinaryStorage
	}

	handlerBundle := handlers.NewHandlerBundle(
		userService,
		providerService,
		bookingEngine,
		notificationService,
		storageService,
		services,
		syslog,
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	routes.SetupRoutes(router, handlerBundle)

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
