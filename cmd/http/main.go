package main

import (
	"barbero-service/internal/app/config"
	"barbero-service/internal/app/delivery/http/controllers"
	"barbero-service/internal/app/delivery/http/middlewares"
	"barbero-service/internal/app/delivery/http/routers"
	"barbero-service/internal/app/drivers/database"
	"barbero-service/internal/app/drivers/logger"
	"barbero-service/internal/app/drivers/messaging"
	"barbero-service/internal/app/drivers/storage"
	"barbero-service/internal/app/services/core/appointments"
	"barbero-service/internal/app/services/core/auth"
	"barbero-service/internal/app/services/core/availability"
	"barbero-service/internal/app/services/core/files"
	"barbero-service/internal/app/services/core/notifications"
	"barbero-service/internal/app/services/core/session"
	"barbero-service/internal/app/services/core/users"
	"barbero-service/internal/app/services/shared/mailqueue"
	"barbero-service/internal/app/services/shared/redis"
	sharedStorage "barbero-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewBootstrapLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig, bootstrapLog)
	database.EnsureIndexes(context.Background(), mongoDB, driverConfig.MongoDB.DbName, bootstrapLog)
	redisClient := database.NewRedisClient(driverConfig, bootstrapLog)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, bootstrapLog)
	minioClient := storage.NewMinioClient(driverConfig, bootstrapLog)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		BootstrapLog:   bootstrapLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootstrapLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Mail queue
	mailQueueService, err := mailqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.BootstrapLog.Fatalf("Failed to set up mail queue: %v", err)
	}

	// Object storage
	objectStorageService := sharedStorage.NewMinioStorageService(minioClient, bootstrap.DriverConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	notificationMongoRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	fileMongoRepository := files.NewFileMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		fileMongoRepository,
		notificationMongoRepository,
		mailQueueService,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentMongoRepository, userMongoRepository, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Notifications
	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository, sessionService, bootstrap.Logger)
	notificationController := controllers.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Files
	fileUsecase := files.NewFileUsecase(
		fileMongoRepository,
		userMongoRepository,
		objectStorageService,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	fileController := controllers.NewFileController(bootstrap.Logger, fileUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		appointmentController,
		availabilityController,
		notificationController,
		fileController,
	)
}
