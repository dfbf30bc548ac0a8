package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mbote-service/internal/app/config"
	"mbote-service/internal/app/contracts"
	"mbote-service/internal/app/delivery/http/controllers"
	"mbote-service/internal/app/delivery/http/middlewares"
	"mbote-service/internal/app/delivery/http/routers"
	"mbote-service/internal/app/drivers/database"
	"mbote-service/internal/app/drivers/logger"
	"mbote-service/internal/app/drivers/messaging"
	minioDriver "mbote-service/internal/app/drivers/storage"
	"mbote-service/internal/app/models"
	"mbote-service/internal/app/services/core/admins"
	"mbote-service/internal/app/services/core/appointments"
	"mbote-service/internal/app/services/core/auth"
	"mbote-service/internal/app/services/core/doctors"
	"mbote-service/internal/app/services/core/patients"
	"mbote-service/internal/app/services/core/payments"
	"mbote-service/internal/app/services/core/schedules"
	"mbote-service/internal/app/services/core/users"
	"mbote-service/internal/app/services/shared/locker"
	"mbote-service/internal/app/services/shared/notification"
	"mbote-service/internal/app/services/shared/otp"
	"mbote-service/internal/app/services/shared/redis"
	"mbote-service/internal/app/services/shared/storage"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(&bootstrap); err != nil {
		zapLogger.Fatal("failed to bootstrap application", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server starting", zap.String("addr", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests already received by the server to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("failed closing shared resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorage := storage.NewMinioStorage(bootstrap.Minio)

	notificationService, err := notification.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQSMSQueue,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
	)
	if err != nil {
		return err
	}

	otpService := otp.NewOTPService(
		redisRepository,
		notificationService,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.OTPExpiredTimeInMinutes,
		bootstrap.InternalConfig.App.OTPMaxIssuesPerHour,
		bootstrap.InternalConfig.SMS.SenderName,
	)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userRepository := users.NewUserMongoRepository(bootstrap.MongoClient, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	adminRepository := admins.NewAdminMongoRepository(bootstrap.MongoClient, dbName)
	scheduleRepository := schedules.NewScheduleMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoClient, dbName)

	if err := ensureInitialAdmin(userRepository, adminRepository, bootstrap.InternalConfig, bootstrap.Logger); err != nil {
		return err
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		patientRepository,
		doctorRepository,
		redisRepository,
		otpService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientUsecase := patients.NewPatientUsecase(
		patientRepository,
		userRepository,
		redisRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorRepository,
		userRepository,
		adminRepository,
		scheduleRepository,
		notificationService,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(
		scheduleRepository,
		doctorRepository,
		userRepository,
		appointmentRepository.FindAppointmentsByDoctorBetween,
		lockerService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		userRepository,
		scheduleUsecase,
		lockerService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		appointmentRepository,
		patientRepository,
		userRepository,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Delivery
	mw := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	setupDelivery(bootstrap, mw, authUsecase, patientUsecase, doctorUsecase, scheduleUsecase, appointmentUsecase, paymentUsecase)
	return nil
}

// ensureInitialAdmin seeds the first administrator account from the
// environment so a fresh deployment has someone able to onboard doctors.
// It is a no-op when the phone is unset or already registered.
func ensureInitialAdmin(
	userRepository contracts.UserRepository,
	adminRepository contracts.AdminRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) error {
	if internalConfig.App.InitialAdminPhone == "" {
		return nil
	}
	if internalConfig.App.InitialAdminPassword == "" {
		return errors.New("APP_INITIAL_ADMIN_PHONE is set but APP_INITIAL_ADMIN_PASSWORD is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	phone, err := utils.FormatE164(internalConfig.App.InitialAdminPhone)
	if err != nil {
		return err
	}

	existing, err := userRepository.FindUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(internalConfig.App.InitialAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	user := &models.User{
		Phone:      phone,
		Password:   hashedPassword,
		Role:       constvars.RoleAdmin,
		FirstName:  "System",
		LastName:   "Administrator",
		IsVerified: true,
		IsActive:   true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	userID, err := userRepository.CreateUser(ctx, user)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		UserID:      userID,
		Permissions: []string{constvars.AdminPermissionAll},
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now
	if _, err := adminRepository.CreateAdmin(ctx, admin); err != nil {
		return err
	}

	log.Info("initial admin account created", zap.String("phone", phone))
	return nil
}

func setupDelivery(
	bootstrap *config.Bootstrap,
	mw *middlewares.Middlewares,
	authUsecase contracts.AuthUsecase,
	patientUsecase contracts.PatientUsecase,
	doctorUsecase contracts.DoctorUsecase,
	scheduleUsecase contracts.ScheduleUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	paymentUsecase contracts.PaymentUsecase,
) {
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		controllers.NewAuthController(authUsecase, bootstrap.Logger),
		controllers.NewPatientController(patientUsecase, bootstrap.InternalConfig, bootstrap.Logger),
		controllers.NewDoctorController(doctorUsecase, bootstrap.InternalConfig, bootstrap.Logger),
		controllers.NewScheduleController(scheduleUsecase, bootstrap.Logger),
		controllers.NewAppointmentController(appointmentUsecase, bootstrap.Logger),
		controllers.NewPaymentController(paymentUsecase, bootstrap.Logger),
	)
}
