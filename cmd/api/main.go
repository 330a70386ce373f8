package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hospital-portal/internal/api/http"
	"github.com/spec-kit/hospital-portal/internal/api/http/handlers"
	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/config"
	"github.com/spec-kit/hospital-portal/internal/events"
	"github.com/spec-kit/hospital-portal/internal/observability"
	"github.com/spec-kit/hospital-portal/internal/payments"
	"github.com/spec-kit/hospital-portal/internal/persistence"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/internal/schedule"
	"github.com/spec-kit/hospital-portal/internal/service"
	"github.com/spec-kit/hospital-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	hospitalRepo := repository.NewHospitalRepository(pool)
	patientRepo := repository.NewPatientRepository(pool)
	doctorRepo := repository.NewDoctorRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	billRepo := repository.NewBillRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	adminService := service.NewAdminService(*cfg, hospitalRepo, userRepo, dispatcher)
	patientService := service.NewPatientService(patientRepo)
	doctorService := service.NewDoctorService(doctorRepo, redis.Client, logger)
	appointmentService := service.NewAppointmentService(*cfg, service.AppointmentDependencies{
		AppointmentRepo: appointmentRepo,
		PatientRepo:     patientRepo,
		Directory:       doctorService,
		Resolver:        schedule.NewTimeResolver(),
		Assigner:        schedule.NewAssigner(rand.NewSource(time.Now().UnixNano())),
		Dispatcher:      dispatcher,
	})
	paystack := payments.NewPaystackClient(cfg.Billing.PaystackURL, cfg.Billing.PaystackSecretKey)
	billingService := service.NewBillingService(*cfg, billRepo, appointmentService, paystack, dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Admin:          handlers.NewAdminHandler(adminService),
		Patients:       handlers.NewPatientsHandler(patientService),
		Doctors:        handlers.NewDoctorsHandler(doctorService),
		Appointments:   handlers.NewAppointmentsHandler(appointmentService),
		Billing:        handlers.NewBillingHandler(billingService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
