package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shikkhabazar/internal/application/usecase"
	"shikkhabazar/internal/config"
	"shikkhabazar/internal/domain"
	"shikkhabazar/internal/infrastructure/cache"
	"shikkhabazar/internal/infrastructure/email"
	"shikkhabazar/internal/infrastructure/gateway"
	"shikkhabazar/internal/infrastructure/repository"
	"shikkhabazar/internal/infrastructure/security"
	"shikkhabazar/internal/middleware"
	handlers "shikkhabazar/internal/transport/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.Coupon{},
		&domain.CouponCourse{},
		&domain.CouponUsage{},
		&domain.Payment{},
		&domain.ManualPayment{},
		&domain.Enrollment{},
		&domain.LegacyEnrollment{},
		&domain.Invoice{},
		&domain.Review{},
		&domain.Announcement{},
		&domain.Subscriber{},
		&domain.Certificate{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	// 3. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis at", cfg.RedisAddr)

	// 4. Инфраструктура
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db, rdb)
	couponRepo := repository.NewCouponRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	manualRepo := repository.NewManualPaymentRepository(db)
	enrollRepo := repository.NewEnrollmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	announceRepo := repository.NewAnnouncementRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	certRepo := repository.NewCertificateRepository(db)

	tokenCache := cache.NewTokenCache(rdb)
	hasher := security.NewPasswordHasher()
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)
	emailSender := email.NewEmailSender(cfg.SendgridKey, cfg.SenderEmail, cfg.FrontendURL)
	sslcommerz := gateway.NewSSLCommerzClient(cfg.SSLCzStoreID, cfg.SSLCzStorePasswd, cfg.SSLCzSandbox, cfg.FrontendURL)
	if !sslcommerz.Enabled() {
		log.Println("SSLCommerz is not configured, payments run in demo mode")
	}

	// 5. Use cases
	authUC := usecase.NewAuthUseCase(userRepo, tokenCache, hasher, tokenManager)
	courseUC := usecase.NewCourseUseCase(courseRepo)
	couponUC := usecase.NewCouponUseCase(couponRepo)
	enrollUC := usecase.NewEnrollmentUseCase(enrollRepo)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, enrollRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, courseRepo, userRepo, enrollRepo, couponUC, sslcommerz, emailSender)
	manualUC := usecase.NewManualPaymentUseCase(manualRepo, courseRepo, userRepo, emailSender)
	newsletterUC := usecase.NewNewsletterUseCase(subscriberRepo, emailSender)
	certUC := usecase.NewCertificateUseCase(certRepo, enrollRepo, userRepo, courseRepo)
	announceUC := usecase.NewAnnouncementUseCase(announceRepo)

	// 6. Роутер
	router := handlers.NewRouter(handlers.RouterDeps{
		Auth:          handlers.NewAuthHandler(authUC),
		Courses:       handlers.NewCourseHandler(courseUC, reviewUC),
		Coupons:       handlers.NewCouponHandler(couponUC, courseUC),
		Payments:      handlers.NewPaymentHandler(paymentUC, invoiceUC),
		IPN:           handlers.NewIPNHandler(paymentUC),
		Manual:        handlers.NewManualPaymentHandler(manualUC),
		Dashboard:     handlers.NewDashboardHandler(enrollUC, reviewUC),
		Certificates:  handlers.NewCertificateHandler(certUC),
		Newsletter:    handlers.NewNewsletterHandler(newsletterUC),
		Announcements: handlers.NewAnnouncementHandler(announceUC),

		Limiter:        middleware.NewRateLimiter(rdb),
		AccessChecker:  authUC,
		EmailLookup:    userRepo,
		AllowedOrigins: cfg.AllowedOrigins,
		AdminEmails:    cfg.AdminEmailList(),
	})

	// 7. HTTP сервер с graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("ShikkhaBazar API running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
