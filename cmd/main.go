package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/adapter/mailer"
	"github.com/meshahan/pakcuisine/internal/adapter/payments"
	"github.com/meshahan/pakcuisine/internal/adapter/postgres"
	"github.com/meshahan/pakcuisine/internal/adapter/rabbitmq"
	"github.com/meshahan/pakcuisine/internal/app/auth"
	"github.com/meshahan/pakcuisine/internal/app/cart"
	"github.com/meshahan/pakcuisine/internal/app/catalog"
	"github.com/meshahan/pakcuisine/internal/app/chatbot"
	"github.com/meshahan/pakcuisine/internal/app/checkout"
	"github.com/meshahan/pakcuisine/internal/app/content"
	"github.com/meshahan/pakcuisine/internal/app/reservations"
	"github.com/meshahan/pakcuisine/internal/app/settings"
	"github.com/meshahan/pakcuisine/internal/config"

	amqpAdapter "github.com/meshahan/pakcuisine/internal/adapter/amqp"
	httpAdapter "github.com/meshahan/pakcuisine/internal/adapter/http"
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "", "Service mode: api-server, admin-alerts, migrate")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	if *mode == "" {
		log.Fatal("--mode flag is required")
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port == 0 {
		*port = cfg.HTTP.Port
	}

	ctx := context.Background()

	// Initialize logger
	lgr := logger.New(*mode)

	// Connect to PostgreSQL
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	// Route to appropriate service
	switch *mode {
	case "api-server":
		runAPIServer(ctx, db, cfg, lgr, *port)

	case "admin-alerts":
		runAdminAlerts(ctx, cfg, lgr)

	case "migrate":
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		lgr.Info("migrations_applied", "Database schema is up to date", "startup", nil)

		// First admin account comes from ADMIN_EMAIL / ADMIN_PASSWORD.
		if err := auth.EnsureAdmin(ctx, postgres.NewUserRepository(db), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			log.Fatalf("Failed to provision admin account: %v", err)
		}

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPIServer(ctx context.Context, db postgres.DB, cfg *config.Config, lgr logger.Logger, port int) {
	// Connect to RabbitMQ
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	// Initialize repositories
	menuRepo := postgres.NewMenuRepository(db)
	dealRepo := postgres.NewDealRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	blogRepo := postgres.NewBlogRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	testimonialRepo := postgres.NewTestimonialRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Initialize messaging and notification channels
	publisher := rabbitmq.NewPublisher(mqConn)
	mail := mailer.New(lgr,
		mailer.NewSMTPChannel(settingsRepo),
		mailer.NewSESChannel(cfg.Email.SenderAddress, cfg.Email.AWSRegion),
	)
	paymentProvider, err := payments.NewStripeProvider(cfg.Payments.StripeKey, cfg.Payments.Currency)
	if err != nil {
		log.Fatalf("Failed to initialize payment provider: %v", err)
	}

	// Initialize services
	cartService := cart.NewService(cartRepo, lgr)
	catalogService := catalog.NewService(menuRepo, dealRepo, lgr)
	checkoutService := checkout.NewService(orderRepo, cartService, publisher, mail, lgr)
	chatbotService := chatbot.NewService(dealRepo, menuRepo, orderRepo, lgr)
	reservationService := reservations.NewService(reservationRepo, publisher, mail, lgr)
	contentService := content.NewService(blogRepo, galleryRepo, testimonialRepo, subscriberRepo, contactRepo, lgr)
	settingsService := settings.NewService(settingsRepo)
	authService := auth.NewService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, lgr)

	// Initialize HTTP handlers
	handlers := httpAdapter.Handlers{
		Cart:         httpAdapter.NewCartHandler(cartService, catalogService, lgr),
		Catalog:      httpAdapter.NewCatalogHandler(catalogService, lgr),
		Checkout:     httpAdapter.NewCheckoutHandler(checkoutService, lgr),
		Chatbot:      httpAdapter.NewChatbotHandler(chatbotService, lgr),
		Reservations: httpAdapter.NewReservationHandler(reservationService, lgr),
		Content:      httpAdapter.NewContentHandler(contentService, settingsService, lgr),
		Auth:         httpAdapter.NewAuthHandler(authService, lgr),
		Functions:    httpAdapter.NewFunctionsHandler(paymentProvider, mail, checkoutService, lgr),
		Admin:        httpAdapter.NewAdminHandler(checkoutService, reservationService, catalogService, contentService, settingsService, authService, lgr),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      httpAdapter.NewRouter(handlers, authService, lgr),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API server started on port %d", port), "startup", map[string]interface{}{
		"port": port,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API server", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runAdminAlerts(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	// Connect to RabbitMQ
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	// Initialize consumer and handler
	consumer := rabbitmq.NewConsumer(mqConn)
	eventHandler := amqpAdapter.NewEventHandler(lgr)

	lgr.Info("service_started", "Admin alerts subscriber started", "startup", nil)

	// Start consuming admin events
	go func() {
		if err := consumer.ConsumeAdminEvents(ctx, eventHandler.HandleEvent); err != nil {
			lgr.Error("consumer_error", "Error consuming admin events", "runtime", nil, err)
		}
	}()

	// Wait for shutdown signal
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down admin alerts subscriber", "shutdown", nil)
}
