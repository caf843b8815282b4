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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/car-rental/docs"
	"github.com/sbilibin2017/car-rental/internal/config"
	"github.com/sbilibin2017/car-rental/internal/handlers"
	"github.com/sbilibin2017/car-rental/internal/jwt"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/middlewares"
	"github.com/sbilibin2017/car-rental/internal/repositories"
	"github.com/sbilibin2017/car-rental/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title car-rental API
// @version 1.0.0
// @description Car rental backend: registration, login, profile and car listing
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := cfg.ValidateAPI(); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to MongoDB (and Redis and Kafka when configured), wires the
// handlers and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, "api"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB, no retry
	client, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Errorw("MongoDB connection error", "error", err)
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()
	db := client.Database(cfg.MongoDB)
	log.Infow("Connected to MongoDB", "database", cfg.MongoDB)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	carReadRepo := repositories.NewCarReadRepository(db)

	if err := userWriteRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	// Connect to Redis when configured
	var userCache services.UserCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()
		userCache = repositories.NewUserCacheRepository(rdb, cfg.RedisUserTTL)
		log.Infow("User cache enabled", "addr", rdb.Options().Addr, "ttl", cfg.RedisUserTTL)
	}

	// Kafka writer for registration events when configured
	var events services.EventWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaUserTopic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		events = w
		log.Infow("Registration events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaUserTopic)
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, userCache, events)
	carService := services.NewCarService(carReadRepo)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r := newRouter(authService, authService, carService, tokens, authService)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the public routes and the routes behind AuthMiddleware.
func newRouter(
	registerer handlers.Registerer,
	loginer handlers.Loginer,
	cars handlers.CarLister,
	tokener middlewares.Tokener,
	users middlewares.UserGetter,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(registerer))
	r.Post("/login", handlers.NewLoginHandler(loginer))
	r.Get("/rental-cars", handlers.NewListCarsHandler(cars))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, users))
		r.Get("/my-profile", handlers.NewProfileHandler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
