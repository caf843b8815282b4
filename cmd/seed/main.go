package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sbilibin2017/car-rental/internal/config"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/repositories"
	"github.com/sbilibin2017/car-rental/internal/services"
)

func main() {
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel, "seed"); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if _, err := run(context.Background(), cfg); err != nil {
		logger.Log.Errorw("Error seeding database", "error", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run seeds the database and always disconnects before returning.
func run(ctx context.Context, cfg *config.Config) (services.SeedResult, error) {
	client, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		return services.SeedResult{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Log.Errorw("MongoDB disconnect error", "error", err)
		}
	}()

	db := client.Database(cfg.MongoDB)
	seeder := services.NewSeedService(
		repositories.NewSchemaRepository(db),
		repositories.NewCarWriteRepository(db),
		repositories.NewUserWriteRepository(db),
		models.DefaultCars,
	)

	res, err := seeder.Seed(ctx)
	if err != nil {
		return res, err
	}

	logger.Log.Infow("Database seeded successfully",
		"database", cfg.MongoDB,
		"cars_inserted", res.CarsInserted,
		"cars_existing", res.CarsExisting,
	)
	return res, nil
}
