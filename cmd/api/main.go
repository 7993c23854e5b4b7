package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harentsoaR/clinic-admin-api/internal/auth"
	"github.com/harentsoaR/clinic-admin-api/internal/config"
	"github.com/harentsoaR/clinic-admin-api/internal/handlers"
	"github.com/harentsoaR/clinic-admin-api/internal/services"
	"github.com/harentsoaR/clinic-admin-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set; refusing to start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)

	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create unique indexes", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	tokens := auth.NewTokenManager(cfg.JWTSecret)
	notificationSvc := services.NewNotificationService(cfg.TextbeltKey, logger)

	h := handlers.NewHandler(handlers.Stores{
		Doctors:      store.NewDoctorStore(db),
		Admins:       store.NewAdminStore(db),
		Users:        store.NewUserStore(db),
		Appointments: store.NewAppointmentStore(db),
	}, tokens, notificationSvc, logger)

	r := handlers.NewRouter(h, tokens, cfg.CORSOrigins, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
