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

	"alcyxob/oly-planner/internal/api"
	"alcyxob/oly-planner/internal/config"
	"alcyxob/oly-planner/internal/repository/mongo"
	"alcyxob/oly-planner/internal/service"
	"alcyxob/oly-planner/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Oly Planner Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureProfileIndexes(ctx, appDB); err != nil {
			log.Printf("ERROR: profile index creation failed: %v", err)
		}
		if err := mongo.EnsureBlockIndexes(ctx, appDB); err != nil {
			log.Printf("ERROR: block index creation failed: %v", err)
		}
		if err := mongo.EnsureSetLogIndexes(ctx, appDB); err != nil {
			log.Printf("ERROR: set log index creation failed: %v", err)
		}
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Backup Storage (optional) ---
	var backup *service.BlockBackup
	if cfg.Backup.Enabled {
		log.Println("Initializing block backup storage...")
		store, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		backup = service.NewBlockBackup(store, cfg.Backup)
	} else {
		log.Println("Block backup disabled.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	blockRepo := mongo.NewMongoBlockRepository(appDB)
	setLogRepo := mongo.NewMongoSetLogRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	profileService := service.NewProfileService(profileRepo, blockRepo, setLogRepo)
	blockService := service.NewBlockService(profileRepo, blockRepo, setLogRepo, backup)
	workoutService := service.NewWorkoutService(profileRepo, blockRepo, setLogRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, profileService, blockService, workoutService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
