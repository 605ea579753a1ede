package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/openforum/likeservice/internal/handler/http"
	redisclient "github.com/openforum/likeservice/internal/infrastructure/cache"
	appconfig "github.com/openforum/likeservice/internal/infrastructure/config"
	"github.com/openforum/likeservice/internal/infrastructure/database"
	"github.com/openforum/likeservice/internal/infrastructure/jwt"
	"github.com/openforum/likeservice/internal/infrastructure/logger"
	"github.com/openforum/likeservice/internal/infrastructure/permission"
	"github.com/openforum/likeservice/internal/infrastructure/repository/mongodb"
	"github.com/openforum/likeservice/internal/infrastructure/store"
	"github.com/openforum/likeservice/internal/infrastructure/validator"
	"github.com/openforum/likeservice/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(dbName)
	if err := database.EnsureLikeIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure like indexes: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	likeRepo := mongodb.NewLikeRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	userRepo := mongodb.NewUserRepository(db.Collection("users"))
	activityRepo := mongodb.NewActivityRepository(db)

	// Dependency Injection: Services
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret)
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	config := appconfig.NewConfig()
	gate := permission.NewClaimsGate()

	// Dependency Injection: Usecases
	likeUsecase := usecase.NewLikeUsecase(likeRepo, postRepo, gate, appLogger)
	notificationUsecase := usecase.NewNotificationUsecase(activityRepo, userRepo, config, appLogger)

	// Optional Dependency Injection: Redis preference cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), redisURL); rdb != nil {
			defer redisclient.Close(rdb)
			notificationUsecase.SetPreferenceCache(store.NewPreferenceStore(rdb, config.PrefCacheTTL))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		likeUsecase, notificationUsecase, gate,
		userRepo, jwtService, config, appValidator, appLogger,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
