package main

import (
	"fmt"
	"hivesite/internal/service/logger"
	"hivesite/internal/service/middleware"
	"hivesite/internal/service/router"
	userController "hivesite/internal/user/controller"
	userRepository "hivesite/internal/user/repository"
	userUsecase "hivesite/internal/user/usecase"
	"log"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	db := middleware.DbConnect()

	var redisClient *redis.Client
	if os.Getenv("REDIS_ENDPOINT") != "" {
		middleware.InitRedis()
		redisClient = middleware.RedisClient
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret-key"
	}
	jwtToken, err := middleware.NewJwtToken(secret)
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		err := logger.SyncLoggers()
		if err != nil {
			log.Fatalf("Failed to sync loggers: %v", err)
		}
	}()

	userRepository := userRepository.NewUserRepository(db, redisClient)
	userUseCase := userUsecase.NewUserUsecase(userRepository)
	userHandler := userController.NewUserHandler(userUseCase)

	mainRouter := router.SetUpRoutes(userHandler, jwtToken)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))
	fmt.Printf("Starting HTTP server on adress %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
