package main

import (
	"BlogPlatform/internal/config"
	"BlogPlatform/pkg/log"
	"BlogPlatform/pkg/redis"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		if os.Getenv("APP_ENV") == "production" {
			log.Fatal(log.Fields{"error": envErr.Error()}, "Error loading .env file")
		}
		logger.Warnf("No .env file loaded: %v", envErr)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithLoginThrottle(),
		config.WithMiddleware(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Failed to build server")
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			log.Fatal(log.Fields{"error": err.Error()}, "Error starting server")
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
