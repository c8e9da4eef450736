package main

import (
	"os"
	"os/signal"
	"syscall"

	"TutelaGolang/internal/config"
	detectorPkg "TutelaGolang/pkg/detector"
	"TutelaGolang/pkg/log"
	"TutelaGolang/pkg/redis"
	"TutelaGolang/pkg/tracking"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	detectorClient := detectorPkg.NewDetectorClient()
	pipeline := tracking.NewPipeline()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithDetectorClient(detectorClient),
		config.WithPipeline(pipeline),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	detectorClient.CloseConnection()
}
