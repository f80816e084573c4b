package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"video_tube/config"
	"video_tube/internal/database"
	"video_tube/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()
	log := logger.GetAppLogger()

	// Load cấu hình từ env
	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Failed to load configuration from environment")
	}

	// Khởi tạo toàn bộ dependency và routes
	app, err := InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Dừng server gọn gàng khi nhận SIGINT/SIGTERM
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("Shutdown signal received, stopping server...")
		if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error during server shutdown")
		}

		if err := database.CloseInstance(app.Client); err != nil {
			log.WithError(err).Error("Error disconnecting MongoDB")
		}
	}()

	// Khởi động server HTTP
	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server")

	if err := app.Fiber.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}

	log.Info("Server stopped")
}
