package main

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	schedsvc "cleanops/internal/api/scheduling/service"
	"cleanops/internal/global"
	"cleanops/internal/logger"
	"cleanops/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initAssignmentEngine lắp ráp engine phân công từ các service Mongo và cấu hình
func initAssignmentEngine() *schedsvc.AssignmentEngine {
	log := logger.GetAppLogger()

	tasks, err := schedsvc.NewTaskService()
	if err != nil {
		log.Fatalf("Failed to create task service: %v", err)
	}
	groups, err := schedsvc.NewPropertyGroupService()
	if err != nil {
		log.Fatalf("Failed to create property group service: %v", err)
	}
	members, err := schedsvc.NewPropertyGroupMemberService()
	if err != nil {
		log.Fatalf("Failed to create property group member service: %v", err)
	}
	cleanerAssignments, err := schedsvc.NewCleanerGroupAssignmentService()
	if err != nil {
		log.Fatalf("Failed to create cleaner group assignment service: %v", err)
	}
	patterns, err := schedsvc.NewAssignmentPatternService()
	if err != nil {
		log.Fatalf("Failed to create assignment pattern service: %v", err)
	}
	logs, err := schedsvc.NewAssignmentLogService()
	if err != nil {
		log.Fatalf("Failed to create assignment log service: %v", err)
	}

	store := schedsvc.NewMongoAssignmentStore(tasks, groups, members, cleanerAssignments, patterns, logs)

	cfg := global.MongoDB_ServerConfig
	storeTimeout := time.Duration(cfg.Assign_StoreTimeoutMs) * time.Millisecond
	batchDelay := time.Duration(cfg.Assign_BatchDelayMs) * time.Millisecond

	engine := schedsvc.NewAssignmentEngine(store, storeTimeout, batchDelay)
	log.Info("🤖 Assignment engine initialized")
	return engine
}

// main_thread khởi tạo và chạy Fiber server
func main_thread(app *fiber.App) {
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn tương đối từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	// Khởi tạo assignment engine (singleton dùng chung cho API, events, sync)
	engine := initAssignmentEngine()

	// Đăng ký event handler: task mới tạo → phân công tự động
	InitEventHandlers(engine)

	// Khởi tạo và chạy batch học pattern theo lịch cron
	learner, err := worker.NewPatternLearner(cfg.Pattern_CronSpec, cfg.Pattern_LookbackDays)
	if err != nil {
		log.Fatalf("Failed to create pattern learner: %v", err)
	}
	if err := learner.Start(); err != nil {
		log.Fatalf("Failed to start pattern learner: %v", err)
	}
	defer learner.Stop()

	// Khởi tạo app Fiber với routes của các domain
	app := InitFiberApp(engine, learner)

	// Chạy Fiber server trên main thread
	main_thread(app)
}
