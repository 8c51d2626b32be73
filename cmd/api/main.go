package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/vietnet-search/app/config"
	"github.com/vietnet-search/app/controllers"
	"github.com/vietnet-search/app/services"
	"github.com/vietnet-search/internal/index"
	"github.com/vietnet-search/internal/search"
	"github.com/vietnet-search/internal/store"
	"github.com/vietnet-search/routes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadAppConfig()
	if err := config.Load(viper.GetString("engine.config_path")); err != nil {
		log.Printf("Warning: không đọc được engine config, dùng defaults: %v", err)
	}

	// 2. Khởi tạo logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting VietNet Search Service",
		zap.String("lexicon_version", config.C.LexiconVersion),
		zap.String("scorer", config.C.Search.Scorer))

	// 3. Mở SQLite store
	lexStore, err := store.NewSQLiteStore(config.C.Storage.SQLitePath, logger)
	if err != nil {
		logger.Fatal("Không mở được SQLite store", zap.Error(err))
	}
	defer lexStore.Close()

	// 4. Khởi tạo search components
	scorer, err := search.NewScorer(config.C.Search.Scorer)
	if err != nil {
		logger.Fatal("Scorer không hợp lệ", zap.Error(err))
	}
	searcher := search.NewSearcher(lexStore, scorer, logger)

	// 5. Meilisearch (tùy chọn)
	var meiliClient *search.MeiliClient
	if config.C.Meili.Enabled {
		meiliClient, err = search.NewMeiliClient(search.MeiliConfig{
			Host:      config.C.Meili.Host,
			APIKey:    config.C.Meili.APIKey,
			IndexName: config.C.Meili.IndexName,
		}, logger)
		if err != nil {
			logger.Warn("Không kết nối được Meilisearch, chạy không có accelerator", zap.Error(err))
			meiliClient = nil
		}
	}

	// 6. Khởi tạo cache service theo backend cấu hình
	cacheService := initCache(logger)
	defer cacheService.Close()

	// 7. Khởi tạo services
	lexiconService := services.NewLexiconService(lexStore, searcher,
		config.C.Search.Threshold, config.C.Search.MaxSuggestions, logger)
	builder := index.NewBuilder(lexStore, logger)
	adminService := services.NewAdminService(lexStore, builder, meiliClient, cacheService, logger)

	// 8. Khởi tạo controllers
	searchController := controllers.NewSearchController(lexiconService, cacheService, config.C.LexiconVersion, logger)
	adminController := controllers.NewAdminController(adminService, logger)

	// 9. Khởi tạo Gin router
	if getEnv("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// 10. Thiết lập routes
	routes.SetupAPIRoutes(router, searchController, adminController)
	routes.SetupHealthRoutes(router, searchController)

	// 11. Khởi động server
	port := getEnv("APP_PORT", viper.GetString("app.port"))
	go func() {
		logger.Info("VietNet Search Service listening", zap.String("port", port))
		if err := router.Run(":" + port); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 12. Chờ tín hiệu shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	_, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	logger.Info("Server exited")
}

// loadAppConfig load app-level settings từ file và env vars
func loadAppConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("engine.config_path", "config/engine.yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger khởi tạo structured logger
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}

// initCache chọn cache backend: memory (LRU), redis, mongo hoặc none
func initCache(logger *zap.Logger) services.ICacheService {
	cfg := config.C.Cache
	switch cfg.Backend {
	case "none":
		return services.NewNoopCacheService()
	case "redis":
		cache, err := services.NewRedisCacheService(cfg.RedisURL, cfg.TTL(), logger)
		if err != nil {
			logger.Fatal("Không kết nối được Redis cache", zap.Error(err))
		}
		return cache
	case "mongo":
		db := initMongoDB(cfg.MongoURI, cfg.MongoDB, logger)
		cache, err := services.NewMongoCacheService(db, cfg.Size, logger)
		if err != nil {
			logger.Fatal("Không khởi tạo được MongoDB cache", zap.Error(err))
		}
		return cache
	default:
		cache, err := services.NewCacheService(cfg.Size, cfg.TTL())
		if err != nil {
			logger.Fatal("Không khởi tạo được LRU cache", zap.Error(err))
		}
		return cache
	}
}

// initMongoDB khởi tạo kết nối MongoDB cho cache backend
func initMongoDB(uri, dbName string, logger *zap.Logger) *mongo.Database {
	if uri == "" {
		uri = getEnv("MONGO_URL", "mongodb://localhost:27017")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	logger.Info("Connected to MongoDB", zap.String("database", dbName))
	return client.Database(dbName)
}

// getEnv lấy environment variable với default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
