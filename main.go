package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ub-address-parser/app/config"
	"github.com/ub-address-parser/app/controllers"
	"github.com/ub-address-parser/app/services"
	"github.com/ub-address-parser/internal/parser"
	"github.com/ub-address-parser/routes"
)

func main() {
	loadConfig()

	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting UB address parser service",
		zap.String("rules_version", parser.RulesVersion))

	if err := config.Load(viper.GetString("parser.config_path")); err != nil {
		logger.Warn("parser config not loaded, using defaults", zap.Error(err))
		config.Defaults()
	}

	addressParser := parser.NewAddressParser(config.C.FuzzyMinScore, logger)

	cacheService := initCaches(logger)
	defer cacheService.Close()

	addressService := services.NewAddressService(addressParser, logger)
	addressController := controllers.NewAddressController(addressService, cacheService, logger)

	if viper.GetString("app.env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, addressController)

	port := viper.GetString("app.port")
	logger.Info("listening", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initCaches builds the hybrid cache: in-process LRU always, Redis when a
// URL is configured. A Redis connection failure downgrades to L1 only
// instead of refusing to start.
func initCaches(logger *zap.Logger) services.ICacheService {
	l1 := services.NewLRUCacheService(config.C.Cache.L1Size, config.CacheTTL())

	var l2 *services.RedisCacheService
	if url := config.C.Cache.RedisURL; url != "" {
		var err error
		l2, err = services.NewRedisCacheService(url, config.C.Cache.KeyPrefix, config.CacheTTL(), logger)
		if err != nil {
			logger.Warn("redis unavailable, running with in-process cache only", zap.Error(err))
			l2 = nil
		}
	}

	return services.NewHybridCacheService(l1, l2, logger)
}

func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("parser.config_path", "config/parser.yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: cannot read config file: %v", err)
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		viper.Set("app.port", port)
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		viper.Set("app.env", env)
	}
}

func initLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetString("app.env") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("cannot initialize logger:", err)
	}
	return logger
}
