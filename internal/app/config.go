package app

import (
	"time"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/utils"
)

type Config struct {
	Port              string
	Environment       string
	FrontendURL       string
	RedisAddr         string
	RedisPassword     string
	RecCacheTTL       time.Duration
	ScoringConfigPath string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	frontendURL := utils.GetEnv("FRONTEND_URL", "http://localhost:3000", log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	redisPassword := utils.GetEnv("REDIS_PASSWORD", "", log)
	recCacheTTLSeconds := utils.GetEnvAsInt("REC_CACHE_TTL", 300, log)
	scoringConfigPath := utils.GetEnv("SCORING_CONFIG_PATH", "", log)
	return Config{
		Port:              port,
		Environment:       environment,
		FrontendURL:       frontendURL,
		RedisAddr:         redisAddr,
		RedisPassword:     redisPassword,
		RecCacheTTL:       time.Duration(recCacheTTLSeconds) * time.Second,
		ScoringConfigPath: scoringConfigPath,
	}
}
