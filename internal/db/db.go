package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
	"github.com/gamewell/gamewell-backend/internal/utils"
)

type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDatabaseService connects to the configured store. DB_DRIVER selects
// postgres (default) or sqlite for local development.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "postgres", log))
	switch driver {
	case "sqlite":
		return newSQLiteService(serviceLog)
	case "postgres":
		return newPostgresService(serviceLog)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

func newPostgresService(serviceLog *logger.Logger) (*DatabaseService, error) {
	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", serviceLog)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", serviceLog)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", serviceLog)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", serviceLog)
	postgresName := utils.GetEnv("POSTGRES_NAME", "gamewell", serviceLog)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := database.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &DatabaseService{db: database, log: serviceLog}, nil
}

func newSQLiteService(serviceLog *logger.Logger) (*DatabaseService, error) {
	path := utils.GetEnv("SQLITE_PATH", "gamewell.db", serviceLog)

	serviceLog.Info("Opening SQLite database...", "path", path)
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to open SQLite database", "error", err)
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	return &DatabaseService{db: database, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.Game{},
		&types.MoodEntry{},
		&types.GameSession{},
		&types.Recommendation{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}
