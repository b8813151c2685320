package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"itinera/internal/models/db_models"
)

// InitPostgresql opens the catalog database and migrates the POI table.
func InitPostgresql(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(&db_models.POI{}); err != nil {
		return nil, fmt.Errorf("migrate pois: %w", err)
	}

	log.Info("PostgreSQL connected")
	return db, nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("Error closing database connection", zap.Error(err))
		return
	}
	log.Info("PostgreSQL database connection closed successfully")
}
