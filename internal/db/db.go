package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"

	"github.com/BruksfildServices01/ojt-tracker/internal/config"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      GormLogger(log),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// GormLogger sends gorm's warnings, errors and slow queries to log.
// Missing rows are reported to callers as errors and are not logged.
func GormLogger(log *zap.Logger) gormlogger.Interface {
	l := zapgorm2.New(log.Named("gorm"))
	l.IgnoreRecordNotFoundError = true
	l.SlowThreshold = 200 * time.Millisecond
	return l.LogMode(gormlogger.Warn)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.TimeEntry{},
		&models.UserSettings{},
	)
}
