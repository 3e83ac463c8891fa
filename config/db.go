package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

// InitDB opens the shared connection pool. TranslateError is on so that
// unique-constraint violations surface as gorm.ErrDuplicatedKey and can be
// mapped to domain conflict errors instead of racing read-then-write checks.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "openmcp"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.App{},
		&models.Repo{},
		&models.Ranking{},
		&models.RankingRecord{},
		&models.Snapshot{},
		&models.SnapshotWeekly{},
		&models.SnapshotMonthly{},
		&models.Ad{},
		&models.Claim{},
		&models.Suggestion{},
		&models.Payment{},
		&models.Invoice{},
		&models.RssItem{},
		&models.Recommendation{},
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
