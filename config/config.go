package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vehicle-rental-api/models"
)

// Config holds everything the process reads from the environment. main loads
// it once and threads it through; nothing here is a package-level global.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret []byte
	GinMode   string
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "vehicle_rental.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "vehicle_rental_super_secret_2024")),
		GinMode:   os.Getenv("GIN_MODE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
