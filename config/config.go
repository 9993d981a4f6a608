// Package config membangun koneksi database dari environment.
// Default sqlite file lokal supaya development tidak butuh server DB;
// production memakai mysql lewat DB_DRIVER=mysql.
package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB -> buka koneksi sesuai DB_DRIVER (sqlite | mysql)
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "lezzetkare.db"
		}
		return gorm.Open(sqlite.Open(path), gormConfig)

	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASSWORD"),
				envOrDefault("DB_HOST", "127.0.0.1"),
				envOrDefault("DB_PORT", "3306"),
				envOrDefault("DB_NAME", "lezzetkare"),
			)
		}
		return gorm.Open(mysql.Open(dsn), gormConfig)
	}

	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
