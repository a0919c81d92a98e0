package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}

	// Local fallback for development.
	if dbURL == "" {
		host := envOr("DB_HOST", "localhost")
		user := envOr("DB_USER", "postgres")
		password := envOr("DB_PASSWORD", "postgres")
		dbname := envOr("DB_NAME", "tailorshop")
		port := envOr("DB_PORT", "5432")
		dbURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, password, dbname, port,
		)
	} else {
		// Hosted Postgres usually wants sslmode=require.
		if !strings.Contains(dbURL, "sslmode=") {
			sep := "?"
			if strings.Contains(dbURL, "?") {
				sep = "&"
			}
			dbURL = dbURL + sep + "sslmode=require"
		}
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		log.Printf("could not set timezone UTC: %v", err)
	}

	var dbName, currentUser string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	_ = db.Raw("SELECT current_user").Scan(&currentUser)
	log.Printf("DB connected: db=%s user=%s", dbName, currentUser)

	DB = db
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
