package database

import (
	"log"
	"os"

	"writeflow-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the database, runs migrations and loads the demo dataset.
// The store is an in-memory SQLite database (pure Go driver, no CGO): all
// data is synthetic and re-seeded on every start, nothing survives a restart.
func InitDB() {
	var err error

	dsn := os.Getenv("WRITEFLOW_DB_DSN")
	if dsn == "" {
		dsn = ":memory:"
	}

	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	log.Println("Database migrated and seeded")
}

// Migrate creates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Writer{},
		&models.Task{},
		&models.TaskTemplate{},
	)
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
