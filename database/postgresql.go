package database

import (
	"CareSync/models"
	"context"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance.
var DB *gorm.DB

// InitDB initializes the database connection and configures it. The password
// hasher is passed in for provider seeding to keep this package free of
// crypto dependencies.
func InitDB(ctx context.Context, dsn string, hashPassword func(string) (string, error)) (*gorm.DB, error) {
	var err error

	// Configure logging level based on environment
	logMode := logger.Silent
	if os.Getenv("ENV") == "development" {
		logMode = logger.Info
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		PrepareStmt:                              true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if err := configureConnectionPool(); err != nil {
		return nil, err
	}

	if err := testDatabaseConnection(ctx); err != nil {
		return nil, err
	}

	if err := runMigrations(); err != nil {
		return nil, err
	}

	if err := seedInitialData(hashPassword); err != nil {
		return nil, err
	}

	log.Println("Database initialized successfully.")
	return DB, nil
}

// configureConnectionPool sets up the connection pool settings for the database.
func configureConnectionPool() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// testDatabaseConnection verifies that the database connection is functional.
func testDatabaseConnection(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// runMigrations performs database schema migrations.
func runMigrations() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.PatientProfile{},
		&models.ProviderProfile{},
		&models.Appointment{},
	)
}

// seedInitialData populates the database with the initial provider accounts.
func seedInitialData(hashPassword func(string) (string, error)) error {
	if err := models.SeedProviders(DB, hashPassword); err != nil {
		return errors.Wrap(err, "failed to seed providers")
	}
	return nil
}
