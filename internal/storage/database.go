package storage

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate connects to PostgreSQL and keeps the schema updated via
// AutoMigrate. The readiness gate has already verified the server is
// accepting connections by the time this runs.
func OpenAndMigrate(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Map driver unique-violation errors to gorm.ErrDuplicatedKey so
		// the repository can surface ErrUsernameTaken.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &PostRef{}, &TripGoalFollow{}); err != nil {
		return nil, err
	}
	return db, nil
}
