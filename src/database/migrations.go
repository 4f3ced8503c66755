package database

import (
	"directory-api/pkg/logger"
	"directory-api/src/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Activity{},
		&model.Building{},
		&model.Organization{},
		&model.OrganizationPhone{},
		&model.OutboxEvent{},
		&model.LogAuditEntry{},
	)
}

func RunMigrations() {
	db := GetDatabaseConnection()
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables...")

	if err := AutoMigrate(db); err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}

	migrationLogger.Info("All tables created (or already exist).")
}
