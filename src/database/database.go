package database

import (
	"fmt"
	"sync"

	"directory-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

var (
	databaseConnection  *gorm.DB
	onceDatabase        sync.Once
	initializedDatabase bool
)

// InitializeDatabaseConnection opens the process-wide gorm handle once at
// startup. Business code never reopens it; gorm hands out request-scoped
// sessions from the underlying pool.
func InitializeDatabaseConnection(driver, connectionString string) {
	onceDatabase.Do(func() {
		db, err := openConnection(driver, connectionString)
		if err != nil {
			logger.Default().Fatalf(err, "Cannot establish database connection (%s)", driver)
		}

		databaseConnection = db
		initializedDatabase = true
	})
}

func GetDatabaseConnection() *gorm.DB {
	if !initializedDatabase {
		panic("Database not initialized: call InitializeDatabaseConnection() first")
	}
	return databaseConnection
}

func openConnection(driver, connectionString string) (*gorm.DB, error) {
	switch driver {
	case DriverPostgres:
		return gorm.Open(postgres.Open(connectionString), &gorm.Config{})
	case DriverSqlite, "":
		return gorm.Open(sqlite.Open(connectionString), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
