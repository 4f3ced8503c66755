package builderextensions

import (
	appbuilder "directory-api/pkg/app_builder"
	"directory-api/pkg/utilities"
	"directory-api/src/database"
)

type AppConfig interface {
	appbuilder.AppConfig
	GetDatabaseDriver() string
	GetDatabaseConnectionString() string
}

func ConnectToDatabase[T utilities.JsonConfigObj[U], U AppConfig](a *appbuilder.AppBuilder[T, U]) {
	a.Logger.Info("Establishing connection to database...")

	database.InitializeDatabaseConnection(
		a.Config.GetDatabaseDriver(),
		a.Config.GetDatabaseConnectionString(),
	)

	a.Logger.Info("Database connection established successfully.")
}

func RunMigrations(runMigrations bool) {
	if runMigrations {
		database.RunMigrations()
	}
}

func SeedDevData(seed bool) {
	if !seed {
		return
	}

	if err := database.InitializeDatabaseForDev(); err != nil {
		panic(err)
	}
}
