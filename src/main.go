package main

import (
	appbuilder "directory-api/pkg/app_builder"
	"directory-api/pkg/logger"
	"directory-api/pkg/rabbitmq"
	"directory-api/pkg/rest"
	"directory-api/src/activity"
	"directory-api/src/building"
	builderextensions "directory-api/src/builder_extensions"
	logaudit "directory-api/src/log_audit"
	"directory-api/src/middleware"
	"directory-api/src/organization"
	"directory-api/src/outbox"
)

// @title           Business Directory API
// @version         1.0
// @description     REST API for organizations, buildings and the activity classifier
// @host localhost:9000
// @BasePath /v1
func main() {

	var activityHandler *activity.Handler
	var buildingHandler *building.Handler
	var organizationHandler *organization.Handler
	var logAuditHandler *logaudit.LogAuditHandler

	appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{}).
		ResolveEnvironment().
		LoadConfig("config.json").
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- DATABASE + MIGRATIONS -----
			builderextensions.ConnectToDatabase(a)
			builderextensions.RunMigrations(a.Config.ShouldRunMigrations())
			builderextensions.SeedDevData(a.Config.ShouldSeedDevData())

			// ----- DIRECTORY SERVICES -----
			activityHandler = activity.NewHandler()
			buildingHandler = building.NewHandler()
			organizationHandler = organization.NewHandler()

			// ----- LOG AUDIT SERVICE -----
			logAuditRepo := logaudit.NewLogAuditRepository()
			logAuditService := logaudit.NewLogAuditService(logAuditRepo)
			logAuditHandler = logaudit.NewLogAuditHandler(logAuditService)
		}).

		// ----- RABBITMQ -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- RABBITMQ LOGGING SINK -----
			logPublisher := rabbitmq.GetPublisher("LogPublisher")
			loggerInstance := logger.Default()
			logSink := rabbitmq.CreateRabbitmqLoggerSink(logPublisher)
			logger.AddSinkToLoggerInstance(loggerInstance, logSink)
		}).

		// ----- WORKERS -----
		AddWorkerServices(
			outbox.NewOutboxWorker(),
			logaudit.NewLogSinkWorker(),
		).

		// ----- CORS -----
		AddGinMiddleware(
			rest.NewMiddleware("*", middleware.CORSMiddleware()),
		).

		// ----- ROUTES -----
		AddGinRoutes(
			// ACTIVITY CLASSIFIER:
			rest.NewRoute(rest.GET, "v1", "activities", activityHandler.GetAllActivities),
			rest.NewRoute(rest.POST, "v1", "activities", activityHandler.CreateActivity),
			rest.NewRoute(rest.GET, "v1", "activities/roots/root", activityHandler.GetRootActivities),
			rest.NewRoute(rest.GET, "v1", "activities/search/by-name", activityHandler.SearchByName),
			rest.NewRoute(rest.GET, "v1", "activities/:id", activityHandler.GetActivity),
			rest.NewRoute(rest.GET, "v1", "activities/:id/children", activityHandler.GetChildren),
			rest.NewRoute(rest.PUT, "v1", "activities/:id", activityHandler.UpdateActivity),
			rest.NewRoute(rest.DELETE, "v1", "activities/:id", activityHandler.DeleteActivity),

			// BUILDINGS:
			rest.NewRoute(rest.GET, "v1", "buildings", buildingHandler.GetAllBuildings),
			rest.NewRoute(rest.POST, "v1", "buildings", buildingHandler.CreateBuilding),
			rest.NewRoute(rest.POST, "v1", "buildings/geo/search", buildingHandler.SearchBuildings),
			rest.NewRoute(rest.GET, "v1", "buildings/:id", buildingHandler.GetBuilding),
			rest.NewRoute(rest.PUT, "v1", "buildings/:id", buildingHandler.UpdateBuilding),
			rest.NewRoute(rest.DELETE, "v1", "buildings/:id", buildingHandler.DeleteBuilding),

			// ORGANIZATIONS:
			rest.NewRoute(rest.GET, "v1", "organizations", organizationHandler.GetAllOrganizations),
			rest.NewRoute(rest.POST, "v1", "organizations", organizationHandler.CreateOrganization),
			rest.NewRoute(rest.GET, "v1", "organizations/search/by-name", organizationHandler.SearchByName),
			rest.NewRoute(rest.GET, "v1", "organizations/search/by-activity-tree", organizationHandler.GetByActivityTree),
			rest.NewRoute(rest.POST, "v1", "organizations/geo/search", organizationHandler.SearchByGeo),
			rest.NewRoute(rest.GET, "v1", "organizations/building/:building_id", organizationHandler.GetByBuilding),
			rest.NewRoute(rest.GET, "v1", "organizations/activity/:activity_id", organizationHandler.GetByActivity),
			rest.NewRoute(rest.GET, "v1", "organizations/:id", organizationHandler.GetOrganization),
			rest.NewRoute(rest.PUT, "v1", "organizations/:id", organizationHandler.UpdateOrganization),
			rest.NewRoute(rest.DELETE, "v1", "organizations/:id", organizationHandler.DeleteOrganization),

			// LOG AUDIT ROUTES:
			rest.NewRoute(rest.GET, "v1", "logs", logAuditHandler.GetLogEntries),
			rest.NewRoute(rest.GET, "v1", "logs/service/:service", logAuditHandler.GetLogEntriesByService),
			rest.NewRoute(rest.GET, "v1", "logs/level/:level", logAuditHandler.GetLogEntriesByLevel),
		).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}
