package database

import (
	"directory-api/pkg/logger"
	"directory-api/src/model"
)

func intPtr(v int) *int { return &v }

// InitializeDatabaseForDev seeds a small directory so the API is usable
// right after startup: a three-level activity tree, a few buildings around
// central Moscow and organizations occupying them.
func InitializeDatabaseForDev() error {
	db := GetDatabaseConnection()
	seedLogger := logger.Default()

	activities := []model.Activity{
		{Id: 1, Name: "Еда"},
		{Id: 2, Name: "Автомобили"},
		{Id: 3, Name: "Одежда"},
		{Id: 4, Name: "Электроника"},
		{Id: 5, Name: "Мясная продукция", ParentId: intPtr(1)},
		{Id: 6, Name: "Молочная продукция", ParentId: intPtr(1)},
		{Id: 7, Name: "Хлебобулочные изделия", ParentId: intPtr(1)},
		{Id: 8, Name: "Напитки", ParentId: intPtr(1)},
		{Id: 9, Name: "Говядина", ParentId: intPtr(5)},
		{Id: 10, Name: "Свинина", ParentId: intPtr(5)},
		{Id: 11, Name: "Птица", ParentId: intPtr(5)},
	}
	for _, activity := range activities {
		if result := db.FirstOrCreate(&activity, model.Activity{Id: activity.Id}); result.Error != nil {
			seedLogger.Error(result.Error, "Error seeding activity")
			return result.Error
		}
	}

	buildings := []model.Building{
		{Id: 1, Address: "г. Москва, ул. Тверская, 1", Latitude: 55.7558, Longitude: 37.6173},
		{Id: 2, Address: "г. Москва, ул. Арбат, 10", Latitude: 55.7494, Longitude: 37.5931},
		{Id: 3, Address: "г. Москва, Ленинский проспект, 42", Latitude: 55.7010, Longitude: 37.5794},
	}
	for _, building := range buildings {
		if result := db.FirstOrCreate(&building, model.Building{Id: building.Id}); result.Error != nil {
			seedLogger.Error(result.Error, "Error seeding building")
			return result.Error
		}
	}

	organizations := []model.Organization{
		{
			Id: 1, Name: `ООО "Рога и Копыта"`, BuildingId: 1,
			Phones: []model.OrganizationPhone{
				{PhoneNumber: "2-222-222", IsPrimary: true},
				{PhoneNumber: "3-333-333"},
			},
			Activities: []model.Activity{{Id: 5}, {Id: 6}},
		},
		{
			Id: 2, Name: `ООО "Молочные реки"`, BuildingId: 2,
			Phones: []model.OrganizationPhone{
				{PhoneNumber: "8-923-666-13-13", IsPrimary: true},
			},
			Activities: []model.Activity{{Id: 6}},
		},
		{
			Id: 3, Name: `АО "Птицефабрика Центральная"`, BuildingId: 3,
			Phones: []model.OrganizationPhone{
				{PhoneNumber: "8-800-555-35-35", IsPrimary: true},
			},
			Activities: []model.Activity{{Id: 11}},
		},
	}
	for _, organization := range organizations {
		if result := db.FirstOrCreate(&organization, model.Organization{Id: organization.Id}); result.Error != nil {
			seedLogger.Error(result.Error, "Error seeding organization")
			return result.Error
		}
	}

	seedLogger.Infof("Seeded %d activities, %d buildings, %d organizations",
		len(activities), len(buildings), len(organizations))
	return nil
}
