package activity_test

import (
	"os"
	"testing"

	"directory-api/pkg/logger"
	"directory-api/src/activity"
	"directory-api/src/database"
	"directory-api/src/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{
			{Key: "service", Value: "activity-test"},
		},
	})

	os.Exit(m.Run())
}

func seedTaxonomy(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, a := range foodTaxonomy() {
		require.NoError(t, db.Create(&a).Error)
	}
}

func TestGetActivityById(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	found, err := service.GetActivityById(5)
	require.NoError(t, err)
	assert.Equal(t, "Мясная продукция", found.Name)

	_, err = service.GetActivityById(999)
	assert.True(t, activity.IsNotFound(err))
}

func TestGetRootActivities(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	roots, err := service.GetRootActivities()
	require.NoError(t, err)

	ids := make([]int, 0, len(roots))
	for _, r := range roots {
		ids = append(ids, r.Id)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ids)
}

func TestSearchActivitiesByName(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	matches, err := service.SearchActivitiesByName("продукция")
	require.NoError(t, err)
	assert.Len(t, matches, 2, "every match is returned, not just the first")

	matches, err = service.SearchActivitiesByName("nothing-like-this")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGetChildrenIncludesRoot(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	children, err := service.GetChildrenActivities(5, 3)
	require.NoError(t, err)

	ids := make([]int, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.Id)
	}
	assert.ElementsMatch(t, []int{5, 9, 10, 11}, ids)
}

func TestCreateActivity(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	created, err := service.CreateActivity("Рыба", intPtr(1))
	require.NoError(t, err)
	assert.NotZero(t, created.Id)

	ids, err := service.ResolveSubtreeIds(1, 1)
	require.NoError(t, err)
	assert.Contains(t, ids, created.Id)
}

func TestCreateActivityUnknownParent(t *testing.T) {
	db := database.SetupTestDB(t)
	service := activity.NewServiceWithDB(db)

	_, err := service.CreateActivity("Орфан", intPtr(12345))
	assert.True(t, activity.IsNotFound(err))
}

func TestUpdateActivity(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	updated, err := service.UpdateActivity(8, map[string]interface{}{"name": "Безалкогольные напитки"})
	require.NoError(t, err)
	assert.Equal(t, "Безалкогольные напитки", updated.Name)

	_, err = service.UpdateActivity(999, map[string]interface{}{"name": "x"})
	assert.True(t, activity.IsNotFound(err))
}

func TestUpdateActivityReparent(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	moved, err := service.UpdateActivity(9, map[string]interface{}{"parent_id": 6})
	require.NoError(t, err)
	require.NotNil(t, moved.ParentId)
	assert.Equal(t, 6, *moved.ParentId)

	ids, err := service.ResolveSubtreeIds(6, 1)
	require.NoError(t, err)
	assert.Contains(t, ids, 9)
}

func TestUpdateActivityRejectsUnknownParent(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	_, err := service.UpdateActivity(5, map[string]interface{}{"parent_id": 424242})
	assert.ErrorIs(t, err, activity.ErrParentNotFound)

	var unchanged model.Activity
	require.NoError(t, db.First(&unchanged, "id = ?", 5).Error)
	require.NotNil(t, unchanged.ParentId)
	assert.Equal(t, 1, *unchanged.ParentId, "a rejected reparent must not persist")
}

func TestUpdateActivityRejectsCycle(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	// 9 is a descendant of 5; parenting 5 under it would close a cycle.
	_, err := service.UpdateActivity(5, map[string]interface{}{"parent_id": 9})
	assert.ErrorIs(t, err, activity.ErrCyclicParent)

	_, err = service.UpdateActivity(5, map[string]interface{}{"parent_id": 5})
	assert.ErrorIs(t, err, activity.ErrCyclicParent)

	var unchanged model.Activity
	require.NoError(t, db.First(&unchanged, "id = ?", 5).Error)
	require.NotNil(t, unchanged.ParentId)
	assert.Equal(t, 1, *unchanged.ParentId)
}

func TestSearchActivitiesByNameFoldsNonAsciiCase(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	// sqlite's LOWER() leaves Cyrillic untouched, so folding must not rely
	// on the database.
	matches, err := service.SearchActivitiesByName("ЕДА")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Id)

	matches, err = service.SearchActivitiesByName("мясная")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].Id)
}

func TestDeleteActivityCascadesToSubtree(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	require.NoError(t, service.DeleteActivity(5))

	for _, id := range []int{5, 9, 10, 11} {
		_, err := service.GetActivityById(id)
		assert.True(t, activity.IsNotFound(err), "activity %d should be gone", id)
	}

	// Siblings and the root stay.
	_, err := service.GetActivityById(1)
	assert.NoError(t, err)
	_, err = service.GetActivityById(6)
	assert.NoError(t, err)
}

func TestDeleteActivitySparesOrganizations(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	building := model.Building{Address: "ул. Ленина 1", Latitude: 55.7558, Longitude: 37.6173}
	require.NoError(t, db.Create(&building).Error)

	org := model.Organization{Name: "Мясной двор", BuildingId: building.Id}
	require.NoError(t, db.Create(&org).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO organization_activity (organization_id, activity_id) VALUES (?, ?)", org.Id, 9,
	).Error)

	require.NoError(t, service.DeleteActivity(5))

	var survivor model.Organization
	require.NoError(t, db.First(&survivor, "id = ?", org.Id).Error)
	assert.Equal(t, "Мясной двор", survivor.Name)

	var linkCount int64
	require.NoError(t, db.Table("organization_activity").
		Where("organization_id = ?", org.Id).Count(&linkCount).Error)
	assert.Zero(t, linkCount, "association rows must be removed with the subtree")
}

func TestDeleteActivityNotFound(t *testing.T) {
	db := database.SetupTestDB(t)
	service := activity.NewServiceWithDB(db)

	err := service.DeleteActivity(999)
	assert.True(t, activity.IsNotFound(err))
}

func TestDeleteActivityRecordsOutboxEvent(t *testing.T) {
	db := database.SetupTestDB(t)
	seedTaxonomy(t, db)
	service := activity.NewServiceWithDB(db)

	require.NoError(t, service.DeleteActivity(2))

	var events []model.OutboxEvent
	require.NoError(t, db.Find(&events, "entity_type = ?", model.EntityActivity).Error)
	require.Len(t, events, 1)
	assert.Equal(t, model.ActionDeleted, events[0].Action)
	assert.Equal(t, 2, events[0].EntityId)
}
