package outbox_test

import (
	"os"
	"testing"

	"directory-api/pkg/logger"
	"directory-api/src/database"
	"directory-api/src/model"
	"directory-api/src/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{
			{Key: "service", Value: "outbox-test"},
		},
	})

	os.Exit(m.Run())
}

func TestNewEvent(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	eventId, err := repo.NewEvent(model.EntityOrganization, 42, model.ActionCreated, "ООО Рога и Копыта")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, eventId)

	event, err := repo.GetEvent(eventId)
	require.NoError(t, err)
	assert.Equal(t, model.EntityOrganization, event.EntityType)
	assert.Equal(t, 42, event.EntityId)
	assert.Equal(t, model.ActionCreated, event.Action)
	assert.Equal(t, 0, event.Retry)
}

func TestGetUnprocessedEvents(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	first, err := repo.NewEvent(model.EntityActivity, 1, model.ActionCreated, "")
	require.NoError(t, err)
	second, err := repo.NewEvent(model.EntityBuilding, 2, model.ActionUpdated, "")
	require.NoError(t, err)

	events, err := repo.GetUnprocessedEvents()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, first.String(), events[0].EventId, "events come back in insertion order")
	assert.Equal(t, second.String(), events[1].EventId)
}

func TestMarkEventAsProcessed(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	eventId, err := repo.NewEvent(model.EntityActivity, 1, model.ActionDeleted, "")
	require.NoError(t, err)

	require.NoError(t, repo.MarkEventAsProcessed(eventId))

	events, err := repo.GetUnprocessedEvents()
	require.NoError(t, err)
	assert.Empty(t, events)

	// Soft delete keeps the row for auditing.
	var count int64
	require.NoError(t, db.Unscoped().Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId.String()).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateRetryValue(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	eventId, err := repo.NewEvent(model.EntityActivity, 1, model.ActionCreated, "")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateRetryValue(eventId))

	event, err := repo.GetEvent(eventId)
	require.NoError(t, err)
	assert.Equal(t, 1, event.Retry)
}

func TestUpdateRetryValueParksExhaustedEvents(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	eventId, err := repo.NewEvent(model.EntityActivity, 1, model.ActionCreated, "")
	require.NoError(t, err)

	// Bump past the retry budget; the event must leave the pending set.
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.UpdateRetryValue(eventId))
	}

	events, err := repo.GetUnprocessedEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpdateRetryValueUnknownEvent(t *testing.T) {
	db := database.SetupTestDB(t)
	repo := outbox.NewRepoWithDB(db)

	randomId, err := uuid.NewRandom()
	require.NoError(t, err)

	assert.Error(t, repo.UpdateRetryValue(randomId))
}
