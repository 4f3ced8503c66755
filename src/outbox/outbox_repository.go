package outbox

import (
	"directory-api/src/database"
	"directory-api/src/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxRetries = 5

type OutboxRepository interface {
	GetEvent(uuid.UUID) (model.OutboxEvent, error)
	NewEvent(entityType string, entityId int, action, payload string) (uuid.UUID, error)
	GetUnprocessedEvents() ([]model.OutboxEvent, error)
	MarkEventAsProcessed(uuid.UUID) error
	UpdateRetryValue(eventId uuid.UUID) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewRepo() OutboxRepository {
	return &outboxRepository{db: database.GetDatabaseConnection()}
}

func NewRepoWithDB(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (or *outboxRepository) GetEvent(eventId uuid.UUID) (model.OutboxEvent, error) {
	var event model.OutboxEvent
	result := or.db.First(&event, "event_id = ?", eventId.String())
	return event, result.Error
}

func (or *outboxRepository) NewEvent(entityType string, entityId int, action, payload string) (uuid.UUID, error) {
	eventId, err := uuid.NewRandom()
	if err != nil {
		return eventId, err
	}

	result := or.db.Create(&model.OutboxEvent{
		EventId:    eventId.String(),
		EntityType: entityType,
		EntityId:   entityId,
		Action:     action,
		Payload:    payload,
		Retry:      0,
	})

	return eventId, result.Error
}

func (or *outboxRepository) GetUnprocessedEvents() ([]model.OutboxEvent, error) {
	var events []model.OutboxEvent
	result := or.db.Order("id asc").Find(&events)
	return events, result.Error
}

// MarkEventAsProcessed soft-deletes the event so it stops showing up as
// pending but stays queryable for auditing.
func (or *outboxRepository) MarkEventAsProcessed(eventId uuid.UUID) error {
	return or.db.Where("event_id = ?", eventId.String()).Delete(&model.OutboxEvent{}).Error
}

func (or *outboxRepository) UpdateRetryValue(eventId uuid.UUID) error {
	event, err := or.GetEvent(eventId)
	if err != nil {
		return err
	}

	err = or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId.String()).
		Update("retry", event.Retry+1).Error
	if err != nil {
		return err
	}

	if event.Retry+1 < maxRetries {
		return nil
	}

	// should look into these events manually
	return or.MarkEventAsProcessed(eventId)
}
