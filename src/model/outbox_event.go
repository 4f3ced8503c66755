package model

import (
	"time"

	dtocommon "directory-api/pkg/dto_common"
	"directory-api/pkg/utilities/timeutil"

	"gorm.io/gorm"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"

	EntityActivity     = "activity"
	EntityBuilding     = "building"
	EntityOrganization = "organization"
)

// OutboxEvent records a directory mutation for asynchronous publication.
// ProcessedAt doubles as a soft-delete marker: a zero value means pending.
type OutboxEvent struct {
	Id          int            `gorm:"primaryKey;autoIncrement"`
	EventId     string         `gorm:"type:uuid;uniqueIndex;not null"`
	EntityType  string         `gorm:"type:varchar(50);not null;index"`
	EntityId    int            `gorm:"not null"`
	Action      string         `gorm:"type:varchar(20);not null"`
	Payload     string         `gorm:"type:text"`
	Retry       int            `gorm:"not null;default:0"`
	ProcessedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (OutboxEvent) TableName() string {
	return "outbox_event"
}

func (oe OutboxEvent) MapToDirectoryEvent() dtocommon.DirectoryEventMessage {
	return dtocommon.DirectoryEventMessage{
		EventId:    oe.EventId,
		EntityType: oe.EntityType,
		EntityId:   oe.EntityId,
		Action:     oe.Action,
		Payload:    oe.Payload,
		EmittedAt:  timeutil.TimeUTC{T: oe.CreatedAt.UTC().Unix()},
	}
}
