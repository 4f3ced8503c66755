package dtocommon

import (
	"directory-api/pkg/utilities"
	"directory-api/pkg/utilities/timeutil"
)

// DirectoryEventMessage is the wire format for directory change events
// published to the message broker for downstream consumers.
type DirectoryEventMessage struct {
	EventId    string           `json:"event_id"`
	EntityType string           `json:"entity_type"`
	EntityId   int              `json:"entity_id"`
	Action     string           `json:"action"`
	Payload    string           `json:"payload,omitempty"`
	EmittedAt  timeutil.TimeUTC `json:"emitted_at"`
}

func (dem DirectoryEventMessage) Serialize() ([]byte, error) {
	return utilities.Serialize[DirectoryEventMessage](dem)
}
