package outbox

import (
	"directory-api/pkg/logger"
	"directory-api/pkg/rabbitmq"
	reasoncodes "directory-api/pkg/reason_codes"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

const outboxWorkerName = "OutboxCronWorker"

// OutboxWorker periodically drains the outbox table and publishes
// pending directory events to the message broker.
type OutboxWorker struct {
	publisher  rabbitmq.IRabbitmqPublisher
	repository OutboxRepository
	cron       *cron.Cron
}

func NewOutboxWorker() rabbitmq.WorkerService {
	return &OutboxWorker{
		publisher:  rabbitmq.GetPublisher("DirectoryEventsPublisher"),
		repository: NewRepo(),
		cron:       cron.New(),
	}
}

func (ow *OutboxWorker) GetServiceName() string {
	return outboxWorkerName
}

func (ow *OutboxWorker) StartService() {
	// change based on env for dev minute for prod hour
	err := ow.cron.AddFunc("@every 1m", func() { ow.processOutboxEvents() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", outboxWorkerName)
	}

	ow.cron.Start()
}

func (ow *OutboxWorker) processOutboxEvents() {
	outboxLogger := logger.Default()

	events, err := ow.repository.GetUnprocessedEvents()
	if err != nil {
		outboxLogger.Errorf(err, "%s: could not read events from database", reasoncodes.ErrDatabase)
		return
	}

	for _, e := range events {
		eventId, err := uuid.Parse(e.EventId)
		if err != nil {
			outboxLogger.Errorf(err, "%s: malformed event id %s", reasoncodes.ErrUnmarshal, e.EventId)
			continue
		}

		if err := ow.publisher.Publish(e.MapToDirectoryEvent()); err != nil {
			outboxLogger.Errorf(err, "%s: can't publish event %s to queue", reasoncodes.ErrPublish, e.EventId)
			if err := ow.repository.UpdateRetryValue(eventId); err != nil {
				outboxLogger.Errorf(err, "%s: could not bump retry for event %s", reasoncodes.ErrDatabase, e.EventId)
			}
			continue
		}

		if err := ow.repository.MarkEventAsProcessed(eventId); err != nil {
			outboxLogger.Errorf(err, "%s: could not mark event %s as processed", reasoncodes.ErrDatabase, e.EventId)
		}
	}
}
