package logaudit

import (
	"encoding/json"
	"os"

	"directory-api/pkg/logger"
	"directory-api/pkg/rabbitmq"
	logger_message "directory-api/pkg/utilities/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	logConsumerAlias = "LogConsumer"
)

// LogSinkWorker drains the log queue into the audit table. It carries a
// dedicated stdout logger so its own logging never feeds back into the queue.
type LogSinkWorker struct {
	service  LogAuditService
	consumer rabbitmq.IRabbitmqConsumer
	logger   *logger.Logger
}

func NewLogSinkWorker() rabbitmq.WorkerService {
	dedicatedLogger := logger.New().WithOutput(os.Stdout)

	repository := NewLogAuditRepository()
	service := NewLogAuditService(repository)

	return &LogSinkWorker{
		service:  service,
		consumer: rabbitmq.GetConsumer(rabbitmq.ConsumerAlias(logConsumerAlias)),
		logger:   dedicatedLogger,
	}
}

func (w *LogSinkWorker) GetServiceName() string {
	return logConsumerAlias
}

func (w *LogSinkWorker) StartService() {
	w.logger.Info("Starting API Log Sink Worker")

	w.consumer.StartConsuming(func(d amqp.Delivery) {
		var logMessage logger_message.LoggerMessage

		if err := json.Unmarshal(d.Body, &logMessage); err != nil {
			w.logger.Errorf(err, "Failed to unmarshal log message")
			return
		}

		if err := w.service.ProcessLogMessage(logMessage); err != nil {
			w.logger.Errorf(err, "Failed to save log message to database")
			return
		}

		w.logger.Debugf("Saved log message to database: %s", logMessage.Message)
	})
}
