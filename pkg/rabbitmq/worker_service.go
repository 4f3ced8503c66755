package rabbitmq

// WorkerService is a long-running background service started by the
// application runtime, typically consuming a queue or draining an outbox.
type WorkerService interface {
	GetServiceName() string
	StartService()
}
