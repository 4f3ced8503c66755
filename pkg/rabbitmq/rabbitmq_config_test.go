package rabbitmq_test

import (
	"testing"

	"directory-api/pkg/rabbitmq"
)

func TestRabbitmqConfigConvertToDomain(t *testing.T) {
	configJson := rabbitmq.RabbitmqConfigJson{
		Host:     "localhost",
		User:     "guest",
		Password: "guest",
		PublishersConfig: []rabbitmq.RabbitmqPublishersConfigJson{
			{
				PublisherAlias: "DirectoryEventsPublisher",
				Exchange:       "directory.events",
				RoutingKey:     "directory.changed",
			},
		},
		ConsumersConfig: []rabbitmq.RabbitmqConsumerConfigJson{
			{
				ConsumerAlias: "LogConsumer",
				ConsumerTag:   "directory-api-log-sink",
				QueueName:     "directory.logs.api",
			},
		},
	}

	config := configJson.ConvertToDomain()

	if config.Host != "localhost" || config.User != "guest" || config.Password != "guest" {
		t.Errorf("Connection fields not mapped: %+v", config)
	}

	if len(config.PublishersConfig) != 1 {
		t.Fatalf("Expected 1 publisher, got %d", len(config.PublishersConfig))
	}
	pub := config.PublishersConfig[0]
	if pub.PublisherAlias != rabbitmq.PublisherAlias("DirectoryEventsPublisher") {
		t.Errorf("Unexpected publisher alias: %s", pub.PublisherAlias)
	}
	if pub.Exchange != "directory.events" || pub.RoutingKey != "directory.changed" {
		t.Errorf("Publisher routing not mapped: %+v", pub)
	}

	if len(config.ConsumersConfig) != 1 {
		t.Fatalf("Expected 1 consumer, got %d", len(config.ConsumersConfig))
	}
	cons := config.ConsumersConfig[0]
	if cons.ConsumerAlias != rabbitmq.ConsumerAlias("LogConsumer") {
		t.Errorf("Unexpected consumer alias: %s", cons.ConsumerAlias)
	}
	if cons.QueueName != "directory.logs.api" || cons.ConsumerTag != "directory-api-log-sink" {
		t.Errorf("Consumer fields not mapped: %+v", cons)
	}
}

func TestRabbitmqConfigConvertToDomainEmptyRegistries(t *testing.T) {
	config := rabbitmq.RabbitmqConfigJson{Host: "localhost"}.ConvertToDomain()

	if len(config.PublishersConfig) != 0 || len(config.ConsumersConfig) != 0 {
		t.Errorf("Expected empty registries, got %+v", config)
	}
}
