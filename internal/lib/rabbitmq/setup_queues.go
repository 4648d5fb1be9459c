package rabbitmq

type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetPaymentQueues очереди событий платежей, потребляемые сервисом уведомлений.
func GetPaymentQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "payments.created", RoutingKey: "created"},
	}
}
