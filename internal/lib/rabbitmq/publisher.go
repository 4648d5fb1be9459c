package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// Publisher публикует сообщения в фиксированный обменник с заданным
// ключом маршрутизации.
type Publisher struct {
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

// NewPublisher создаёт публикатора для обменника и ключа маршрутизации.
func NewPublisher(ch *amqp.Channel, exchange, routingKey string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, routingKey: routingKey}
}

// Publish сериализует сообщение в JSON и публикует его.
func (p *Publisher) Publish(message any) error {
	return PublishMessage(p.ch, p.exchange, p.routingKey, message)
}

// PublishMessage публикует сообщение в RabbitMQ.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
