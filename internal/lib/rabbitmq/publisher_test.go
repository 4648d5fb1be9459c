package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlazareva/education-platform/internal/models"
)

func TestPublisher_PaymentEventReachesQueue(t *testing.T) {
	ctx := context.Background()

	amqpURI, cleanup := getAmqpURI(ctx, t)
	defer cleanup()

	conn, err := Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	queues := GetPaymentQueues()
	ch, err := SetupChannel(conn, queues)
	require.NoError(t, err)
	defer func() {
		if err := ch.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	publisher := NewPublisher(ch, Exchange, queues[0].RoutingKey)

	event := models.PaymentEvent{
		UserID:    7,
		Email:     "buyer@example.com",
		Username:  "buyer",
		Amount:    12.34,
		Currency:  "USD",
		SessionID: "cs_test_123",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.Publish(event))

	deliveries, err := ch.Consume(queues[0].QueueName, "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got models.PaymentEvent
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, event.Email, got.Email)
		assert.Equal(t, event.SessionID, got.SessionID)
		assert.Equal(t, "application/json", d.ContentType)
		assert.Equal(t, uint8(2), d.DeliveryMode, "сообщения платежей публикуются персистентными")
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for payment event")
	}
}

func TestPublishMessage_MarshalError(t *testing.T) {
	ctx := context.Background()

	amqpURI, cleanup := getAmqpURI(ctx, t)
	defer cleanup()

	conn, err := Connect(amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	ch, err := conn.Channel()
	require.NoError(t, err)

	// Канал не сериализуется в JSON.
	badMsg := struct {
		Ch chan int `json:"ch"`
	}{
		Ch: make(chan int),
	}

	err = PublishMessage(ch, "", "payments.created", badMsg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
}
