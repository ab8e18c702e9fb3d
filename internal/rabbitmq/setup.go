package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Exchange и очередь событий о расходах.
const (
	CostsExchange       = "costs"
	CostCreatedQueue    = "cost.created"
	CostCreatedRouteKey = "cost.created"
)

// SetupChannel открывает канал, объявляет exchange событий о расходах
// и привязывает к нему очередь созданных записей.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	err = ch.ExchangeDeclare(
		CostsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err = ch.QueueDeclare(
		CostCreatedQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, CostCreatedQueue, err)
	}

	err = ch.QueueBind(
		CostCreatedQueue,
		CostCreatedRouteKey,
		CostsExchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, CostCreatedQueue, err)
	}

	return ch, nil
}
