// Package notify contiene los adaptadores del colaborador de notificaciones.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/tu-usuario/resto-pos/internal/application/ports"
	"github.com/tu-usuario/resto-pos/pkg/logger"
)

// Asegura que AMQPNotifier implementa ports.Notifier.
var _ ports.Notifier = (*AMQPNotifier)(nil)

// AMQPNotifier publica notificaciones en un exchange fanout de RabbitMQ.
// Es fire-and-forget: los fallos se registran y no se propagan al núcleo.
type AMQPNotifier struct {
	conn     *amqp.Connection
	exchange string
	log      *logger.Logger
}

// NewAMQPNotifier abre la conexión y declara el exchange fanout.
func NewAMQPNotifier(url, exchange string, log *logger.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declarar exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, exchange: exchange, log: log}, nil
}

// Notify publica la notificación como JSON. No devuelve error al llamador.
func (n *AMQPNotifier) Notify(ctx context.Context, notification ports.Notification) {
	ch, err := n.conn.Channel()
	if err != nil {
		n.log.Error().Err(err).Msg("abrir canal de notificaciones")
		return
	}
	defer ch.Close()

	body, err := json.Marshal(notification)
	if err != nil {
		n.log.Error().Err(err).Msg("serializar notificación")
		return
	}
	err = ch.PublishWithContext(ctx, n.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		n.log.Error().Err(err).Str("title", notification.Title).Msg("publicar notificación")
	}
}

// Close cierra la conexión AMQP.
func (n *AMQPNotifier) Close() error {
	return n.conn.Close()
}
