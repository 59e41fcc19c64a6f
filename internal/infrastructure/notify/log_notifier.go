package notify

import (
	"context"

	"github.com/tu-usuario/resto-pos/internal/application/ports"
	"github.com/tu-usuario/resto-pos/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier escribe las notificaciones en el log estructurado. Se usa
// cuando no hay broker configurado (desarrollo, tests de integración).
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra la notificación con su severidad.
func (n *LogNotifier) Notify(_ context.Context, notification ports.Notification) {
	n.log.Info().
		Str("title", notification.Title).
		Str("severity", notification.Severity).
		Msg(notification.Message)
}
