package ports

import "context"

// Severidades de notificación visibles al usuario.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// Notification es el payload que el núcleo entrega al notificador externo.
type Notification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Notifier es el colaborador de notificaciones: fire-and-forget, el núcleo
// no consume ningún valor de retorno.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}
