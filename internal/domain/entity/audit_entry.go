package entity

import "time"

// Tipos de registro a los que se adjunta el log de actividad.
const (
	AuditRecordAsset   = "it.asset"
	AuditRecordRequest = "it.asset.request"
)

// AuditEntry entrada del log de actividad de un registro: mensaje legible,
// autor y destinatarios a notificar. Append-only.
type AuditEntry struct {
	ID           string
	RecordType   string
	RecordID     string
	Body         string
	AuthorID     string   // empleado autor; vacío = sistema
	RecipientIDs []string // empleados notificados
	CreatedAt    time.Time
}
