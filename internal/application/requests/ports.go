package requests

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de solicitudes atados a esa tx. Cubre crear+enviar del portal
// y cada transición con su notificación.
type TxRunner interface {
	RunRequest(ctx context.Context, fn func(
		reqRepo repository.AssetRequestRepository,
		auditRepo repository.AuditRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
