package assets

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que traslado + actualización del
// activo + entrada de auditoría se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.AssetMovementRepository,
		assetRepo repository.AssetRepository,
		auditRepo repository.AuditRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
