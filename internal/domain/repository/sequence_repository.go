package repository

// Códigos de secuencia registrados (compatibles con los nombres históricos).
const (
	SeqAsset    = "it.asset"
	SeqMovement = "it.asset.movement"
	SeqRequest  = "it.asset.request"
	SeqVisit    = "hr_hospital.visit"
)

// SequenceRepository generador de números monotónicos por código.
// La implementación debe ser atómica bajo creadores concurrentes:
// un solo statement de incremento, nunca leer-luego-incrementar.
type SequenceRepository interface {
	NextByCode(code string) (int64, error)
}
