package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// AssetCategory
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDisplayName_ConPadre(t *testing.T) {
	parent := &entity.AssetCategory{Name: "Computadores"}
	child := &entity.AssetCategory{Name: "Laptops", ParentID: "p1"}

	assert.Equal(t, "Computadores / Laptops", child.DisplayNameWith(parent),
		"el nombre visible debe componer un solo nivel de ancestro")
}

func TestCategoryDisplayName_SinPadre(t *testing.T) {
	root := &entity.AssetCategory{Name: "Servidores"}
	assert.Equal(t, "Servidores", root.DisplayNameWith(nil),
		"una categoría raíz se muestra con su nombre a secas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Asset
// ──────────────────────────────────────────────────────────────────────────────

func TestAssetQRCode_ConCodigoAsignado(t *testing.T) {
	a := &entity.Asset{Code: "AST-00042"}
	assert.Equal(t, "AST-00042", a.QRCode())
}

func TestAssetQRCode_PlaceholderDevuelveVacio(t *testing.T) {
	a := &entity.Asset{Code: entity.AssetCodePlaceholder}
	assert.Empty(t, a.QRCode(), "sin número de inventario no hay contenido QR")
}

// ──────────────────────────────────────────────────────────────────────────────
// AssetRequest
// ──────────────────────────────────────────────────────────────────────────────

func TestRequiresAsset_PorTipo(t *testing.T) {
	assert.True(t, entity.RequiresAsset(entity.RequestTypeRepair))
	assert.True(t, entity.RequiresAsset(entity.RequestTypeReplacement))
	assert.False(t, entity.RequiresAsset(entity.RequestTypeNew),
		"una solicitud de activo nuevo no referencia activo existente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Patient — edad derivada
// ──────────────────────────────────────────────────────────────────────────────

func TestPatientAge_CumpleaniosYaPasado(t *testing.T) {
	p := &entity.Patient{BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 36, p.Age(today))
}

func TestPatientAge_CumpleaniosPendienteEsteAnio(t *testing.T) {
	p := &entity.Patient{BirthDate: time.Date(1990, 11, 2, 0, 0, 0, 0, time.UTC)}
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 35, p.Age(today), "antes del cumpleaños no se suma el año en curso")
}

func TestPatientAge_MismoDiaDelCumpleanios(t *testing.T) {
	p := &entity.Patient{BirthDate: time.Date(2000, 8, 29, 0, 0, 0, 0, time.UTC)}
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, p.Age(today), "el día del cumpleaños ya cuenta el año cumplido")
}

func TestPatientAge_SinFechaDeNacimiento(t *testing.T) {
	p := &entity.Patient{}
	assert.Equal(t, 0, p.Age(time.Now()))
}

// ──────────────────────────────────────────────────────────────────────────────
// AssetMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementLabel(t *testing.T) {
	m := &entity.AssetMovement{MovementDate: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Laptop Dell → Ana Pérez (2026-01-10)", m.Label("Laptop Dell", "Ana Pérez"))
}
