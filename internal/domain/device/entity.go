package device

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("equipo no encontrado")
	ErrDuplicateIMEI    = errors.New("ya existe un equipo con ese IMEI")
	ErrEmptyIMEI        = errors.New("el IMEI no puede estar vacío")
	ErrEmptyModel       = errors.New("el modelo no puede estar vacío")
	ErrInvalidCondition = errors.New("condición de equipo inválida")
	ErrUnknownState     = errors.New("estado de equipo inexistente o inactivo")
)

// Estados propios del ciclo de consignación. El catálogo de estados
// (DeviceStatus) puede definir claves adicionales administrables.
const (
	StateAvailable = "available"
	StateConsigned = "consigned"
	StateSold      = "sold"
	StateReturned  = "returned"
)

// Condition representa la condición física del equipo
type Condition string

const (
	ConditionSealed           Condition = "sealed"            // Sellado
	ConditionUsed             Condition = "used"              // Usado
	ConditionTechnicalService Condition = "technical_service" // En servicio técnico
)

// Device representa una unidad física de un equipo
type Device struct {
	ID                  string    `json:"id"`
	IMEI                string    `json:"imei"`
	SerialNumber        string    `json:"serial_number,omitempty"`
	Model               string    `json:"model"`
	Memory              string    `json:"memory,omitempty"`
	Color               string    `json:"color,omitempty"`
	State               string    `json:"state"`
	Condition           Condition `json:"condition"`
	ResellerID          *string   `json:"reseller_id,omitempty"`
	TechnicianID        *string   `json:"technician_id,omitempty"`
	CostCents           *int64    `json:"cost_cents,omitempty"`
	PurchaseOrderItemID *string   `json:"purchase_order_item_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewDevice crea un nuevo equipo en estado disponible
func NewDevice(imei, model string, condition Condition) (*Device, error) {
	if imei == "" {
		return nil, ErrEmptyIMEI
	}

	if model == "" {
		return nil, ErrEmptyModel
	}

	if !condition.Valid() {
		return nil, ErrInvalidCondition
	}

	now := time.Now().UTC()
	return &Device{
		ID:        uuid.New().String(),
		IMEI:      imei,
		Model:     model,
		State:     StateAvailable,
		Condition: condition,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Valid verifica que la condición sea una de las conocidas
func (c Condition) Valid() bool {
	switch c {
	case ConditionSealed, ConditionUsed, ConditionTechnicalService:
		return true
	}
	return false
}

// IsAvailable verifica si el equipo está disponible para consignar
func (d *Device) IsAvailable() bool {
	return d.State == StateAvailable
}
