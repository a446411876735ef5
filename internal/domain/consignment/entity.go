package consignment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("consignación no encontrada")
	ErrDeviceNotAvailable = errors.New("el equipo no está disponible")
	ErrAlreadyConsigned   = errors.New("el equipo ya tiene una consignación activa")
	ErrNotActive          = errors.New("la consignación ya fue cerrada")
	ErrInvalidMethod      = errors.New("método de pago inválido")
	ErrInvalidAmountPaid  = errors.New("el monto entregado no puede ser negativo")
	ErrInvalidSaleAmount  = errors.New("el monto de venta debe ser mayor a cero")
)

// Status representa el estado de la consignación
type Status string

const (
	StatusActive Status = "active"
	StatusSold   Status = "sold"
)

// PaymentMethod representa la modalidad acordada al entregar el equipo
type PaymentMethod string

const (
	MethodConsignacion PaymentMethod = "consignacion"
	MethodUSDT         PaymentMethod = "usdt"
	MethodTransfer     PaymentMethod = "transferencia"
	MethodDolarBillete PaymentMethod = "dolar_billete"
)

// MovementType representa el tipo de movimiento del historial
type MovementType string

const (
	MovementAssigned MovementType = "assigned"
	MovementSold     MovementType = "sold"
)

// Consignment representa un equipo entregado a un revendedor a la
// espera de su venta. Un equipo tiene a lo sumo una consignación activa.
type Consignment struct {
	ID             string        `json:"id"`
	DeviceID       string        `json:"device_id"`
	ResellerID     string        `json:"reseller_id"`
	AssignedByID   string        `json:"assigned_by_id"`
	Status         Status        `json:"status"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	SalePriceCents *int64        `json:"sale_price_cents,omitempty"`
	AssignedAt     time.Time     `json:"assigned_at"`
	SoldAt         *time.Time    `json:"sold_at,omitempty"`
	Movements      []*Movement   `json:"movements,omitempty"`
}

// Movement es una entrada inmutable del historial de la consignación
type Movement struct {
	ID            string       `json:"id"`
	ConsignmentID string       `json:"consignment_id"`
	MovementType  MovementType `json:"movement_type"`
	Note          string       `json:"note,omitempty"`
	CreatedByID   string       `json:"created_by_id"`
	CreatedAt     time.Time    `json:"created_at"`
}

// NewConsignment crea una consignación activa para un equipo y revendedor
func NewConsignment(deviceID, resellerID, assignedByID string, method PaymentMethod, salePriceCents *int64) (*Consignment, error) {
	if method == "" {
		method = MethodConsignacion
	}

	if !method.Valid() {
		return nil, ErrInvalidMethod
	}

	return &Consignment{
		ID:             uuid.New().String(),
		DeviceID:       deviceID,
		ResellerID:     resellerID,
		AssignedByID:   assignedByID,
		Status:         StatusActive,
		PaymentMethod:  method,
		SalePriceCents: salePriceCents,
		AssignedAt:     time.Now().UTC(),
	}, nil
}

// NewMovement crea una entrada del historial de la consignación
func NewMovement(consignmentID string, movementType MovementType, note, createdByID string) *Movement {
	return &Movement{
		ID:            uuid.New().String(),
		ConsignmentID: consignmentID,
		MovementType:  movementType,
		Note:          note,
		CreatedByID:   createdByID,
		CreatedAt:     time.Now().UTC(),
	}
}

// Valid verifica que el método de pago sea uno de los conocidos
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodConsignacion, MethodUSDT, MethodTransfer, MethodDolarBillete:
		return true
	}
	return false
}

// IsActive verifica si la consignación sigue abierta
func (c *Consignment) IsActive() bool {
	return c.Status == StatusActive
}
