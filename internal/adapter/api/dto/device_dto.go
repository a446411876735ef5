package dto

import (
	"time"

	"github.com/movilstock/backoffice/internal/domain/device"
)

// DeviceRequest representa la petición de alta de equipo
type DeviceRequest struct {
	IMEI                string           `json:"imei" binding:"required"`
	SerialNumber        string           `json:"serial_number"`
	Model               string           `json:"model" binding:"required"`
	Memory              string           `json:"memory"`
	Color               string           `json:"color"`
	Condition           device.Condition `json:"condition" binding:"required"`
	CostCents           *int64           `json:"cost_cents"`
	PurchaseOrderItemID *string          `json:"purchase_order_item_id"`
}

// DeviceStateRequest representa un cambio de estado de equipo
type DeviceStateRequest struct {
	State string `json:"state" binding:"required"`
}

// DeviceResponse representa la respuesta de equipo
type DeviceResponse struct {
	ID           string           `json:"id"`
	IMEI         string           `json:"imei"`
	SerialNumber string           `json:"serial_number,omitempty"`
	Model        string           `json:"model"`
	Memory       string           `json:"memory,omitempty"`
	Color        string           `json:"color,omitempty"`
	State        string           `json:"state"`
	Condition    device.Condition `json:"condition"`
	ResellerID   *string          `json:"reseller_id,omitempty"`
	CostCents    *int64           `json:"cost_cents,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// DeviceListResponse representa la respuesta de lista de equipos
type DeviceListResponse struct {
	Items []DeviceResponse `json:"items"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

// DeviceStatusRequest representa una fila del catálogo de estados
type DeviceStatusRequest struct {
	Key                  string `json:"key" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	Sector               string `json:"sector"`
	IsSellable           bool   `json:"is_sellable"`
	IsVisibleForReseller bool   `json:"is_visible_for_reseller"`
	SortOrder            int    `json:"sort_order"`
	IsActive             *bool  `json:"is_active"`
}

// DeviceStatusResponse representa la respuesta del catálogo de estados
type DeviceStatusResponse struct {
	Key                  string `json:"key"`
	Name                 string `json:"name"`
	Sector               string `json:"sector,omitempty"`
	IsSellable           bool   `json:"is_sellable"`
	IsVisibleForReseller bool   `json:"is_visible_for_reseller"`
	SortOrder            int    `json:"sort_order"`
	IsActive             bool   `json:"is_active"`
}

// ToDeviceResponse convierte un equipo de dominio en su respuesta
func ToDeviceResponse(d *device.Device) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID,
		IMEI:         d.IMEI,
		SerialNumber: d.SerialNumber,
		Model:        d.Model,
		Memory:       d.Memory,
		Color:        d.Color,
		State:        d.State,
		Condition:    d.Condition,
		ResellerID:   d.ResellerID,
		CostCents:    d.CostCents,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDeviceListResponse convierte una lista de equipos en su respuesta
func ToDeviceListResponse(devices []*device.Device, page, size int) DeviceListResponse {
	items := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		items = append(items, ToDeviceResponse(d))
	}

	return DeviceListResponse{
		Items: items,
		Page:  page,
		Size:  size,
	}
}

// ToDeviceStatusResponse convierte una fila del catálogo en su respuesta
func ToDeviceStatusResponse(s *device.Status) DeviceStatusResponse {
	return DeviceStatusResponse{
		Key:                  s.Key,
		Name:                 s.Name,
		Sector:               s.Sector,
		IsSellable:           s.IsSellable,
		IsVisibleForReseller: s.IsVisibleForReseller,
		SortOrder:            s.SortOrder,
		IsActive:             s.IsActive,
	}
}
