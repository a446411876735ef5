package service

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/pkg/logger"
)

// DeviceService administra los equipos y sus transiciones de estado. Todo
// estado destino se valida contra el catálogo: debe existir y estar
// activo; un estado desconocido es un error de validación, nunca se
// corrige en silencio.
type DeviceService struct {
	deviceRepo device.Repository
	statusRepo device.StatusRepository
	notifier   *Notifier
	logger     logger.Logger
}

// NewDeviceService crea una nueva instancia de DeviceService
func NewDeviceService(
	deviceRepo device.Repository,
	statusRepo device.StatusRepository,
	notifier *Notifier,
	logger logger.Logger,
) *DeviceService {
	return &DeviceService{
		deviceRepo: deviceRepo,
		statusRepo: statusRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// CreateInput son los datos para dar de alta un equipo
type CreateInput struct {
	IMEI                string
	SerialNumber        string
	Model               string
	Memory              string
	Color               string
	Condition           device.Condition
	CostCents           *int64
	PurchaseOrderItemID *string
	ActorID             string
}

// Create da de alta un equipo en estado disponible
func (s *DeviceService) Create(ctx context.Context, in CreateInput) (*device.Device, error) {
	exists, err := s.deviceRepo.ExistsByIMEI(ctx, in.IMEI)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, device.ErrDuplicateIMEI
	}

	dev, err := device.NewDevice(in.IMEI, in.Model, in.Condition)
	if err != nil {
		return nil, err
	}

	dev.SerialNumber = in.SerialNumber
	dev.Memory = in.Memory
	dev.Color = in.Color
	dev.CostCents = in.CostCents
	dev.PurchaseOrderItemID = in.PurchaseOrderItemID

	if err := s.deviceRepo.Create(ctx, dev); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &in.ActorID, "device.created", "device", dev.ID, map[string]any{
		"imei": dev.IMEI,
	})

	return dev, nil
}

// SetState cambia el estado de un equipo a cualquier clave válida del
// catálogo. Es la escritura incondicional que usan los administradores.
func (s *DeviceService) SetState(ctx context.Context, deviceID, newState, actorID string) (*device.Device, error) {
	if err := s.validateState(ctx, newState); err != nil {
		return nil, err
	}

	dev, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.UpdateState(ctx, dev.ID, newState); err != nil {
		return nil, err
	}
	dev.State = newState

	s.notifier.Audit(ctx, &actorID, "device.state_changed", "device", dev.ID, map[string]any{
		"state": newState,
	})

	return dev, nil
}

// validateState verifica la clave contra el catálogo de estados
func (s *DeviceService) validateState(ctx context.Context, state string) error {
	status, err := s.statusRepo.FindByKey(ctx, state)
	if err != nil {
		return err
	}
	if status == nil || !status.IsActive {
		return device.ErrUnknownState
	}
	return nil
}

// FindByID devuelve un equipo por su ID
func (s *DeviceService) FindByID(ctx context.Context, id string) (*device.Device, error) {
	return s.deviceRepo.FindByID(ctx, id)
}

// List lista equipos, opcionalmente filtrados por estado o revendedor
func (s *DeviceService) List(ctx context.Context, state, resellerID string, limit, offset int) ([]*device.Device, error) {
	if state != "" {
		return s.deviceRepo.FindByState(ctx, state, limit, offset)
	}
	if resellerID != "" {
		return s.deviceRepo.FindByReseller(ctx, resellerID, limit, offset)
	}
	return s.deviceRepo.List(ctx, limit, offset)
}

// Update actualiza los datos generales de un equipo (no su estado)
func (s *DeviceService) Update(ctx context.Context, d *device.Device) error {
	return s.deviceRepo.Update(ctx, d)
}

// CreateStatus agrega una fila al catálogo de estados
func (s *DeviceService) CreateStatus(ctx context.Context, st *device.Status) error {
	return s.statusRepo.Create(ctx, st)
}

// ListStatuses lista el catálogo de estados
func (s *DeviceService) ListStatuses(ctx context.Context) ([]*device.Status, error) {
	return s.statusRepo.List(ctx)
}

// UpdateStatus actualiza una fila del catálogo de estados
func (s *DeviceService) UpdateStatus(ctx context.Context, st *device.Status) error {
	return s.statusRepo.Update(ctx, st)
}
