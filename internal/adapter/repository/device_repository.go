package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/device"
)

// DeviceRepository implementa la interfaz device.Repository
type DeviceRepository struct {
	db *pgxpool.Pool
}

// NewDeviceRepository crea una nueva instancia de DeviceRepository
func NewDeviceRepository(db *pgxpool.Pool) device.Repository {
	return &DeviceRepository{
		db: db,
	}
}

const deviceColumns = `id, imei, COALESCE(serial_number, ''), model,
	COALESCE(memory, ''), COALESCE(color, ''), state, condition,
	reseller_id, technician_id, cost_cents, purchase_order_item_id,
	created_at, updated_at`

// Create implementa device.Repository.Create
func (r *DeviceRepository) Create(ctx context.Context, d *device.Device) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO devices (
			id, imei, serial_number, model, memory, color, state,
			condition, reseller_id, technician_id, cost_cents,
			purchase_order_item_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		d.ID, d.IMEI, nullIfEmpty(d.SerialNumber), d.Model,
		nullIfEmpty(d.Memory), nullIfEmpty(d.Color), d.State, d.Condition,
		d.ResellerID, d.TechnicianID, d.CostCents, d.PurchaseOrderItemID,
		d.CreatedAt, d.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return device.ErrDuplicateIMEI
		}
		return fmt.Errorf("error al crear equipo: %w", err)
	}

	return nil
}

// FindByID implementa device.Repository.FindByID
func (r *DeviceRepository) FindByID(ctx context.Context, id string) (*device.Device, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id)

	return scanDevice(row)
}

// FindByIMEI implementa device.Repository.FindByIMEI
func (r *DeviceRepository) FindByIMEI(ctx context.Context, imei string) (*device.Device, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deviceColumns+` FROM devices WHERE imei = $1`, imei)

	return scanDevice(row)
}

// List implementa device.Repository.List
func (r *DeviceRepository) List(ctx context.Context, limit, offset int) ([]*device.Device, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+deviceColumns+` FROM devices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar equipos: %w", err)
	}
	defer rows.Close()

	return scanDeviceRows(rows)
}

// FindByState implementa device.Repository.FindByState
func (r *DeviceRepository) FindByState(ctx context.Context, state string, limit, offset int) ([]*device.Device, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+deviceColumns+` FROM devices
		WHERE state = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		state, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar equipos: %w", err)
	}
	defer rows.Close()

	return scanDeviceRows(rows)
}

// FindByReseller implementa device.Repository.FindByReseller
func (r *DeviceRepository) FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*device.Device, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+deviceColumns+` FROM devices
		WHERE reseller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		resellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar equipos: %w", err)
	}
	defer rows.Close()

	return scanDeviceRows(rows)
}

// Update implementa device.Repository.Update
func (r *DeviceRepository) Update(ctx context.Context, d *device.Device) error {
	result, err := r.db.Exec(ctx,
		`UPDATE devices SET
			serial_number = $1, model = $2, memory = $3, color = $4,
			condition = $5, technician_id = $6, cost_cents = $7,
			purchase_order_item_id = $8, updated_at = $9
		WHERE id = $10`,
		nullIfEmpty(d.SerialNumber), d.Model, nullIfEmpty(d.Memory),
		nullIfEmpty(d.Color), d.Condition, d.TechnicianID, d.CostCents,
		d.PurchaseOrderItemID, time.Now().UTC(), d.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar equipo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return device.ErrNotFound
	}

	return nil
}

// UpdateState implementa device.Repository.UpdateState
func (r *DeviceRepository) UpdateState(ctx context.Context, id, state string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE devices SET state = $1, updated_at = $2 WHERE id = $3",
		state, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("error al actualizar estado del equipo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return device.ErrNotFound
	}

	return nil
}

// ExistsByIMEI implementa device.Repository.ExistsByIMEI
func (r *DeviceRepository) ExistsByIMEI(ctx context.Context, imei string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM devices WHERE imei = $1)",
		imei).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del equipo: %w", err)
	}

	return exists, nil
}

// Count implementa device.Repository.Count
func (r *DeviceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM devices").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error al contar equipos: %w", err)
	}

	return count, nil
}

// scanDevice lee un equipo de una fila única
func scanDevice(row pgx.Row) (*device.Device, error) {
	var d device.Device
	err := row.Scan(&d.ID, &d.IMEI, &d.SerialNumber, &d.Model, &d.Memory,
		&d.Color, &d.State, &d.Condition, &d.ResellerID, &d.TechnicianID,
		&d.CostCents, &d.PurchaseOrderItemID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, device.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar equipo: %w", err)
	}

	return &d, nil
}

// scanDeviceRows procesa resultados de consultas con múltiples equipos
func scanDeviceRows(rows pgx.Rows) ([]*device.Device, error) {
	devices := make([]*device.Device, 0)

	for rows.Next() {
		var d device.Device
		err := rows.Scan(&d.ID, &d.IMEI, &d.SerialNumber, &d.Model,
			&d.Memory, &d.Color, &d.State, &d.Condition, &d.ResellerID,
			&d.TechnicianID, &d.CostCents, &d.PurchaseOrderItemID,
			&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer equipo: %w", err)
		}
		devices = append(devices, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return devices, nil
}
