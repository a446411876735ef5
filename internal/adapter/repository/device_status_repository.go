package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/device"
)

// ErrStatusDuplicateKey indica que ya existe un estado con esa clave
var ErrStatusDuplicateKey = errors.New("ya existe un estado con esa clave")

// DeviceStatusRepository implementa la interfaz device.StatusRepository
type DeviceStatusRepository struct {
	db *pgxpool.Pool
}

// NewDeviceStatusRepository crea una nueva instancia de DeviceStatusRepository
func NewDeviceStatusRepository(db *pgxpool.Pool) device.StatusRepository {
	return &DeviceStatusRepository{
		db: db,
	}
}

// Create implementa device.StatusRepository.Create
func (r *DeviceStatusRepository) Create(ctx context.Context, s *device.Status) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO device_statuses (
			key, name, sector, is_sellable, is_visible_for_reseller,
			sort_order, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.Key, s.Name, nullIfEmpty(s.Sector), s.IsSellable,
		s.IsVisibleForReseller, s.SortOrder, s.IsActive, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if isDuplicateKey(err) {
			return ErrStatusDuplicateKey
		}
		return fmt.Errorf("error al crear estado: %w", err)
	}

	return nil
}

// FindByKey implementa device.StatusRepository.FindByKey. Devuelve nil
// sin error si la clave no existe: la decisión de rechazar el estado es
// de quien valida.
func (r *DeviceStatusRepository) FindByKey(ctx context.Context, key string) (*device.Status, error) {
	var s device.Status
	err := r.db.QueryRow(ctx,
		`SELECT key, name, COALESCE(sector, ''), is_sellable,
			is_visible_for_reseller, sort_order, is_active, created_at, updated_at
		FROM device_statuses WHERE key = $1`,
		key).Scan(&s.Key, &s.Name, &s.Sector, &s.IsSellable,
		&s.IsVisibleForReseller, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar estado: %w", err)
	}

	return &s, nil
}

// List implementa device.StatusRepository.List
func (r *DeviceStatusRepository) List(ctx context.Context) ([]*device.Status, error) {
	rows, err := r.db.Query(ctx,
		`SELECT key, name, COALESCE(sector, ''), is_sellable,
			is_visible_for_reseller, sort_order, is_active, created_at, updated_at
		FROM device_statuses
		ORDER BY sort_order ASC, key ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar estados: %w", err)
	}
	defer rows.Close()

	statuses := make([]*device.Status, 0)
	for rows.Next() {
		var s device.Status
		err := rows.Scan(&s.Key, &s.Name, &s.Sector, &s.IsSellable,
			&s.IsVisibleForReseller, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer estado: %w", err)
		}
		statuses = append(statuses, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return statuses, nil
}

// Update implementa device.StatusRepository.Update
func (r *DeviceStatusRepository) Update(ctx context.Context, s *device.Status) error {
	result, err := r.db.Exec(ctx,
		`UPDATE device_statuses SET
			name = $1, sector = $2, is_sellable = $3,
			is_visible_for_reseller = $4, sort_order = $5, is_active = $6,
			updated_at = $7
		WHERE key = $8`,
		s.Name, nullIfEmpty(s.Sector), s.IsSellable, s.IsVisibleForReseller,
		s.SortOrder, s.IsActive, time.Now().UTC(), s.Key)

	if err != nil {
		return fmt.Errorf("error al actualizar estado: %w", err)
	}

	if result.RowsAffected() == 0 {
		return device.ErrUnknownState
	}

	return nil
}
