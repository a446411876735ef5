package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/consignment"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
)

// ConsignmentRepository implementa la interfaz consignment.Repository
type ConsignmentRepository struct {
	db *pgxpool.Pool
}

// NewConsignmentRepository crea una nueva instancia de ConsignmentRepository
func NewConsignmentRepository(db *pgxpool.Pool) consignment.Repository {
	return &ConsignmentRepository{
		db: db,
	}
}

const consignmentColumns = `id, device_id, reseller_id, assigned_by_id,
	status, payment_method, sale_price_cents, assigned_at, sold_at`

// CreateActive implementa consignment.Repository.CreateActive. La
// consignación, su movimiento, el cambio de estado del equipo y el débito
// inicial (si corresponde) se confirman en una única transacción.
func (r *ConsignmentRepository) CreateActive(ctx context.Context, c *consignment.Consignment, m *consignment.Movement, debt *ledger.Entry) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO consignments (
				id, device_id, reseller_id, assigned_by_id, status,
				payment_method, sale_price_cents, assigned_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.DeviceID, c.ResellerID, c.AssignedByID, c.Status,
			c.PaymentMethod, c.SalePriceCents, c.AssignedAt)
		if err != nil {
			return fmt.Errorf("error al crear consignación: %w", err)
		}

		if err := insertMovement(ctx, tx, m); err != nil {
			return err
		}

		result, err := tx.Exec(ctx,
			`UPDATE devices SET state = $1, reseller_id = $2, updated_at = $3
			WHERE id = $4`,
			device.StateConsigned, c.ResellerID, time.Now().UTC(), c.DeviceID)
		if err != nil {
			return fmt.Errorf("error al consignar equipo: %w", err)
		}
		if result.RowsAffected() == 0 {
			return device.ErrNotFound
		}

		if debt != nil {
			if err := insertLedgerEntry(ctx, tx, debt); err != nil {
				return err
			}
		}

		return nil
	})
}

// CloseAsSold implementa consignment.Repository.CloseAsSold. El cambio de
// estado es condicional (status todavía active): si no afecta filas, la
// consignación ya estaba cerrada.
func (r *ConsignmentRepository) CloseAsSold(ctx context.Context, id string, soldAt time.Time, m *consignment.Movement, saleDebt *ledger.Entry) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var deviceID, resellerID string
		err := tx.QueryRow(ctx,
			`UPDATE consignments SET status = $1, sold_at = $2
			WHERE id = $3 AND status = $4
			RETURNING device_id, reseller_id`,
			consignment.StatusSold, soldAt, id, consignment.StatusActive).
			Scan(&deviceID, &resellerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return consignment.ErrNotActive
			}
			return fmt.Errorf("error al cerrar consignación: %w", err)
		}

		if err := insertMovement(ctx, tx, m); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			"UPDATE devices SET state = $1, updated_at = $2 WHERE id = $3",
			device.StateSold, time.Now().UTC(), deviceID)
		if err != nil {
			return fmt.Errorf("error al marcar equipo vendido: %w", err)
		}

		if saleDebt != nil {
			if err := insertLedgerEntry(ctx, tx, saleDebt); err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID implementa consignment.Repository.FindByID
func (r *ConsignmentRepository) FindByID(ctx context.Context, id string) (*consignment.Consignment, error) {
	var c consignment.Consignment
	err := r.db.QueryRow(ctx,
		`SELECT `+consignmentColumns+` FROM consignments WHERE id = $1`,
		id).Scan(&c.ID, &c.DeviceID, &c.ResellerID, &c.AssignedByID,
		&c.Status, &c.PaymentMethod, &c.SalePriceCents, &c.AssignedAt, &c.SoldAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, consignment.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar consignación: %w", err)
	}

	movements, err := r.findMovements(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Movements = movements

	return &c, nil
}

// FindActiveByDevice implementa consignment.Repository.FindActiveByDevice.
// Devuelve nil sin error si el equipo no tiene consignación activa.
func (r *ConsignmentRepository) FindActiveByDevice(ctx context.Context, deviceID string) (*consignment.Consignment, error) {
	var c consignment.Consignment
	err := r.db.QueryRow(ctx,
		`SELECT `+consignmentColumns+` FROM consignments
		WHERE device_id = $1 AND status = $2`,
		deviceID, consignment.StatusActive).
		Scan(&c.ID, &c.DeviceID, &c.ResellerID, &c.AssignedByID,
			&c.Status, &c.PaymentMethod, &c.SalePriceCents, &c.AssignedAt, &c.SoldAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error al buscar consignación activa: %w", err)
	}

	return &c, nil
}

// FindByReseller implementa consignment.Repository.FindByReseller
func (r *ConsignmentRepository) FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*consignment.Consignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+consignmentColumns+` FROM consignments
		WHERE reseller_id = $1
		ORDER BY assigned_at DESC
		LIMIT $2 OFFSET $3`,
		resellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar consignaciones: %w", err)
	}
	defer rows.Close()

	return scanConsignmentRows(rows)
}

// List implementa consignment.Repository.List
func (r *ConsignmentRepository) List(ctx context.Context, limit, offset int) ([]*consignment.Consignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+consignmentColumns+` FROM consignments
		ORDER BY assigned_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar consignaciones: %w", err)
	}
	defer rows.Close()

	return scanConsignmentRows(rows)
}

// findMovements lista los movimientos de una consignación
func (r *ConsignmentRepository) findMovements(ctx context.Context, consignmentID string) ([]*consignment.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, consignment_id, movement_type, COALESCE(note, ''),
			created_by_id, created_at
		FROM consignment_movements
		WHERE consignment_id = $1
		ORDER BY created_at ASC`,
		consignmentID)
	if err != nil {
		return nil, fmt.Errorf("error al listar movimientos: %w", err)
	}
	defer rows.Close()

	movements := make([]*consignment.Movement, 0)
	for rows.Next() {
		var m consignment.Movement
		err := rows.Scan(&m.ID, &m.ConsignmentID, &m.MovementType, &m.Note,
			&m.CreatedByID, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer movimiento: %w", err)
		}
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return movements, nil
}

// insertMovement inserta un movimiento de consignación dentro de una
// transacción
func insertMovement(ctx context.Context, tx pgx.Tx, m *consignment.Movement) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO consignment_movements (
			id, consignment_id, movement_type, note, created_by_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ConsignmentID, m.MovementType, nullIfEmpty(m.Note),
		m.CreatedByID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error al registrar movimiento de consignación: %w", err)
	}
	return nil
}

// insertLedgerEntry inserta un movimiento del libro de deuda dentro de
// una transacción
func insertLedgerEntry(ctx context.Context, tx pgx.Tx, e *ledger.Entry) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO debt_ledger_entries (
			id, reseller_id, amount_cents, entry_type, reason,
			reference_type, reference_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.ResellerID, e.AmountCents, e.Type, e.Reason,
		nullIfEmpty(e.ReferenceType), nullIfEmpty(e.ReferenceID), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error al registrar movimiento de deuda: %w", err)
	}
	return nil
}

// scanConsignmentRows procesa resultados con múltiples consignaciones
func scanConsignmentRows(rows pgx.Rows) ([]*consignment.Consignment, error) {
	consignments := make([]*consignment.Consignment, 0)

	for rows.Next() {
		var c consignment.Consignment
		err := rows.Scan(&c.ID, &c.DeviceID, &c.ResellerID, &c.AssignedByID,
			&c.Status, &c.PaymentMethod, &c.SalePriceCents, &c.AssignedAt, &c.SoldAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer consignación: %w", err)
		}
		consignments = append(consignments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return consignments, nil
}
