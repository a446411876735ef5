package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/cashbox"
)

// CashBoxRepository implementa la interfaz cashbox.Repository
type CashBoxRepository struct {
	db *pgxpool.Pool
}

// NewCashBoxRepository crea una nueva instancia de CashBoxRepository
func NewCashBoxRepository(db *pgxpool.Pool) cashbox.Repository {
	return &CashBoxRepository{
		db: db,
	}
}

// Create implementa cashbox.Repository.Create
func (r *CashBoxRepository) Create(ctx context.Context, b *cashbox.CashBox) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO cash_boxes (id, name, currency, type, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Currency, b.Type, b.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al crear caja: %w", err)
	}

	return nil
}

// FindByID implementa cashbox.Repository.FindByID
func (r *CashBoxRepository) FindByID(ctx context.Context, id string) (*cashbox.CashBox, error) {
	var b cashbox.CashBox
	err := r.db.QueryRow(ctx,
		"SELECT id, name, currency, type, created_at FROM cash_boxes WHERE id = $1",
		id).Scan(&b.ID, &b.Name, &b.Currency, &b.Type, &b.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cashbox.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar caja: %w", err)
	}

	return &b, nil
}

// List implementa cashbox.Repository.List
func (r *CashBoxRepository) List(ctx context.Context) ([]*cashbox.CashBox, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, currency, type, created_at FROM cash_boxes ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("error al listar cajas: %w", err)
	}
	defer rows.Close()

	boxes := make([]*cashbox.CashBox, 0)
	for rows.Next() {
		var b cashbox.CashBox
		if err := rows.Scan(&b.ID, &b.Name, &b.Currency, &b.Type, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("error al leer caja: %w", err)
		}
		boxes = append(boxes, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return boxes, nil
}

// AddMovement implementa cashbox.Repository.AddMovement
func (r *CashBoxRepository) AddMovement(ctx context.Context, m *cashbox.Movement) error {
	if m.AmountCents <= 0 {
		return cashbox.ErrInvalidAmount
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO cash_movements (
			id, cash_box_id, type, amount_cents, currency, description,
			reference_type, reference_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.CashBoxID, m.Type, m.AmountCents, m.Currency, m.Description,
		nullIfEmpty(m.ReferenceType), nullIfEmpty(m.ReferenceID), m.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al registrar movimiento de caja: %w", err)
	}

	return nil
}

// FindMovements implementa cashbox.Repository.FindMovements
func (r *CashBoxRepository) FindMovements(ctx context.Context, cashBoxID string, limit, offset int) ([]*cashbox.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, cash_box_id, type, amount_cents, currency, description,
			COALESCE(reference_type, ''), COALESCE(reference_id, ''), created_at
		FROM cash_movements
		WHERE cash_box_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		cashBoxID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar movimientos de caja: %w", err)
	}
	defer rows.Close()

	movements := make([]*cashbox.Movement, 0)
	for rows.Next() {
		var m cashbox.Movement
		err := rows.Scan(&m.ID, &m.CashBoxID, &m.Type, &m.AmountCents,
			&m.Currency, &m.Description, &m.ReferenceType, &m.ReferenceID,
			&m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer movimiento de caja: %w", err)
		}
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return movements, nil
}

// BalanceCents implementa cashbox.Repository.BalanceCents: créditos
// suman, débitos restan
func (r *CashBoxRepository) BalanceCents(ctx context.Context, cashBoxID string) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(
			CASE WHEN type = 'credit' THEN amount_cents ELSE -amount_cents END
		), 0)
		FROM cash_movements
		WHERE cash_box_id = $1`,
		cashBoxID).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("error al calcular saldo de caja: %w", err)
	}

	return balance, nil
}

// Exists implementa cashbox.Repository.Exists
func (r *CashBoxRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM cash_boxes WHERE id = $1)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error al verificar existencia de la caja: %w", err)
	}

	return exists, nil
}
