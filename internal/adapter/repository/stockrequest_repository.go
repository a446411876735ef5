package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/stockrequest"
)

// StockRequestRepository implementa la interfaz stockrequest.Repository
type StockRequestRepository struct {
	db *pgxpool.Pool
}

// NewStockRequestRepository crea una nueva instancia de StockRequestRepository
func NewStockRequestRepository(db *pgxpool.Pool) stockrequest.Repository {
	return &StockRequestRepository{
		db: db,
	}
}

const stockRequestColumns = `id, reseller_id, model, quantity,
	COALESCE(note, ''), status, created_at, updated_at`

// Create implementa stockrequest.Repository.Create
func (r *StockRequestRepository) Create(ctx context.Context, s *stockrequest.StockRequest) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO stock_requests (
			id, reseller_id, model, quantity, note, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.ResellerID, s.Model, s.Quantity, nullIfEmpty(s.Note),
		s.Status, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear pedido de stock: %w", err)
	}

	return nil
}

// FindByID implementa stockrequest.Repository.FindByID
func (r *StockRequestRepository) FindByID(ctx context.Context, id string) (*stockrequest.StockRequest, error) {
	var s stockrequest.StockRequest
	err := r.db.QueryRow(ctx,
		`SELECT `+stockRequestColumns+` FROM stock_requests WHERE id = $1`,
		id).Scan(&s.ID, &s.ResellerID, &s.Model, &s.Quantity, &s.Note,
		&s.Status, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stockrequest.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar pedido de stock: %w", err)
	}

	return &s, nil
}

// FindByReseller implementa stockrequest.Repository.FindByReseller
func (r *StockRequestRepository) FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*stockrequest.StockRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+stockRequestColumns+` FROM stock_requests
		WHERE reseller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		resellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar pedidos de stock: %w", err)
	}
	defer rows.Close()

	return scanStockRequestRows(rows)
}

// List implementa stockrequest.Repository.List
func (r *StockRequestRepository) List(ctx context.Context, limit, offset int) ([]*stockrequest.StockRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+stockRequestColumns+` FROM stock_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar pedidos de stock: %w", err)
	}
	defer rows.Close()

	return scanStockRequestRows(rows)
}

// UpdateStatus implementa stockrequest.Repository.UpdateStatus
func (r *StockRequestRepository) UpdateStatus(ctx context.Context, id string, status stockrequest.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE stock_requests SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)

	if err != nil {
		return fmt.Errorf("error al actualizar pedido de stock: %w", err)
	}

	if result.RowsAffected() == 0 {
		return stockrequest.ErrNotFound
	}

	return nil
}

// scanStockRequestRows procesa resultados con múltiples pedidos
func scanStockRequestRows(rows pgx.Rows) ([]*stockrequest.StockRequest, error) {
	requests := make([]*stockrequest.StockRequest, 0)

	for rows.Next() {
		var s stockrequest.StockRequest
		err := rows.Scan(&s.ID, &s.ResellerID, &s.Model, &s.Quantity, &s.Note,
			&s.Status, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer pedido de stock: %w", err)
		}
		requests = append(requests, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return requests, nil
}
