package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
)

// ResellerRepository implementa la interfaz reseller.Repository
type ResellerRepository struct {
	db *pgxpool.Pool
}

// NewResellerRepository crea una nueva instancia de ResellerRepository
func NewResellerRepository(db *pgxpool.Pool) reseller.Repository {
	return &ResellerRepository{
		db: db,
	}
}

const resellerColumns = `id, user_id, name, COALESCE(segment, ''),
	COALESCE(company, ''), COALESCE(phone, ''), COALESCE(address, ''),
	latitude, longitude, created_at, updated_at`

// CreateWithUser implementa reseller.Repository.CreateWithUser. La
// cuenta de usuario y el perfil se crean en una única transacción.
func (r *ResellerRepository) CreateWithUser(ctx context.Context, u *user.User, res *reseller.Reseller) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO users (
				id, name, email, password, role, status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			u.ID, u.Name, u.Email, u.Password, u.Role, u.Status,
			u.CreatedAt, u.UpdatedAt)
		if err != nil {
			if isDuplicateKey(err) {
				return user.ErrDuplicateEmail
			}
			return fmt.Errorf("error al crear usuario: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO resellers (
				id, user_id, name, segment, company, phone, address,
				latitude, longitude, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			res.ID, res.UserID, res.Name, nullIfEmpty(res.Segment),
			nullIfEmpty(res.Company), nullIfEmpty(res.Phone),
			nullIfEmpty(res.Address), res.Latitude, res.Longitude,
			res.CreatedAt, res.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error al crear revendedor: %w", err)
		}

		return nil
	})
}

// FindByID implementa reseller.Repository.FindByID
func (r *ResellerRepository) FindByID(ctx context.Context, id string) (*reseller.Reseller, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resellerColumns+` FROM resellers WHERE id = $1`, id)

	return scanReseller(row)
}

// FindByUserID implementa reseller.Repository.FindByUserID
func (r *ResellerRepository) FindByUserID(ctx context.Context, userID string) (*reseller.Reseller, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resellerColumns+` FROM resellers WHERE user_id = $1`, userID)

	return scanReseller(row)
}

// List implementa reseller.Repository.List
func (r *ResellerRepository) List(ctx context.Context, limit, offset int) ([]*reseller.Reseller, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+resellerColumns+` FROM resellers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar revendedores: %w", err)
	}
	defer rows.Close()

	resellers := make([]*reseller.Reseller, 0)
	for rows.Next() {
		var res reseller.Reseller
		err := rows.Scan(&res.ID, &res.UserID, &res.Name, &res.Segment,
			&res.Company, &res.Phone, &res.Address, &res.Latitude,
			&res.Longitude, &res.CreatedAt, &res.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer revendedor: %w", err)
		}
		resellers = append(resellers, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return resellers, nil
}

// Update implementa reseller.Repository.Update
func (r *ResellerRepository) Update(ctx context.Context, res *reseller.Reseller) error {
	result, err := r.db.Exec(ctx,
		`UPDATE resellers SET
			name = $1, segment = $2, company = $3, phone = $4, address = $5,
			latitude = $6, longitude = $7, updated_at = $8
		WHERE id = $9`,
		res.Name, nullIfEmpty(res.Segment), nullIfEmpty(res.Company),
		nullIfEmpty(res.Phone), nullIfEmpty(res.Address), res.Latitude,
		res.Longitude, time.Now().UTC(), res.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar revendedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return reseller.ErrNotFound
	}

	return nil
}

// DeleteCascade implementa reseller.Repository.DeleteCascade. Todo el
// rastro del revendedor se elimina en una única transacción; sus equipos
// consignados vuelven a estar disponibles.
func (r *ResellerRepository) DeleteCascade(ctx context.Context, id string) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		var userID string
		err := tx.QueryRow(ctx,
			"SELECT user_id FROM resellers WHERE id = $1", id).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return reseller.ErrNotFound
			}
			return fmt.Errorf("error al buscar revendedor: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE devices SET reseller_id = NULL, state = $1, updated_at = $2
			WHERE reseller_id = $3 AND state = $4`,
			device.StateAvailable, time.Now().UTC(), id, device.StateConsigned)
		if err != nil {
			return fmt.Errorf("error al liberar equipos: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE devices SET reseller_id = NULL, updated_at = $1
			WHERE reseller_id = $2`,
			time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("error al desvincular equipos: %w", err)
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM consignment_movements WHERE consignment_id IN (
				SELECT id FROM consignments WHERE reseller_id = $1
			)`, id)
		if err != nil {
			return fmt.Errorf("error al eliminar movimientos de consignación: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM consignments WHERE reseller_id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar consignaciones: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM debt_ledger_entries WHERE reseller_id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar movimientos de deuda: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM payments WHERE reseller_id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar pagos: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM stock_requests WHERE reseller_id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar pedidos de stock: %w", err)
		}

		_, err = tx.Exec(ctx,
			`DELETE FROM chat_messages WHERE conversation_id IN (
				SELECT id FROM chat_conversations WHERE reseller_id = $1
			)`, id)
		if err != nil {
			return fmt.Errorf("error al eliminar mensajes: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM chat_conversations WHERE reseller_id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar conversaciones: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM notifications WHERE user_id = $1", userID); err != nil {
			return fmt.Errorf("error al eliminar notificaciones: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM resellers WHERE id = $1", id); err != nil {
			return fmt.Errorf("error al eliminar revendedor: %w", err)
		}

		if _, err = tx.Exec(ctx,
			"DELETE FROM users WHERE id = $1", userID); err != nil {
			return fmt.Errorf("error al eliminar usuario: %w", err)
		}

		return nil
	})
}

// Exists implementa reseller.Repository.Exists
func (r *ResellerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM resellers WHERE id = $1)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error al verificar existencia del revendedor: %w", err)
	}

	return exists, nil
}

// Count implementa reseller.Repository.Count
func (r *ResellerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM resellers").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error al contar revendedores: %w", err)
	}

	return count, nil
}

// scanReseller lee un revendedor de una fila única
func scanReseller(row pgx.Row) (*reseller.Reseller, error) {
	var res reseller.Reseller
	err := row.Scan(&res.ID, &res.UserID, &res.Name, &res.Segment,
		&res.Company, &res.Phone, &res.Address, &res.Latitude,
		&res.Longitude, &res.CreatedAt, &res.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reseller.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar revendedor: %w", err)
	}

	return &res, nil
}
