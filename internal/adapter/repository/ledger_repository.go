package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/ledger"
)

// LedgerRepository implementa la interfaz ledger.Repository
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository crea una nueva instancia de LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &LedgerRepository{
		db: db,
	}
}

// Add implementa ledger.Repository.Add
func (r *LedgerRepository) Add(ctx context.Context, e *ledger.Entry) error {
	if e.AmountCents <= 0 {
		return ledger.ErrInvalidAmount
	}

	_, err := r.db.Exec(ctx,
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

// FindByReseller implementa ledger.Repository.FindByReseller
func (r *LedgerRepository) FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*ledger.Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reseller_id, amount_cents, entry_type, reason,
			COALESCE(reference_type, ''), COALESCE(reference_id, ''), created_at
		FROM debt_ledger_entries
		WHERE reseller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		resellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar movimientos de deuda: %w", err)
	}
	defer rows.Close()

	return scanLedgerRows(rows)
}

// BalanceCents implementa ledger.Repository.BalanceCents. El saldo se
// calcula siempre en fresco con un agregado: débitos suman, créditos
// restan. Un revendedor sin movimientos tiene saldo cero.
func (r *LedgerRepository) BalanceCents(ctx context.Context, resellerID string) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(
			CASE WHEN entry_type = 'debit' THEN amount_cents ELSE -amount_cents END
		), 0)
		FROM debt_ledger_entries
		WHERE reseller_id = $1`,
		resellerID).Scan(&balance)

	if err != nil {
		return 0, fmt.Errorf("error al calcular saldo: %w", err)
	}

	return balance, nil
}

// CountByReseller implementa ledger.Repository.CountByReseller
func (r *LedgerRepository) CountByReseller(ctx context.Context, resellerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM debt_ledger_entries WHERE reseller_id = $1",
		resellerID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error al contar movimientos: %w", err)
	}

	return count, nil
}

// scanLedgerRows procesa resultados de consultas con múltiples movimientos
func scanLedgerRows(rows pgx.Rows) ([]*ledger.Entry, error) {
	entries := make([]*ledger.Entry, 0)

	for rows.Next() {
		var e ledger.Entry
		err := rows.Scan(&e.ID, &e.ResellerID, &e.AmountCents, &e.Type,
			&e.Reason, &e.ReferenceType, &e.ReferenceID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer movimiento: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return entries, nil
}

// nullIfEmpty convierte cadenas vacías en NULL para columnas opcionales
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
