package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/payment"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
)

// PaymentRepository implementa la interfaz payment.Repository
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository crea una nueva instancia de PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) payment.Repository {
	return &PaymentRepository{
		db: db,
	}
}

const paymentColumns = `id, reseller_id, amount_cents, currency,
	COALESCE(note, ''), COALESCE(receipt_key, ''), reported_by_id, status,
	reviewed_by_id, reviewed_at, cash_box_id, created_at`

// Create implementa payment.Repository.Create
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (
			id, reseller_id, amount_cents, currency, note, receipt_key,
			reported_by_id, status, cash_box_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.ResellerID, p.AmountCents, p.Currency, nullIfEmpty(p.Note),
		nullIfEmpty(p.ReceiptKey), p.ReportedByID, p.Status, p.CashBoxID,
		p.CreatedAt)

	if err != nil {
		return fmt.Errorf("error al crear pago: %w", err)
	}

	return nil
}

// FindByID implementa payment.Repository.FindByID
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)

	return scanPayment(row)
}

// Confirm implementa payment.Repository.Confirm. El cambio de estado es
// una actualización condicional: solo afecta filas si el pago sigue
// pendiente, de modo que dos confirmaciones concurrentes no puedan
// acreditar el libro dos veces. El crédito y el movimiento de caja se
// escriben en la misma transacción.
func (r *PaymentRepository) Confirm(ctx context.Context, id, reviewedByID string, reviewedAt time.Time, cashBoxID *string, credit *ledger.Entry, boxMovement *cashbox.Movement) (*payment.Payment, error) {
	var confirmed *payment.Payment

	err := database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			`UPDATE payments SET
				status = $1, reviewed_by_id = $2, reviewed_at = $3,
				cash_box_id = COALESCE($4, cash_box_id)
			WHERE id = $5 AND status = $6`,
			payment.StatusConfirmed, reviewedByID, reviewedAt, cashBoxID,
			id, payment.StatusReportedPending)
		if err != nil {
			return fmt.Errorf("error al confirmar pago: %w", err)
		}

		if result.RowsAffected() == 0 {
			// Distinguir pago inexistente de pago ya procesado
			var exists bool
			if err := tx.QueryRow(ctx,
				"SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)",
				id).Scan(&exists); err != nil {
				return fmt.Errorf("error al verificar pago: %w", err)
			}
			if !exists {
				return payment.ErrNotFound
			}
			return payment.ErrAlreadyProcessed
		}

		if err := insertLedgerEntry(ctx, tx, credit); err != nil {
			return err
		}

		if boxMovement != nil {
			if err := insertCashMovement(ctx, tx, boxMovement); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	confirmed, err = r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return confirmed, nil
}

// Reject implementa payment.Repository.Reject con la misma guarda
// condicional que Confirm, sin efectos sobre el libro ni la caja
func (r *PaymentRepository) Reject(ctx context.Context, id, reviewedByID string, reviewedAt time.Time) (*payment.Payment, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE payments SET status = $1, reviewed_by_id = $2, reviewed_at = $3
		WHERE id = $4 AND status = $5`,
		payment.StatusRejected, reviewedByID, reviewedAt,
		id, payment.StatusReportedPending)
	if err != nil {
		return nil, fmt.Errorf("error al rechazar pago: %w", err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)",
			id).Scan(&exists); err != nil {
			return nil, fmt.Errorf("error al verificar pago: %w", err)
		}
		if !exists {
			return nil, payment.ErrNotFound
		}
		return nil, payment.ErrAlreadyProcessed
	}

	return r.FindByID(ctx, id)
}

// FindByReseller implementa payment.Repository.FindByReseller
func (r *PaymentRepository) FindByReseller(ctx context.Context, resellerID string, limit, offset int) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		WHERE reseller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		resellerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar pagos: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// FindByStatus implementa payment.Repository.FindByStatus
func (r *PaymentRepository) FindByStatus(ctx context.Context, status payment.Status, limit, offset int) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar pagos: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// List implementa payment.Repository.List
func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]*payment.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar pagos: %w", err)
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// insertCashMovement inserta un movimiento de caja dentro de una
// transacción
func insertCashMovement(ctx context.Context, tx pgx.Tx, m *cashbox.Movement) error {
	_, err := tx.Exec(ctx,
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

// scanPayment lee un pago de una fila única
func scanPayment(row pgx.Row) (*payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(&p.ID, &p.ResellerID, &p.AmountCents, &p.Currency,
		&p.Note, &p.ReceiptKey, &p.ReportedByID, &p.Status, &p.ReviewedByID,
		&p.ReviewedAt, &p.CashBoxID, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrNotFound
		}
		return nil, fmt.Errorf("error al buscar pago: %w", err)
	}

	return &p, nil
}

// scanPaymentRows procesa resultados con múltiples pagos
func scanPaymentRows(rows pgx.Rows) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0)

	for rows.Next() {
		var p payment.Payment
		err := rows.Scan(&p.ID, &p.ResellerID, &p.AmountCents, &p.Currency,
			&p.Note, &p.ReceiptKey, &p.ReportedByID, &p.Status,
			&p.ReviewedByID, &p.ReviewedAt, &p.CashBoxID, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer pago: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return payments, nil
}
