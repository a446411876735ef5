package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/payment"
)

func TestReport(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  30000,
		Currency:     "ARS",
		Note:         "pago parcial",
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	assert.Equal(t, payment.StatusReportedPending, p.Status)
	assert.Equal(t, int64(30000), p.AmountCents)

	// Informar un pago no toca el libro de deuda
	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestReportValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	_, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  0,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	_, err = svc.Report(ctx, ReportInput{
		ResellerID:   "no-existe",
		AmountCents:  1000,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	assert.Error(t, err)

	boxID := "caja-inexistente"
	_, err = svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  1000,
		Currency:     "ARS",
		CashBoxID:    &boxID,
		ReportedByID: env.reseller.UserID,
	})
	assert.ErrorIs(t, err, cashbox.ErrNotFound)
}

func TestConfirm(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	// Deuda previa de 80000
	debt, err := ledger.NewEntry(env.reseller.ID, 80000, ledger.EntryDebit, "deuda inicial", ledger.ReferenceManual, "admin-1")
	require.NoError(t, err)
	require.NoError(t, env.ledgerRepo.Add(ctx, debt))

	box, err := cashbox.NewCashBox("Caja principal", "ARS", cashbox.TypeGeneral)
	require.NoError(t, err)
	require.NoError(t, env.cashBoxRepo.Create(ctx, box))

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  30000,
		Currency:     "ARS",
		CashBoxID:    &box.ID,
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(ctx, p.ID, "admin-1", nil)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ReviewedByID)
	assert.Equal(t, "admin-1", *confirmed.ReviewedByID)
	require.NotNil(t, confirmed.ReviewedAt)

	// El crédito baja la deuda
	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), balance)

	// Y el dinero entró en la caja guardada en el pago
	boxBalance, err := env.cashBoxRepo.BalanceCents(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), boxBalance)

	movements, err := env.cashBoxRepo.FindMovements(ctx, box.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, ledger.ReferencePayment, movements[0].ReferenceType)
	assert.Equal(t, p.ID, movements[0].ReferenceID)
}

func TestConfirmCashBoxOverride(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	reported, err := cashbox.NewCashBox("Caja informada", "ARS", cashbox.TypeGeneral)
	require.NoError(t, err)
	require.NoError(t, env.cashBoxRepo.Create(ctx, reported))

	chosen, err := cashbox.NewCashBox("Caja elegida", "ARS", cashbox.TypeGeneral)
	require.NoError(t, err)
	require.NoError(t, env.cashBoxRepo.Create(ctx, chosen))

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  10000,
		Currency:     "ARS",
		CashBoxID:    &reported.ID,
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	// La caja elegida al confirmar tiene prioridad sobre la informada
	_, err = svc.Confirm(ctx, p.ID, "admin-1", &chosen.ID)
	require.NoError(t, err)

	chosenBalance, err := env.cashBoxRepo.BalanceCents(ctx, chosen.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), chosenBalance)

	reportedBalance, err := env.cashBoxRepo.BalanceCents(ctx, reported.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reportedBalance)
}

func TestConfirmWithoutCashBox(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  5000,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	confirmed, err := svc.Confirm(ctx, p.ID, "admin-1", nil)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusConfirmed, confirmed.Status)

	// Sin caja resuelta no se registra movimiento de caja alguno
	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-5000), balance)
}

func TestReject(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  30000,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, p.ID, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, payment.StatusRejected, rejected.Status)

	// El rechazo no toca el libro de deuda
	entries, err := env.ledgerRepo.FindByReseller(ctx, env.reseller.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRejectAfterConfirm(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  30000,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, p.ID, "admin-1", nil)
	require.NoError(t, err)

	// Reintentar la revisión es un error, nunca se ignora en silencio
	_, err = svc.Reject(ctx, p.ID, "admin-1")
	assert.ErrorIs(t, err, payment.ErrAlreadyProcessed)

	_, err = svc.Confirm(ctx, p.ID, "admin-1", nil)
	assert.ErrorIs(t, err, payment.ErrAlreadyProcessed)
}

func TestConcurrentConfirm(t *testing.T) {
	env := newTestEnv(t)
	svc := env.paymentService()
	ctx := context.Background()

	p, err := svc.Report(ctx, ReportInput{
		ResellerID:   env.reseller.ID,
		AmountCents:  30000,
		Currency:     "ARS",
		ReportedByID: env.reseller.UserID,
	})
	require.NoError(t, err)

	const reviewers = 8
	var wg sync.WaitGroup
	results := make(chan error, reviewers)

	for i := 0; i < reviewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Confirm(ctx, p.ID, "admin-1", nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, alreadyProcessed int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, payment.ErrAlreadyProcessed)
			alreadyProcessed++
		}
	}

	// Exactamente una confirmación gana; la deuda se acredita una sola vez
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, reviewers-1, alreadyProcessed)

	balance, err := env.ledgerRepo.BalanceCents(ctx, env.reseller.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-30000), balance)
}
