package service

import (
	"context"

	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/pkg/logger"
)

// LedgerService expone el libro de deuda: ajustes manuales, listado y
// saldo. El saldo se calcula siempre en fresco plegando los movimientos;
// no hay caché que invalidar.
type LedgerService struct {
	ledgerRepo   ledger.Repository
	resellerRepo reseller.Repository
	notifier     *Notifier
	logger       logger.Logger
}

// NewLedgerService crea una nueva instancia de LedgerService
func NewLedgerService(
	ledgerRepo ledger.Repository,
	resellerRepo reseller.Repository,
	notifier *Notifier,
	logger logger.Logger,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:   ledgerRepo,
		resellerRepo: resellerRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// AddManualEntry registra un ajuste manual de deuda para un revendedor
func (s *LedgerService) AddManualEntry(ctx context.Context, resellerID string, amountCents int64, entryType ledger.EntryType, reason, actorID string) (*ledger.Entry, error) {
	if _, err := s.resellerRepo.FindByID(ctx, resellerID); err != nil {
		return nil, err
	}

	entry, err := ledger.NewEntry(resellerID, amountCents, entryType, reason, ledger.ReferenceManual, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	s.notifier.Audit(ctx, &actorID, "ledger.manual_entry", "reseller", resellerID, map[string]any{
		"amount_cents": amountCents,
		"entry_type":   string(entryType),
		"reason":       reason,
	})

	return entry, nil
}

// BalanceCents devuelve el saldo actual de un revendedor
func (s *LedgerService) BalanceCents(ctx context.Context, resellerID string) (int64, error) {
	if _, err := s.resellerRepo.FindByID(ctx, resellerID); err != nil {
		return 0, err
	}
	return s.ledgerRepo.BalanceCents(ctx, resellerID)
}

// Entries lista los movimientos de un revendedor
func (s *LedgerService) Entries(ctx context.Context, resellerID string, limit, offset int) ([]*ledger.Entry, error) {
	if _, err := s.resellerRepo.FindByID(ctx, resellerID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindByReseller(ctx, resellerID, limit, offset)
}
