package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/movilstock/backoffice/internal/domain/cashbox"
	"github.com/movilstock/backoffice/internal/domain/consignment"
	"github.com/movilstock/backoffice/internal/domain/device"
	"github.com/movilstock/backoffice/internal/domain/ledger"
	"github.com/movilstock/backoffice/internal/domain/payment"
	"github.com/movilstock/backoffice/internal/domain/reseller"
	"github.com/movilstock/backoffice/internal/domain/user"
)

// Implementaciones en memoria de los repositorios, usadas por las pruebas
// de servicios. Respetan los mismos contratos que las implementaciones
// sobre Postgres: actualizaciones condicionales para cierres y revisiones,
// y escrituras compuestas aplicadas como una unidad bajo el mismo lock.

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

type memLedgerRepo struct {
	mu      sync.Mutex
	entries []*ledger.Entry
}

func (r *memLedgerRepo) Add(_ context.Context, e *ledger.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *memLedgerRepo) FindByReseller(_ context.Context, resellerID string, limit, offset int) ([]*ledger.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ledger.Entry
	for _, e := range r.entries {
		if e.ResellerID == resellerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) BalanceCents(_ context.Context, resellerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var balance int64
	for _, e := range r.entries {
		if e.ResellerID == resellerID {
			balance += e.Signed()
		}
	}
	return balance, nil
}

func (r *memLedgerRepo) CountByReseller(_ context.Context, resellerID string) (int, error) {
	entries, _ := r.FindByReseller(context.Background(), resellerID, 0, 0)
	return len(entries), nil
}

type memDeviceRepo struct {
	mu      sync.Mutex
	devices map[string]*device.Device
}

func newMemDeviceRepo() *memDeviceRepo {
	return &memDeviceRepo{devices: map[string]*device.Device{}}
}

func (r *memDeviceRepo) Create(_ context.Context, d *device.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[d.ID] = d
	return nil
}

func (r *memDeviceRepo) FindByID(_ context.Context, id string) (*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[id]
	if !ok {
		return nil, device.ErrNotFound
	}
	return d, nil
}

func (r *memDeviceRepo) FindByIMEI(_ context.Context, imei string) (*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.devices {
		if d.IMEI == imei {
			return d, nil
		}
	}
	return nil, device.ErrNotFound
}

func (r *memDeviceRepo) List(_ context.Context, limit, offset int) ([]*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*device.Device
	for _, d := range r.devices {
		out = append(out, d)
	}
	return out, nil
}

func (r *memDeviceRepo) FindByState(_ context.Context, state string, limit, offset int) ([]*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*device.Device
	for _, d := range r.devices {
		if d.State == state {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDeviceRepo) FindByReseller(_ context.Context, resellerID string, limit, offset int) ([]*device.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*device.Device
	for _, d := range r.devices {
		if d.ResellerID != nil && *d.ResellerID == resellerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDeviceRepo) Update(_ context.Context, d *device.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[d.ID]; !ok {
		return device.ErrNotFound
	}
	r.devices[d.ID] = d
	return nil
}

func (r *memDeviceRepo) UpdateState(_ context.Context, id, state string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.devices[id]
	if !ok {
		return device.ErrNotFound
	}
	d.State = state
	return nil
}

func (r *memDeviceRepo) ExistsByIMEI(_ context.Context, imei string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.devices {
		if d.IMEI == imei {
			return true, nil
		}
	}
	return false, nil
}

func (r *memDeviceRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devices), nil
}

type memStatusRepo struct {
	mu       sync.Mutex
	statuses map[string]*device.Status
}

func newMemStatusRepo() *memStatusRepo {
	repo := &memStatusRepo{statuses: map[string]*device.Status{}}
	for i, key := range []string{device.StateAvailable, device.StateConsigned, device.StateSold, device.StateReturned} {
		st, _ := device.NewStatus(key, key, "", false, false, i)
		repo.statuses[key] = st
	}
	return repo
}

func (r *memStatusRepo) Create(_ context.Context, s *device.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[s.Key] = s
	return nil
}

func (r *memStatusRepo) FindByKey(_ context.Context, key string) (*device.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statuses[key], nil
}

func (r *memStatusRepo) List(_ context.Context) ([]*device.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*device.Status
	for _, s := range r.statuses {
		out = append(out, s)
	}
	return out, nil
}

func (r *memStatusRepo) Update(_ context.Context, s *device.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[s.Key] = s
	return nil
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*user.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *memUserRepo) FindByRole(_ context.Context, role user.Role) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*user.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memResellerRepo struct {
	mu        sync.Mutex
	resellers map[string]*reseller.Reseller
	users     *memUserRepo
}

func newMemResellerRepo(users *memUserRepo) *memResellerRepo {
	return &memResellerRepo{resellers: map[string]*reseller.Reseller{}, users: users}
}

func (r *memResellerRepo) CreateWithUser(ctx context.Context, u *user.User, res *reseller.Reseller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u != nil {
		if err := r.users.Create(ctx, u); err != nil {
			return err
		}
	}
	r.resellers[res.ID] = res
	return nil
}

func (r *memResellerRepo) FindByID(_ context.Context, id string) (*reseller.Reseller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resellers[id]
	if !ok {
		return nil, reseller.ErrNotFound
	}
	return res, nil
}

func (r *memResellerRepo) FindByUserID(_ context.Context, userID string) (*reseller.Reseller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.resellers {
		if res.UserID == userID {
			return res, nil
		}
	}
	return nil, reseller.ErrNotFound
}

func (r *memResellerRepo) List(_ context.Context, limit, offset int) ([]*reseller.Reseller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*reseller.Reseller
	for _, res := range r.resellers {
		out = append(out, res)
	}
	return out, nil
}

func (r *memResellerRepo) Update(_ context.Context, res *reseller.Reseller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resellers[res.ID]; !ok {
		return reseller.ErrNotFound
	}
	r.resellers[res.ID] = res
	return nil
}

func (r *memResellerRepo) DeleteCascade(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resellers[id]
	if !ok {
		return reseller.ErrNotFound
	}
	delete(r.resellers, id)
	return r.users.Delete(ctx, res.UserID)
}

func (r *memResellerRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.resellers[id]
	return ok, nil
}

func (r *memResellerRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resellers), nil
}

// memConsignmentRepo aplica las escrituras compuestas bajo un único lock,
// simulando la transacción del repositorio real
type memConsignmentRepo struct {
	mu           sync.Mutex
	consignments map[string]*consignment.Consignment
	devices      *memDeviceRepo
	ledger       *memLedgerRepo
}

func newMemConsignmentRepo(devices *memDeviceRepo, ledgerRepo *memLedgerRepo) *memConsignmentRepo {
	return &memConsignmentRepo{
		consignments: map[string]*consignment.Consignment{},
		devices:      devices,
		ledger:       ledgerRepo,
	}
}

func (r *memConsignmentRepo) CreateActive(ctx context.Context, c *consignment.Consignment, m *consignment.Movement, debt *ledger.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.Movements = []*consignment.Movement{m}
	r.consignments[c.ID] = &stored

	dev, err := r.devices.FindByID(ctx, c.DeviceID)
	if err != nil {
		return err
	}
	dev.State = device.StateConsigned
	resellerID := c.ResellerID
	dev.ResellerID = &resellerID

	if debt != nil {
		return r.ledger.Add(ctx, debt)
	}
	return nil
}

func (r *memConsignmentRepo) CloseAsSold(ctx context.Context, id string, soldAt time.Time, m *consignment.Movement, saleDebt *ledger.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.consignments[id]
	if !ok {
		return consignment.ErrNotFound
	}
	if c.Status != consignment.StatusActive {
		return consignment.ErrNotActive
	}

	c.Status = consignment.StatusSold
	c.SoldAt = &soldAt
	c.Movements = append(c.Movements, m)

	if err := r.devices.UpdateState(ctx, c.DeviceID, device.StateSold); err != nil {
		return err
	}
	return r.ledger.Add(ctx, saleDebt)
}

func (r *memConsignmentRepo) FindByID(_ context.Context, id string) (*consignment.Consignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.consignments[id]
	if !ok {
		return nil, consignment.ErrNotFound
	}
	return c, nil
}

func (r *memConsignmentRepo) FindActiveByDevice(_ context.Context, deviceID string) (*consignment.Consignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.consignments {
		if c.DeviceID == deviceID && c.Status == consignment.StatusActive {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memConsignmentRepo) FindByReseller(_ context.Context, resellerID string, limit, offset int) ([]*consignment.Consignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*consignment.Consignment
	for _, c := range r.consignments {
		if c.ResellerID == resellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memConsignmentRepo) List(_ context.Context, limit, offset int) ([]*consignment.Consignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*consignment.Consignment
	for _, c := range r.consignments {
		out = append(out, c)
	}
	return out, nil
}

type memCashBoxRepo struct {
	mu        sync.Mutex
	boxes     map[string]*cashbox.CashBox
	movements []*cashbox.Movement
}

func newMemCashBoxRepo() *memCashBoxRepo {
	return &memCashBoxRepo{boxes: map[string]*cashbox.CashBox{}}
}

func (r *memCashBoxRepo) Create(_ context.Context, b *cashbox.CashBox) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boxes[b.ID] = b
	return nil
}

func (r *memCashBoxRepo) FindByID(_ context.Context, id string) (*cashbox.CashBox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boxes[id]
	if !ok {
		return nil, cashbox.ErrNotFound
	}
	return b, nil
}

func (r *memCashBoxRepo) List(_ context.Context) ([]*cashbox.CashBox, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*cashbox.CashBox
	for _, b := range r.boxes {
		out = append(out, b)
	}
	return out, nil
}

func (r *memCashBoxRepo) AddMovement(_ context.Context, m *cashbox.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.AmountCents <= 0 {
		return cashbox.ErrInvalidAmount
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *memCashBoxRepo) FindMovements(_ context.Context, cashBoxID string, limit, offset int) ([]*cashbox.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*cashbox.Movement
	for _, m := range r.movements {
		if m.CashBoxID == cashBoxID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memCashBoxRepo) BalanceCents(_ context.Context, cashBoxID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var balance int64
	for _, m := range r.movements {
		if m.CashBoxID == cashBoxID {
			balance += m.Signed()
		}
	}
	return balance, nil
}

func (r *memCashBoxRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.boxes[id]
	return ok, nil
}

// memPaymentRepo aplica la revisión con el mismo contrato condicional que
// la implementación real: solo un estado pendiente admite cambio
type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*payment.Payment
	ledger   *memLedgerRepo
	cashBox  *memCashBoxRepo
}

func newMemPaymentRepo(ledgerRepo *memLedgerRepo, cashBoxRepo *memCashBoxRepo) *memPaymentRepo {
	return &memPaymentRepo{
		payments: map[string]*payment.Payment{},
		ledger:   ledgerRepo,
		cashBox:  cashBoxRepo,
	}
}

func (r *memPaymentRepo) Create(_ context.Context, p *payment.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = p
	return nil
}

func (r *memPaymentRepo) FindByID(_ context.Context, id string) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, payment.ErrNotFound
	}
	return p, nil
}

func (r *memPaymentRepo) Confirm(ctx context.Context, id, reviewedByID string, reviewedAt time.Time, cashBoxID *string, credit *ledger.Entry, boxMovement *cashbox.Movement) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, payment.ErrNotFound
	}
	if !p.IsPending() {
		return nil, payment.ErrAlreadyProcessed
	}

	p.Status = payment.StatusConfirmed
	p.ReviewedByID = &reviewedByID
	p.ReviewedAt = &reviewedAt
	p.CashBoxID = cashBoxID

	if err := r.ledger.Add(ctx, credit); err != nil {
		return nil, err
	}
	if boxMovement != nil {
		if err := r.cashBox.AddMovement(ctx, boxMovement); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *memPaymentRepo) Reject(_ context.Context, id, reviewedByID string, reviewedAt time.Time) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, payment.ErrNotFound
	}
	if !p.IsPending() {
		return nil, payment.ErrAlreadyProcessed
	}

	p.Status = payment.StatusRejected
	p.ReviewedByID = &reviewedByID
	p.ReviewedAt = &reviewedAt
	return p, nil
}

func (r *memPaymentRepo) FindByReseller(_ context.Context, resellerID string, limit, offset int) ([]*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.Payment
	for _, p := range r.payments {
		if p.ResellerID == resellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) FindByStatus(_ context.Context, status payment.Status, limit, offset int) ([]*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.Payment
	for _, p := range r.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) List(_ context.Context, limit, offset int) ([]*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*payment.Payment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, nil
}

// testEnv arma los repositorios en memoria con un revendedor y un equipo
// precargados
type testEnv struct {
	ledgerRepo      *memLedgerRepo
	deviceRepo      *memDeviceRepo
	statusRepo      *memStatusRepo
	userRepo        *memUserRepo
	resellerRepo    *memResellerRepo
	consignmentRepo *memConsignmentRepo
	cashBoxRepo     *memCashBoxRepo
	paymentRepo     *memPaymentRepo
	notifier        *Notifier

	reseller *reseller.Reseller
	device   *device.Device
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ledgerRepo := &memLedgerRepo{}
	deviceRepo := newMemDeviceRepo()
	cashBoxRepo := newMemCashBoxRepo()
	userRepo := newMemUserRepo()

	env := &testEnv{
		ledgerRepo:      ledgerRepo,
		deviceRepo:      deviceRepo,
		statusRepo:      newMemStatusRepo(),
		userRepo:        userRepo,
		resellerRepo:    newMemResellerRepo(userRepo),
		consignmentRepo: newMemConsignmentRepo(deviceRepo, ledgerRepo),
		cashBoxRepo:     cashBoxRepo,
		paymentRepo:     newMemPaymentRepo(ledgerRepo, cashBoxRepo),
		notifier:        NewNotifier(nil, nil, nil, nil, "", noopLogger{}),
	}

	res, err := reseller.NewReseller("user-reseller", "Juan Pérez")
	if err != nil {
		t.Fatalf("error al crear revendedor de prueba: %v", err)
	}
	if err := env.resellerRepo.CreateWithUser(context.Background(), nil, res); err != nil {
		t.Fatalf("error al guardar revendedor de prueba: %v", err)
	}
	env.reseller = res

	dev, err := device.NewDevice("356938035643809", "iPhone 14", device.ConditionSealed)
	if err != nil {
		t.Fatalf("error al crear equipo de prueba: %v", err)
	}
	if err := env.deviceRepo.Create(context.Background(), dev); err != nil {
		t.Fatalf("error al guardar equipo de prueba: %v", err)
	}
	env.device = dev

	return env
}

func (e *testEnv) consignmentService() *ConsignmentService {
	return NewConsignmentService(e.consignmentRepo, e.deviceRepo, e.resellerRepo, e.notifier, noopLogger{})
}

func (e *testEnv) paymentService() *PaymentService {
	return NewPaymentService(e.paymentRepo, e.resellerRepo, e.cashBoxRepo, e.notifier, noopLogger{})
}

func (e *testEnv) ledgerService() *LedgerService {
	return NewLedgerService(e.ledgerRepo, e.resellerRepo, e.notifier, noopLogger{})
}

func (e *testEnv) deviceService() *DeviceService {
	return NewDeviceService(e.deviceRepo, e.statusRepo, e.notifier, noopLogger{})
}

func (e *testEnv) cashBoxService() *CashBoxService {
	return NewCashBoxService(e.cashBoxRepo, e.notifier, noopLogger{})
}

func (e *testEnv) resellerService() *ResellerService {
	return NewResellerService(e.resellerRepo, e.userRepo, e.notifier, noopLogger{})
}
