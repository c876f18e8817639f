package order

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pedelocal/pedelocal-order-service/internal/domain"
	orderdto "github.com/pedelocal/pedelocal-order-service/internal/usecase/dto/order"
)

// stubOrderRepo keeps orders in memory and performs the same conditional
// status write as the real repository.
type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newStubOrderRepo(orders ...*domain.Order) *stubOrderRepo {
	m := make(map[string]*domain.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &stubOrderRepo{orders: m}
}

func (s *stubOrderRepo) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *stubOrderRepo) UpdateOrderStatus(orderID string, oldStatus, newStatus domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != oldStatus {
		return domain.ErrStaleState
	}
	o.Status = newStatus
	return nil
}

func (s *stubOrderRepo) GetOrdersByStoreID(string, domain.OrderFilters, int64, int64, string, string) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepo) GetOrdersByCustomerID(string, int64, int64) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (s *stubOrderRepo) GetDeliveredOrders(string, time.Time, time.Time) ([]*domain.Order, error) {
	return nil, nil
}

type stubAuditSink struct {
	mu      sync.Mutex
	entries []*domain.AuditEntry
	err     error
}

func (s *stubAuditSink) Append(entry *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func testOrder(status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:          "order-1",
		StoreID:     "store-a",
		CustomerID:  "cust-1",
		Items:       []domain.OrderItem{{ProductID: "p1", Name: "Marmita", UnitPrice: 2500, Quantity: 2}},
		Subtotal:    5000,
		DeliveryFee: 700,
		Total:       5700,
		Status:      status,
		CreatedAt:   time.Now().Add(-10 * time.Minute),
	}
}

var lojaA = domain.Actor{ID: "owner-a", Role: domain.RoleLoja, StoreID: "store-a"}

func TestTransitionHappyPath(t *testing.T) {
	repo := newStubOrderRepo(testOrder(domain.StatusPendente))
	audit := &stubAuditSink{}
	uc := NewDefaultOrderUsecase(repo, audit, nil, nil)

	path := []domain.OrderStatus{
		domain.StatusAceito, domain.StatusPreparando, domain.StatusPronto,
		domain.StatusEmEntrega, domain.StatusEntregue,
	}
	for _, target := range path {
		got, err := uc.Transition(lojaA, "order-1", target)
		if err != nil {
			t.Fatalf("transition to %s: %v", target, err)
		}
		if got.Status != target {
			t.Fatalf("status = %s, want %s", got.Status, target)
		}
	}

	if len(audit.entries) != len(path) {
		t.Errorf("audit entries = %d, want %d", len(audit.entries), len(path))
	}
	last := audit.entries[len(audit.entries)-1]
	if last.BeforeValue != string(domain.StatusEmEntrega) || last.AfterValue != string(domain.StatusEntregue) {
		t.Errorf("audit before/after = %s/%s", last.BeforeValue, last.AfterValue)
	}
}

func TestTransitionRejectsSkip(t *testing.T) {
	repo := newStubOrderRepo(testOrder(domain.StatusPendente))
	uc := NewDefaultOrderUsecase(repo, nil, nil, nil)

	_, err := uc.Transition(lojaA, "order-1", domain.StatusPreparando)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	stored, _ := repo.GetOrderByID("order-1")
	if stored.Status != domain.StatusPendente {
		t.Errorf("order was mutated on rejected transition: %s", stored.Status)
	}
}

func TestTransitionRejectsTerminal(t *testing.T) {
	repo := newStubOrderRepo(testOrder(domain.StatusEntregue))
	uc := NewDefaultOrderUsecase(repo, nil, nil, nil)

	if _, err := uc.Transition(lojaA, "order-1", domain.StatusCancelado); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionAuthorization(t *testing.T) {
	targets := []domain.OrderStatus{
		domain.StatusAceito, domain.StatusPreparando, domain.StatusPronto,
		domain.StatusEmEntrega, domain.StatusEntregue, domain.StatusCancelado,
	}

	// Customers never have write authority over status, even for targets
	// that would otherwise be legal.
	for _, target := range targets {
		repo := newStubOrderRepo(testOrder(domain.StatusPendente))
		uc := NewDefaultOrderUsecase(repo, nil, nil, nil)
		cliente := domain.Actor{ID: "cust-1", Role: domain.RoleCliente}
		if _, err := uc.Transition(cliente, "order-1", target); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("cliente -> %s: err = %v, want ErrForbidden", target, err)
		}
	}

	// Ownership mismatch fails before transition legality is considered.
	repo := newStubOrderRepo(testOrder(domain.StatusPendente))
	uc := NewDefaultOrderUsecase(repo, nil, nil, nil)
	lojaB := domain.Actor{ID: "owner-b", Role: domain.RoleLoja, StoreID: "store-b"}
	if _, err := uc.Transition(lojaB, "order-1", domain.StatusEntregue); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("foreign loja: err = %v, want ErrForbidden", err)
	}

	// Admin may transition any store's order.
	admin := domain.Actor{ID: "adm", Role: domain.RoleAdmin}
	if _, err := uc.Transition(admin, "order-1", domain.StatusAceito); err != nil {
		t.Errorf("admin transition: %v", err)
	}
}

func TestTransitionNotFound(t *testing.T) {
	uc := NewDefaultOrderUsecase(newStubOrderRepo(), nil, nil, nil)
	if _, err := uc.Transition(lojaA, "missing", domain.StatusAceito); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestConcurrentTransitionsExactlyOneWins(t *testing.T) {
	repo := newStubOrderRepo(testOrder(domain.StatusPendente))
	uc := NewDefaultOrderUsecase(repo, &stubAuditSink{}, nil, nil)

	start := make(chan struct{})
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			_, err := uc.Transition(lojaA, "order-1", domain.StatusAceito)
			results <- err
		}()
	}
	close(start)

	var ok, stale int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrStaleState) || errors.Is(err, domain.ErrInvalidTransition):
			// The loser either lost the conditional write or re-read the
			// already-updated status; both signal a retry against fresh data.
			stale++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || stale != 1 {
		t.Fatalf("winners = %d, losers = %d, want 1 and 1", ok, stale)
	}

	stored, _ := repo.GetOrderByID("order-1")
	if stored.Status != domain.StatusAceito {
		t.Errorf("final status = %s, want aceito", stored.Status)
	}
}

func TestTransitionSurvivesAuditFailure(t *testing.T) {
	repo := newStubOrderRepo(testOrder(domain.StatusPendente))
	audit := &stubAuditSink{err: errors.New("audit store down")}
	uc := NewDefaultOrderUsecase(repo, audit, nil, nil)

	got, err := uc.Transition(lojaA, "order-1", domain.StatusAceito)
	if err != nil {
		t.Fatalf("transition must not fail on audit error: %v", err)
	}
	if got.Status != domain.StatusAceito {
		t.Errorf("status = %s, want aceito", got.Status)
	}
}

func TestCreateOrderDerivesTotals(t *testing.T) {
	repo := newStubOrderRepo()
	uc := NewDefaultOrderUsecase(repo, &stubAuditSink{}, nil, nil)

	cliente := domain.Actor{ID: "cust-1", Role: domain.RoleCliente}
	order, err := uc.CreateOrder(cliente, &orderdto.CreateOrderInput{
		StoreID:    "store-a",
		CustomerID: "cust-1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Marmita", UnitPrice: 2500, Quantity: 2},
			{ProductID: "p2", Name: "Suco", UnitPrice: 800, Quantity: 1},
		},
		DeliveryFee: 700,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Status != domain.StatusPendente {
		t.Errorf("status = %s, want pendente", order.Status)
	}
	if order.Subtotal != 5800 || order.Total != 6500 {
		t.Errorf("subtotal/total = %d/%d, want 5800/6500", order.Subtotal, order.Total)
	}
	if order.ID == "" {
		t.Error("order ID must be assigned")
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	uc := NewDefaultOrderUsecase(newStubOrderRepo(), nil, nil, nil)
	cliente := domain.Actor{ID: "cust-1", Role: domain.RoleCliente}
	if _, err := uc.CreateOrder(cliente, &orderdto.CreateOrderInput{StoreID: "store-a", CustomerID: "cust-1"}); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}
