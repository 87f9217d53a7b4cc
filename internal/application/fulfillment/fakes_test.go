package fulfillment

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-fulfillment/internal/domain"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/entity"
	"github.com/jhoicas/warehouse-fulfillment/internal/domain/repository"
)

// memStore base de datos en memoria. memTxRunner trabaja sobre una copia y solo la
// publica si fn termina sin error, igual que Commit/Rollback.
type memStore struct {
	products   map[int]entity.Product
	warehouses map[int]entity.Warehouse
	orders     map[int]entity.Order
	receipts   []entity.ProductWarehouse
	nextID     int

	failInsert error // inyecta un fallo en ProductWarehouseRepository.Create
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int]entity.Product{},
		warehouses: map[int]entity.Warehouse{},
		orders:     map[int]entity.Order{},
		nextID:     1,
	}
}

func (s *memStore) clone() *memStore {
	cp := *s
	cp.products = make(map[int]entity.Product, len(s.products))
	for k, v := range s.products {
		cp.products[k] = v
	}
	cp.warehouses = make(map[int]entity.Warehouse, len(s.warehouses))
	for k, v := range s.warehouses {
		cp.warehouses[k] = v
	}
	cp.orders = make(map[int]entity.Order, len(s.orders))
	for k, v := range s.orders {
		cp.orders[k] = v
	}
	cp.receipts = append([]entity.ProductWarehouse(nil), s.receipts...)
	return &cp
}

type memTxRunner struct {
	store   *memStore
	calls   int
	lastCtx context.Context
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	receiptRepo repository.ProductWarehouseRepository,
) error) error {
	r.calls++
	r.lastCtx = ctx
	tx := r.store.clone()
	if err := fn(memProducts{tx}, memWarehouses{tx}, memOrders{tx}, memReceipts{tx}); err != nil {
		return err
	}
	*r.store = *tx
	return nil
}

type memProducts struct{ s *memStore }

func (m memProducts) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.s.products[id]
	return ok, nil
}

func (m memProducts) UnitPrice(_ context.Context, id int) (decimal.Decimal, bool, error) {
	p, ok := m.s.products[id]
	return p.Price, ok, nil
}

type memWarehouses struct{ s *memStore }

func (m memWarehouses) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.s.warehouses[id]
	return ok, nil
}

type memOrders struct{ s *memStore }

func (m memOrders) FindEligible(_ context.Context, productID, amount int, before time.Time) (int, bool, error) {
	linked := map[int]bool{}
	for _, r := range m.s.receipts {
		linked[r.OrderID] = true
	}
	var candidates []entity.Order
	for _, o := range m.s.orders {
		if o.ProductID == productID && o.Amount == amount && o.CreatedAt.Before(before) && !linked[o.ID] {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return 0, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0].ID, true, nil
}

func (m memOrders) MarkFulfilled(_ context.Context, id int, at time.Time) error {
	o := m.s.orders[id]
	o.FulfilledAt = &at
	m.s.orders[id] = o
	return nil
}

type memReceipts struct{ s *memStore }

func (m memReceipts) Create(_ context.Context, r *entity.ProductWarehouse) (int, error) {
	if m.s.failInsert != nil {
		return 0, m.s.failInsert
	}
	for _, existing := range m.s.receipts {
		if existing.OrderID == r.OrderID {
			return 0, domain.ErrOrderAlreadyFulfilled
		}
	}
	r.ID = m.s.nextID
	m.s.nextID++
	m.s.receipts = append(m.s.receipts, *r)
	return r.ID, nil
}

type fakeProcedure struct {
	id    int
	err   error
	calls []procedureCall
}

type procedureCall struct {
	productID, warehouseID, amount int
	createdAt                      time.Time
	hasDeadline                    bool
}

func (f *fakeProcedure) AddProductToWarehouse(ctx context.Context, productID, warehouseID, amount int, createdAt time.Time) (int, error) {
	_, ok := ctx.Deadline()
	f.calls = append(f.calls, procedureCall{productID, warehouseID, amount, createdAt, ok})
	return f.id, f.err
}
