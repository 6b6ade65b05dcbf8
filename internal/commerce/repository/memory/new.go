package memory

import (
	"sync"
	"time"

	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository"
	"customer-support/pkg/log"
)

type implRepository struct {
	mu        sync.RWMutex
	orders    map[string]commerce.Order
	customers map[string]commerce.Customer
	l         log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates an in-memory Repository seeded with demo orders dated relative to now().
func New(l log.Logger, now func() time.Time) *implRepository {
	if now == nil {
		now = time.Now
	}
	r := &implRepository{
		orders:    make(map[string]commerce.Order),
		customers: make(map[string]commerce.Customer),
		l:         l,
	}
	r.seed(now())
	return r
}

// PutOrder adds or replaces an order.
func (r *implRepository) PutOrder(o commerce.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
}

// PutCustomer adds or replaces a customer.
func (r *implRepository) PutCustomer(c commerce.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[c.ID] = c
}
