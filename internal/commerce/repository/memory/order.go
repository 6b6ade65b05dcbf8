package memory

import (
	"context"

	"customer-support/internal/commerce"
)

func (r *implRepository) FindOrder(ctx context.Context, orderID string) (commerce.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		r.l.Debugf(ctx, "commerce/repository/memory.FindOrder: %s not found", orderID)
		return commerce.Order{}, commerce.ErrOrderNotFound
	}
	o.Items = append([]commerce.Item(nil), o.Items...)
	return o, nil
}

func (r *implRepository) FindCustomer(ctx context.Context, customerID string) (commerce.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[customerID]
	if !ok {
		r.l.Debugf(ctx, "commerce/repository/memory.FindCustomer: %s not found", customerID)
		return commerce.Customer{}, commerce.ErrCustomerNotFound
	}
	return c, nil
}
