package memory

import (
	"time"

	"customer-support/internal/commerce"
)

var catalog = map[int]commerce.Item{
	1: {ProductID: 1, Name: "Premium Wireless Headphones", Brand: "AudioTech", Price: 79.99},
	2: {ProductID: 2, Name: "Phone Case", Brand: "ProtectPro", Price: 19.99},
	3: {ProductID: 3, Name: "Gaming Mouse", Brand: "GameGear", Price: 59.99},
	4: {ProductID: 4, Name: "Mouse Pad", Brand: "GameGear", Price: 14.99},
	5: {ProductID: 5, Name: "Bluetooth Speaker", Brand: "SoundWave", Price: 89.99},
	6: {ProductID: 6, Name: "USB-C Cable", Brand: "ChargeFast", Price: 12.99},
	7: {ProductID: 7, Name: "Wireless Charger", Brand: "ChargeFast", Price: 34.99},
	8: {ProductID: 8, Name: "Laptop Stand", Brand: "DeskPro", Price: 45.99},
}

func line(productID, qty int) commerce.Item {
	it := catalog[productID]
	it.Quantity = qty
	return it
}

func (r *implRepository) seed(now time.Time) {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	for _, c := range []commerce.Customer{
		{ID: "1001", Name: "John Doe", Email: "john.doe@email.com", Phone: "+1-555-0123", Address: "123 Main St, Anytown, USA 12345", Tier: "Gold"},
		{ID: "1002", Name: "Bob Johnson", Email: "bob.johnson@email.com", Phone: "+1-555-0456", Address: "789 Pine St, Riverside, USA 54321", Tier: "Silver"},
		{ID: "1003", Name: "Alice Smith", Email: "alice.smith@email.com", Phone: "+1-555-0789", Address: "456 Oak Ave, Springfield, USA 67890", Tier: "Bronze"},
	} {
		r.customers[c.ID] = c
	}

	for _, o := range []commerce.Order{
		{
			ID: "12345", CustomerID: "1001",
			Items: []commerce.Item{line(1, 1), line(2, 1)},
			Total: 99.99, Tax: 8.00,
			Status: commerce.StatusDelivered, OrderDate: daysAgo(14),
			ShippingAddress: "123 Main St, Anytown, USA 12345", PaymentMethod: "Credit Card ending in 4567",
			TrackingNumber: "TRK123456789", DeliveryDate: daysAgo(10), DeliveryConfirmation: "Package delivered to front door",
		},
		{
			ID: "11111", CustomerID: "1002",
			Items: []commerce.Item{line(3, 1), line(4, 1)},
			Total: 74.98, ShippingCost: 5.99, Tax: 6.00, Discount: 10.00,
			Status: commerce.StatusShipped, OrderDate: daysAgo(5),
			ShippingAddress: "789 Pine St, Riverside, USA 54321", PaymentMethod: "Credit Card ending in 8901",
			TrackingNumber: "TRK987654321", EstimatedDelivery: now.AddDate(0, 0, 2),
		},
		{
			ID: "54321", CustomerID: "1003",
			Items: []commerce.Item{line(5, 1)},
			Total: 89.99, ShippingCost: 7.99, Tax: 7.20,
			Status: commerce.StatusProcessing, OrderDate: daysAgo(1),
			ShippingAddress: "456 Oak Ave, Springfield, USA 67890", PaymentMethod: "PayPal",
			EstimatedDelivery: now.AddDate(0, 0, 5),
		},
		{
			ID: "67890", CustomerID: "1001",
			Items:  []commerce.Item{line(8, 1)},
			Total:  45.99,
			Status: commerce.StatusDelivered, OrderDate: daysAgo(45),
			ShippingAddress: "123 Main St, Anytown, USA 12345", PaymentMethod: "Credit Card ending in 4567",
			TrackingNumber: "TRK555000111", DeliveryDate: daysAgo(41),
		},
		{
			ID: "20010", CustomerID: "1002",
			Items:  []commerce.Item{line(6, 2), line(7, 1)},
			Total:  60.97,
			Status: commerce.StatusDelivered, OrderDate: daysAgo(6),
			ShippingAddress: "789 Pine St, Riverside, USA 54321", PaymentMethod: "Apple Pay",
			TrackingNumber: "TRK202010010", DeliveryDate: daysAgo(3),
		},
		{
			ID: "30303", CustomerID: "1003",
			Items:  []commerce.Item{line(2, 2)},
			Total:  39.98,
			Status: commerce.StatusCancelled, OrderDate: daysAgo(8),
			ShippingAddress: "456 Oak Ave, Springfield, USA 67890", PaymentMethod: "PayPal",
		},
		{
			ID: "40404", CustomerID: "9999",
			Items:  []commerce.Item{line(4, 1)},
			Total:  14.99,
			Status: commerce.StatusPending, OrderDate: now,
			ShippingAddress: "1 Unknown Rd", PaymentMethod: "Gift Card",
		},
	} {
		r.orders[o.ID] = o
	}
}
