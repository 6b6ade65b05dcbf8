package commerce

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

// --- Domain Models ---

// Item is one order line.
type Item struct {
	ProductID int
	Name      string
	Brand     string
	Quantity  int
	Price     float64
}

// Order is a customer order as seen by the support desk.
type Order struct {
	ID                   string
	CustomerID           string
	Items                []Item
	Total                float64
	ShippingCost         float64
	Tax                  float64
	Discount             float64
	Status               OrderStatus
	OrderDate            time.Time
	ShippingAddress      string
	PaymentMethod        string
	TrackingNumber       string
	EstimatedDelivery    time.Time
	DeliveryDate         time.Time
	DeliveryConfirmation string
}

// Subtotal is the item total before shipping, tax and discount.
func (o Order) Subtotal() float64 {
	return o.Total - o.Tax - o.ShippingCost + o.Discount
}

// Customer is the account that placed an order.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
	Tier    string
}

// --- Refunds ---

// EligibilityReason explains a refund eligibility decision.
type EligibilityReason string

const (
	ReasonEligible         EligibilityReason = "eligible"
	ReasonOutsideWindow    EligibilityReason = "outside_window"
	ReasonAlreadyCancelled EligibilityReason = "already_cancelled"
	ReasonAlreadyRefunded  EligibilityReason = "already_refunded"
	ReasonNotShipped       EligibilityReason = "not_shipped"
	ReasonWrongStatus      EligibilityReason = "wrong_status"
)

// Eligibility is the outcome of RefundEligibility.Evaluate.
type Eligibility struct {
	Eligible       bool
	Reason         EligibilityReason
	DaysSinceOrder int
	WindowDays     int
}

// RefundQuote is the fee-adjusted amount to refund for an order.
type RefundQuote struct {
	Original float64
	Fee      float64
	Amount   float64
}

// RefundLogStatus tracks the two-phase refund log row.
type RefundLogStatus string

const (
	RefundInitiated RefundLogStatus = "initiated"
	RefundCompleted RefundLogStatus = "completed"
)

// RefundLog is a persisted refund transaction.
type RefundLog struct {
	LogID         string
	TransactionID string
	OrderID       string
	Amount        float64
	Fee           float64
	Reason        string
	Method        string
	Status        RefundLogStatus
	CreatedAt     time.Time
	CompletedAt   time.Time
}
