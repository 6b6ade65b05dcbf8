package responder

// Log prefixes
const (
	LogPrefixRefund   = "internal.responder.Refund"
	LogPrefixOrder    = "internal.responder.Order"
	LogPrefixSupport  = "internal.responder.Support"
	LogPrefixFallback = "internal.responder.Fallback"
)

// Priority ranks. Lower wins ties.
const (
	RankRefund   = 1
	RankOrder    = 2
	RankSupport  = 3
	RankFallback = 4
)

// Entity bonuses added when an order id is present.
const (
	RefundEntityBonus = 0.2
	OrderEntityBonus  = 0.3
)

// Support keyword weights.
const (
	SupportCategoryWeight = 2.0
	SupportGeneralWeight  = 0.5
)

// FallbackScore is the constant score of the fallback responder.
const FallbackScore = 0.05

// Refund method recorded with every transaction.
const RefundMethodOriginal = "original_payment"

// Reply categories
const (
	CategoryRefundRequest    = "refund_request"
	CategoryRefundIneligible = "refund_ineligible"
	CategoryRefundProcessed  = "refund_processed"
	CategoryOrderRequest     = "order_request"
	CategoryOrderDetails     = "order_details"
	CategoryOrderNotFound    = "order_not_found"
	CategoryGreeting         = "greeting"
	CategoryUnknown          = "unknown"
)

// DateFormat is used when rendering order dates.
const DateFormat = "2006-01-02"

var refundKeywords = map[string]float64{
	"refund":         2,
	"money back":     2,
	"cancel order":   2,
	"get my money":   2,
	"charge back":    2,
	"chargeback":     2,
	"dispute":        2,
	"unsatisfied":    2,
	"not happy":      2,
	"want to return": 2,
	"return":         1.5,
}

var orderKeywords = map[string]float64{
	"order":     1.5,
	"status":    1.5,
	"track":     1.5,
	"tracking":  1.5,
	"shipped":   1.5,
	"shipment":  1.5,
	"delivery":  1.5,
	"delivered": 1.5,
	"where is":  1.5,
	"when will": 1.5,
	"arrive":    1.5,
	"package":   1.5,
}

var supportGeneralKeywords = []string{"help", "support", "question", "info"}

var greetingKeywords = []string{
	"hello", "hi", "hey", "howdy", "greetings",
	"good morning", "good afternoon", "good evening",
}

// refundReasons is checked in order; the first rule with a matching phrase wins.
var refundReasons = []struct {
	reason  string
	phrases []string
}{
	{"Product defective/damaged", []string{"defective", "broken", "damaged", "faulty"}},
	{"Wrong item received", []string{"wrong", "incorrect", "mistake"}},
	{"Late delivery", []string{"late", "delayed", "slow"}},
	{"Changed mind", []string{"changed my mind", "changed mind", "don't want", "dont want", "no longer need"}},
}

const defaultRefundReason = "Customer request"

// Reply texts
const (
	msgRefundPolicy = `Refund policy:
- Shipped or delivered orders can be refunded within %d days of the order date
- A $%.2f processing fee applies to orders over $%.2f
- Refunds go back to the original payment method within 3-5 business days

Please share your order number (4-6 digits) and I'll process the refund right away.`

	msgRefundNotFound = "I couldn't find order #%s. Please check the order number and try again."

	msgRefundOutsideWindow = "Order %s was placed %d days ago, which is outside our %d-day refund window. " +
		"Please contact our support team for special consideration."
	msgRefundCancelled       = "Order %s has already been cancelled. If you need help, please contact our support team."
	msgRefundStatusRefunded  = "Order %s has already been refunded."
	msgRefundAlreadyRefunded = "Order %s was already refunded ($%.2f on %s, transaction %s). " +
		"Each order can only be refunded once; contact our support team if something looks wrong."
	msgRefundNotShipped = "Order %s is still %s. Refunds are available once it ships; " +
		"contact our support team if you'd like to cancel it instead."
	msgRefundWrongStatus = "Order %s has status %q and can't be refunded automatically. Please contact our support team."

	msgRefundProcessed = `Refund processed for order %s.
Original amount: $%.2f
Processing fee: $%.2f
Refund amount: $%.2f
Transaction ID: %s
Reason: %s
Method: original payment method (%s)

The refund will appear on your statement within 3-5 business days. Keep the transaction ID for your records.`

	msgOrderAsk      = "I'd be happy to check your order status! Please provide your order number (usually 4-6 digits)."
	msgOrderNotFound = "I couldn't find order #%s. Please check the order number and try again. Order numbers are usually 4-6 digits."

	msgStatusPending    = "Your order is being prepared for processing. You'll receive an update within 24 hours."
	msgStatusProcessing = "Your order is being processed and will ship soon. Estimated processing time: 1-2 business days."
	msgStatusShipped    = "Your order has been shipped and is on its way."
	msgStatusDelivered  = "Your order has been delivered. If anything is wrong with it, let us know."
	msgStatusCancelled  = "This order has been cancelled. Let me know if you have questions about it."
	msgStatusOther      = "Current status is %s. Please contact our support team for more information."

	msgGreeting = `Hello! Welcome to Customer Support.

I can help you with:
- Order status and tracking
- Refunds and returns
- Shipping information
- Payment questions
- Account management

What can I help you with today?`

	msgUnknown = "I'm sorry, I didn't quite understand that. I can help with orders, refunds, shipping, payments and your account. " +
		"Could you rephrase, or pick one of the options below?"
)

var (
	refundSuggestions   = []string{"Return policy", "Check my order status"}
	orderSuggestions    = []string{"I need a refund", "Shipping information"}
	fallbackSuggestions = []string{
		"Check my order status",
		"I need a refund",
		"Shipping information",
		"Return policy",
		"Contact information",
	}
)
