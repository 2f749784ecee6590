package checkout

import (
	"errors"
	"time"
)

var (
	// ErrMissingAddress rejects order creation without a delivery address.
	ErrMissingAddress = errors.New("checkout: address id is required")
	// ErrIncompleteAddress rejects saving an address with blank required fields.
	ErrIncompleteAddress = errors.New("checkout: address is incomplete")
	// ErrMissingPaymentProof rejects verification without the gateway receipt.
	ErrMissingPaymentProof = errors.New("checkout: payment id and signature are required")
)

// Address is a saved delivery address.
type Address struct {
	ID      string `json:"_id"`
	Line1   string `json:"addressLine1"`
	Line2   string `json:"addressLine2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// Order is one row of order history.
type Order struct {
	ID        string      `json:"_id"`
	Status    string      `json:"status"`
	Total     float64     `json:"totalAmount"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}

// OrderItem is a purchased line within an order.
type OrderItem struct {
	ItemID   string  `json:"jewelryId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentIntent is the gateway handoff returned by order creation. The
// caller opens the gateway with these values and reports the receipt back
// through VerifyPayment.
type PaymentIntent struct {
	OrderID        string  `json:"orderId"`
	GatewayOrderID string  `json:"razorpayOrderId"`
	Key            string  `json:"key"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`

	CustomerName  string `json:"-"`
	CustomerEmail string `json:"-"`
}

// PaymentReceipt is the gateway's proof of a completed payment.
type PaymentReceipt struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}
