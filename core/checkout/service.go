package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/logger"
)

// Config holds checkout configuration, loadable via core/config.
type Config struct {
	// PaymentPageURL is the hosted payment page the QR code points at. The
	// gateway order id is appended as a query parameter.
	PaymentPageURL string `env:"STOREFRONT_PAYMENT_PAGE_URL" envDefault:"https://gemshop.example.com/pay"`
}

// Service drives the checkout flow.
type Service struct {
	api *client.Client
	cfg Config
	log *slog.Logger
}

// Option configures the checkout service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a checkout service over the given executor.
func NewService(api *client.Client, cfg Config, opts ...Option) *Service {
	s := &Service{api: api, cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addresses lists the customer's saved delivery addresses.
func (s *Service) Addresses(ctx context.Context) ([]Address, error) {
	var resp struct {
		Addresses []Address `json:"addresses"`
	}
	if err := s.api.Do(ctx, client.Get("/orders/addresses"), &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// AddAddress saves a new delivery address and returns it with its id.
func (s *Service) AddAddress(ctx context.Context, addr Address) (Address, error) {
	if addr.Line1 == "" || addr.City == "" || addr.Pincode == "" {
		return Address{}, ErrIncompleteAddress
	}

	var resp struct {
		Address Address `json:"address"`
	}
	if err := s.api.Do(ctx, client.Post("/orders/address", addr), &resp); err != nil {
		return Address{}, err
	}
	return resp.Address, nil
}

// CreateOrder creates an order from the server-side cart for the given
// address and returns the gateway handoff. The customer name and email are
// prefilled from the stored session for the gateway's checkout form.
func (s *Service) CreateOrder(ctx context.Context, addressID string) (PaymentIntent, error) {
	if addressID == "" {
		return PaymentIntent{}, ErrMissingAddress
	}

	var intent PaymentIntent
	body := map[string]string{"addressId": addressID}
	if err := s.api.Do(ctx, client.Post("/orders/create", body), &intent); err != nil {
		return PaymentIntent{}, err
	}

	if sess, err := s.api.Sessions().Load(ctx); err == nil {
		intent.CustomerName = sess.User.Name
		intent.CustomerEmail = sess.User.Email
	}

	s.log.InfoContext(ctx, "order created",
		logger.Component("checkout"),
		slog.String("order_id", intent.OrderID),
		slog.Float64("amount", intent.Amount),
	)
	return intent, nil
}

// VerifyPayment reports the gateway receipt back to the API, completing the
// order. A rejected signature surfaces as an *client.APIError.
func (s *Service) VerifyPayment(ctx context.Context, receipt PaymentReceipt) error {
	if receipt.PaymentID == "" || receipt.Signature == "" {
		return ErrMissingPaymentProof
	}
	return s.api.Do(ctx, client.Post("/orders/verify", receipt), nil)
}

// Orders lists the customer's order history.
func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	var resp struct {
		Orders []Order `json:"orders"`
	}
	if err := s.api.Do(ctx, client.Get("/orders"), &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// PaymentQR renders a PNG QR code pointing at the hosted payment page for
// the given intent, for handing a desktop checkout over to a phone.
func (s *Service) PaymentQR(intent PaymentIntent, size int) ([]byte, error) {
	page, err := url.Parse(s.cfg.PaymentPageURL)
	if err != nil {
		return nil, fmt.Errorf("checkout: invalid payment page url: %w", err)
	}

	q := page.Query()
	q.Set("order", intent.GatewayOrderID)
	page.RawQuery = q.Encode()

	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(page.String(), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("checkout: failed to encode payment qr: %w", err)
	}
	return png, nil
}
