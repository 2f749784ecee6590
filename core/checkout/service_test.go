package checkout_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshop/storefront/core/checkout"
	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/session"
)

func newService(t *testing.T, handler http.Handler) *checkout.Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	sess, err := session.New("access-1", "refresh-1", session.User{
		ID: "u1", Name: "Priya", Email: "priya@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sess))

	api, err := client.New(client.Config{BaseURL: srv.URL}, store)
	require.NoError(t, err)

	return checkout.NewService(api, checkout.Config{PaymentPageURL: "https://shop.example.com/pay"})
}

func respond(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestService_Addresses(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/orders/addresses", r.URL.Path)
		respond(t, w, http.StatusOK, map[string]any{
			"addresses": []map[string]string{
				{"_id": "a1", "addressLine1": "12 MG Road", "city": "Bengaluru", "pincode": "560001"},
			},
		})
	}))

	addrs, err := svc.Addresses(context.Background())
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "a1", addrs[0].ID)
	assert.Equal(t, "Bengaluru", addrs[0].City)
}

func TestService_AddAddress(t *testing.T) {
	t.Parallel()

	t.Run("saves and returns the address with id", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/orders/address", r.URL.Path)

			var addr checkout.Address
			require.NoError(t, json.NewDecoder(r.Body).Decode(&addr))
			addr.ID = "a1"
			respond(t, w, http.StatusCreated, map[string]any{"address": addr})
		}))

		saved, err := svc.AddAddress(context.Background(), checkout.Address{
			Line1:   "12 MG Road",
			City:    "Bengaluru",
			Pincode: "560001",
		})
		require.NoError(t, err)
		assert.Equal(t, "a1", saved.ID)
		assert.Equal(t, "12 MG Road", saved.Line1)
	})

	t.Run("incomplete address rejected locally", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := svc.AddAddress(context.Background(), checkout.Address{City: "Bengaluru"})
		assert.ErrorIs(t, err, checkout.ErrIncompleteAddress)
		assert.Zero(t, calls.Load())
	})
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()

	t.Run("returns gateway handoff prefilled from session", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/create", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "a1", body["addressId"])

			respond(t, w, http.StatusOK, map[string]any{
				"orderId":         "o1",
				"razorpayOrderId": "rzp_o1",
				"key":             "rzp_test_key",
				"amount":          4999.0,
				"currency":        "INR",
			})
		}))

		intent, err := svc.CreateOrder(context.Background(), "a1")
		require.NoError(t, err)

		assert.Equal(t, "o1", intent.OrderID)
		assert.Equal(t, "rzp_o1", intent.GatewayOrderID)
		assert.Equal(t, "INR", intent.Currency)
		assert.Equal(t, "Priya", intent.CustomerName)
		assert.Equal(t, "priya@example.com", intent.CustomerEmail)
	})

	t.Run("missing address rejected locally", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		}))

		_, err := svc.CreateOrder(context.Background(), "")
		assert.ErrorIs(t, err, checkout.ErrMissingAddress)
	})

	t.Run("empty cart surfaces the server message", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, http.StatusBadRequest, map[string]string{"message": "cart is empty"})
		}))

		_, err := svc.CreateOrder(context.Background(), "a1")

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "cart is empty", apiErr.Message)
	})
}

func TestService_VerifyPayment(t *testing.T) {
	t.Parallel()

	t.Run("posts the receipt", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/verify", r.URL.Path)

			var receipt checkout.PaymentReceipt
			require.NoError(t, json.NewDecoder(r.Body).Decode(&receipt))
			assert.Equal(t, "pay_1", receipt.PaymentID)
			assert.Equal(t, "sig_1", receipt.Signature)
			respond(t, w, http.StatusOK, map[string]string{"message": "payment verified"})
		}))

		err := svc.VerifyPayment(context.Background(), checkout.PaymentReceipt{
			OrderID:   "o1",
			PaymentID: "pay_1",
			Signature: "sig_1",
		})
		require.NoError(t, err)
	})

	t.Run("missing proof rejected locally", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		}))

		err := svc.VerifyPayment(context.Background(), checkout.PaymentReceipt{OrderID: "o1"})
		assert.ErrorIs(t, err, checkout.ErrMissingPaymentProof)
	})

	t.Run("rejected signature surfaces the server message", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, http.StatusBadRequest, map[string]string{"message": "invalid signature"})
		}))

		err := svc.VerifyPayment(context.Background(), checkout.PaymentReceipt{
			OrderID: "o1", PaymentID: "pay_1", Signature: "bad",
		})

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid signature", apiErr.Message)
	})
}

func TestService_Orders(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		respond(t, w, http.StatusOK, map[string]any{
			"orders": []map[string]any{
				{
					"_id":         "o1",
					"status":      "paid",
					"totalAmount": 4999.0,
					"items": []map[string]any{
						{"jewelryId": "j1", "title": "Ruby Ring", "price": 4999.0, "quantity": 1},
					},
				},
			},
		})
	}))

	orders, err := svc.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "paid", orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Ruby Ring", orders[0].Items[0].Title)
}

func TestService_PaymentQR(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	png, err := svc.PaymentQR(checkout.PaymentIntent{GatewayOrderID: "rzp_o1"}, 0)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "output is a PNG image")
}
