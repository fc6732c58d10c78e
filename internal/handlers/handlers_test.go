package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"payproc/internal/services/payment"
	"payproc/internal/services/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAddress = "bc1qdemouseraddressfordemonstrationpurposes"

func TestMain(m *testing.M) {
	payment.SetCVVHashCost(bcrypt.MinCost)
	os.Exit(m.Run())
}

// voucher is a prepaid method that cannot be topped up.
type voucher struct {
	payment.NoFunding
	balance float64
}

func (v *voucher) Kind() payment.Kind { return payment.KindCard }
func (v *voucher) Label() string      { return "Voucher" }
func (v *voucher) Balance() float64   { return v.balance }

func (v *voucher) Pay(amount float64) bool {
	if amount > v.balance {
		return false
	}
	v.balance -= amount
	return true
}

func setupApp() (*fiber.App, *registry.Registry) {
	reg := registry.New()
	methodHandler := NewMethodHandler(reg)
	paymentHandler := NewPaymentHandler(reg)

	app := fiber.New()
	app.Get("/health", HealthCheck)
	app.Post("/api/methods", methodHandler.CreateMethod)
	app.Get("/api/methods", methodHandler.ListMethods)
	app.Get("/api/methods/:id", methodHandler.GetMethod)
	app.Get("/api/methods/:id/fee", methodHandler.QuoteFee)
	app.Post("/api/methods/:id/funds", methodHandler.AddFunds)
	app.Post("/api/payments", paymentHandler.ProcessPayment)
	return app, reg
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func createMethod(t *testing.T, app *fiber.App, body map[string]interface{}) map[string]interface{} {
	t.Helper()

	status, resp := doRequest(t, app, http.MethodPost, "/api/methods", body)
	require.Equal(t, http.StatusCreated, status, resp)
	method, ok := resp["method"].(map[string]interface{})
	require.True(t, ok)
	return method
}

func cardBody(balance float64) map[string]interface{} {
	return map[string]interface{}{
		"kind":            "card",
		"card_number":     "1111222233334444",
		"expiry":          "12/28",
		"cvv":             "123",
		"initial_balance": balance,
	}
}

func walletBody(balance float64) map[string]interface{} {
	return map[string]interface{}{
		"kind":            "wallet_account",
		"email":           "test@example.com",
		"initial_balance": balance,
	}
}

func cryptoBody(balance float64) map[string]interface{} {
	return map[string]interface{}{
		"kind":            "crypto_wallet",
		"wallet_address":  testAddress,
		"initial_balance": balance,
	}
}

func TestHealthCheck(t *testing.T) {
	app, _ := setupApp()

	status, resp := doRequest(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
}

func TestCreateMethod(t *testing.T) {
	app, reg := setupApp()

	t.Run("card", func(t *testing.T) {
		method := createMethod(t, app, cardBody(200))
		assert.Equal(t, "card", method["kind"])
		assert.Equal(t, "Card ...4444", method["label"])
		assert.Equal(t, 200.0, method["balance"])
		assert.Equal(t, "Balance: $200.00", method["balance_info"])

		id, err := uuid.Parse(method["id"].(string))
		require.NoError(t, err)
		saved, err := reg.Get(id)
		require.NoError(t, err)
		assert.Equal(t, saved.Method.Label(), method["label"])
		assert.Equal(t, saved.Method.Balance(), method["balance"])
	})

	t.Run("card with long cvv", func(t *testing.T) {
		body := cardBody(10)
		body["cvv"] = strings.Repeat("1", 80)
		method := createMethod(t, app, body)
		assert.Equal(t, "Card ...4444", method["label"])
	})

	t.Run("wallet account", func(t *testing.T) {
		method := createMethod(t, app, walletBody(0))
		assert.Equal(t, "wallet_account", method["kind"])
		assert.Equal(t, "Wallet: test@example.com", method["label"])
	})

	t.Run("crypto wallet", func(t *testing.T) {
		method := createMethod(t, app, cryptoBody(10))
		assert.Equal(t, "crypto_wallet", method["kind"])
		assert.Equal(t, "Crypto: bc1qde...", method["label"])
	})

	assert.Equal(t, 4, reg.Len())
}

func TestCreateMethod_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		body  interface{}
		code  string
		field string
	}{
		{
			name:  "invalid email",
			body:  map[string]interface{}{"kind": "wallet_account", "email": "testexample.com"},
			code:  "INVALID_EMAIL",
			field: "email",
		},
		{
			name:  "short address",
			body:  map[string]interface{}{"kind": "crypto_wallet", "wallet_address": "too-short"},
			code:  "INVALID_WALLET_ADDRESS",
			field: "wallet_address",
		},
		{
			name:  "missing card fields",
			body:  map[string]interface{}{"kind": "card", "card_number": "1111"},
			code:  "INVALID_CARD_DETAILS",
			field: "expiry",
		},
		{
			name: "negative balance",
			body: map[string]interface{}{
				"kind": "wallet_account", "email": "test@example.com", "initial_balance": -1,
			},
			code:  "NEGATIVE_BALANCE",
			field: "initial_balance",
		},
		{
			name: "unknown kind",
			body: map[string]interface{}{"kind": "paypal"},
			code: "UNKNOWN_METHOD_KIND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, reg := setupApp()

			status, resp := doRequest(t, app, http.MethodPost, "/api/methods", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.code, resp["code"])
			assert.NotEmpty(t, resp["error"])
			if tt.field != "" {
				details, ok := resp["details"].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, details, tt.field)
			}
			assert.Zero(t, reg.Len())
		})
	}
}

func TestCreateMethod_MalformedBody(t *testing.T) {
	app, _ := setupApp()

	status, resp := doRequest(t, app, http.MethodPost, "/api/methods", "{")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request format", resp["error"])
}

func TestListMethods(t *testing.T) {
	app, _ := setupApp()

	status, resp := doRequest(t, app, http.MethodGet, "/api/methods", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp["methods"])

	createMethod(t, app, cardBody(200))
	createMethod(t, app, cryptoBody(10))

	status, resp = doRequest(t, app, http.MethodGet, "/api/methods", nil)
	require.Equal(t, http.StatusOK, status)
	methods, ok := resp["methods"].([]interface{})
	require.True(t, ok)
	require.Len(t, methods, 2)
	assert.Equal(t, "card", methods[0].(map[string]interface{})["kind"])
	assert.Equal(t, "crypto_wallet", methods[1].(map[string]interface{})["kind"])

	status, resp = doRequest(t, app, http.MethodGet, "/api/methods?page=2&limit=1", nil)
	require.Equal(t, http.StatusOK, status)
	methods = resp["methods"].([]interface{})
	require.Len(t, methods, 1)
	assert.Equal(t, "crypto_wallet", methods[0].(map[string]interface{})["kind"])
	page := resp["pagination"].(map[string]interface{})
	assert.Equal(t, 2.0, page["total"])
	assert.Equal(t, 2.0, page["last_page"])
}

func TestGetMethod(t *testing.T) {
	app, _ := setupApp()
	created := createMethod(t, app, walletBody(25))

	status, resp := doRequest(t, app, http.MethodGet, "/api/methods/"+created["id"].(string), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created["id"], resp["method"].(map[string]interface{})["id"])

	status, _ = doRequest(t, app, http.MethodGet, "/api/methods/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/methods/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAddFunds(t *testing.T) {
	app, reg := setupApp()
	created := createMethod(t, app, walletBody(10))
	path := "/api/methods/" + created["id"].(string) + "/funds"

	status, resp := doRequest(t, app, http.MethodPost, path, map[string]interface{}{"amount": 40.5})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 50.5, resp["method"].(map[string]interface{})["balance"])

	for _, amount := range []float64{0, -3} {
		status, _ = doRequest(t, app, http.MethodPost, path, map[string]interface{}{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, status)
	}

	status, _ = doRequest(t, app, http.MethodPost,
		"/api/methods/"+uuid.NewString()+"/funds", map[string]interface{}{"amount": 5})
	assert.Equal(t, http.StatusNotFound, status)

	entry, err := reg.Add(&voucher{balance: 20})
	require.NoError(t, err)
	status, resp = doRequest(t, app, http.MethodPost,
		"/api/methods/"+entry.ID.String()+"/funds", map[string]interface{}{"amount": 5})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.NotEmpty(t, resp["error"])
	assert.Equal(t, 20.0, entry.Method.Balance())
}

func TestProcessPayment_Card(t *testing.T) {
	app, _ := setupApp()
	created := createMethod(t, app, cardBody(200))
	id := created["id"].(string)

	status, resp := doRequest(t, app, http.MethodPost, "/api/payments",
		map[string]interface{}{"method_id": id, "amount": 150.75})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, resp["success"])
	assert.InDelta(t, 49.25, resp["method"].(map[string]interface{})["balance"], 1e-9)

	status, resp = doRequest(t, app, http.MethodPost, "/api/payments",
		map[string]interface{}{"method_id": id, "amount": 100})
	require.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, false, resp["success"])
	assert.InDelta(t, 49.25, resp["method"].(map[string]interface{})["balance"], 1e-9)
}

func TestProcessPayment_CryptoChargesFee(t *testing.T) {
	app, _ := setupApp()
	created := createMethod(t, app, cryptoBody(10))
	id := created["id"].(string)

	status, resp := doRequest(t, app, http.MethodPost, "/api/payments",
		map[string]interface{}{"method_id": id, "amount": 10})
	require.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, 10.0, resp["method"].(map[string]interface{})["balance"])

	status, resp = doRequest(t, app, http.MethodPost, "/api/payments",
		map[string]interface{}{"method_id": id, "amount": 4.9})
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 5.0, resp["method"].(map[string]interface{})["balance"], 1e-9)
}

func TestProcessPayment_BadInput(t *testing.T) {
	app, _ := setupApp()
	created := createMethod(t, app, walletBody(10))
	id := created["id"].(string)

	tests := []struct {
		name   string
		body   interface{}
		status int
	}{
		{"malformed", "{", http.StatusBadRequest},
		{"bad id", map[string]interface{}{"method_id": "x", "amount": 1}, http.StatusBadRequest},
		{"zero amount", map[string]interface{}{"method_id": id, "amount": 0}, http.StatusBadRequest},
		{"negative amount", map[string]interface{}{"method_id": id, "amount": -5}, http.StatusBadRequest},
		{"unknown method", map[string]interface{}{"method_id": uuid.NewString(), "amount": 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doRequest(t, app, http.MethodPost, "/api/payments", tt.body)
			assert.Equal(t, tt.status, status)
		})
	}

	_, resp := doRequest(t, app, http.MethodGet, "/api/methods/"+id, nil)
	assert.Equal(t, 10.0, resp["method"].(map[string]interface{})["balance"])
}

func TestQuoteFee(t *testing.T) {
	app, _ := setupApp()
	crypto := createMethod(t, app, cryptoBody(10))
	card := createMethod(t, app, cardBody(10))

	status, resp := doRequest(t, app, http.MethodGet,
		"/api/methods/"+crypto["id"].(string)+"/fee?amount=100", nil)
	require.Equal(t, http.StatusOK, status)
	assert.InDelta(t, 0.5, resp["fee"], 1e-9)
	assert.InDelta(t, 100.5, resp["total"], 1e-9)

	status, _ = doRequest(t, app, http.MethodGet,
		"/api/methods/"+card["id"].(string)+"/fee?amount=100", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet,
		"/api/methods/"+crypto["id"].(string)+"/fee", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodGet,
		"/api/methods/"+uuid.NewString()+"/fee?amount=1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
