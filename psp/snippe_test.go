package psp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func init() {
	log.SetOutput(io.Discard)
}

func newTestClient(server *httptest.Server) SnippeClient {
	return &snippeClient{
		baseURL: server.URL,
		apiKey:  "test-api-key",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInitiatePayment(t *testing.T) {
	t.Run("successful initiation", func(t *testing.T) {
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payments", r.URL.Path)
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

			body, _ := io.ReadAll(r.Body)
			assert.Nil(t, json.Unmarshal(body, &gotBody))

			w.Write([]byte(`{"status":"success","data":{"reference":"pay-123"}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server).InitiatePayment(PaymentRequest{
			Amount:     5000,
			Phone:      "0744123456",
			Email:      "user@example.com",
			WebhookURL: "https://hooks.example.com/snippe",
		})

		assert.Nil(t, err)
		assert.Equal(t, "pay-123", result.Reference)

		assert.Equal(t, "mobile", gotBody["payment_type"])
		assert.Equal(t, "255744123456", gotBody["phone_number"])
		assert.Equal(t, "https://hooks.example.com/snippe", gotBody["webhook_url"])

		customer := gotBody["customer"].(map[string]interface{})
		assert.Equal(t, "nTZS", customer["firstname"])
		assert.Equal(t, "User", customer["lastname"])
	})

	t.Run("non https webhook url is omitted", func(t *testing.T) {
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Nil(t, json.Unmarshal(body, &gotBody))
			w.Write([]byte(`{"status":"success","data":{"reference":"pay-123"}}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).InitiatePayment(PaymentRequest{
			Amount:     5000,
			Phone:      "0744123456",
			WebhookURL: "http://localhost:3000/hook",
		})

		assert.Nil(t, err)
		_, hasWebhook := gotBody["webhook_url"]
		assert.False(t, hasWebhook)
	})

	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"insufficient float"}`))
		}))
		defer server.Close()

		result, err := newTestClient(server).InitiatePayment(PaymentRequest{Amount: 5000, Phone: "0744123456"})

		assert.Nil(t, result)
		assert.EqualError(t, err, "insufficient float")
	})

	t.Run("connection error is transient", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		result, err := newTestClient(server).InitiatePayment(PaymentRequest{Amount: 5000, Phone: "0744123456"})

		assert.Nil(t, result)
		assert.True(t, common.IsTransient(err))
	})
}

func TestGetPaymentStatus(t *testing.T) {
	t.Run("completed payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments/pay-123", r.URL.Path)
			w.Write([]byte(`{"status":"success","data":{"status":"completed","amount":{"value":5000},"completed_at":"2026-01-05T10:00:00Z"}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server).GetPaymentStatus("pay-123")

		assert.Nil(t, err)
		assert.Equal(t, PaymentStatusCompleted, status.Status)
		assert.Equal(t, int64(5000), status.Amount)
	})

	t.Run("unknown reference defaults to pending", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"not found"}`))
		}))
		defer server.Close()

		status, err := newTestClient(server).GetPaymentStatus("pay-missing")

		assert.Nil(t, err)
		assert.Equal(t, PaymentStatusPending, status.Status)
	})
}

func TestSendPayout(t *testing.T) {
	t.Run("successful payout", func(t *testing.T) {
		var gotBody map[string]interface{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payouts/send", r.URL.Path)

			body, _ := io.ReadAll(r.Body)
			assert.Nil(t, json.Unmarshal(body, &gotBody))

			w.Write([]byte(`{"status":"success","data":{"reference":"out-77","external_reference":"MM-900","fees":{"value":150},"total":{"value":10150}}}`))
		}))
		defer server.Close()

		result, err := newTestClient(server).SendPayout(PayoutRequest{
			Amount:   10000,
			Phone:    "+255 744 123 456",
			Metadata: map[string]interface{}{"burn_request_id": "abc"},
		})

		assert.Nil(t, err)
		assert.Equal(t, "out-77", result.Reference)
		assert.Equal(t, "MM-900", result.ExternalReference)
		assert.Equal(t, int64(150), result.Fee)
		assert.Equal(t, int64(10150), result.Total)

		assert.Equal(t, "mobile", gotBody["channel"])
		assert.Equal(t, "255744123456", gotBody["recipient_phone"])
		assert.Equal(t, "nTZS User", gotBody["recipient_name"])
		assert.Equal(t, "nTZS withdrawal", gotBody["narration"])
	})

	t.Run("provider rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"recipient not registered"}`))
		}))
		defer server.Close()

		result, err := newTestClient(server).SendPayout(PayoutRequest{Amount: 10000, Phone: "0744123456"})

		assert.Nil(t, result)
		assert.EqualError(t, err, "recipient not registered")
	})
}

func TestGetPayoutStatus(t *testing.T) {
	t.Run("failed payout carries reason", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payouts/out-77", r.URL.Path)
			w.Write([]byte(`{"status":"success","data":{"status":"failed","failure_reason":"wallet limit exceeded"}}`))
		}))
		defer server.Close()

		status, err := newTestClient(server).GetPayoutStatus("out-77")

		assert.Nil(t, err)
		assert.Equal(t, PayoutStatusFailed, status.Status)
		assert.Equal(t, "wallet limit exceeded", status.FailureReason)
	})
}

func TestGetPayoutFee(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payouts/fee", r.URL.Path)
		assert.Equal(t, "10000", r.URL.Query().Get("amount"))
		w.Write([]byte(`{"status":"success","data":{"fees":{"value":150},"total":{"value":10150}}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).GetPayoutFee(10000)

	assert.Nil(t, err)
	assert.Equal(t, int64(150), result.Fee)
	assert.Equal(t, int64(10150), result.Total)
}

func TestNewClient(t *testing.T) {
	app.Config.Snippe.BaseURL = "https://api.snippe.sh/"
	app.Config.Snippe.APIKey = "key"
	app.Config.Snippe.TimeoutMillis = 10000

	client := NewClient().(*snippeClient)

	assert.Equal(t, "https://api.snippe.sh", client.baseURL)
	assert.Equal(t, "key", client.apiKey)
	assert.Equal(t, 10*time.Second, client.client.Timeout)
}
