package psp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ntzs-io/ntzs-settlement/app"
)

// Webhook event types posted by Snippe.
const (
	WebhookPaymentCompleted = "payment.completed"
	WebhookPaymentFailed    = "payment.failed"
	WebhookPayoutCompleted  = "payout.completed"
	WebhookPayoutFailed     = "payout.failed"
)

// WebhookPayload is the body Snippe posts for payment and payout events.
type WebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Reference         string                 `json:"reference"`
		ExternalReference string                 `json:"external_reference"`
		Status            string                 `json:"status"`
		FailureReason     string                 `json:"failure_reason"`
		CompletedAt       string                 `json:"completed_at"`
		Amount            *snippeAmount          `json:"amount"`
		Metadata          map[string]interface{} `json:"metadata"`
	} `json:"data"`
}

func signHex(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature on an incoming
// Snippe webhook. Snippe signs "{timestamp}.{rawBody}"; older deliveries
// sign the raw body alone, so that is accepted as a fallback.
func VerifyWebhookSignature(rawBody []byte, signature string, timestamp string) bool {
	secret := app.Config.Snippe.WebhookSecret
	if secret == "" || signature == "" {
		return false
	}

	if timestamp != "" {
		expected := signHex(secret, append([]byte(timestamp+"."), rawBody...))
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return true
		}
	}

	expected := signHex(secret, rawBody)
	return hmac.Equal([]byte(signature), []byte(expected))
}
