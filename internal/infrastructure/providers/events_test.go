package providers

import (
	"testing"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookEvent_PaystackChargeSuccess(t *testing.T) {
	body := []byte(`{
		"event": "charge.success",
		"data": {
			"id": 4099260516,
			"reference": "NCES-abc123",
			"amount": 2500000,
			"gateway_response": "Successful"
		}
	}`)

	event, err := ParseWebhookEvent(ProviderPaystack, body)
	require.NoError(t, err)

	assert.Equal(t, domain.EventChargeSucceeded, event.Kind)
	assert.Equal(t, "NCES-abc123", event.Reference)
	assert.Equal(t, "4099260516", event.ProviderReference)
	assert.Equal(t, 25000.0, event.Amount)
}

func TestParseWebhookEvent_PaystackChargeFailed(t *testing.T) {
	body := []byte(`{
		"event": "charge.failed",
		"data": {
			"reference": "NCES-abc123",
			"gateway_response": "Insufficient funds"
		}
	}`)

	event, err := ParseWebhookEvent(ProviderPaystack, body)
	require.NoError(t, err)

	assert.Equal(t, domain.EventChargeFailed, event.Kind)
	assert.Equal(t, "Insufficient funds", event.FailureReason)
}

func TestParseWebhookEvent_PaystackRefund(t *testing.T) {
	body := []byte(`{"event":"refund.processed","data":{"reference":"NCES-abc123"}}`)

	event, err := ParseWebhookEvent(ProviderPaystack, body)
	require.NoError(t, err)
	assert.Equal(t, domain.EventRefundCompleted, event.Kind)
}

func TestParseWebhookEvent_PaystackUnknownEvent(t *testing.T) {
	body := []byte(`{"event":"subscription.create","data":{"reference":"NCES-abc123"}}`)

	event, err := ParseWebhookEvent(ProviderPaystack, body)
	require.NoError(t, err)
	assert.Equal(t, domain.EventIgnored, event.Kind)
}

func TestParseWebhookEvent_FlutterwaveChargeCompleted(t *testing.T) {
	body := []byte(`{
		"event": "charge.completed",
		"data": {
			"id": 285959875,
			"tx_ref": "NCES-xyz789",
			"amount": 25000,
			"status": "successful"
		}
	}`)

	event, err := ParseWebhookEvent(ProviderFlutterwave, body)
	require.NoError(t, err)

	assert.Equal(t, domain.EventChargeSucceeded, event.Kind)
	assert.Equal(t, "NCES-xyz789", event.Reference)
	assert.Equal(t, "285959875", event.ProviderReference)
	assert.Equal(t, 25000.0, event.Amount)
}

func TestParseWebhookEvent_FlutterwaveChargeNotSuccessful(t *testing.T) {
	// Flutterwave sends failures as charge.completed with a non-successful status
	body := []byte(`{
		"event": "charge.completed",
		"data": {
			"tx_ref": "NCES-xyz789",
			"status": "failed",
			"processor_response": "Card declined"
		}
	}`)

	event, err := ParseWebhookEvent(ProviderFlutterwave, body)
	require.NoError(t, err)

	assert.Equal(t, domain.EventChargeFailed, event.Kind)
	assert.Equal(t, "Card declined", event.FailureReason)
}

func TestParseWebhookEvent_FlutterwaveRefund(t *testing.T) {
	body := []byte(`{"event":"refund.completed","data":{"tx_ref":"NCES-xyz789"}}`)

	event, err := ParseWebhookEvent(ProviderFlutterwave, body)
	require.NoError(t, err)
	assert.Equal(t, domain.EventRefundCompleted, event.Kind)
}

func TestParseWebhookEvent_UnknownProvider(t *testing.T) {
	_, err := ParseWebhookEvent("stripe", []byte(`{"event":"x"}`))
	assert.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestParseWebhookEvent_MalformedBody(t *testing.T) {
	_, err := ParseWebhookEvent(ProviderPaystack, []byte(`not json`))
	assert.Error(t, err)
}
