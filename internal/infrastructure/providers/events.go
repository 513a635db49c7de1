package providers

import (
	"encoding/json"
	"fmt"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

type eventEnvelope struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// ParseWebhookEvent normalizes a verified provider payload into a
// domain.WebhookEvent. Event types we do not act on come back as
// EventIgnored so the dispatcher can acknowledge them without side effects.
func ParseWebhookEvent(provider string, body []byte) (*domain.WebhookEvent, error) {
	var envelope eventEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing webhook envelope: %w", err)
	}

	switch provider {
	case ProviderPaystack:
		return parsePaystackEvent(&envelope), nil
	case ProviderFlutterwave:
		return parseFlutterwaveEvent(&envelope), nil
	}
	return nil, domain.ErrUnknownProvider
}

func parsePaystackEvent(envelope *eventEnvelope) *domain.WebhookEvent {
	event := &domain.WebhookEvent{
		Provider:          ProviderPaystack,
		Kind:              domain.EventIgnored,
		Reference:         stringField(envelope.Data, "reference"),
		ProviderReference: stringField(envelope.Data, "id"),
		Amount:            numberField(envelope.Data, "amount") / 100,
		Raw:               envelope.Data,
	}

	switch envelope.Event {
	case "charge.success":
		event.Kind = domain.EventChargeSucceeded
	case "charge.failed":
		event.Kind = domain.EventChargeFailed
		event.FailureReason = stringField(envelope.Data, "gateway_response")
	case "refund.processed":
		event.Kind = domain.EventRefundCompleted
	}

	return event
}

func parseFlutterwaveEvent(envelope *eventEnvelope) *domain.WebhookEvent {
	event := &domain.WebhookEvent{
		Provider:          ProviderFlutterwave,
		Kind:              domain.EventIgnored,
		Reference:         stringField(envelope.Data, "tx_ref"),
		ProviderReference: stringField(envelope.Data, "id"),
		Amount:            numberField(envelope.Data, "amount"),
		Raw:               envelope.Data,
	}

	switch envelope.Event {
	case "charge.completed":
		// Flutterwave reports failures through the same event type.
		if stringField(envelope.Data, "status") == "successful" {
			event.Kind = domain.EventChargeSucceeded
		} else {
			event.Kind = domain.EventChargeFailed
			event.FailureReason = stringField(envelope.Data, "processor_response")
		}
	case "refund.completed":
		event.Kind = domain.EventRefundCompleted
	}

	return event
}

// stringField tolerates providers sending ids as numbers.
func stringField(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}

func numberField(data map[string]interface{}, key string) float64 {
	if v, ok := data[key].(float64); ok {
		return v
	}
	return 0
}
