package domain

type WebhookEventKind string

const (
	EventChargeSucceeded WebhookEventKind = "charge_succeeded"
	EventChargeFailed    WebhookEventKind = "charge_failed"
	EventRefundCompleted WebhookEventKind = "refund_completed"
	// EventIgnored covers event types we do not handle. They are acknowledged
	// with 200 so the provider does not retry them.
	EventIgnored WebhookEventKind = "ignored"
)

// WebhookEvent is a provider webhook normalized at the adapter boundary.
// Reference is the client reference, ProviderReference the gateway-assigned id.
type WebhookEvent struct {
	Provider          string
	Kind              WebhookEventKind
	Reference         string
	ProviderReference string
	FailureReason     string
	Amount            float64
	Raw               map[string]interface{}
}
