package kafka

type PaymentEvent struct {
	Reference      string  `json:"reference"`
	Provider       string  `json:"provider"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	RegistrationID string  `json:"registration_id"`
}
