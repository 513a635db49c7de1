package payment

type InitiatePaymentOutput struct {
	Reference     string                 `json:"reference"`
	Provider      string                 `json:"provider"`
	Authorization map[string]interface{} `json:"authorization"`
}

type ReceiptOutput struct {
	ReceiptNumber    string  `json:"receipt_number"`
	PaymentReference string  `json:"payment_reference"`
	PaymentDate      string  `json:"payment_date"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Status           string  `json:"status"`
	ParticipantName  string  `json:"participant_name"`
	ParticipantEmail string  `json:"participant_email"`
}
