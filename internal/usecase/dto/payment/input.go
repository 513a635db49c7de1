package payment

type InitiatePaymentInput struct {
	RegistrationID string
	Email          string
	Amount         float64
	Currency       string
	Provider       string
	CallbackURL    string
	EventTitle     string
}

type RequestRefundInput struct {
	TransactionID string
	Amount        float64
	Reason        string
	RequestedBy   string
}
