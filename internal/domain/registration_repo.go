package domain

type RegistrationRepository interface {
	GetRegistrationByID(id string) (*Registration, error)
	// MarkRegistrationPaid sets payment_status=paid, records the payment
	// reference and approves the registration in a single update.
	MarkRegistrationPaid(id, paymentReference string) error
	GetRegistrationsByPhone(phone string) ([]*Registration, error)
}
