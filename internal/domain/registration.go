package domain

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationApproved  RegistrationStatus = "approved"
	RegistrationRejected  RegistrationStatus = "rejected"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Registration struct {
	ID               string
	FullName         string
	Email            string
	Phone            string
	EventID          string
	Status           RegistrationStatus
	PaymentStatus    PaymentStatus
	PaymentReference string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
