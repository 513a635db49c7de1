package validation

import "time"

type StoreValidationInput struct {
	RegistrationID string
	MealSessionID  string
	ValidatedAt    time.Time
	ValidatedBy    string
}

type ReconcileRecordInput struct {
	ID             string
	RegistrationID string
	MealSessionID  string
	ValidatedAt    time.Time
	ValidatedBy    string
}
