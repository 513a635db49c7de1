package domain

import "time"

// MealValidation is a validator-device scan of a registration at a meal
// session. Records are written locally with Synced=false and flushed to the
// reconciliation endpoint in batches.
type MealValidation struct {
	ID             string
	RegistrationID string
	MealSessionID  string
	ValidatedAt    time.Time
	ValidatedBy    string
	Synced         bool
}
