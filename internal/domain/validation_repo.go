package domain

import "time"

type ValidationRepository interface {
	StoreValidation(record *MealValidation) error
	GetUnsyncedValidations() ([]*MealValidation, error)
	MarkValidationsSynced(ids []string) error
	// DeleteSyncedBefore garbage-collects synced records older than the cutoff.
	DeleteSyncedBefore(cutoff time.Time) (int64, error)
	// UpsertValidations is the server-side reconciliation: records already
	// present are left untouched, every id in the batch is acknowledged.
	UpsertValidations(records []*MealValidation) ([]string, error)
}
