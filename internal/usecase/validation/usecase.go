package validation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/metrics"
	validationdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/validation"
	"github.com/google/uuid"
)

// PushFunc delivers a batch of validation records upstream and returns the
// ids the server acknowledged. Partial acks are allowed.
type PushFunc func(records []*domain.MealValidation) ([]string, error)

type ValidationUsecase interface {
	StoreValidation(input *validationdto.StoreValidationInput) (*domain.MealValidation, error)
	// Sync flushes unsynced records upstream. Returns the number of records
	// marked synced; a sync already in flight returns (0, nil) immediately.
	Sync() (int, error)
	// Retention deletes synced records older than the retention window.
	Retention() (int64, error)
	// Reconcile is the server side of Sync: it absorbs a batch from a
	// validator device and returns every acknowledged id.
	Reconcile(records []*validationdto.ReconcileRecordInput) ([]string, error)
}

type DefaultValidationUsecase struct {
	ValidationRepo domain.ValidationRepository
	Push           PushFunc
	RetentionAge   time.Duration
	Metrics        *metrics.PaymentMetrics

	mu      sync.Mutex
	syncing bool
}

func NewDefaultValidationUsecase(
	validationRepo domain.ValidationRepository,
	push PushFunc,
	retentionAge time.Duration,
	paymentMetrics *metrics.PaymentMetrics) *DefaultValidationUsecase {

	return &DefaultValidationUsecase{
		ValidationRepo: validationRepo,
		Push:           push,
		RetentionAge:   retentionAge,
		Metrics:        paymentMetrics,
	}
}

func (uc *DefaultValidationUsecase) StoreValidation(input *validationdto.StoreValidationInput) (*domain.MealValidation, error) {
	record := &domain.MealValidation{
		ID:             uuid.New().String(),
		RegistrationID: input.RegistrationID,
		MealSessionID:  input.MealSessionID,
		ValidatedAt:    input.ValidatedAt,
		ValidatedBy:    input.ValidatedBy,
		Synced:         false,
	}
	if record.ValidatedAt.IsZero() {
		record.ValidatedAt = time.Now()
	}
	if err := uc.ValidationRepo.StoreValidation(record); err != nil {
		return nil, err
	}
	return record, nil
}

// Sync is single-flight: overlapping calls from the ticker and a manual
// trigger collapse into one flush. Only ids the server acknowledged are
// marked synced, so a partial push leaves the rest queued for the next run.
func (uc *DefaultValidationUsecase) Sync() (int, error) {
	uc.mu.Lock()
	if uc.syncing {
		uc.mu.Unlock()
		return 0, nil
	}
	uc.syncing = true
	uc.mu.Unlock()

	defer func() {
		uc.mu.Lock()
		uc.syncing = false
		uc.mu.Unlock()
	}()

	records, err := uc.ValidationRepo.GetUnsyncedValidations()
	if err != nil {
		uc.recordSync("error", 0)
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	acked, err := uc.Push(records)
	if err != nil {
		uc.recordSync("error", 0)
		return 0, err
	}
	if len(acked) == 0 {
		uc.recordSync("empty", 0)
		return 0, nil
	}

	if err := uc.ValidationRepo.MarkValidationsSynced(acked); err != nil {
		uc.recordSync("error", 0)
		return 0, err
	}

	if len(acked) < len(records) {
		slog.Warn("partial validation sync", "pushed", len(records), "acked", len(acked))
		uc.recordSync("partial", len(acked))
	} else {
		uc.recordSync("ok", len(acked))
	}
	return len(acked), nil
}

func (uc *DefaultValidationUsecase) Retention() (int64, error) {
	cutoff := time.Now().Add(-uc.RetentionAge)
	deleted, err := uc.ValidationRepo.DeleteSyncedBefore(cutoff)
	if err != nil {
		return 0, err
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordValidationRetention(deleted)
	}
	return deleted, nil
}

func (uc *DefaultValidationUsecase) Reconcile(inputs []*validationdto.ReconcileRecordInput) ([]string, error) {
	records := make([]*domain.MealValidation, 0, len(inputs))
	for _, in := range inputs {
		if in.ID == "" || in.RegistrationID == "" || in.MealSessionID == "" {
			continue
		}
		records = append(records, &domain.MealValidation{
			ID:             in.ID,
			RegistrationID: in.RegistrationID,
			MealSessionID:  in.MealSessionID,
			ValidatedAt:    in.ValidatedAt,
			ValidatedBy:    in.ValidatedBy,
			Synced:         true,
		})
	}
	if len(records) == 0 {
		return []string{}, nil
	}
	return uc.ValidationRepo.UpsertValidations(records)
}

func (uc *DefaultValidationUsecase) recordSync(result string, records int) {
	if uc.Metrics != nil {
		uc.Metrics.RecordValidationSync(result, records)
	}
}
