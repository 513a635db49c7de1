package validation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	validationdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidationRepo struct {
	mu      sync.Mutex
	records map[string]*domain.MealValidation
}

func newFakeValidationRepo() *fakeValidationRepo {
	return &fakeValidationRepo{records: make(map[string]*domain.MealValidation)}
}

func (r *fakeValidationRepo) StoreValidation(record *domain.MealValidation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

func (r *fakeValidationRepo) GetUnsyncedValidations() ([]*domain.MealValidation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MealValidation
	for _, record := range r.records {
		if !record.Synced {
			clone := *record
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeValidationRepo) MarkValidationsSynced(ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if record, ok := r.records[id]; ok {
			record.Synced = true
		}
	}
	return nil
}

func (r *fakeValidationRepo) DeleteSyncedBefore(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, record := range r.records {
		if record.Synced && record.ValidatedAt.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeValidationRepo) UpsertValidations(records []*domain.MealValidation) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acked := make([]string, 0, len(records))
	for _, record := range records {
		if _, exists := r.records[record.ID]; !exists {
			clone := *record
			r.records[record.ID] = &clone
		}
		acked = append(acked, record.ID)
	}
	return acked, nil
}

func (r *fakeValidationRepo) syncedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, record := range r.records {
		if record.Synced {
			n++
		}
	}
	return n
}

func seedUnsynced(repo *fakeValidationRepo, ids ...string) {
	for _, id := range ids {
		repo.StoreValidation(&domain.MealValidation{
			ID:             id,
			RegistrationID: "reg-1",
			MealSessionID:  "lunch-day1",
			ValidatedAt:    time.Now().Add(-time.Hour),
			ValidatedBy:    "validator-1",
		})
	}
}

func ackAll(records []*domain.MealValidation) ([]string, error) {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func TestStoreValidation(t *testing.T) {
	repo := newFakeValidationRepo()
	uc := NewDefaultValidationUsecase(repo, ackAll, 7*24*time.Hour, nil)

	record, err := uc.StoreValidation(&validationdto.StoreValidationInput{
		RegistrationID: "reg-1",
		MealSessionID:  "lunch-day1",
		ValidatedBy:    "validator-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.Synced)
	assert.False(t, record.ValidatedAt.IsZero())
}

func TestSync_MarksAckedRecords(t *testing.T) {
	repo := newFakeValidationRepo()
	uc := NewDefaultValidationUsecase(repo, ackAll, 7*24*time.Hour, nil)
	seedUnsynced(repo, "v1", "v2", "v3")

	synced, err := uc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 3, synced)
	assert.Equal(t, 3, repo.syncedCount())
}

func TestSync_PartialAck(t *testing.T) {
	repo := newFakeValidationRepo()
	push := func(records []*domain.MealValidation) ([]string, error) {
		// server only acknowledged the first record
		return []string{records[0].ID}, nil
	}
	uc := NewDefaultValidationUsecase(repo, push, 7*24*time.Hour, nil)
	seedUnsynced(repo, "v1", "v2", "v3")

	synced, err := uc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
	assert.Equal(t, 1, repo.syncedCount(), "unacked records stay queued")
}

func TestSync_PushErrorMarksNothing(t *testing.T) {
	repo := newFakeValidationRepo()
	push := func(records []*domain.MealValidation) ([]string, error) {
		return nil, errors.New("upstream unreachable")
	}
	uc := NewDefaultValidationUsecase(repo, push, 7*24*time.Hour, nil)
	seedUnsynced(repo, "v1", "v2")

	_, err := uc.Sync()
	assert.Error(t, err)
	assert.Equal(t, 0, repo.syncedCount())
}

func TestSync_EmptyQueue(t *testing.T) {
	repo := newFakeValidationRepo()
	pushed := false
	push := func(records []*domain.MealValidation) ([]string, error) {
		pushed = true
		return ackAll(records)
	}
	uc := NewDefaultValidationUsecase(repo, push, 7*24*time.Hour, nil)

	synced, err := uc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 0, synced)
	assert.False(t, pushed)
}

func TestSync_SingleFlight(t *testing.T) {
	repo := newFakeValidationRepo()
	seedUnsynced(repo, "v1")

	started := make(chan struct{})
	release := make(chan struct{})
	push := func(records []*domain.MealValidation) ([]string, error) {
		close(started)
		<-release
		return ackAll(records)
	}
	uc := NewDefaultValidationUsecase(repo, push, 7*24*time.Hour, nil)

	done := make(chan int)
	go func() {
		synced, _ := uc.Sync()
		done <- synced
	}()

	<-started
	// overlapping call returns immediately without touching the queue
	synced, err := uc.Sync()
	require.NoError(t, err)
	assert.Equal(t, 0, synced)

	close(release)
	assert.Equal(t, 1, <-done)
}

func TestRetention_DeletesOldSynced(t *testing.T) {
	repo := newFakeValidationRepo()
	uc := NewDefaultValidationUsecase(repo, ackAll, 7*24*time.Hour, nil)

	repo.StoreValidation(&domain.MealValidation{
		ID:          "old-synced",
		ValidatedAt: time.Now().Add(-8 * 24 * time.Hour),
		Synced:      true,
	})
	repo.StoreValidation(&domain.MealValidation{
		ID:          "old-unsynced",
		ValidatedAt: time.Now().Add(-8 * 24 * time.Hour),
		Synced:      false,
	})
	repo.StoreValidation(&domain.MealValidation{
		ID:          "fresh-synced",
		ValidatedAt: time.Now(),
		Synced:      true,
	})

	deleted, err := uc.Retention()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, _ := repo.GetUnsyncedValidations()
	assert.Len(t, remaining, 1, "unsynced records survive retention regardless of age")
}

func TestReconcile(t *testing.T) {
	repo := newFakeValidationRepo()
	uc := NewDefaultValidationUsecase(repo, ackAll, 7*24*time.Hour, nil)

	acked, err := uc.Reconcile([]*validationdto.ReconcileRecordInput{
		{ID: "v1", RegistrationID: "reg-1", MealSessionID: "lunch-day1", ValidatedAt: time.Now()},
		{ID: "v2", RegistrationID: "reg-2", MealSessionID: "lunch-day1", ValidatedAt: time.Now()},
		{ID: "", RegistrationID: "reg-3", MealSessionID: "lunch-day1"},
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"v1", "v2"}, acked, "incomplete records are dropped, not acknowledged")
}

func TestReconcile_ReplayedBatch(t *testing.T) {
	repo := newFakeValidationRepo()
	uc := NewDefaultValidationUsecase(repo, ackAll, 7*24*time.Hour, nil)

	batch := []*validationdto.ReconcileRecordInput{
		{ID: "v1", RegistrationID: "reg-1", MealSessionID: "lunch-day1", ValidatedAt: time.Now()},
	}
	first, err := uc.Reconcile(batch)
	require.NoError(t, err)
	second, err := uc.Reconcile(batch)
	require.NoError(t, err)

	assert.Equal(t, first, second, "replayed batches are fully re-acknowledged")
}
