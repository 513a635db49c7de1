package payment

import (
	"context"
	"sync"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/kafka"
)

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]*domain.PaymentTransaction
	byReference  map[string]string
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]*domain.PaymentTransaction),
		byReference:  make(map[string]string),
	}
}

func (r *fakeTransactionRepo) CreateTransaction(tx *domain.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *tx
	r.transactions[tx.ID] = &clone
	r.byReference[tx.Reference] = tx.ID
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(id string) (*domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	clone := *tx
	return &clone, nil
}

func (r *fakeTransactionRepo) GetTransactionByReference(reference string) (*domain.PaymentTransaction, error) {
	r.mu.Lock()
	id, ok := r.byReference[reference]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return r.GetTransactionByID(id)
}

func (r *fakeTransactionRepo) UpdateTransactionStatus(id string, from, to domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if tx.Status != from {
		return domain.ErrStatusConflict
	}
	tx.Status = to
	tx.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTransactionRepo) SetProviderReference(id, providerReference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if tx.ProviderReference != "" && tx.ProviderReference != providerReference {
		return domain.ErrStatusConflict
	}
	tx.ProviderReference = providerReference
	return nil
}

func (r *fakeTransactionRepo) AppendMetadata(id string, patch map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}
	if tx.Metadata == nil {
		tx.Metadata = make(map[string]interface{})
	}
	for k, v := range patch {
		tx.Metadata[k] = v
	}
	return nil
}

func (r *fakeTransactionRepo) GetTransactions(filter domain.TransactionFilter, page, limit int) ([]*domain.PaymentTransaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.PaymentTransaction
	for _, tx := range r.transactions {
		if filter.Provider != "" && tx.Provider != filter.Provider {
			continue
		}
		if filter.Status != "" && tx.Status != filter.Status {
			continue
		}
		if filter.RegistrationID != "" && tx.RegistrationID != filter.RegistrationID {
			continue
		}
		clone := *tx
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type fakeRegistrationRepo struct {
	mu            sync.Mutex
	registrations map[string]*domain.Registration
	markPaidCalls int
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[string]*domain.Registration)}
}

func (r *fakeRegistrationRepo) GetRegistrationByID(id string) (*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	clone := *reg
	return &clone, nil
}

func (r *fakeRegistrationRepo) MarkRegistrationPaid(id, paymentReference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	r.markPaidCalls++
	reg.PaymentStatus = domain.PaymentPaid
	reg.PaymentReference = paymentReference
	reg.Status = domain.RegistrationApproved
	return nil
}

func (r *fakeRegistrationRepo) GetRegistrationsByPhone(phone string) ([]*domain.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Registration
	for _, reg := range r.registrations {
		if reg.Phone == phone {
			clone := *reg
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeRefundRepo struct {
	mu      sync.Mutex
	refunds map[string]*domain.Refund
}

func newFakeRefundRepo() *fakeRefundRepo {
	return &fakeRefundRepo{refunds: make(map[string]*domain.Refund)}
}

func (r *fakeRefundRepo) CreateRefund(refund *domain.Refund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *refund
	r.refunds[refund.ID] = &clone
	return nil
}

func (r *fakeRefundRepo) GetRefundByID(id string) (*domain.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	refund, ok := r.refunds[id]
	if !ok {
		return nil, domain.ErrRefundNotFound
	}
	clone := *refund
	return &clone, nil
}

func (r *fakeRefundRepo) GetRefundByTransactionID(transactionID string) (*domain.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, refund := range r.refunds {
		if refund.TransactionID == transactionID {
			clone := *refund
			return &clone, nil
		}
	}
	return nil, domain.ErrRefundNotFound
}

func (r *fakeRefundRepo) CompleteRefund(id, providerReference string, processedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	refund, ok := r.refunds[id]
	if !ok {
		return domain.ErrRefundNotFound
	}
	if refund.Status != domain.RefundPending {
		return nil
	}
	refund.Status = domain.RefundCompleted
	refund.ProviderReference = providerReference
	refund.ProcessedAt = &processedAt
	return nil
}

type fakeProvider struct {
	name          string
	initiate      *domain.PaymentResult
	verify        *domain.VerificationResult
	refund        *domain.RefundResult
	refundCalls   int
	initiateCalls int
	verifyCalls   int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) InitiatePayment(ctx context.Context, data domain.PaymentData) *domain.PaymentResult {
	p.initiateCalls++
	if p.initiate != nil {
		return p.initiate
	}
	return &domain.PaymentResult{Success: true, Reference: data.Reference, Data: map[string]interface{}{}}
}

func (p *fakeProvider) VerifyTransaction(ctx context.Context, reference string) *domain.VerificationResult {
	p.verifyCalls++
	if p.verify != nil {
		return p.verify
	}
	return &domain.VerificationResult{Success: true, Status: "pending"}
}

func (p *fakeProvider) ProcessRefund(ctx context.Context, data domain.RefundData) *domain.RefundResult {
	p.refundCalls++
	if p.refund != nil {
		return p.refund
	}
	return &domain.RefundResult{Success: true, Reference: "refund-ref"}
}

type fakeRegistry struct {
	provider domain.PaymentProvider
	config   *domain.ProviderConfig
}

func (r *fakeRegistry) ActiveConfig(provider string) (*domain.ProviderConfig, error) {
	if r.config == nil {
		return nil, domain.ErrProviderNotConfigured
	}
	return r.config, nil
}

func (r *fakeRegistry) Provider(provider string) (domain.PaymentProvider, error) {
	if r.provider == nil {
		return nil, domain.ErrProviderNotConfigured
	}
	return r.provider, nil
}

func (r *fakeRegistry) Invalidate(provider string) {}

type capturingPublisher struct {
	events chan kafka.PaymentEvent
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{events: make(chan kafka.PaymentEvent, 10)}
}

func (p *capturingPublisher) Publish(event kafka.PaymentEvent) error {
	p.events <- event
	return nil
}

func (p *capturingPublisher) waitForEvent(timeout time.Duration) (kafka.PaymentEvent, bool) {
	select {
	case event := <-p.events:
		return event, true
	case <-time.After(timeout):
		return kafka.PaymentEvent{}, false
	}
}

type countingMailer struct {
	mu    sync.Mutex
	sends int
}

func (m *countingMailer) SendPaymentConfirmation(registration *domain.Registration, transaction *domain.PaymentTransaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends++
}

func (m *countingMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sends
}
