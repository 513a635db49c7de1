package payment

import (
	"context"
	"testing"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRefundFixture(t *testing.T, provider *fakeProvider) *applyFixture {
	t.Helper()
	f := newApplyFixture(t)
	f.uc.Registry = &fakeRegistry{provider: provider}
	tx := f.seedPendingTransaction()
	require.NoError(t, f.transactions.UpdateTransactionStatus(tx.ID, domain.StatusPending, domain.StatusCompleted))
	require.NoError(t, f.transactions.SetProviderReference(tx.ID, "4099260516"))
	return f
}

func TestRequestRefund(t *testing.T) {
	provider := &fakeProvider{name: "paystack"}
	f := newRefundFixture(t, provider)

	refund, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{
		TransactionID: "tx-1",
		Reason:        "duplicate payment",
		RequestedBy:   "admin@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RefundPending, refund.Status)
	assert.Equal(t, 25000.0, refund.Amount, "zero amount defaults to the full transaction amount")
	assert.Equal(t, 1, provider.refundCalls)

	tx, _ := f.transactions.GetTransactionByID("tx-1")
	assert.Equal(t, domain.StatusRefundRequested, tx.Status)
	assert.Equal(t, "admin@example.com", tx.Metadata["refund_requested_by"])
}

func TestRequestRefund_NotCompleted(t *testing.T) {
	provider := &fakeProvider{name: "paystack"}
	f := newApplyFixture(t)
	f.uc.Registry = &fakeRegistry{provider: provider}
	f.seedPendingTransaction()

	_, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{
		TransactionID: "tx-1",
	})
	assert.ErrorIs(t, err, domain.ErrRefundNotAllowed)
	assert.Equal(t, 0, provider.refundCalls)
}

func TestRequestRefund_ExceedsAmount(t *testing.T) {
	f := newRefundFixture(t, &fakeProvider{name: "paystack"})

	_, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{
		TransactionID: "tx-1",
		Amount:        30000,
	})
	assert.ErrorIs(t, err, domain.ErrRefundExceedsAmount)
}

func TestRequestRefund_ProviderRejection(t *testing.T) {
	provider := &fakeProvider{
		name:   "paystack",
		refund: &domain.RefundResult{Success: false, Error: "Transaction not eligible"},
	}
	f := newRefundFixture(t, provider)

	_, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{
		TransactionID: "tx-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not eligible")

	// rejection reverts the claim so the refund can be retried later
	tx, _ := f.transactions.GetTransactionByID("tx-1")
	assert.Equal(t, domain.StatusCompleted, tx.Status)
}

func TestRequestRefund_RetryAfterRejection(t *testing.T) {
	provider := &fakeProvider{
		name:   "paystack",
		refund: &domain.RefundResult{Success: false, Error: "temporary failure"},
	}
	f := newRefundFixture(t, provider)

	_, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{TransactionID: "tx-1"})
	require.Error(t, err)

	provider.refund = &domain.RefundResult{Success: true, Reference: "refund-ref"}
	refund, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{TransactionID: "tx-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.RefundPending, refund.Status)

	tx, _ := f.transactions.GetTransactionByID("tx-1")
	assert.Equal(t, domain.StatusRefundRequested, tx.Status)
}

func TestRequestRefund_AlreadyCompleted(t *testing.T) {
	f := newRefundFixture(t, &fakeProvider{name: "paystack"})
	now := time.Now()
	f.refunds.CreateRefund(&domain.Refund{
		ID:            "ref-1",
		TransactionID: "tx-1",
		Amount:        25000,
		Status:        domain.RefundCompleted,
		ProcessedAt:   &now,
	})

	_, err := f.uc.RequestRefund(context.Background(), &paymentdto.RequestRefundInput{TransactionID: "tx-1"})
	assert.ErrorIs(t, err, domain.ErrRefundNotAllowed)
}
