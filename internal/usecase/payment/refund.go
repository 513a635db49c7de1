package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
	"github.com/google/uuid"
)

// RequestRefund moves a completed transaction to refund_requested and submits
// the refund to the provider. A provider rejection reverts the transaction to
// completed so the admin can retry later; the provider's asynchronous
// refund.completed webhook finishes the cycle.
func (uc *DefaultPaymentUsecase) RequestRefund(ctx context.Context, input *paymentdto.RequestRefundInput) (*domain.Refund, error) {
	transaction, err := uc.TransactionRepo.GetTransactionByID(input.TransactionID)
	if err != nil {
		return nil, err
	}

	if transaction.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrRefundNotAllowed, transaction.Status)
	}

	amount := input.Amount
	if amount == 0 {
		amount = transaction.Amount
	}
	if amount < 0 || amount > transaction.Amount {
		return nil, domain.ErrRefundExceedsAmount
	}

	// a pending refund left behind by an earlier rejected submission is
	// reused; a completed one means the money already went back
	refund, err := uc.RefundRepo.GetRefundByTransactionID(transaction.ID)
	switch {
	case err == nil:
		if refund.Status == domain.RefundCompleted {
			return nil, fmt.Errorf("%w: refund %s already completed", domain.ErrRefundNotAllowed, refund.ID)
		}
	case errors.Is(err, domain.ErrRefundNotFound):
		refund = nil
	default:
		return nil, err
	}

	// claim the transaction before talking to the gateway so two concurrent
	// admins cannot both submit a refund
	if err := uc.TransactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusCompleted, domain.StatusRefundRequested); err != nil {
		return nil, err
	}

	if refund == nil {
		refund = &domain.Refund{
			ID:            uuid.New().String(),
			TransactionID: transaction.ID,
			Amount:        amount,
			Status:        domain.RefundPending,
			Reason:        input.Reason,
			CreatedAt:     time.Now(),
		}
		if err := uc.RefundRepo.CreateRefund(refund); err != nil {
			uc.revertRefundRequest(transaction.ID)
			return nil, err
		}
	}

	provider, err := uc.Registry.Provider(transaction.Provider)
	if err != nil {
		uc.revertRefundRequest(transaction.ID)
		return nil, err
	}

	result := provider.ProcessRefund(ctx, domain.RefundData{
		TransactionID: transaction.ProviderReference,
		Amount:        amount,
		Reason:        input.Reason,
	})
	if !result.Success {
		uc.revertRefundRequest(transaction.ID)
		return nil, fmt.Errorf("provider rejected refund: %s", result.Error)
	}

	if err := uc.TransactionRepo.AppendMetadata(transaction.ID, map[string]interface{}{
		"refund_requested_at": time.Now().Format(time.RFC3339),
		"refund_requested_by": input.RequestedBy,
		"refund_reason":       input.Reason,
	}); err != nil {
		slog.Warn("failed to append refund metadata", "transaction_id", transaction.ID, "error", err.Error())
	}

	return refund, nil
}

func (uc *DefaultPaymentUsecase) revertRefundRequest(transactionID string) {
	if err := uc.TransactionRepo.UpdateTransactionStatus(transactionID, domain.StatusRefundRequested, domain.StatusCompleted); err != nil {
		slog.Error("failed to revert refund request", "transaction_id", transactionID, "error", err.Error())
	}
}
