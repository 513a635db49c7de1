package payment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

// VerifyPayment asks the provider for the authoritative state of a reference
// and reconciles local state the same way a webhook would. Clients poll this
// from the payment callback page, so it has to be safe to call concurrently
// with webhook delivery for the same reference.
func (uc *DefaultPaymentUsecase) VerifyPayment(ctx context.Context, reference string) (*domain.PaymentTransaction, error) {
	transaction, err := uc.TransactionRepo.GetTransactionByReference(reference)
	if err != nil {
		return nil, err
	}

	// settled transactions do not need a round trip to the gateway
	if transaction.Status != domain.StatusPending {
		return transaction, nil
	}

	provider, err := uc.Registry.Provider(transaction.Provider)
	if err != nil {
		return nil, err
	}

	result := provider.VerifyTransaction(ctx, reference)
	if !result.Success {
		slog.Warn("verification request failed", "reference", reference, "error", result.Error)
		return transaction, nil
	}

	switch result.Status {
	case "success", "successful":
		err = uc.ApplyChargeSucceeded(&domain.WebhookEvent{
			Provider:  transaction.Provider,
			Kind:      domain.EventChargeSucceeded,
			Reference: reference,
			Amount:    result.Amount,
			Raw:       result.Data,
		})
	case "failed":
		err = uc.ApplyChargeFailed(&domain.WebhookEvent{
			Provider:      transaction.Provider,
			Kind:          domain.EventChargeFailed,
			Reference:     reference,
			FailureReason: "verification reported failure",
			Raw:           result.Data,
		})
	case "abandoned":
		err = uc.TransactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusPending, domain.StatusAbandoned)
		if errors.Is(err, domain.ErrStatusConflict) {
			err = nil
		}
	default:
		// still pending on the provider side
		return transaction, nil
	}
	if err != nil {
		return nil, err
	}

	return uc.TransactionRepo.GetTransactionByReference(reference)
}
