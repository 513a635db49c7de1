package payment

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/kafka"
)

// ApplyChargeSucceeded reconciles a successful charge event against local
// state. The transition pending->completed happens at most once no matter how
// many times the provider redelivers the event; side effects (email, stream
// event, counters) fire only on the delivery that actually transitioned the
// row. The registration update is repaired on every delivery, so a crash
// between the two writes heals itself on the next redelivery.
func (uc *DefaultPaymentUsecase) ApplyChargeSucceeded(event *domain.WebhookEvent) error {
	transaction, err := uc.TransactionRepo.GetTransactionByReference(event.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			uc.recordReconciliationError(event)
			return fmt.Errorf("charge succeeded for unknown reference %s: %w", event.Reference, err)
		}
		return err
	}

	transitioned := false
	err = uc.TransactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusPending, domain.StatusCompleted)
	switch {
	case err == nil:
		transitioned = true
	case errors.Is(err, domain.ErrStatusConflict):
		current, readErr := uc.TransactionRepo.GetTransactionByID(transaction.ID)
		if readErr != nil {
			return readErr
		}
		if current.Status != domain.StatusCompleted {
			uc.recordReconciliationError(event)
			return fmt.Errorf("charge succeeded for %s but transaction is %s: %w",
				event.Reference, current.Status, domain.ErrStatusConflict)
		}
		slog.Info("duplicate charge.success delivery", "reference", event.Reference)
	default:
		return err
	}

	if event.ProviderReference != "" {
		if err := uc.TransactionRepo.SetProviderReference(transaction.ID, event.ProviderReference); err != nil {
			slog.Warn("provider reference mismatch on redelivery",
				"reference", event.Reference, "error", err.Error())
		}
	}

	if transitioned {
		patch := map[string]interface{}{
			"completed_at": time.Now().Format(time.RFC3339),
		}
		if event.Raw != nil {
			patch["provider_data"] = event.Raw
		}
		if err := uc.TransactionRepo.AppendMetadata(transaction.ID, patch); err != nil {
			slog.Warn("failed to append completion metadata", "reference", event.Reference, "error", err.Error())
		}
		if uc.Metrics != nil {
			uc.Metrics.RecordTransactionCompleted(transaction.Provider, transaction.Currency, transaction.Amount)
		}
	}

	registration, err := uc.RegistrationRepo.GetRegistrationByID(transaction.RegistrationID)
	if err != nil {
		uc.recordReconciliationError(event)
		return fmt.Errorf("completed transaction %s has no registration: %w", event.Reference, err)
	}

	if registration.PaymentStatus != domain.PaymentPaid {
		if err := uc.RegistrationRepo.MarkRegistrationPaid(registration.ID, transaction.Reference); err != nil {
			return fmt.Errorf("failed to mark registration %s paid: %w", registration.ID, err)
		}
	}

	if transitioned {
		if uc.Mailer != nil {
			uc.Mailer.SendPaymentConfirmation(registration, transaction)
		}
		uc.publishPaymentEvent(transaction, domain.StatusCompleted)
	}

	return nil
}

// ApplyChargeFailed moves a pending transaction to failed and records the
// provider's reason. Failure events for transactions that already settled are
// logged and dropped: a late failure must never claw back a completed payment.
func (uc *DefaultPaymentUsecase) ApplyChargeFailed(event *domain.WebhookEvent) error {
	transaction, err := uc.TransactionRepo.GetTransactionByReference(event.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			uc.recordReconciliationError(event)
			return fmt.Errorf("charge failed for unknown reference %s: %w", event.Reference, err)
		}
		return err
	}

	err = uc.TransactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusPending, domain.StatusFailed)
	if errors.Is(err, domain.ErrStatusConflict) {
		slog.Info("ignoring charge failure for settled transaction",
			"reference", event.Reference, "status", string(transaction.Status))
		return nil
	}
	if err != nil {
		return err
	}

	patch := map[string]interface{}{
		"failed_at": time.Now().Format(time.RFC3339),
	}
	if event.FailureReason != "" {
		patch["failure_reason"] = event.FailureReason
	}
	if err := uc.TransactionRepo.AppendMetadata(transaction.ID, patch); err != nil {
		slog.Warn("failed to append failure metadata", "reference", event.Reference, "error", err.Error())
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordTransactionFailed(transaction.Provider)
	}
	uc.publishPaymentEvent(transaction, domain.StatusFailed)
	return nil
}

// ApplyRefundCompleted settles a refund the provider confirmed. An event with
// no matching local refund is acknowledged without changes: refunds are only
// ever created locally, so the provider is echoing something we already
// abandoned or that belongs to another system.
func (uc *DefaultPaymentUsecase) ApplyRefundCompleted(event *domain.WebhookEvent) error {
	transaction, err := uc.TransactionRepo.GetTransactionByReference(event.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			uc.recordReconciliationError(event)
			return fmt.Errorf("refund completed for unknown reference %s: %w", event.Reference, err)
		}
		return err
	}

	refund, err := uc.RefundRepo.GetRefundByTransactionID(transaction.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRefundNotFound) {
			slog.Info("refund event without local refund record", "reference", event.Reference)
			return nil
		}
		return err
	}

	if err := uc.RefundRepo.CompleteRefund(refund.ID, event.ProviderReference, time.Now()); err != nil {
		return err
	}

	err = uc.TransactionRepo.UpdateTransactionStatus(transaction.ID, domain.StatusRefundRequested, domain.StatusRefundCompleted)
	if errors.Is(err, domain.ErrStatusConflict) {
		slog.Info("duplicate refund.completed delivery", "reference", event.Reference)
		return nil
	}
	if err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordRefundCompleted(transaction.Provider)
	}
	uc.publishPaymentEvent(transaction, domain.StatusRefundCompleted)
	return nil
}

func (uc *DefaultPaymentUsecase) recordReconciliationError(event *domain.WebhookEvent) {
	if uc.Metrics != nil {
		uc.Metrics.RecordReconciliationError(event.Provider, string(event.Kind))
	}
}

func (uc *DefaultPaymentUsecase) publishPaymentEvent(transaction *domain.PaymentTransaction, status domain.TransactionStatus) {
	if uc.Publisher == nil {
		return
	}
	go func() {
		err := uc.Publisher.Publish(kafka.PaymentEvent{
			Reference:      transaction.Reference,
			Provider:       transaction.Provider,
			Status:         string(status),
			Amount:         transaction.Amount,
			Currency:       transaction.Currency,
			RegistrationID: transaction.RegistrationID,
		})
		if err != nil {
			slog.Error("failed to publish payment event", "reference", transaction.Reference, "error", err.Error())
		}
	}()
}
