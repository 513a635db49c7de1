package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
)

func (uc *DefaultPaymentUsecase) GetTransactionByReference(reference string) (*domain.PaymentTransaction, error) {
	return uc.TransactionRepo.GetTransactionByReference(reference)
}

func (uc *DefaultPaymentUsecase) ListTransactions(filter domain.TransactionFilter, page, limit int) ([]*domain.PaymentTransaction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.TransactionRepo.GetTransactions(filter, page, limit)
}

// GetReceipt builds a receipt for a completed transaction. The receipt number
// is derived from the payment reference so the same transaction always yields
// the same receipt.
func (uc *DefaultPaymentUsecase) GetReceipt(transactionID string) (*paymentdto.ReceiptOutput, error) {
	transaction, err := uc.TransactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.Status != domain.StatusCompleted && transaction.Status != domain.StatusRefundRequested {
		return nil, fmt.Errorf("receipt unavailable: transaction is %s", transaction.Status)
	}

	registration, err := uc.RegistrationRepo.GetRegistrationByID(transaction.RegistrationID)
	if err != nil {
		return nil, err
	}

	paymentDate := transaction.UpdatedAt
	if completedAt, ok := transaction.Metadata["completed_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, completedAt); err == nil {
			paymentDate = parsed
		}
	}

	return &paymentdto.ReceiptOutput{
		ReceiptNumber:    "RCP-" + strings.TrimPrefix(transaction.Reference, "NCES-"),
		PaymentReference: transaction.Reference,
		PaymentDate:      paymentDate.Format("2006-01-02"),
		Amount:           transaction.Amount,
		Currency:         transaction.Currency,
		Status:           string(transaction.Status),
		ParticipantName:  registration.FullName,
		ParticipantEmail: registration.Email,
	}, nil
}
