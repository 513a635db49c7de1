package payment

import (
	"context"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/kafka"
	"github.com/Onahi7/Napps-summit/internal/infrastructure/metrics"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error)
	VerifyPayment(ctx context.Context, reference string) (*domain.PaymentTransaction, error)
	RequestRefund(ctx context.Context, input *paymentdto.RequestRefundInput) (*domain.Refund, error)

	ApplyChargeSucceeded(event *domain.WebhookEvent) error
	ApplyChargeFailed(event *domain.WebhookEvent) error
	ApplyRefundCompleted(event *domain.WebhookEvent) error

	GetTransactionByReference(reference string) (*domain.PaymentTransaction, error)
	ListTransactions(filter domain.TransactionFilter, page, limit int) ([]*domain.PaymentTransaction, int64, error)
	GetReceipt(transactionID string) (*paymentdto.ReceiptOutput, error)
}

// EventPublisher is the port for the payment event stream.
type EventPublisher interface {
	Publish(event kafka.PaymentEvent) error
}

// ConfirmationSender delivers payment confirmations, fire-and-forget.
type ConfirmationSender interface {
	SendPaymentConfirmation(registration *domain.Registration, transaction *domain.PaymentTransaction)
}

type DefaultPaymentUsecase struct {
	TransactionRepo  domain.TransactionRepository
	RegistrationRepo domain.RegistrationRepository
	RefundRepo       domain.RefundRepository
	Registry         domain.ProviderRegistry
	Publisher        EventPublisher
	Mailer           ConfirmationSender
	Metrics          *metrics.PaymentMetrics
}

func NewDefaultPaymentUsecase(
	transactionRepo domain.TransactionRepository,
	registrationRepo domain.RegistrationRepository,
	refundRepo domain.RefundRepository,
	registry domain.ProviderRegistry,
	publisher EventPublisher,
	confirmationMailer ConfirmationSender,
	paymentMetrics *metrics.PaymentMetrics) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		TransactionRepo:  transactionRepo,
		RegistrationRepo: registrationRepo,
		RefundRepo:       refundRepo,
		Registry:         registry,
		Publisher:        publisher,
		Mailer:           confirmationMailer,
		Metrics:          paymentMetrics,
	}
}
