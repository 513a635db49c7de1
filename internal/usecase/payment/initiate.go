package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// InitiatePayment creates a pending transaction with a fresh reference and
// asks the provider for an authorization. The reference is generated before
// the provider is contacted so webhooks can always be matched back.
func (uc *DefaultPaymentUsecase) InitiatePayment(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error) {
	registration, err := uc.RegistrationRepo.GetRegistrationByID(input.RegistrationID)
	if err != nil {
		return nil, err
	}

	if input.Amount <= 0 {
		return nil, errors.New("payment amount must be positive")
	}

	provider, err := uc.Registry.Provider(input.Provider)
	if err != nil {
		return nil, err
	}

	idGenerator, err := nanoid.Standard(16)
	if err != nil {
		return nil, err
	}
	reference := fmt.Sprintf("NCES-%s", idGenerator())

	transaction := &domain.PaymentTransaction{
		ID:             uuid.New().String(),
		Reference:      reference,
		Provider:       input.Provider,
		Amount:         input.Amount,
		Currency:       input.Currency,
		Status:         domain.StatusPending,
		RegistrationID: registration.ID,
		Metadata: map[string]interface{}{
			"event_title":  input.EventTitle,
			"initiated_at": time.Now().Format(time.RFC3339),
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uc.TransactionRepo.CreateTransaction(transaction); err != nil {
		return nil, err
	}

	result := provider.InitiatePayment(ctx, domain.PaymentData{
		Amount:      input.Amount,
		Email:       input.Email,
		Reference:   reference,
		CallbackURL: input.CallbackURL,
		Metadata: map[string]interface{}{
			"registration_id": registration.ID,
			"event_title":     input.EventTitle,
		},
	})
	if !result.Success {
		// transaction stays pending; the client may retry initiation with a
		// new reference while this one ages out
		uc.TransactionRepo.AppendMetadata(transaction.ID, map[string]interface{}{
			"initiation_error": result.Error,
		})
		return nil, fmt.Errorf("payment initiation failed: %s", result.Error)
	}

	return &paymentdto.InitiatePaymentOutput{
		Reference:     reference,
		Provider:      input.Provider,
		Authorization: result.Data,
	}, nil
}
