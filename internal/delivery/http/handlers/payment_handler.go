package handlers

import (
	"errors"

	"github.com/Onahi7/Napps-summit/internal/domain"
	paymentdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/payment"
	"github.com/Onahi7/Napps-summit/internal/usecase/payment"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentUC payment.PaymentUsecase
}

func NewPaymentHandler(paymentUC payment.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

func (h *PaymentHandler) Initiate(c *fiber.Ctx) error {
	var body struct {
		RegistrationID string  `json:"registration_id"`
		Email          string  `json:"email"`
		Amount         float64 `json:"amount"`
		Currency       string  `json:"currency"`
		Provider       string  `json:"provider"`
		CallbackURL    string  `json:"callback_url"`
		EventTitle     string  `json:"event_title"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.RegistrationID == "" || body.Email == "" || body.Provider == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "registration_id, email and provider are required"})
	}
	if body.Currency == "" {
		body.Currency = "NGN"
	}

	output, err := h.paymentUC.InitiatePayment(c.Context(), &paymentdto.InitiatePaymentInput{
		RegistrationID: body.RegistrationID,
		Email:          body.Email,
		Amount:         body.Amount,
		Currency:       body.Currency,
		Provider:       body.Provider,
		CallbackURL:    body.CallbackURL,
		EventTitle:     body.EventTitle,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRegistrationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrUnknownProvider), errors.Is(err, domain.ErrProviderNotConfigured):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(output)
}

func (h *PaymentHandler) Verify(c *fiber.Ctx) error {
	reference := c.Params("reference")
	transaction, err := h.paymentUC.VerifyPayment(c.Context(), reference)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transactionResponse(transaction))
}

func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	transaction, err := h.paymentUC.GetTransactionByReference(c.Params("reference"))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(transactionResponse(transaction))
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	filter := domain.TransactionFilter{
		Provider:       c.Query("provider"),
		Status:         domain.TransactionStatus(c.Query("status")),
		RegistrationID: c.Query("registration_id"),
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	transactions, total, err := h.paymentUC.ListTransactions(filter, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	items := make([]fiber.Map, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, transactionResponse(t))
	}
	return c.JSON(fiber.Map{
		"transactions": items,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

func (h *PaymentHandler) Refund(c *fiber.Ctx) error {
	var body struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	requestedBy, _ := c.Locals("user_email").(string)
	refund, err := h.paymentUC.RequestRefund(c.Context(), &paymentdto.RequestRefundInput{
		TransactionID: c.Params("id"),
		Amount:        body.Amount,
		Reason:        body.Reason,
		RequestedBy:   requestedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransactionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrRefundNotAllowed),
			errors.Is(err, domain.ErrRefundExceedsAmount),
			errors.Is(err, domain.ErrStatusConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"refund_id":      refund.ID,
		"transaction_id": refund.TransactionID,
		"amount":         refund.Amount,
		"status":         refund.Status,
	})
}

func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	receipt, err := h.paymentUC.GetReceipt(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(receipt)
}

func transactionResponse(t *domain.PaymentTransaction) fiber.Map {
	return fiber.Map{
		"id":                 t.ID,
		"reference":          t.Reference,
		"provider_reference": t.ProviderReference,
		"provider":           t.Provider,
		"amount":             t.Amount,
		"currency":           t.Currency,
		"status":             t.Status,
		"registration_id":    t.RegistrationID,
		"metadata":           t.Metadata,
		"created_at":         t.CreatedAt,
		"updated_at":         t.UpdatedAt,
	}
}
