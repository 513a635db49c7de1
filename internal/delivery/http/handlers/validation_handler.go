package handlers

import (
	"time"

	validationdto "github.com/Onahi7/Napps-summit/internal/usecase/dto/validation"
	"github.com/Onahi7/Napps-summit/internal/usecase/validation"
	"github.com/gofiber/fiber/v2"
)

type ValidationHandler struct {
	validationUC validation.ValidationUsecase
}

func NewValidationHandler(validationUC validation.ValidationUsecase) *ValidationHandler {
	return &ValidationHandler{validationUC: validationUC}
}

func (h *ValidationHandler) Store(c *fiber.Ctx) error {
	var body struct {
		RegistrationID string    `json:"registration_id"`
		MealSessionID  string    `json:"meal_session_id"`
		ValidatedAt    time.Time `json:"validated_at"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.RegistrationID == "" || body.MealSessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "registration_id and meal_session_id are required"})
	}

	validatedBy, _ := c.Locals("user_id").(string)
	record, err := h.validationUC.StoreValidation(&validationdto.StoreValidationInput{
		RegistrationID: body.RegistrationID,
		MealSessionID:  body.MealSessionID,
		ValidatedAt:    body.ValidatedAt,
		ValidatedBy:    validatedBy,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           record.ID,
		"validated_at": record.ValidatedAt,
		"synced":       record.Synced,
	})
}

// Sync triggers an immediate flush of the local queue. A flush already in
// progress yields synced=0.
func (h *ValidationHandler) Sync(c *fiber.Ctx) error {
	synced, err := h.validationUC.Sync()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"synced": synced})
}

// Reconcile absorbs a batch pushed by a validator device and echoes back the
// acknowledged ids.
func (h *ValidationHandler) Reconcile(c *fiber.Ctx) error {
	var body struct {
		Records []struct {
			ID             string    `json:"id"`
			RegistrationID string    `json:"registration_id"`
			MealSessionID  string    `json:"meal_session_id"`
			ValidatedAt    time.Time `json:"validated_at"`
			ValidatedBy    string    `json:"validated_by"`
		} `json:"records"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	inputs := make([]*validationdto.ReconcileRecordInput, 0, len(body.Records))
	for _, r := range body.Records {
		inputs = append(inputs, &validationdto.ReconcileRecordInput{
			ID:             r.ID,
			RegistrationID: r.RegistrationID,
			MealSessionID:  r.MealSessionID,
			ValidatedAt:    r.ValidatedAt,
			ValidatedBy:    r.ValidatedBy,
		})
	}

	acked, err := h.validationUC.Reconcile(inputs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"acknowledged": acked})
}
