package routes

import (
	"github.com/Onahi7/Napps-summit/internal/delivery/http/handlers"
	"github.com/Onahi7/Napps-summit/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Webhook    *handlers.WebhookHandler
	Payment    *handlers.PaymentHandler
	Validation *handlers.ValidationHandler
	Config     *handlers.ConfigHandler
}

// Register wires all HTTP routes. The webhook endpoint is the only
// unauthenticated write path; it authenticates via the provider signature.
func Register(app *fiber.App, h Handlers, authServiceURL string) {
	authRequired := middleware.AuthRequired(authServiceURL)
	adminOnly := middleware.RequireRole("admin")

	app.Post("/webhooks/payment", h.Webhook.HandlePaymentWebhook)

	api := app.Group("/api")

	payments := api.Group("/payments")
	payments.Post("/initiate", authRequired, h.Payment.Initiate)
	payments.Get("/verify/:reference", h.Payment.Verify)
	payments.Get("/", authRequired, adminOnly, h.Payment.List)
	payments.Get("/:reference", authRequired, h.Payment.Get)
	payments.Post("/:id/refund", authRequired, adminOnly, h.Payment.Refund)
	payments.Get("/:id/receipt", authRequired, h.Payment.Receipt)

	validations := api.Group("/validations", authRequired)
	validations.Post("/", h.Validation.Store)
	validations.Post("/sync", h.Validation.Sync)
	validations.Post("/reconcile", h.Validation.Reconcile)

	configs := api.Group("/admin/payment-configs", authRequired, adminOnly)
	configs.Get("/", h.Config.List)
	configs.Post("/", h.Config.Save)
}
