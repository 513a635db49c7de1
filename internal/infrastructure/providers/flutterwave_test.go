package providers

import (
	"context"
	"testing"

	"github.com/Onahi7/Napps-summit/internal/domain"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
)

func newTestFlutterwave() *FlutterwaveProvider {
	return NewFlutterwaveProvider(&domain.ProviderConfig{SecretKey: "FLWSECK_TEST-key"})
}

func TestFlutterwaveInitiatePayment(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.flutterwave.com").
		Post("/v3/payments").
		MatchHeader("Authorization", "Bearer FLWSECK_TEST-key").
		Reply(200).
		JSON(map[string]interface{}{
			"status": "success",
			"data": map[string]interface{}{
				"link": "https://checkout.flutterwave.com/pay/xyz",
			},
		})

	result := newTestFlutterwave().InitiatePayment(context.Background(), domain.PaymentData{
		Amount:      25000,
		Email:       "delegate@example.com",
		Reference:   "NCES-xyz789",
		CallbackURL: "https://summit.example.com/payment/callback",
	})

	assert.True(t, result.Success)
	assert.Equal(t, "https://checkout.flutterwave.com/pay/xyz", result.Data["link"])
	assert.True(t, gock.IsDone())
}

func TestFlutterwaveVerifyTransaction(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.flutterwave.com").
		Get("/v3/transactions/NCES-xyz789/verify").
		Reply(200).
		JSON(map[string]interface{}{
			"status": "success",
			"data": map[string]interface{}{
				"status": "successful",
				"amount": 25000,
			},
		})

	result := newTestFlutterwave().VerifyTransaction(context.Background(), "NCES-xyz789")

	assert.True(t, result.Success)
	assert.Equal(t, "successful", result.Status)
	assert.Equal(t, 25000.0, result.Amount)
}

func TestFlutterwaveProcessRefund_GatewayError(t *testing.T) {
	defer gock.Off()

	gock.New("https://api.flutterwave.com").
		Post("/v3/transactions/refund").
		Reply(400).
		JSON(map[string]interface{}{
			"status":  "error",
			"message": "Transaction not eligible for refund",
		})

	result := newTestFlutterwave().ProcessRefund(context.Background(), domain.RefundData{
		TransactionID: "285959875",
		Amount:        25000,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not eligible")
}
