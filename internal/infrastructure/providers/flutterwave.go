package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

const (
	ProviderFlutterwave = "flutterwave"

	flutterwaveBaseURL = "https://api.flutterwave.com/v3"
)

// FlutterwaveProvider talks to the Flutterwave v3 API. Unlike Paystack,
// Flutterwave amounts are already in major units.
type FlutterwaveProvider struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewFlutterwaveProvider(cfg *domain.ProviderConfig) *FlutterwaveProvider {
	return &FlutterwaveProvider{
		secretKey: cfg.SecretKey,
		baseURL:   flutterwaveBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *FlutterwaveProvider) Name() string {
	return ProviderFlutterwave
}

func (p *FlutterwaveProvider) InitiatePayment(ctx context.Context, data domain.PaymentData) *domain.PaymentResult {
	meta := map[string]interface{}{"provider": ProviderFlutterwave}
	for k, v := range data.Metadata {
		meta[k] = v
	}

	body, err := p.makeRequest(ctx, http.MethodPost, "/payments", map[string]interface{}{
		"tx_ref":       data.Reference,
		"amount":       data.Amount,
		"currency":     "NGN",
		"redirect_url": data.CallbackURL,
		"customer": map[string]interface{}{
			"email": data.Email,
		},
		"meta": meta,
	})
	if err != nil {
		return &domain.PaymentResult{Success: false, Error: err.Error()}
	}

	return &domain.PaymentResult{
		Success:   true,
		Reference: data.Reference,
		Data:      responseData(body),
	}
}

func (p *FlutterwaveProvider) VerifyTransaction(ctx context.Context, reference string) *domain.VerificationResult {
	body, err := p.makeRequest(ctx, http.MethodGet, "/transactions/"+reference+"/verify", nil)
	if err != nil {
		return &domain.VerificationResult{Success: false, Status: "failed", Error: err.Error()}
	}

	data := responseData(body)
	status, _ := data["status"].(string)
	amount, _ := data["amount"].(float64)

	return &domain.VerificationResult{
		Success: true,
		Status:  status,
		Amount:  amount,
		Data:    data,
	}
}

func (p *FlutterwaveProvider) ProcessRefund(ctx context.Context, data domain.RefundData) *domain.RefundResult {
	body, err := p.makeRequest(ctx, http.MethodPost, "/transactions/refund", map[string]interface{}{
		"transaction_id": data.TransactionID,
		"amount":         data.Amount,
		"note":           data.Reason,
	})
	if err != nil {
		return &domain.RefundResult{Success: false, Error: err.Error()}
	}

	respData := responseData(body)
	reference, _ := respData["reference"].(string)

	return &domain.RefundResult{
		Success:   true,
		Reference: reference,
		Data:      respData,
	}
}

func (p *FlutterwaveProvider) makeRequest(ctx context.Context, method, endpoint string, payload interface{}) (map[string]interface{}, error) {
	return gatewayRequest(ctx, p.client, method, p.baseURL+endpoint, p.secretKey, payload)
}
