package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

const (
	ProviderPaystack = "paystack"

	paystackBaseURL = "https://api.paystack.co"
)

// PaystackProvider talks to the Paystack REST API. Paystack amounts are in
// kobo, so major-unit amounts are multiplied by 100 on the way out and
// divided on the way back.
type PaystackProvider struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystackProvider(cfg *domain.ProviderConfig) *PaystackProvider {
	return &PaystackProvider{
		secretKey: cfg.SecretKey,
		baseURL:   paystackBaseURL,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *PaystackProvider) Name() string {
	return ProviderPaystack
}

func (p *PaystackProvider) InitiatePayment(ctx context.Context, data domain.PaymentData) *domain.PaymentResult {
	metadata := map[string]interface{}{"provider": ProviderPaystack}
	for k, v := range data.Metadata {
		metadata[k] = v
	}

	body, err := p.makeRequest(ctx, http.MethodPost, "/transaction/initialize", map[string]interface{}{
		"email":        data.Email,
		"amount":       toKobo(data.Amount),
		"reference":    data.Reference,
		"callback_url": data.CallbackURL,
		"metadata":     metadata,
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

func (p *PaystackProvider) VerifyTransaction(ctx context.Context, reference string) *domain.VerificationResult {
	body, err := p.makeRequest(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return &domain.VerificationResult{Success: false, Status: "failed", Error: err.Error()}
	}

	data := responseData(body)
	status, _ := data["status"].(string)
	amount, _ := data["amount"].(float64)

	return &domain.VerificationResult{
		Success: true,
		Status:  status,
		Amount:  amount / 100,
		Data:    data,
	}
}

func (p *PaystackProvider) ProcessRefund(ctx context.Context, data domain.RefundData) *domain.RefundResult {
	body, err := p.makeRequest(ctx, http.MethodPost, "/refund", map[string]interface{}{
		"transaction":   data.TransactionID,
		"amount":        toKobo(data.Amount),
		"merchant_note": data.Reason,
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

func (p *PaystackProvider) makeRequest(ctx context.Context, method, endpoint string, payload interface{}) (map[string]interface{}, error) {
	return gatewayRequest(ctx, p.client, method, p.baseURL+endpoint, p.secretKey, payload)
}

func toKobo(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// gatewayRequest performs an authenticated JSON call and decodes the response
// envelope. Non-2xx responses are returned as errors carrying the gateway's
// message so adapters can fold them into canonical failure results.
func gatewayRequest(ctx context.Context, client *http.Client, method, url, secretKey string, payload interface{}) (map[string]interface{}, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var body map[string]interface{}
	if err := json.Unmarshal(respBytes, &body); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if msg, ok := body["message"].(string); ok && msg != "" {
			return nil, fmt.Errorf("gateway error: %s", msg)
		}
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}

	return body, nil
}

func responseData(body map[string]interface{}) map[string]interface{} {
	if data, ok := body["data"].(map[string]interface{}); ok {
		return data
	}
	return map[string]interface{}{}
}
