package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
)

const (
	PaystackSignatureHeader    = "x-paystack-signature"
	FlutterwaveSignatureHeader = "verif-hash"
)

// SignatureHeader returns the header carrying the webhook signature for the
// named provider, or "" if the provider is unknown.
func SignatureHeader(provider string) string {
	switch provider {
	case ProviderPaystack:
		return PaystackSignatureHeader
	case ProviderFlutterwave:
		return FlutterwaveSignatureHeader
	}
	return ""
}

// VerifyWebhookSignature checks the provider signature over the raw request
// body. The body must be the exact bytes the provider signed, before any
// parsing. Missing secret or signature always fails.
func VerifyWebhookSignature(provider string, body []byte, secret, signature string) bool {
	switch provider {
	case ProviderPaystack:
		return verifyHMAC(sha512.New, body, secret, signature)
	case ProviderFlutterwave:
		return verifyHMAC(sha256.New, body, secret, signature)
	}
	return false
}

func verifyHMAC(algo func() hash.Hash, body []byte, secret, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(algo, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
