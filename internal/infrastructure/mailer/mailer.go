package mailer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Mailer posts rendered messages to the transactional email service.
type Mailer struct {
	address string
	from    string
	client  *http.Client
}

func NewMailer(address, from string) *Mailer {
	return &Mailer{
		address: address,
		from:    from,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *Mailer) Send(msg Message) error {
	body, err := json.Marshal(struct {
		From string `json:"from"`
		Message
	}{From: m.from, Message: msg})
	if err != nil {
		return err
	}

	response, err := m.client.Post(fmt.Sprintf("%s/send", m.address), "application/json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errResp errorResponse
	if err := json.NewDecoder(response.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("mailer returned status %d", response.StatusCode)
	}
	return errors.New(errResp.Error)
}

// SendPaymentConfirmation delivers the confirmation asynchronously. Delivery
// failures are logged, never surfaced to the payment flow.
func (m *Mailer) SendPaymentConfirmation(registration *domain.Registration, transaction *domain.PaymentTransaction) {
	go func() {
		html, err := renderPaymentConfirmation(registration, transaction)
		if err != nil {
			log.Printf("Failed to render payment confirmation for %s: %v", transaction.Reference, err)
			return
		}

		msg := Message{
			To:      registration.Email,
			Subject: "Payment Confirmation - North Central Education Summit",
			HTML:    html,
		}
		if err := m.Send(msg); err != nil {
			log.Printf("Failed to send payment confirmation for %s: %v", transaction.Reference, err)
		}
	}()
}
