package mailer

import (
	"bytes"
	"html/template"

	"github.com/Onahi7/Napps-summit/internal/domain"
)

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`
<html>
  <body>
    <h2>Payment Received</h2>
    <p>Dear {{.Name}},</p>
    <p>We have received your payment of {{.Currency}} {{printf "%.2f" .Amount}} for the
    North Central Education Summit.</p>
    <p>Payment reference: <strong>{{.Reference}}</strong></p>
    <p>Your registration has been approved. We look forward to seeing you at the summit.</p>
  </body>
</html>
`))

type paymentConfirmationData struct {
	Name      string
	Amount    float64
	Currency  string
	Reference string
}

func renderPaymentConfirmation(registration *domain.Registration, transaction *domain.PaymentTransaction) (string, error) {
	var buf bytes.Buffer
	err := paymentConfirmationTmpl.Execute(&buf, paymentConfirmationData{
		Name:      registration.FullName,
		Amount:    transaction.Amount,
		Currency:  transaction.Currency,
		Reference: transaction.Reference,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
