// Package mailer implements the order notification sink: it renders and
// sends the customer confirmation and the store owner notification through
// the Resend API.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/notify"
)

var (
	errMissingCustomerEmail = errors.New("mailer: customer email is required")
	errNoItems              = errors.New("mailer: order has no items")
)

// Mailer sends both order emails. A call only succeeds when BOTH deliveries
// are accepted by the provider; a failure on either side fails the call and
// the caller reports sink failure upstream.
type Mailer struct {
	resend     *ResendClient
	from       string
	ownerEmail string
	logger     *zap.Logger
}

func New(resend *ResendClient, from, ownerEmail string, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{resend: resend, from: from, ownerEmail: ownerEmail, logger: logger}
}

// SendOrderEmails delivers the confirmation to the customer and the
// notification to the store owner, returning both delivery ids.
func (m *Mailer) SendOrderEmails(ctx context.Context, req notify.OrderEmail) (notify.Receipt, error) {
	if req.CustomerInfo.Email == "" {
		return notify.Receipt{}, errMissingCustomerEmail
	}
	if len(req.CartItems) == 0 {
		return notify.Receipt{}, errNoItems
	}

	customerHTML, err := render(customerEmailTmpl, req)
	if err != nil {
		return notify.Receipt{}, fmt.Errorf("render customer email: %w", err)
	}
	ownerHTML, err := render(ownerEmailTmpl, req)
	if err != nil {
		return notify.Receipt{}, fmt.Errorf("render owner email: %w", err)
	}

	customerID, err := m.resend.Send(ctx, Email{
		From:    m.from,
		To:      []string{req.CustomerInfo.Email},
		Subject: fmt.Sprintf("Order Confirmation #%s - Thank you for your purchase!", req.OrderNumber),
		HTML:    customerHTML,
	})
	if err != nil {
		return notify.Receipt{}, fmt.Errorf("send customer email: %w", err)
	}
	m.logger.Info("customer email sent",
		zap.String("orderNumber", req.OrderNumber),
		zap.String("emailId", customerID))

	ownerID, err := m.resend.Send(ctx, Email{
		From:    m.from,
		To:      []string{m.ownerEmail},
		Subject: fmt.Sprintf("New Order #%s - $%.2f", req.OrderNumber, req.Total),
		HTML:    ownerHTML,
	})
	if err != nil {
		return notify.Receipt{}, fmt.Errorf("send owner email: %w", err)
	}
	m.logger.Info("owner email sent",
		zap.String("orderNumber", req.OrderNumber),
		zap.String("emailId", ownerID))

	return notify.Receipt{CustomerEmailID: customerID, OwnerEmailID: ownerID}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
