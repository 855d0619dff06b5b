package models

import (
	"errors"
	"fmt"
	"html"

	"pepe-order/utils"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(host string, port int, user, pass, from string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, errors.New("SMTP configuration missing")
	}
	if port == 0 {
		port = 587
	}
	if from == "" {
		from = user
	}

	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

// OrderEmail is what the confirmation email tells the customer.
type OrderEmail struct {
	OrderUID   string
	OutletName string
	TableLabel string
	Items      []CartLineItem
	Totals     OrderTotals
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, order OrderEmail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - %s", order.OrderUID, order.OutletName))
	m.SetBody("text/html", renderOrderEmail(order))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func renderOrderEmail(order OrderEmail) string {
	rows := ""
	for _, item := range order.Items {
		rows += fmt.Sprintf(`
            <tr>
                <td>%dx %s<br><span class="muted">%s</span></td>
                <td class="amount">%s</td>
            </tr>`,
			item.Quantity,
			html.EscapeString(item.ProductName),
			html.EscapeString(item.DisplaySelections()),
			utils.FormatRupiah(item.LineTotal()),
		)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #fef4e0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .header { text-align: center; margin-bottom: 30px; font-size: 24px; font-weight: bold; color: #f97316; }
        .muted { color: #666; font-size: 12px; }
        .amount { text-align: right; white-space: nowrap; }
        table { width: 100%%; border-collapse: collapse; }
        td { padding: 6px 0; border-bottom: 1px solid #eee; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">%s</div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order! <strong>%s</strong></p>
        <p class="muted">Order #%s</p>
        <table>%s
            <tr><td>Subtotal</td><td class="amount">%s</td></tr>
            <tr><td>Service charge</td><td class="amount">%s</td></tr>
            <tr><td>Tax</td><td class="amount">%s</td></tr>
            <tr><td><strong>Total</strong></td><td class="amount"><strong>%s</strong></td></tr>
        </table>
        <p class="muted">Amounts on your receipt are final.</p>
    </div>
</body>
</html>
	`,
		html.EscapeString(order.OutletName),
		html.EscapeString(order.TableLabel),
		html.EscapeString(order.OrderUID),
		rows,
		utils.FormatRupiah(order.Totals.Subtotal),
		utils.FormatRupiah(order.Totals.ServiceCharge),
		utils.FormatRupiah(order.Totals.Tax),
		utils.FormatRupiah(order.Totals.GrandTotal),
	)
}
