package mailer

import (
	"fmt"
	"html/template"
)

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"lineTotal": func(price float64, qty int) string {
		return fmt.Sprintf("$%.2f", price*float64(qty))
	},
}

// Customer-facing order confirmation.
var customerEmailTmpl = template.Must(template.New("customer").Funcs(templateFuncs).Parse(`
<div style="font-family: 'Inter', Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #ffffff;">
  <div style="background: linear-gradient(135deg, #2d5a4a, #4a7c59); color: white; padding: 30px; text-align: center;">
    <h1 style="margin: 0; font-family: 'Playfair Display', serif; font-size: 28px;">Order Confirmation</h1>
    <p style="margin: 10px 0 0 0; opacity: 0.9;">Thank you for your purchase!</p>
  </div>

  <div style="padding: 30px;">
    <div style="margin-bottom: 30px;">
      <h2 style="color: #2d5a4a; font-family: 'Playfair Display', serif; margin-bottom: 10px;">Order #{{.OrderNumber}}</h2>
      <p style="color: #666; margin: 0;">We've received your order and will process it soon.</p>
    </div>

    <div style="margin-bottom: 30px;">
      <h3 style="color: #2d5a4a; margin-bottom: 15px;">Shipping Information</h3>
      <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 4px solid #2d5a4a;">
        <p style="margin: 5px 0;"><strong>Name:</strong> {{.CustomerInfo.Name}}</p>
        <p style="margin: 5px 0;"><strong>Email:</strong> {{.CustomerInfo.Email}}</p>
        {{if .CustomerInfo.Phone}}<p style="margin: 5px 0;"><strong>Phone:</strong> {{.CustomerInfo.Phone}}</p>{{end}}
        <p style="margin: 5px 0;"><strong>Address:</strong> {{.CustomerInfo.Address}}</p>
      </div>
    </div>

    <div style="margin-bottom: 30px;">
      <h3 style="color: #2d5a4a; margin-bottom: 15px;">Order Details</h3>
      <table style="width: 100%; border-collapse: collapse; background: #f8f9fa; border-radius: 8px; overflow: hidden;">
        <thead>
          <tr style="background: #2d5a4a; color: white;">
            <th style="padding: 15px; text-align: left;">Book Title</th>
            <th style="padding: 15px; text-align: left;">Author</th>
            <th style="padding: 15px; text-align: center;">Qty</th>
            <th style="padding: 15px; text-align: right;">Price</th>
            <th style="padding: 15px; text-align: right;">Total</th>
          </tr>
        </thead>
        <tbody>
          {{range .CartItems}}
          <tr style="border-bottom: 1px solid #eee;">
            <td style="padding: 12px; text-align: left;">{{.Book.Title}}</td>
            <td style="padding: 12px; text-align: left;">{{.Book.Author}}</td>
            <td style="padding: 12px; text-align: center;">{{.Quantity}}</td>
            <td style="padding: 12px; text-align: right;">{{money .Book.Price}}</td>
            <td style="padding: 12px; text-align: right;">{{lineTotal .Book.Price .Quantity}}</td>
          </tr>
          {{end}}
          <tr style="background: #e9ecef; font-weight: bold; font-size: 16px;">
            <td colspan="4" style="padding: 15px; text-align: right;">Total:</td>
            <td style="padding: 15px; text-align: right; color: #2d5a4a;">{{money .Total}}</td>
          </tr>
        </tbody>
      </table>
    </div>

    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 4px solid #d4a574; margin-bottom: 20px;">
      <p style="margin: 0; color: #666; font-style: italic;">
        "A room without books is like a body without a soul." - Marcus Tullius Cicero
      </p>
    </div>

    <p style="color: #666; font-size: 14px; line-height: 1.6;">
      We'll send you another email with tracking information once your order ships.
      If you have any questions, please don't hesitate to contact us.
    </p>
  </div>

  <div style="background: #2d5a4a; color: white; padding: 20px; text-align: center;">
    <p style="margin: 0; opacity: 0.8;">Thank you for choosing our bookstore!</p>
  </div>
</div>
`))

// Store-owner notification.
var ownerEmailTmpl = template.Must(template.New("owner").Funcs(templateFuncs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2d5a4a;">New Order Received!</h2>
  <p><strong>Order Number:</strong> {{.OrderNumber}}</p>
  <p><strong>Customer:</strong> {{.CustomerInfo.Name}} ({{.CustomerInfo.Email}})</p>
  <p><strong>Total:</strong> {{money .Total}}</p>

  <h3>Items Ordered:</h3>
  <ul>
    {{range .CartItems}}
    <li>{{.Book.Title}} by {{.Book.Author}} - Qty: {{.Quantity}} - {{lineTotal .Book.Price .Quantity}}</li>
    {{end}}
  </ul>

  <h3>Shipping Address:</h3>
  <p>{{.CustomerInfo.Address}}</p>
  {{if .CustomerInfo.Phone}}<p><strong>Phone:</strong> {{.CustomerInfo.Phone}}</p>{{end}}
</div>
`))
