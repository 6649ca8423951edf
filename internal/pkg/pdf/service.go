// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/gearshop-backend/internal/config"
	"github.com/your-org/gearshop-backend/internal/domain/checkout"
	"github.com/your-org/gearshop-backend/internal/domain/order"
)

// Service renders order receipts as PDF documents
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// ReceiptData is the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string
	ReceiptDate   string
	StoreName     string
	Order         *order.Order
	Pricing       checkout.Pricing
}

// GenerateReceipt renders the order as a PDF receipt.
func (s *Service) GenerateReceipt(o *order.Order, pricing checkout.Pricing) (*bytes.Buffer, error) {
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("RCPT-%s", o.ID),
		ReceiptDate:   time.Now().Format("January 2, 2006"),
		StoreName:     s.config.App.Name,
		Order:         o,
		Pricing:       pricing,
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").
		Funcs(template.FuncMap{
			"dollars": dollars,
			"lineTotal": func(price int64, qty int) string {
				return dollars(price * int64(qty))
			},
		}).
		Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// dollars formats an amount in cents as a dollar string
func dollars(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 24px; color: #222; }
        h1 { font-size: 20px; margin-bottom: 0; }
        .meta { color: #666; font-size: 12px; margin-bottom: 24px; }
        table { width: 100%; border-collapse: collapse; margin-top: 16px; }
        th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; font-size: 12px; }
        th { background: #f5f5f5; }
        td.amount, th.amount { text-align: right; }
        .totals td { border-bottom: none; }
        .totals .grand { font-weight: bold; border-top: 2px solid #222; }
        .address { margin-top: 24px; font-size: 12px; }
    </style>
</head>
<body>
    <h1>{{.StoreName}}</h1>
    <div class="meta">
        Receipt {{.ReceiptNumber}}<br>
        {{.ReceiptDate}} &mdash; Order status: {{.Order.Status}}
    </div>

    <table>
        <tr>
            <th>Item</th>
            <th class="amount">Price</th>
            <th class="amount">Qty</th>
            <th class="amount">Line total</th>
        </tr>
        {{range .Order.Items}}
        <tr>
            <td>{{.Name}}</td>
            <td class="amount">{{dollars .Price}}</td>
            <td class="amount">{{.Quantity}}</td>
            <td class="amount">{{lineTotal .Price .Quantity}}</td>
        </tr>
        {{end}}
    </table>

    <table class="totals">
        <tr><td>Subtotal</td><td class="amount">{{dollars .Pricing.Subtotal}}</td></tr>
        <tr><td>Tax</td><td class="amount">{{dollars .Pricing.Tax}}</td></tr>
        <tr><td>Shipping</td><td class="amount">{{dollars .Pricing.Shipping}}</td></tr>
        <tr class="grand"><td>Total</td><td class="amount">{{dollars .Pricing.Total}}</td></tr>
    </table>

    <div class="address">
        <strong>Ship to</strong><br>
        {{.Order.ShippingAddress}}
    </div>
</body>
</html>
`
