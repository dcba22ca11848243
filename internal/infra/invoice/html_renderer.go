// Package invoice renders printable HTML invoices for orders.
package invoice

import (
	"bytes"
	"cmp"
	"context"
	"embed"
	"html/template"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	dateLayout = "02 January 2006"

	defaultShopName       = "Super Shop"
	defaultDeliveryCharge = "60"
	defaultCurrency       = "৳"
)

//go:embed templates/invoice.html.tmpl
var templates embed.FS

var invoiceTemplate = template.Must(template.ParseFS(templates, "templates/invoice.html.tmpl"))

type itemView struct {
	Title     string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type invoiceView struct {
	ShopName       string
	Number         string
	Date           string
	Status         string
	CustomerName   string
	QRCode         template.URL
	Items          []itemView
	Currency       string
	Subtotal       string
	DeliveryCharge string
	GrandTotal     string
}

type htmlRenderer struct {
	shopName        string
	currency        string
	deliveryCharge  decimal.Decimal
	trackingURLBase string
	qr              service.QRCodeService
}

// New builds the renderer from the invoice section of the config.
func New(cfg *config.Config, qr service.QRCodeService) (service.InvoiceRenderer, error) {
	invoiceCfg := config.InvoiceConfig{}
	if cfg.Invoice != nil {
		invoiceCfg = *cfg.Invoice
	}

	return NewHTMLRenderer(invoiceCfg, qr)
}

// NewHTMLRenderer returns a renderer. qr may be nil, in which case no QR code
// is embedded.
func NewHTMLRenderer(cfg config.InvoiceConfig, qr service.QRCodeService) (service.InvoiceRenderer, error) {
	charge := cmp.Or(cfg.DeliveryCharge, defaultDeliveryCharge)
	delivery, err := decimal.NewFromString(charge)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid delivery charge %q", charge)
	}

	return &htmlRenderer{
		shopName:        cmp.Or(cfg.ShopName, defaultShopName),
		currency:        cmp.Or(cfg.CurrencySymbol, defaultCurrency),
		deliveryCharge:  delivery,
		trackingURLBase: strings.TrimRight(cfg.TrackingURLBase, "/"),
		qr:              qr,
	}, nil
}

func (r *htmlRenderer) RenderInvoice(_ context.Context, data *service.InvoiceData) ([]byte, error) {
	order := data.Order
	if order == nil {
		return nil, errors.New("invoice requires an order")
	}

	subtotal := decimal.Zero
	items := make([]itemView, len(order.OrderItems))
	for i, item := range order.OrderItems {
		line := item.LineTotal()
		subtotal = subtotal.Add(line)
		items[i] = itemView{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.Price.StringFixed(2),
			LineTotal: line.StringFixed(2),
		}
	}

	view := invoiceView{
		ShopName:       r.shopName,
		Number:         order.InvoiceNumber(),
		Date:           order.OrderDate.Format(dateLayout),
		Status:         order.Status.String(),
		CustomerName:   data.CustomerName,
		Items:          items,
		Currency:       r.currency,
		Subtotal:       subtotal.StringFixed(2),
		DeliveryCharge: r.deliveryCharge.StringFixed(2),
		GrandTotal:     subtotal.Add(r.deliveryCharge).StringFixed(2),
	}

	if r.qr != nil && r.trackingURLBase != "" {
		uri, err := r.qr.EncodeDataURI(r.trackingURLBase + "/" + order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "encode tracking qr code")
		}
		// The data URI is produced locally, never from user input.
		view.QRCode = template.URL(uri) //nolint:gosec
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "render invoice")
	}

	return buf.Bytes(), nil
}
