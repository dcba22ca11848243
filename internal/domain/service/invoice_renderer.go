package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// InvoiceData is everything printed on an invoice.
type InvoiceData struct {
	Order        *entity.Order
	CustomerName string
}

// InvoiceRenderer produces a printable invoice document.
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, data *InvoiceData) ([]byte, error)
}
