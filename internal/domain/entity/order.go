package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order. Any status may follow any
// other; there is no forward-only rule.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// OrderStatuses lists every valid status in workflow order.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered}

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// ParseOrderStatus accepts any casing of a known status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if strings.EqualFold(strings.TrimSpace(raw), string(status)) {
			return status, true
		}
	}

	return "", false
}

// OrderItem is a frozen copy of a cart line at checkout time.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Title     string          `json:"title"`
	ImageURL  string          `json:"imageUrl"`
}

// LineTotal is price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is written once at checkout; Status is the only field that changes later.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	OrderDate     time.Time       `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	OrderItems    []OrderItem     `json:"orderItems"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewOrder snapshots cart lines into a pending order. The items are copied by
// value so later cart or catalog changes cannot reach the order.
func NewOrder(id, userID string, placedAt time.Time, items CartItems, paymentMethod string) *Order {
	orderItems := make([]OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
		}
	}

	return &Order{
		ID:            id,
		UserID:        userID,
		OrderDate:     placedAt,
		TotalAmount:   items.Total(),
		OrderItems:    orderItems,
		Status:        OrderStatusPending,
		PaymentMethod: paymentMethod,
		UpdatedAt:     placedAt,
	}
}

// Clone returns a deep copy.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	cloned := *o
	cloned.OrderItems = append([]OrderItem(nil), o.OrderItems...)

	return &cloned
}

// InvoiceNumber is the short human reference printed on invoices.
func (o *Order) InvoiceNumber() string {
	id := o.ID
	if len(id) > 7 {
		id = id[:7]
	}

	return strings.ToUpper(id)
}

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is published after an order is placed or its status changes.
type OrderEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	UserID     string         `json:"user_id"`
	Status     OrderStatus    `json:"status"`
	PrevStatus OrderStatus    `json:"prev_status,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// DashboardSummary backs the admin dashboard.
type DashboardSummary struct {
	TotalOrders   int             `json:"totalOrders"`
	PendingOrders int             `json:"pendingOrders"`
	Revenue       decimal.Decimal `json:"revenue"`
	ProductCount  int             `json:"productCount"`
	CustomerCount int             `json:"customerCount"`
}
