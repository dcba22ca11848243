package documents

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is stored as decimal strings so no driver ever rounds it through
// a float.

type productDoc struct {
	ID            string `docstore:"id"`
	Title         string `docstore:"title"`
	Description   string `docstore:"description"`
	RegularPrice  string `docstore:"regularPrice"`
	SalePrice     string `docstore:"salePrice"`
	StockQuantity int    `docstore:"stockQuantity"`
	Variants      string `docstore:"variants"`
	CategoryID    string `docstore:"categoryId"`
	ImageURL      string `docstore:"imageUrl"`
	ImageHint     string `docstore:"imageHint"`
	IsActive      bool   `docstore:"isActive"`
}

func fromProductDomain(p *entity.Product) *productDoc {
	doc := &productDoc{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		RegularPrice:  p.RegularPrice.String(),
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		ImageURL:      p.ImageURL,
		ImageHint:     p.ImageHint,
		IsActive:      p.IsActive,
	}
	if p.SalePrice != nil {
		doc.SalePrice = p.SalePrice.String()
	}
	if p.Variants != nil {
		doc.Variants = *p.Variants
	}

	return doc
}

func (d *productDoc) toDomain() *entity.Product {
	p := &entity.Product{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		RegularPrice:  parseMoney(d.RegularPrice),
		StockQuantity: d.StockQuantity,
		CategoryID:    d.CategoryID,
		ImageURL:      d.ImageURL,
		ImageHint:     d.ImageHint,
		IsActive:      d.IsActive,
	}
	if d.SalePrice != "" {
		sale := parseMoney(d.SalePrice)
		p.SalePrice = &sale
	}
	if d.Variants != "" {
		variants := d.Variants
		p.Variants = &variants
	}

	return p
}

type categoryDoc struct {
	ID   string `docstore:"id"`
	Name string `docstore:"name"`
}

type lineItemDoc struct {
	ProductID string `docstore:"productId"`
	Title     string `docstore:"title"`
	ImageURL  string `docstore:"imageUrl"`
	Price     string `docstore:"price"`
	Quantity  int    `docstore:"quantity"`
}

type cartDoc struct {
	UserID    string        `docstore:"userId"`
	Items     []lineItemDoc `docstore:"items"`
	Version   uint64        `docstore:"version"`
	UpdatedAt time.Time     `docstore:"updatedAt"`

	DocstoreRevision any
}

func (d *cartDoc) set(items entity.CartItems, version uint64, now time.Time) {
	d.Items = fromCartItems(items)
	d.Version = version
	d.UpdatedAt = now
}

func fromCartItems(items entity.CartItems) []lineItemDoc {
	docs := make([]lineItemDoc, len(items))
	for i, item := range items {
		docs[i] = lineItemDoc{
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
		}
	}

	return docs
}

func toCartItems(docs []lineItemDoc) entity.CartItems {
	items := make(entity.CartItems, len(docs))
	for i, doc := range docs {
		items[i] = entity.CartLineItem{
			ProductID: doc.ProductID,
			Title:     doc.Title,
			ImageURL:  doc.ImageURL,
			Price:     parseMoney(doc.Price),
			Quantity:  doc.Quantity,
		}
	}

	return items
}

type orderDoc struct {
	ID            string        `docstore:"id"`
	UserID        string        `docstore:"userId"`
	OrderDate     time.Time     `docstore:"orderDate"`
	TotalAmount   string        `docstore:"totalAmount"`
	OrderItems    []lineItemDoc `docstore:"orderItems"`
	Status        string        `docstore:"status"`
	PaymentMethod string        `docstore:"paymentMethod"`
	UpdatedAt     time.Time     `docstore:"updatedAt"`

	DocstoreRevision any
}

func fromOrderDomain(o *entity.Order) *orderDoc {
	items := make([]lineItemDoc, len(o.OrderItems))
	for i, item := range o.OrderItems {
		items[i] = lineItemDoc{
			ProductID: item.ProductID,
			Title:     item.Title,
			ImageURL:  item.ImageURL,
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
		}
	}

	return &orderDoc{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderDate:     o.OrderDate,
		TotalAmount:   o.TotalAmount.String(),
		OrderItems:    items,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d *orderDoc) toDomain() *entity.Order {
	items := make([]entity.OrderItem, len(d.OrderItems))
	for i, doc := range d.OrderItems {
		items[i] = entity.OrderItem{
			ProductID: doc.ProductID,
			Title:     doc.Title,
			ImageURL:  doc.ImageURL,
			Price:     parseMoney(doc.Price),
			Quantity:  doc.Quantity,
		}
	}

	return &entity.Order{
		ID:            d.ID,
		UserID:        d.UserID,
		OrderDate:     d.OrderDate,
		TotalAmount:   parseMoney(d.TotalAmount),
		OrderItems:    items,
		Status:        entity.OrderStatus(d.Status),
		PaymentMethod: d.PaymentMethod,
		UpdatedAt:     d.UpdatedAt,
	}
}

type userDoc struct {
	ID        string    `docstore:"id"`
	Email     string    `docstore:"email"`
	FirstName string    `docstore:"firstName"`
	LastName  string    `docstore:"lastName"`
	CreatedAt time.Time `docstore:"createdAt"`
}

type credentialDoc struct {
	Email        string    `docstore:"email"`
	UID          string    `docstore:"uid"`
	PasswordHash string    `docstore:"passwordHash"`
	DisplayName  string    `docstore:"displayName"`
	Roles        []string  `docstore:"roles"`
	CreatedAt    time.Time `docstore:"createdAt"`
}

type deviceDoc struct {
	ID        string    `docstore:"id"`
	UserID    string    `docstore:"userId"`
	FCMToken  string    `docstore:"fcmToken"`
	DeviceID  string    `docstore:"deviceId"`
	Platform  string    `docstore:"platform"`
	IsActive  bool      `docstore:"isActive"`
	CreatedAt time.Time `docstore:"createdAt"`
	UpdatedAt time.Time `docstore:"updatedAt"`
}

func fromDeviceDomain(d *entity.UserDevice) *deviceDoc {
	return &deviceDoc{
		ID:        d.ID.String(),
		UserID:    d.UserID,
		FCMToken:  d.FCMToken,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *deviceDoc) toDomain() *entity.UserDevice {
	id, _ := uuid.Parse(d.ID)

	return &entity.UserDevice{
		ID:        id,
		UserID:    d.UserID,
		FCMToken:  d.FCMToken,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// parseMoney treats unreadable amounts as zero; every writer goes through
// decimal.String so this only trips on hand-edited documents.
func parseMoney(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}

	return amount
}
