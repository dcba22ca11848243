package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = &entity.Identity{UID: "admin-1", Roles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin}}

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: slog.Default()}), adminUC
}

func TestAdminHandler_Dashboard(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().Dashboard(mock.Anything).
		Return(&entity.DashboardSummary{TotalOrders: 3, PendingOrders: 1, Revenue: decimal.NewFromInt(30)}, nil)

	c, rec := newContext(http.MethodGet, "/admin/dashboard", "", admin)
	require.NoError(t, h.Dashboard(c))

	summary := decodeData[entity.DashboardSummary](t, rec)
	assert.Equal(t, 3, summary.TotalOrders)
	assert.True(t, decimal.NewFromInt(30).Equal(summary.Revenue))
}

func TestAdminHandler_PendingOrderCount(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().PendingOrderCount(mock.Anything).Return(4, nil)

	c, rec := newContext(http.MethodGet, "/admin/orders/pending-count", "", admin)
	require.NoError(t, h.PendingOrderCount(c))

	assert.Equal(t, map[string]int{"pending": 4}, decodeData[map[string]int](t, rec))
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "success", body: `{"status":"Delivered"}`, wantStatus: http.StatusOK},
		{name: "backwards move", body: `{"status":"Pending"}`, wantStatus: http.StatusOK},
		{name: "unknown status", body: `{"status":"Lost"}`, err: domainerrors.ErrInvalidOrderStatus, wantStatus: http.StatusBadRequest},
		{name: "global write failed", body: `{"status":"Processing"}`, err: domainerrors.ErrStatusUpdateFailed, wantStatus: http.StatusBadGateway},
		{name: "missing status", body: `{}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, adminUC := newAdminHandler(t)
			if tt.body != `{}` {
				call := adminUC.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", mock.AnythingOfType("string"))
				if tt.err != nil {
					call.Return(nil, tt.err)
				} else {
					call.RunAndReturn(func(_ context.Context, id, status string) (*entity.Order, error) {
						return &entity.Order{ID: id, Status: entity.OrderStatus(status)}, nil
					})
				}
			}

			c, rec := newContext(http.MethodPatch, "/admin/orders/order-1/status", tt.body, admin)
			c.SetParamNames("id")
			c.SetParamValues("order-1")
			require.NoError(t, h.UpdateOrderStatus(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	sale := decimal.RequireFromString("99.5")
	adminUC.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(input *usecase.ProductInput) bool {
		return input.ID == "" &&
			input.Title == "Mug" &&
			input.RegularPrice.Equal(decimal.NewFromInt(120)) &&
			input.SalePrice != nil && input.SalePrice.Equal(sale) &&
			input.StockQuantity == 5 &&
			input.CategoryID == "mugs"
	})).Return(&entity.Product{ID: "new-id", Title: "Mug", IsActive: true}, nil)

	body := `{"title":"Mug","regularPrice":"120","salePrice":"99.5","stockQuantity":5,"categoryId":"mugs"}`
	c, rec := newContext(http.MethodPost, "/admin/products", body, admin)
	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "new-id", decodeData[entity.Product](t, rec).ID)
}

func TestAdminHandler_CreateProduct_Validation(t *testing.T) {
	h, _ := newAdminHandler(t)

	c, rec := newContext(http.MethodPost, "/admin/products", `{"title":"Mug","stockQuantity":-1}`, admin)
	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "stockQuantity must be greater than or equal to 0; categoryId is required", decodeError(t, rec).Details)
}

func TestAdminHandler_UpsertProduct_UsesPathID(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().UpsertProduct(mock.Anything, mock.MatchedBy(func(input *usecase.ProductInput) bool {
		return input.ID == "p1" && input.Title == "Mug"
	})).Return(&entity.Product{ID: "p1"}, nil)

	c, rec := newContext(http.MethodPut, "/admin/products/p1", `{"title":"Mug","regularPrice":"10","categoryId":"mugs"}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, h.UpsertProduct(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_SetProductActive(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().SetProductActive(mock.Anything, "p1", false).Return(nil)

	c, rec := newContext(http.MethodPatch, "/admin/products/p1/active", `{"active":false}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, h.SetProductActive(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_DeleteProduct(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().DeleteProduct(mock.Anything, "p1").Return(nil)

	c, rec := newContext(http.MethodDelete, "/admin/products/p1", "", admin)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	require.NoError(t, h.DeleteProduct(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminHandler_UpsertCategory(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().UpsertCategory(mock.Anything, &entity.Category{ID: "mugs", Name: "Mugs"}).Return(nil)

	c, rec := newContext(http.MethodPut, "/admin/categories", `{"id":"mugs","name":"Mugs"}`, admin)
	require.NoError(t, h.UpsertCategory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func newUploadContext(t *testing.T, field, filename, contentType string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set(echo.HeaderContentType, contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/products/images", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdminHandler_UploadProductImage(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	content := []byte("\x89PNG\r\n\x1a\nfake")

	adminUC.EXPECT().UploadProductImage(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, upload *usecase.ImageUpload) (*service.UploadResult, error) {
			data, err := io.ReadAll(upload.Body)
			require.NoError(t, err)
			assert.Equal(t, content, data)
			assert.Equal(t, "mug.png", upload.Filename)
			assert.Equal(t, "image/png", upload.ContentType)
			assert.Equal(t, int64(len(content)), upload.Size)

			return &service.UploadResult{Key: "products/p.png", URL: "http://cdn/products/p.png", Size: upload.Size}, nil
		})

	c, rec := newUploadContext(t, "file", "mug.png", "image/png", content)
	require.NoError(t, h.UploadProductImage(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "http://cdn/products/p.png", decodeData[service.UploadResult](t, rec).URL)
}

func TestAdminHandler_UploadProductImage_Rejections(t *testing.T) {
	t.Run("wrong field", func(t *testing.T) {
		h, _ := newAdminHandler(t)

		c, rec := newUploadContext(t, "image", "mug.png", "image/png", []byte("x"))
		require.NoError(t, h.UploadProductImage(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "MISSING_FILE", decodeError(t, rec).Code)
	})

	t.Run("not an image", func(t *testing.T) {
		h, adminUC := newAdminHandler(t)
		adminUC.EXPECT().UploadProductImage(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnsupportedImage)

		c, rec := newUploadContext(t, "file", "notes.txt", "text/plain", []byte("hello"))
		require.NoError(t, h.UploadProductImage(c))

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
