package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const imageFormField = "file"

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the back office. Routes are mounted behind the admin
// role check.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateStatusRequest is the body of PATCH /admin/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetActiveRequest is the body of PATCH /admin/products/:id/active.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ProductRequest is the body of POST and PUT /admin/products.
type ProductRequest struct {
	Title         string           `json:"title" validate:"required"`
	Description   string           `json:"description"`
	RegularPrice  decimal.Decimal  `json:"regularPrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	StockQuantity int              `json:"stockQuantity" validate:"gte=0"`
	Variants      *string          `json:"variants"`
	CategoryID    string           `json:"categoryId" validate:"required"`
	ImageURL      string           `json:"imageUrl"`
	ImageHint     string           `json:"imageHint"`
}

// CategoryRequest is the body of PUT /admin/categories.
type CategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
}

func (r *ProductRequest) toInput(id string) *usecase.ProductInput {
	return &usecase.ProductInput{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		RegularPrice:  r.RegularPrice,
		SalePrice:     r.SalePrice,
		StockQuantity: r.StockQuantity,
		Variants:      r.Variants,
		CategoryID:    r.CategoryID,
		ImageURL:      r.ImageURL,
		ImageHint:     r.ImageHint,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	summary, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	orders, err := h.adminUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *AdminHandler) PendingOrderCount(c echo.Context) error {
	count, err := h.adminUC.PendingOrderCount(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"pending": count})
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.adminUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), req.toInput(""))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func (h *AdminHandler) UpsertProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.adminUC.UpsertProduct(c.Request().Context(), req.toInput(c.Param("id")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func (h *AdminHandler) SetProductActive(c echo.Context) error {
	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid active flag")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.SetProductActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": c.Param("id"), "isActive": *req.Active})
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) UpsertCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category := &entity.Category{ID: req.ID, Name: req.Name}
	if err := h.adminUC.UpsertCategory(c.Request().Context(), category); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// UploadProductImage accepts a multipart "file" field and streams it to
// object storage.
func (h *AdminHandler) UploadProductImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_FILE", "Uploaded file could not be read")
	}
	defer file.Close()

	result, err := h.adminUC.UploadProductImage(c.Request().Context(), &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
