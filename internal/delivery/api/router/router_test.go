package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	router   *router
	sessions *mockUsecase.MockSessionUsecase
	admin    *mockUsecase.MockAdminUsecase
}

func newRouterFixture(t *testing.T, metrics *config.MetricsConfig, registry *prometheus.Registry) *routerFixture {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	admin := mockUsecase.NewMockAdminUsecase(t)

	r := NewRouter(RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessions, Logger: slog.Default()}),
		CatalogHandler: handler.NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t)),
		CartHandler:    handler.NewCartHandler(mockUsecase.NewMockCartUsecase(t)),
		OrderHandler:   handler.NewOrderHandler(mockUsecase.NewMockOrderUsecase(t)),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: slog.Default()}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: admin, Logger: slog.Default()}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{SessionUC: sessions, Logger: slog.Default()}),
		Config: &config.Config{
			Auth:    &config.AuthConfig{AdminRole: "admin"},
			Metrics: metrics,
		},
		Registry: registry,
	})

	return &routerFixture{router: r, sessions: sessions, admin: admin}
}

func (f *routerFixture) serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRegisterRoutes_Table(t *testing.T) {
	f := newRouterFixture(t, nil, nil)
	e := echo.New()
	f.router.RegisterRoutes(e)

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /session/guest",
		"POST /session/logout",
		"GET /catalog/products/:id",
		"PUT /cart/items/:productId",
		"DELETE /cart",
		"POST /orders",
		"GET /orders/:id/invoice",
		"DELETE /devices/:id",
		"PATCH /admin/orders/:id/status",
		"PATCH /admin/products/:id/active",
		"POST /admin/products/images",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRegisterRoutes_AdminRequiresRole(t *testing.T) {
	f := newRouterFixture(t, nil, nil)
	e := echo.New()
	f.router.RegisterRoutes(e)

	f.sessions.EXPECT().Authenticate(mock.Anything, "customer-token").
		Return(&entity.Identity{UID: "u1", Roles: entity.Roles{entity.RoleCustomer}}, nil)
	f.sessions.EXPECT().Authenticate(mock.Anything, "admin-token").
		Return(&entity.Identity{UID: "a1", Roles: entity.Roles{entity.RoleCustomer, entity.RoleAdmin}}, nil)
	f.admin.EXPECT().Dashboard(mock.Anything).Return(&entity.DashboardSummary{TotalOrders: 3}, nil)

	assert.Equal(t, http.StatusUnauthorized, f.serve(e, http.MethodGet, "/admin/dashboard", "").Code)
	assert.Equal(t, http.StatusForbidden, f.serve(e, http.MethodGet, "/admin/dashboard", "customer-token").Code)
	assert.Equal(t, http.StatusOK, f.serve(e, http.MethodGet, "/admin/dashboard", "admin-token").Code)
}

func TestRegisterMetricsRoute(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	t.Run("enabled", func(t *testing.T) {
		f := newRouterFixture(t, &config.MetricsConfig{Enabled: true}, registry)
		e := echo.New()
		f.router.RegisterMetricsRoute(e)

		rec := f.serve(e, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "storefront_test_total 1")
	})

	t.Run("custom path", func(t *testing.T) {
		f := newRouterFixture(t, &config.MetricsConfig{Enabled: true, Path: "/internal/metrics"}, registry)
		e := echo.New()
		f.router.RegisterMetricsRoute(e)

		assert.Equal(t, http.StatusOK, f.serve(e, http.MethodGet, "/internal/metrics", "").Code)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newRouterFixture(t, &config.MetricsConfig{Enabled: false}, registry)
		e := echo.New()
		f.router.RegisterMetricsRoute(e)

		assert.Equal(t, http.StatusNotFound, f.serve(e, http.MethodGet, "/metrics", "").Code)
	})
}
