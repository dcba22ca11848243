package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReplayer struct {
	replayed int
}

func (f *fakeReplayer) ReplayDeadLetters(context.Context) (int, error) {
	return f.replayed, nil
}

type testFixture struct {
	admin       *mockUsecase.MockAdminUsecase
	orders      *mockUsecase.MockOrderUsecase
	sessions    *mockUsecase.MockSessionUsecase
	deadLetters *mockRepo.MockDeadLetterRepository
	replayer    *fakeReplayer
	closed      bool
}

func newFixture(t *testing.T) *testFixture {
	return &testFixture{
		admin:       mockUsecase.NewMockAdminUsecase(t),
		orders:      mockUsecase.NewMockOrderUsecase(t),
		sessions:    mockUsecase.NewMockSessionUsecase(t),
		deadLetters: mockRepo.NewMockDeadLetterRepository(t),
		replayer:    &fakeReplayer{},
	}
}

func (f *testFixture) open(context.Context) (*Runtime, func(context.Context) error, error) {
	rt := &Runtime{
		Admin:       f.admin,
		Orders:      f.orders,
		Sessions:    f.sessions,
		DeadLetters: f.deadLetters,
		Replayer:    f.replayer,
	}

	return rt, func(context.Context) error {
		f.closed = true

		return nil
	}, nil
}

func (f *testFixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(f.open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "orders", "list", "--format", "xml")

	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestOrdersList_Text(t *testing.T) {
	f := newFixture(t)
	f.admin.EXPECT().ListOrders(mock.Anything).Return([]*entity.Order{
		{
			ID:          "abcdef1234",
			UserID:      "user-1",
			OrderDate:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(240),
			OrderItems:  []entity.OrderItem{{ProductID: "p1"}, {ProductID: "p2"}},
			Status:      entity.OrderStatusDelivered,
		},
		{
			ID:          "xyz9",
			UserID:      "user-22",
			OrderDate:   time.Date(2024, 5, 30, 17, 45, 0, 0, time.UTC),
			TotalAmount: decimal.RequireFromString("60.5"),
			OrderItems:  []entity.OrderItem{{ProductID: "p3"}},
			Status:      entity.OrderStatusPending,
		},
	}, nil)

	out, err := f.run(t, "orders", "list")
	require.NoError(t, err)
	assert.True(t, f.closed)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "orders_list", []byte(out))
}

func TestOrdersList_Empty(t *testing.T) {
	f := newFixture(t)
	f.admin.EXPECT().ListOrders(mock.Anything).Return(nil, nil)

	out, err := f.run(t, "orders", "list")

	require.NoError(t, err)
	assert.Equal(t, "No orders.\n", out)
}

func TestOrdersSetStatus(t *testing.T) {
	f := newFixture(t)
	f.admin.EXPECT().UpdateOrderStatus(mock.Anything, "abcdef1234", "Processing").
		Return(&entity.Order{ID: "abcdef1234", Status: entity.OrderStatusProcessing}, nil)

	out, err := f.run(t, "orders", "set-status", "abcdef1234", "Processing")

	require.NoError(t, err)
	assert.Equal(t, "Order #ABCDEF1 is now Processing\n", out)
}

func TestOrdersSetStatus_InvalidStatus(t *testing.T) {
	f := newFixture(t)
	f.admin.EXPECT().UpdateOrderStatus(mock.Anything, "o1", "Lost").Return(nil, domainerrors.ErrInvalidOrderStatus)

	_, err := f.run(t, "orders", "set-status", "o1", "Lost")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	assert.True(t, f.closed)
}

func TestSeed(t *testing.T) {
	f := newFixture(t)

	f.admin.EXPECT().UpsertCategory(mock.Anything, mock.Anything).Return(nil).Times(6)
	f.admin.EXPECT().UpsertProduct(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input *usecase.ProductInput) (*entity.Product, error) {
			return &entity.Product{ID: input.ID}, nil
		}).Times(10)

	out, err := f.run(t, "seed", "--file", "../../config/catalog.yaml")

	require.NoError(t, err)
	assert.Equal(t, "Seeded 6 categories and 10 products\n", out)
}

func TestSeed_CreatesProductsWithoutID(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - id: mugs
    name: Mugs
products:
  - title: Blue mug
    regularPrice: "120"
    salePrice: "99.50"
    categoryId: mugs
`), 0o600))

	f.admin.EXPECT().UpsertCategory(mock.Anything, &entity.Category{ID: "mugs", Name: "Mugs"}).Return(nil)
	f.admin.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(input *usecase.ProductInput) bool {
		return input.Title == "Blue mug" &&
			input.RegularPrice.Equal(decimal.NewFromInt(120)) &&
			input.SalePrice != nil && input.SalePrice.Equal(decimal.RequireFromString("99.5"))
	})).Return(&entity.Product{ID: "new"}, nil)

	out, err := f.run(t, "seed", "--file", path, "--format", "json")
	require.NoError(t, err)

	var result SeedResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, SeedResult{Categories: 1, Products: 1}, result)
}

func TestSeed_BadPriceFailsBeforeWriting(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - title: Mug
    regularPrice: cheap
`), 0o600))

	_, err := f.run(t, "seed", "--file", path)

	assert.ErrorContains(t, err, "regularPrice")
	assert.False(t, f.closed)
}

func TestInvoice(t *testing.T) {
	f := newFixture(t)
	f.orders.EXPECT().RenderInvoice(mock.Anything, "user-1", "order-1", "Jane Doe").
		Return([]byte("<html>ok</html>"), nil).Twice()

	out, err := f.run(t, "invoice", "order-1", "--user", "user-1", "--name", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", out)

	path := filepath.Join(t.TempDir(), "invoice.html")
	_, err = f.run(t, "invoice", "order-1", "--user", "user-1", "--name", "Jane Doe", "--out", path)
	require.NoError(t, err)
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(written))
}

func TestInvoice_RequiresUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "invoice", "order-1")

	assert.ErrorContains(t, err, `required flag(s) "user" not set`)
}

func TestUsersGrantRole(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().GrantRole(mock.Anything, "user-1", entity.RoleAdmin).Return(nil)

	out, err := f.run(t, "users", "grant-role", "user-1", "admin")

	require.NoError(t, err)
	assert.Contains(t, out, "Granted admin to user-1")
}

func TestDeadLettersList(t *testing.T) {
	f := newFixture(t)
	failedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	f.deadLetters.EXPECT().ListDeadLetters(mock.Anything, 5).Return([]*entity.DeadLetter{
		{ID: 1, Kind: entity.WriteKindCart, Key: "user-1", Attempts: 8, LastError: "timeout", FailedAt: failedAt},
	}, nil)
	f.deadLetters.EXPECT().CountDeadLetters(mock.Anything).Return(int64(3), nil)

	out, err := f.run(t, "dead-letters", "list", "--limit", "5", "--format", "json")
	require.NoError(t, err)

	var body struct {
		Total   int64            `json:"total"`
		Letters []DeadLetterView `json:"letters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, int64(3), body.Total)
	require.Len(t, body.Letters, 1)
	assert.Equal(t, "cart", body.Letters[0].Kind)
	assert.Equal(t, failedAt, body.Letters[0].FailedAt)
}

func TestDeadLettersReplay(t *testing.T) {
	f := newFixture(t)
	f.replayer.replayed = 2

	out, err := f.run(t, "dead-letters", "replay")

	require.NoError(t, err)
	assert.Equal(t, "Replayed 2 dead letters\n", out)
	assert.True(t, f.closed)
}
