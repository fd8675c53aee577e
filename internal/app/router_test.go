package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	domainmocks "github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain/mocks"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/handlers"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/utils/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRouter(t *testing.T) {
	logger := zap.NewNop()
	jwtManager := jwt.NewManager("test-secret", time.Hour)

	wallet := domainmocks.NewWalletServiceMock(t)
	admin := domainmocks.NewAdminServiceMock(t)
	inventory := domainmocks.NewInventoryServiceMock(t)
	orders := domainmocks.NewOrderServiceMock(t)

	deps := &dependencies{
		handlers: &handlerSet{
			purchase: handlers.NewPurchaseHandler(domainmocks.NewPurchaseServiceMock(t), domainmocks.NewBatchServiceMock(t), domainmocks.NewPriceLookupMock(t), logger),
			orders:   handlers.NewOrdersHandler(orders, logger),
			wallet:   handlers.NewWalletHandler(wallet, logger),
			admin:    handlers.NewAdminHandler(admin, inventory, wallet, logger),
			health:   handlers.NewHealthHandler(nil, logger),
		},
		jwtManager: jwtManager,
	}
	router := setupRouter(deps, logger)

	userToken, err := jwtManager.Generate(1, jwt.RoleUser)
	require.NoError(t, err)
	adminToken, err := jwtManager.Generate(9, jwt.RoleAdmin)
	require.NoError(t, err)

	do := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("API requires a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/wallet/balance", "").Code)
	})

	t.Run("Wallet balance", func(t *testing.T) {
		wallet.EXPECT().GetBalance(mock.Anything, int64(1)).
			Return(&domain.Account{UserID: 1, Balance: decimal.RequireFromString("10")}, nil).Once()

		w := do(http.MethodGet, "/api/v1/wallet/balance", userToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Order detail route", func(t *testing.T) {
		orders.EXPECT().GetOrder(mock.Anything, int64(1), int64(42)).Return(nil, nil, domain.ErrOrderNotFound).Once()

		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/api/v1/data/orders/42", userToken).Code)
	})

	t.Run("Admin routes reject users", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/v1/admin/inventory", userToken).Code)
	})

	t.Run("Admin routes accept admins", func(t *testing.T) {
		inventory.EXPECT().List(mock.Anything).Return([]*domain.InventoryRecord{}, nil).Once()

		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/admin/inventory", adminToken).Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/metrics", "").Code)
	})
}
