package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	domainmocks "github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain/mocks"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withUser(req *http.Request, userID int64, role string) *http.Request {
	ctx := context.WithValue(req.Context(), ClaimsKey, &jwt.Claims{UserID: userID, Role: role})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestPurchaseHandler_Purchase(t *testing.T) {
	mockPurchases := domainmocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchaseHandler(mockPurchases, nil, nil, logger)

	body := `{"phone_number":"0241234567","network":"mtn","capacity":1}`
	order := &domain.Order{ID: 7, Reference: "DATA-7", Status: domain.OrderStatusCompleted}

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/data/purchase", bytes.NewBufferString(body))
		return withUser(req, 1, jwt.RoleUser)
	}

	t.Run("Completed", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, domain.PurchaseRequest{
			UserID:   1,
			Phone:    "0241234567",
			Network:  domain.NetworkMTN,
			Capacity: 1,
		}).Return(&domain.PurchaseResult{Order: order, Outcome: domain.PurchaseCompleted}, nil).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.PurchaseResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "DATA-7", result.Order.Reference)
	})

	t.Run("Pending review", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(&domain.PurchaseResult{Order: order, Outcome: domain.PurchasePendingReview}, nil).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Replay with idempotency key", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.MatchedBy(func(req domain.PurchaseRequest) bool {
			return req.IdempotencyKey == "abc-123"
		})).Return(&domain.PurchaseResult{Order: order, Outcome: domain.PurchaseCompleted, Replayed: true}, nil).Once()

		req := newRequest(body)
		req.Header.Set("Idempotency-Key", "abc-123")
		w := httptest.NewRecorder()
		handler.Purchase(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Idempotency key reused for another purchase", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: key %q belongs to order DATA-1", domain.ErrIdempotencyMismatch, "abc-123")).Once()

		req := newRequest(body)
		req.Header.Set("Idempotency-Key", "abc-123")
		w := httptest.NewRecorder()
		handler.Purchase(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "idempotency key reused")
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).Return(nil, &domain.InsufficientBalanceError{
			Current:  decimal.RequireFromString("5.00"),
			Required: decimal.RequireFromString("22.50"),
		}).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		resp := decodeError(t, w)
		require.NotNil(t, resp.CurrentBalance)
		assert.True(t, resp.CurrentBalance.Equal(decimal.RequireFromString("5")))
		assert.True(t, resp.Required.Equal(decimal.RequireFromString("22.5")))
	})

	t.Run("Provider rejected", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(nil, &domain.ProviderRejectedError{Reference: "DATA-7", Reason: "invalid recipient number"}).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "invalid recipient number", decodeError(t, w).Error)
	})

	t.Run("Out of stock", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).Return(nil, domain.ErrOutOfStock).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("phone_number", "invalid Ghana mobile number")).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "phone_number: invalid Ghana mobile number", decodeError(t, w).Error)
	})

	t.Run("Internal error is hidden", func(t *testing.T) {
		mockPurchases.EXPECT().Purchase(mock.Anything, mock.Anything).
			Return(nil, errors.New("repository: connection reset")).Once()

		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(body))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeError(t, w).Error)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Purchase(w, newRequest(`{"phone_number":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/data/purchase", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.Purchase(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPurchaseHandler_BulkPurchase(t *testing.T) {
	mockBatches := domainmocks.NewBatchServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchaseHandler(nil, mockBatches, nil, logger)

	body := `{"orders":[{"phone_number":"0241111111","network":"mtn","capacity":2,"price":"10.00"},{"phone_number":"0242222222","network":"MTN","capacity":2}]}`

	t.Run("Success", func(t *testing.T) {
		mockBatches.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(req domain.BatchRequest) bool {
			return req.UserID == 1 && len(req.Orders) == 2 &&
				req.Orders[0].Network == domain.NetworkMTN && req.Orders[0].Price != nil &&
				req.Orders[1].Price == nil
		})).Return(&domain.BatchResult{
			Batch:   &domain.BatchReservation{ID: "b1", Status: domain.BatchStatusReconciled},
			Charged: decimal.RequireFromString("20.00"),
		}, nil).Once()

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/data/bulk-purchase", bytes.NewBufferString(body)), 1, jwt.RoleUser)
		w := httptest.NewRecorder()
		handler.BulkPurchase(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Every order skipped", func(t *testing.T) {
		mockBatches.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, &domain.BatchRejectedError{Skipped: []domain.ClassifiedCandidate{
				{Index: 0, Phone: "0241234567", Class: domain.CandidateRecentlyPurchased, Reason: "number received a bundle recently, try again later"},
			}}).Once()

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/data/bulk-purchase", bytes.NewBufferString(body)), 1, jwt.RoleUser)
		w := httptest.NewRecorder()
		handler.BulkPurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		require.Len(t, resp.Skipped, 1)
		assert.Equal(t, domain.CandidateRecentlyPurchased, resp.Skipped[0].Class)
		assert.Equal(t, "number received a bundle recently, try again later", resp.Skipped[0].Reason)
	})

	t.Run("Too many orders", func(t *testing.T) {
		mockBatches.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, domain.NewValidationError("orders", "at most 100 orders per batch")).Once()

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/data/bulk-purchase", bytes.NewBufferString(body)), 1, jwt.RoleUser)
		w := httptest.NewRecorder()
		handler.BulkPurchase(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPurchaseHandler_Prices(t *testing.T) {
	mockPrices := domainmocks.NewPriceLookupMock(t)
	handler := NewPurchaseHandler(nil, nil, mockPrices, zap.NewNop())

	mockPrices.EXPECT().Entries().Return([]domain.PriceEntry{
		{Network: domain.NetworkMTN, Capacity: 1, Price: decimal.RequireFromString("4.50")},
	}).Once()

	w := httptest.NewRecorder()
	handler.Prices(w, httptest.NewRequest(http.MethodGet, "/api/v1/data/prices", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []domain.PriceEntry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&entries))
	assert.Len(t, entries, 1)
}

func TestOrdersHandler(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("List", func(t *testing.T) {
		mockService.EXPECT().ListOrders(mock.Anything, int64(1)).Return([]*domain.Order{{ID: 1}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListOrders(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/data/orders", nil), 1, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("List empty", func(t *testing.T) {
		mockService.EXPECT().ListOrders(mock.Anything, int64(1)).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		handler.ListOrders(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/data/orders", nil), 1, jwt.RoleUser))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Detail with history", func(t *testing.T) {
		mockService.EXPECT().GetOrder(mock.Anything, int64(1), int64(9)).Return(
			&domain.Order{ID: 9, Reference: "DATA-9", Status: domain.OrderStatusCompleted},
			[]*domain.StatusChange{{Status: domain.OrderStatusPending}, {Status: domain.OrderStatusCompleted}},
			nil,
		).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/data/orders/9", nil), "id", "9")
		w := httptest.NewRecorder()
		handler.GetOrder(w, withUser(req, 1, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Reference string                 `json:"reference"`
			History   []*domain.StatusChange `json:"history"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "DATA-9", resp.Reference)
		assert.Len(t, resp.History, 2)
	})

	t.Run("Detail not found", func(t *testing.T) {
		mockService.EXPECT().GetOrder(mock.Anything, int64(1), int64(10)).Return(nil, nil, domain.ErrOrderNotFound).Once()

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/data/orders/10", nil), "id", "10")
		w := httptest.NewRecorder()
		handler.GetOrder(w, withUser(req, 1, jwt.RoleUser))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Detail bad id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/data/orders/x", nil), "id", "x")
		w := httptest.NewRecorder()
		handler.GetOrder(w, withUser(req, 1, jwt.RoleUser))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWalletHandler(t *testing.T) {
	mockService := domainmocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(mockService, logger)

	t.Run("Balance", func(t *testing.T) {
		account := &domain.Account{UserID: 1, Balance: decimal.RequireFromString("27.50")}
		mockService.EXPECT().GetBalance(mock.Anything, int64(1)).Return(account, nil).Once()

		w := httptest.NewRecorder()
		handler.GetBalance(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil), 1, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)

		var result domain.Account
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.True(t, result.Balance.Equal(account.Balance))
	})

	t.Run("Balance unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetBalance(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallet/balance", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Transactions", func(t *testing.T) {
		mockService.EXPECT().ListEntries(mock.Anything, int64(1)).Return([]*domain.LedgerEntry{
			{ID: 2, Kind: domain.EntryKindRefund, Amount: decimal.RequireFromString("22.50")},
			{ID: 1, Kind: domain.EntryKindDebit, Amount: decimal.RequireFromString("22.50")},
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListTransactions(w, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/wallet/transactions", nil), 1, jwt.RoleUser))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	mockAdmin := domainmocks.NewAdminServiceMock(t)
	mockInventory := domainmocks.NewInventoryServiceMock(t)
	mockWallet := domainmocks.NewWalletServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAdminHandler(mockAdmin, mockInventory, mockWallet, logger)

	t.Run("Override status", func(t *testing.T) {
		mockAdmin.EXPECT().OverrideStatus(mock.Anything, int64(5), domain.OrderStatusFailed, "admin:9", "customer complaint").
			Return(&domain.Order{ID: 5, Status: domain.OrderStatusFailed}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/orders/5/status", bytes.NewBufferString(`{"status":"FAILED","note":"customer complaint"}`))
		req = withURLParam(req, "id", "5")
		w := httptest.NewRecorder()
		handler.OverrideStatus(w, withUser(req, 9, jwt.RoleAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Override on compensated order", func(t *testing.T) {
		mockAdmin.EXPECT().OverrideStatus(mock.Anything, int64(5), domain.OrderStatusCompleted, "admin:9", "").
			Return(nil, domain.ErrInvalidTransition).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/orders/5/status", bytes.NewBufferString(`{"status":"completed"}`))
		req = withURLParam(req, "id", "5")
		w := httptest.NewRecorder()
		handler.OverrideStatus(w, withUser(req, 9, jwt.RoleAdmin))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("List inventory", func(t *testing.T) {
		mockInventory.EXPECT().List(mock.Anything).Return([]*domain.InventoryRecord{{Network: domain.NetworkMTN, InStock: true}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListInventory(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/inventory", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update inventory", func(t *testing.T) {
		mockInventory.EXPECT().Update(mock.Anything, &domain.InventoryRecord{Network: domain.NetworkATBigTime, InStock: false, SkipProvider: true}).
			Return(&domain.InventoryRecord{Network: domain.NetworkATBigTime, SkipProvider: true}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/inventory/at_bigtime", bytes.NewBufferString(`{"in_stock":false,"skip_provider":true}`))
		w := httptest.NewRecorder()
		handler.UpdateInventory(w, withURLParam(req, "network", "at_bigtime"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update inventory unknown network", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/inventory/glo", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		handler.UpdateInventory(w, withURLParam(req, "network", "glo"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Credit wallet", func(t *testing.T) {
		mockWallet.EXPECT().AdminCredit(mock.Anything, int64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.RequireFromString("50"))
		}), "momo top up", "admin:9").Return(&domain.LedgerEntry{Reference: "ADJ-1"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users/3/wallet/credit", bytes.NewBufferString(`{"amount":"50.00","reason":"momo top up"}`))
		req = withURLParam(req, "id", "3")
		w := httptest.NewRecorder()
		handler.CreditWallet(w, withUser(req, 9, jwt.RoleAdmin))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Credit unknown wallet", func(t *testing.T) {
		mockWallet.EXPECT().AdminCredit(mock.Anything, int64(4), mock.Anything, "", "admin:9").Return(nil, domain.ErrAccountNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users/4/wallet/credit", bytes.NewBufferString(`{"amount":10}`))
		req = withURLParam(req, "id", "4")
		w := httptest.NewRecorder()
		handler.CreditWallet(w, withUser(req, 9, jwt.RoleAdmin))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
