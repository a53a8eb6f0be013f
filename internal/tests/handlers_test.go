package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "vastburgers/internal/api/http"
	"vastburgers/internal/domain"
	"vastburgers/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(handler *httpapi.Handler) *mux.Router {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_healthCheck(t *testing.T) {
	router := setupTestRouter(&httpapi.Handler{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"storefront"`)
}

func TestHandler_getCart(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Cart: cartSvc})

	cartSvc.On("Get", mock.Anything).Return(domain.Cart{
		{ID: 1, Name: "Classic", Price: "5.00"},
		{ID: 2, Name: "Cola", Price: "2.50"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, float64(2), body["count"])
	assert.InDelta(t, 7.5, body["totalPrice"].(float64), 0.0001)
}

func TestHandler_addCartItem(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(cartSvc *mocks.CartServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"id":1,"name":"Classic","price":"5.00"}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("AddItem", mock.Anything, mock.Anything).
					Return(domain.Cart{{ID: 1, Name: "Classic", Price: "5.00"}}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"count":1`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "store_failure",
			payload: `{"id":1,"name":"Classic","price":"5.00"}`,
			prepareMocks: func(cartSvc *mocks.CartServiceInterface) {
				cartSvc.On("AddItem", mock.Anything, mock.Anything).
					Return(nil, errors.New("redis down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cartSvc := mocks.NewCartServiceInterface(t)
			router := setupTestRouter(&httpapi.Handler{Cart: cartSvc})
			testCase.prepareMocks(cartSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString(testCase.payload))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_removeCartItem(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Cart: cartSvc})

	cartSvc.On("RemoveItem", mock.Anything, 1).
		Return(domain.Cart{{ID: 2, Name: "Cola", Price: "2.50"}}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":1`)
}

func TestHandler_removeCartItem_InvalidID(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Cart: cartSvc})

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_clearCart(t *testing.T) {
	cartSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Cart: cartSvc})

	cartSvc.On("Clear", mock.Anything).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":0`)
}

func TestHandler_placeOrder(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(checkout *mocks.CheckoutServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			prepareMocks: func(checkout *mocks.CheckoutServiceInterface) {
				checkout.On("PlaceOrder", mock.Anything).Return(&domain.Order{
					ID:         7,
					Cart:       domain.Cart{{ID: 1, Name: "Classic", Price: "5.00"}},
					TotalPrice: 5,
				}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"totalPrice":5`,
		},
		{
			name: "submission_failure",
			prepareMocks: func(checkout *mocks.CheckoutServiceInterface) {
				checkout.On("PlaceOrder", mock.Anything).
					Return(nil, errors.New("order service unreachable")).Once()
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			checkout := mocks.NewCheckoutServiceInterface(t)
			router := setupTestRouter(&httpapi.Handler{Checkout: checkout})
			testCase.prepareMocks(checkout)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, testCase.expectedCode, rr.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getOrderHistory(t *testing.T) {
	history := mocks.NewHistoryServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{History: history})

	history.On("History", mock.Anything).Return(&domain.OrderHistory{
		Items: domain.Cart{
			{ID: 1, Name: "Classic", Price: "5.00"},
			{ID: 2, Name: "Cola", Price: "2.50"},
			{ID: 3, Name: "Veggie", Price: "10.00"},
		},
		TotalPrice: 17.5,
		Status:     domain.StatusProcessing,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, float64(3), body["count"])
	assert.InDelta(t, 17.5, body["totalPrice"].(float64), 0.0001)
	assert.Equal(t, "Processing", body["status"])
	assert.NotContains(t, body, "notice")
}

func TestHandler_getOrderHistory_FetchFailure(t *testing.T) {
	history := mocks.NewHistoryServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{History: history})

	history.On("History", mock.Anything).Return(&domain.OrderHistory{
		Items:  domain.Cart{},
		Status: domain.StatusReceived,
	}, errors.New("order service unreachable")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// Degrades to an empty list plus a notice, never an error page.
	assert.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, float64(0), body["count"])
	assert.Contains(t, body, "notice")
}

func TestHandler_getOrderStatus(t *testing.T) {
	status := mocks.NewStatusSimulator(t)
	router := setupTestRouter(&httpapi.Handler{Status: status})

	status.On("Current").Return(domain.StatusShipped).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"Shipped"`)
}

func TestHandler_getOrderQRCode(t *testing.T) {
	router := setupTestRouter(&httpapi.Handler{PublicURL: "http://localhost:8080"})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/7/qrcode", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}
