package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/core/server"
	"warehouse-gateway/internal/core/validation"
	"warehouse-gateway/internal/features/shiprelay/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipRelayService is a mock implementation of ports.Service
type MockShipRelayService struct {
	mock.Mock
}

func (m *MockShipRelayService) raw(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockShipRelayService) FetchProductList(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(provider.Page), args.Error(1)
}

func (m *MockShipRelayService) FetchProductInfo(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockShipRelayService) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, input))
}

func (m *MockShipRelayService) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id, input))
}

func (m *MockShipRelayService) ArchiveProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockShipRelayService) RestoreProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockShipRelayService) FetchShipmentList(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(provider.Page), args.Error(1)
}

func (m *MockShipRelayService) FetchShipmentInfo(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockShipRelayService) CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, input))
}

func (m *MockShipRelayService) UpdateShipment(ctx context.Context, id string, input domain.ShipmentInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id, input))
}

func (m *MockShipRelayService) ArchiveShipment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockShipRelayService) RestoreShipment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func setupApp(service *MockShipRelayService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: server.ErrorHandler})
	NewShipRelayHandler(service, config.PaginationConfig{Page: 1, Limit: 10}).Register(app.Group("/api/shiprelay"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestShipRelayHandler_Welcome(t *testing.T) {
	app := setupApp(new(MockShipRelayService))

	resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Welcome to the ShipRelay integration", body["message"])
}

func TestShipRelayHandler_FetchProductList(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)

		page := provider.Page{
			Data: []json.RawMessage{json.RawMessage(`{"id":1}`)},
			Meta: json.RawMessage(`{"total":1}`),
		}
		want := domain.ProductListRequest{Pagination: validation.Pagination{Page: 1, Limit: 10}, SKU: "MUG-01"}
		mockService.On("FetchProductList", mock.Anything, want).Return(page, nil).Once()

		resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product?sku=MUG-01", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, map[string]any{
			"data": []any{map[string]any{"id": float64(1)}},
			"meta": map[string]any{"total": float64(1)},
		}, body["data"])
		mockService.AssertExpectations(t)
	})

	t.Run("EmptyListRendersArray", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)
		mockService.On("FetchProductList", mock.Anything, mock.Anything).Return(provider.Page{}, nil).Once()

		_, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product?page=4&limit=20", nil)

		assert.Equal(t, []any{}, body["data"])
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)

		resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, map[string]any{"limit": "Limit must be at least 1"}, body["errors"])
		mockService.AssertNotCalled(t, "FetchProductList", mock.Anything, mock.Anything)
	})

	t.Run("FractionalPage", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)

		resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product?page=1.5", nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, map[string]any{"page": "Page must be a positive integer"}, body["errors"])
		mockService.AssertNotCalled(t, "FetchProductList", mock.Anything, mock.Anything)
	})
}

func TestShipRelayHandler_FetchProductInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)
		mockService.On("FetchProductInfo", mock.Anything, "7").Return(json.RawMessage(`{"id":7}`), nil).Once()

		resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product/7", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"id": float64(7)}, body["data"])
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)
		mockService.On("FetchProductInfo", mock.Anything, "999").Return(nil, apperror.NotFound("Product not found")).Once()

		resp, body := doJSON(t, app, http.MethodGet, "/api/shiprelay/product/999", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Product not found", body["message"])
		assert.Equal(t, float64(404), body["code"])
	})
}

func TestShipRelayHandler_CreateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)
		mockService.On("CreateProduct", mock.Anything, domain.ProductInput{ProductName: "Mug"}).
			Return(json.RawMessage(`{"id":1}`), nil).Once()

		resp, _ := doJSON(t, app, http.MethodPost, "/api/shiprelay/product", map[string]string{"productName": "  Mug "})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingName", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)

		resp, body := doJSON(t, app, http.MethodPost, "/api/shiprelay/product", map[string]string{"sku": "X"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["errors"], "productName")
	})

	t.Run("Unauthorized", func(t *testing.T) {
		mockService := new(MockShipRelayService)
		app := setupApp(mockService)
		mockService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, apperror.Unauthorized("Unauthorized")).Once()

		resp, _ := doJSON(t, app, http.MethodPost, "/api/shiprelay/product", map[string]string{"productName": "Mug"})

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestShipRelayHandler_ProductTransitions(t *testing.T) {
	mockService := new(MockShipRelayService)
	app := setupApp(mockService)
	mockService.On("UpdateProduct", mock.Anything, "3", domain.ProductInput{ProductName: "Cup"}).Return(json.RawMessage(`{}`), nil).Once()
	mockService.On("ArchiveProduct", mock.Anything, "3").Return(json.RawMessage(`{}`), nil).Once()
	mockService.On("RestoreProduct", mock.Anything, "3").Return(json.RawMessage(`{}`), nil).Once()

	resp, _ := doJSON(t, app, http.MethodPut, "/api/shiprelay/product/3", map[string]string{"productName": "Cup"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/shiprelay/product/3/archive", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPatch, "/api/shiprelay/product/3/restore", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockService.AssertExpectations(t)
}

func TestShipRelayHandler_Shipments(t *testing.T) {
	mockService := new(MockShipRelayService)
	app := setupApp(mockService)

	shipment := domain.ShipmentInput{
		OrderRef: "SO-1",
		Address:  domain.ShipmentAddress{Name: "Ada", Address1: "1 St", City: "London", Zip: "N1", Country: "GB"},
		Items:    []domain.ShipmentItem{{SKU: "MUG-01", Quantity: 1}},
	}
	listReq := domain.ShipmentListRequest{Pagination: validation.Pagination{Page: 2, Limit: 10}, Status: "shipped"}

	mockService.On("FetchShipmentList", mock.Anything, listReq).Return(provider.Page{}, nil).Once()
	mockService.On("FetchShipmentInfo", mock.Anything, "5").Return(json.RawMessage(`{"id":5}`), nil).Once()
	mockService.On("CreateShipment", mock.Anything, shipment).Return(json.RawMessage(`{"id":5}`), nil).Once()
	mockService.On("UpdateShipment", mock.Anything, "5", shipment).Return(json.RawMessage(`{"id":5}`), nil).Once()
	mockService.On("ArchiveShipment", mock.Anything, "5").Return(json.RawMessage(`{}`), nil).Once()
	mockService.On("RestoreShipment", mock.Anything, "5").Return(json.RawMessage(`{}`), nil).Once()

	for _, tc := range []struct {
		method, target string
		body           any
	}{
		{http.MethodGet, "/api/shiprelay/shipment?page=2&status=shipped", nil},
		{http.MethodGet, "/api/shiprelay/shipment/5", nil},
		{http.MethodPost, "/api/shiprelay/shipment", shipment},
		{http.MethodPut, "/api/shiprelay/shipment/5", shipment},
		{http.MethodPatch, "/api/shiprelay/shipment/5/archive", nil},
		{http.MethodPatch, "/api/shiprelay/shipment/5/restore", nil},
	} {
		resp, _ := doJSON(t, app, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", tc.method, tc.target)
	}

	mockService.AssertExpectations(t)
}

func TestShipRelayHandler_CreateShipment_Invalid(t *testing.T) {
	mockService := new(MockShipRelayService)
	app := setupApp(mockService)

	resp, body := doJSON(t, app, http.MethodPost, "/api/shiprelay/shipment", map[string]any{"order_ref": "SO-1"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["errors"], "items")
	mockService.AssertNotCalled(t, "CreateShipment", mock.Anything, mock.Anything)
}
