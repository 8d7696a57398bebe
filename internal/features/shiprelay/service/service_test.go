package service

import (
	"context"
	"encoding/json"
	"testing"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/core/validation"
	"warehouse-gateway/internal/features/shiprelay/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of ports.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) raw(args mock.Arguments) (json.RawMessage, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockClient) ListProducts(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(provider.Page), args.Error(1)
}

func (m *MockClient) GetProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockClient) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, input))
}

func (m *MockClient) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id, input))
}

func (m *MockClient) ArchiveProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockClient) RestoreProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockClient) ListShipments(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(provider.Page), args.Error(1)
}

func (m *MockClient) GetShipment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockClient) CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, input))
}

func (m *MockClient) UpdateShipment(ctx context.Context, id string, input domain.ShipmentInput) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id, input))
}

func (m *MockClient) ArchiveShipment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func (m *MockClient) RestoreShipment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.raw(m.Called(ctx, id))
}

func TestShipRelayService_FetchProductList(t *testing.T) {
	mockClient := new(MockClient)
	service := NewShipRelayService(mockClient)
	ctx := context.Background()

	req := domain.ProductListRequest{Pagination: validation.Pagination{Page: 1, Limit: 10}, SKU: "MUG-01"}
	page := provider.Page{Data: []json.RawMessage{json.RawMessage(`{"id":1}`)}}
	mockClient.On("ListProducts", ctx, req).Return(page, nil).Once()

	got, err := service.FetchProductList(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, page, got)
	mockClient.AssertExpectations(t)
}

func TestShipRelayService_FetchProductInfo(t *testing.T) {
	mockClient := new(MockClient)
	service := NewShipRelayService(mockClient)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockClient.On("GetProduct", ctx, "1").Return(json.RawMessage(`{"id":1}`), nil).Once()

		body, err := service.FetchProductInfo(ctx, "1")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"id":1}`, string(body))
	})

	t.Run("NotFoundPropagatesUnchanged", func(t *testing.T) {
		notFound := apperror.NotFound("Product not found")
		mockClient.On("GetProduct", ctx, "999").Return(nil, notFound).Once()

		_, err := service.FetchProductInfo(ctx, "999")
		assert.Same(t, notFound, err)
	})

	mockClient.AssertExpectations(t)
}

func TestShipRelayService_ProductMutations(t *testing.T) {
	mockClient := new(MockClient)
	service := NewShipRelayService(mockClient)
	ctx := context.Background()
	input := domain.ProductInput{ProductName: "Mug"}
	ok := json.RawMessage(`{"ok":true}`)

	mockClient.On("CreateProduct", ctx, input).Return(ok, nil).Once()
	mockClient.On("UpdateProduct", ctx, "1", input).Return(ok, nil).Once()
	mockClient.On("ArchiveProduct", ctx, "1").Return(ok, nil).Once()
	mockClient.On("RestoreProduct", ctx, "1").Return(ok, nil).Once()

	_, err := service.CreateProduct(ctx, input)
	assert.NoError(t, err)
	_, err = service.UpdateProduct(ctx, "1", input)
	assert.NoError(t, err)
	_, err = service.ArchiveProduct(ctx, "1")
	assert.NoError(t, err)
	_, err = service.RestoreProduct(ctx, "1")
	assert.NoError(t, err)

	mockClient.AssertExpectations(t)
}

func TestShipRelayService_Shipments(t *testing.T) {
	mockClient := new(MockClient)
	service := NewShipRelayService(mockClient)
	ctx := context.Background()
	input := domain.ShipmentInput{OrderRef: "SO-1"}
	req := domain.ShipmentListRequest{Pagination: validation.Pagination{Page: 1, Limit: 10}}
	ok := json.RawMessage(`{"ok":true}`)

	mockClient.On("ListShipments", ctx, req).Return(provider.Page{}, nil).Once()
	mockClient.On("GetShipment", ctx, "2").Return(ok, nil).Once()
	mockClient.On("CreateShipment", ctx, input).Return(ok, nil).Once()
	mockClient.On("UpdateShipment", ctx, "2", input).Return(ok, nil).Once()
	mockClient.On("ArchiveShipment", ctx, "2").Return(ok, nil).Once()
	mockClient.On("RestoreShipment", ctx, "2").Return(nil, apperror.Upstream("boom")).Once()

	_, err := service.FetchShipmentList(ctx, req)
	assert.NoError(t, err)
	_, err = service.FetchShipmentInfo(ctx, "2")
	assert.NoError(t, err)
	_, err = service.CreateShipment(ctx, input)
	assert.NoError(t, err)
	_, err = service.UpdateShipment(ctx, "2", input)
	assert.NoError(t, err)
	_, err = service.ArchiveShipment(ctx, "2")
	assert.NoError(t, err)
	_, err = service.RestoreShipment(ctx, "2")
	assert.ErrorIs(t, err, apperror.ErrUpstream)

	mockClient.AssertExpectations(t)
}
