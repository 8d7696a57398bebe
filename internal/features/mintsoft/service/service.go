package service

import (
	"context"
	"encoding/json"

	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/features/mintsoft/domain"
	"warehouse-gateway/internal/features/mintsoft/ports"
)

// MintSoftService forwards validated requests to the MintSoft client.
type MintSoftService struct {
	client ports.Client
}

func NewMintSoftService(client ports.Client) *MintSoftService {
	return &MintSoftService{client: client}
}

// Products

func (s *MintSoftService) FetchProductList(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	return s.client.ListProducts(ctx, req)
}

func (s *MintSoftService) FetchProductInfo(ctx context.Context, productID string) (json.RawMessage, error) {
	return s.client.GetProduct(ctx, productID)
}

func (s *MintSoftService) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return s.client.CreateProduct(ctx, input)
}

func (s *MintSoftService) UpdateProduct(ctx context.Context, input domain.UpdateProductInput) (json.RawMessage, error) {
	return s.client.UpdateProduct(ctx, input)
}

func (s *MintSoftService) SearchProduct(ctx context.Context, req domain.SearchRequest) (json.RawMessage, error) {
	return s.client.SearchProducts(ctx, req)
}

func (s *MintSoftService) FetchProductInventory(ctx context.Context, productID string) (json.RawMessage, error) {
	return s.client.GetProductInventory(ctx, productID)
}

// Couriers

func (s *MintSoftService) FetchCouriers(ctx context.Context) (json.RawMessage, error) {
	return s.client.ListCourierServices(ctx)
}

func (s *MintSoftService) FetchCourierServiceTypes(ctx context.Context) (json.RawMessage, error) {
	return s.client.ListCourierServiceTypes(ctx)
}

// Orders

func (s *MintSoftService) FetchOrderList(ctx context.Context, req domain.OrderListRequest) (provider.Page, error) {
	return s.client.ListOrders(ctx, req)
}

func (s *MintSoftService) CreateOrder(ctx context.Context, input domain.OrderInput) (json.RawMessage, error) {
	return s.client.CreateOrder(ctx, input)
}

func (s *MintSoftService) FetchOrderInfo(ctx context.Context, orderID string) (json.RawMessage, error) {
	return s.client.GetOrder(ctx, orderID)
}

func (s *MintSoftService) FetchOrderStatuses(ctx context.Context) (json.RawMessage, error) {
	return s.client.ListOrderStatuses(ctx)
}

// Returns

func (s *MintSoftService) FetchReturnReasons(ctx context.Context) (json.RawMessage, error) {
	return s.client.ListReturnReasons(ctx)
}

func (s *MintSoftService) CreateReturn(ctx context.Context, input domain.ReturnInput) (json.RawMessage, error) {
	return s.client.CreateReturn(ctx, input)
}

func (s *MintSoftService) FetchReturnInfo(ctx context.Context, returnID string) (json.RawMessage, error) {
	return s.client.GetReturn(ctx, returnID)
}

var _ ports.Service = (*MintSoftService)(nil)
