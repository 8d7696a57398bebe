package ports

import (
	"context"
	"encoding/json"

	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/features/mintsoft/domain"
)

// Client performs MintSoft API calls. Implemented by adapters.
type Client interface {
	ListProducts(ctx context.Context, req domain.ProductListRequest) (provider.Page, error)
	GetProduct(ctx context.Context, productID string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, input domain.UpdateProductInput) (json.RawMessage, error)
	SearchProducts(ctx context.Context, req domain.SearchRequest) (json.RawMessage, error)
	GetProductInventory(ctx context.Context, productID string) (json.RawMessage, error)

	ListCourierServices(ctx context.Context) (json.RawMessage, error)
	ListCourierServiceTypes(ctx context.Context) (json.RawMessage, error)

	ListOrders(ctx context.Context, req domain.OrderListRequest) (provider.Page, error)
	CreateOrder(ctx context.Context, input domain.OrderInput) (json.RawMessage, error)
	GetOrder(ctx context.Context, orderID string) (json.RawMessage, error)
	ListOrderStatuses(ctx context.Context) (json.RawMessage, error)

	ListReturnReasons(ctx context.Context) (json.RawMessage, error)
	CreateReturn(ctx context.Context, input domain.ReturnInput) (json.RawMessage, error)
	GetReturn(ctx context.Context, returnID string) (json.RawMessage, error)
}

// Service exposes the MintSoft use cases to the HTTP handler.
type Service interface {
	FetchProductList(ctx context.Context, req domain.ProductListRequest) (provider.Page, error)
	FetchProductInfo(ctx context.Context, productID string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, input domain.UpdateProductInput) (json.RawMessage, error)
	SearchProduct(ctx context.Context, req domain.SearchRequest) (json.RawMessage, error)
	FetchProductInventory(ctx context.Context, productID string) (json.RawMessage, error)

	FetchCouriers(ctx context.Context) (json.RawMessage, error)
	FetchCourierServiceTypes(ctx context.Context) (json.RawMessage, error)

	FetchOrderList(ctx context.Context, req domain.OrderListRequest) (provider.Page, error)
	CreateOrder(ctx context.Context, input domain.OrderInput) (json.RawMessage, error)
	FetchOrderInfo(ctx context.Context, orderID string) (json.RawMessage, error)
	FetchOrderStatuses(ctx context.Context) (json.RawMessage, error)

	FetchReturnReasons(ctx context.Context) (json.RawMessage, error)
	CreateReturn(ctx context.Context, input domain.ReturnInput) (json.RawMessage, error)
	FetchReturnInfo(ctx context.Context, returnID string) (json.RawMessage, error)
}
