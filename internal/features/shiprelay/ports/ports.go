package ports

import (
	"context"
	"encoding/json"

	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/features/shiprelay/domain"
)

// Client performs ShipRelay API calls. Implemented by adapters.
type Client interface {
	ListProducts(ctx context.Context, req domain.ProductListRequest) (provider.Page, error)
	GetProduct(ctx context.Context, productID string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, productID string, input domain.ProductInput) (json.RawMessage, error)
	ArchiveProduct(ctx context.Context, productID string) (json.RawMessage, error)
	RestoreProduct(ctx context.Context, productID string) (json.RawMessage, error)

	ListShipments(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error)
	GetShipment(ctx context.Context, shipmentID string) (json.RawMessage, error)
	CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error)
	UpdateShipment(ctx context.Context, shipmentID string, input domain.ShipmentInput) (json.RawMessage, error)
	ArchiveShipment(ctx context.Context, shipmentID string) (json.RawMessage, error)
	RestoreShipment(ctx context.Context, shipmentID string) (json.RawMessage, error)
}

// Service exposes the ShipRelay use cases to the HTTP handler.
type Service interface {
	FetchProductList(ctx context.Context, req domain.ProductListRequest) (provider.Page, error)
	FetchProductInfo(ctx context.Context, productID string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, productID string, input domain.ProductInput) (json.RawMessage, error)
	ArchiveProduct(ctx context.Context, productID string) (json.RawMessage, error)
	RestoreProduct(ctx context.Context, productID string) (json.RawMessage, error)

	FetchShipmentList(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error)
	FetchShipmentInfo(ctx context.Context, shipmentID string) (json.RawMessage, error)
	CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error)
	UpdateShipment(ctx context.Context, shipmentID string, input domain.ShipmentInput) (json.RawMessage, error)
	ArchiveShipment(ctx context.Context, shipmentID string) (json.RawMessage, error)
	RestoreShipment(ctx context.Context, shipmentID string) (json.RawMessage, error)
}
