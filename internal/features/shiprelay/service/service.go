package service

import (
	"context"
	"encoding/json"

	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/features/shiprelay/domain"
	"warehouse-gateway/internal/features/shiprelay/ports"
)

// ShipRelayService maps each ShipRelay use case onto one client call.
type ShipRelayService struct {
	client ports.Client
}

// NewShipRelayService creates a new ShipRelayService.
func NewShipRelayService(client ports.Client) *ShipRelayService {
	return &ShipRelayService{client: client}
}

func (s *ShipRelayService) FetchProductList(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	return s.client.ListProducts(ctx, req)
}

func (s *ShipRelayService) FetchProductInfo(ctx context.Context, productID string) (json.RawMessage, error) {
	return s.client.GetProduct(ctx, productID)
}

func (s *ShipRelayService) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return s.client.CreateProduct(ctx, input)
}

func (s *ShipRelayService) UpdateProduct(ctx context.Context, productID string, input domain.ProductInput) (json.RawMessage, error) {
	return s.client.UpdateProduct(ctx, productID, input)
}

func (s *ShipRelayService) ArchiveProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return s.client.ArchiveProduct(ctx, productID)
}

func (s *ShipRelayService) RestoreProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return s.client.RestoreProduct(ctx, productID)
}

func (s *ShipRelayService) FetchShipmentList(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error) {
	return s.client.ListShipments(ctx, req)
}

func (s *ShipRelayService) FetchShipmentInfo(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return s.client.GetShipment(ctx, shipmentID)
}

func (s *ShipRelayService) CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error) {
	return s.client.CreateShipment(ctx, input)
}

func (s *ShipRelayService) UpdateShipment(ctx context.Context, shipmentID string, input domain.ShipmentInput) (json.RawMessage, error) {
	return s.client.UpdateShipment(ctx, shipmentID, input)
}

func (s *ShipRelayService) ArchiveShipment(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return s.client.ArchiveShipment(ctx, shipmentID)
}

func (s *ShipRelayService) RestoreShipment(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return s.client.RestoreShipment(ctx, shipmentID)
}

var _ ports.Service = (*ShipRelayService)(nil)
