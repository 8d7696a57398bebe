package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/features/shiprelay/domain"
)

// ShipRelayAdapter implements ports.Client against the ShipRelay REST API.
type ShipRelayAdapter struct {
	client *provider.Client
}

// NewShipRelayAdapter wraps a provider client configured with bearer authentication.
func NewShipRelayAdapter(client *provider.Client) *ShipRelayAdapter {
	return &ShipRelayAdapter{client: client}
}

// upstreamProduct is the product body ShipRelay expects.
type upstreamProduct struct {
	Name     string `json:"name"`
	SKU      string `json:"sku,omitempty"`
	Barcode  string `json:"barcode,omitempty"`
	Category string `json:"category,omitempty"`
}

func toUpstreamProduct(input domain.ProductInput) upstreamProduct {
	return upstreamProduct{
		Name:     input.ProductName,
		SKU:      input.SKU,
		Barcode:  input.Barcode,
		Category: input.Category,
	}
}

func (a *ShipRelayAdapter) page(ctx context.Context, operation, path string, query url.Values) (provider.Page, error) {
	body, err := a.client.Do(ctx, provider.Call{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
	if err != nil {
		return provider.Page{}, err
	}

	page, err := provider.NewPage(body)
	if err != nil {
		return provider.Page{}, apperror.Upstream(i18n.T(i18n.UpstreamError)).WithProvider(domain.ProviderName).WithCause(err)
	}
	return page, nil
}

// ListProducts calls GET /products?page&per_page[&name][&sku].
func (a *ShipRelayAdapter) ListProducts(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	query := provider.NewQuery().
		Int("page", req.Page).
		Int("per_page", req.Limit).
		String("name", req.Name).
		String("sku", req.SKU)

	return a.page(ctx, "product.list", "/products", query.Values())
}

// GetProduct calls GET /products/{id}.
func (a *ShipRelayAdapter) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "product.get",
		Method:      http.MethodGet,
		Path:        "/products/" + url.PathEscape(productID),
		NotFoundKey: i18n.ProductNotFoundError,
	})
}

// CreateProduct calls POST /products.
func (a *ShipRelayAdapter) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation: "product.create",
		Method:    http.MethodPost,
		Path:      "/products",
		Body:      toUpstreamProduct(input),
	})
}

// UpdateProduct calls PUT /products/{id}.
func (a *ShipRelayAdapter) UpdateProduct(ctx context.Context, productID string, input domain.ProductInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "product.update",
		Method:      http.MethodPut,
		Path:        "/products/" + url.PathEscape(productID),
		Body:        toUpstreamProduct(input),
		NotFoundKey: i18n.ProductNotFoundError,
	})
}

// ArchiveProduct calls PATCH /products/{id}/archive.
func (a *ShipRelayAdapter) ArchiveProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return a.transition(ctx, "product.archive", "/products/"+url.PathEscape(productID)+"/archive", i18n.ProductNotFoundError)
}

// RestoreProduct calls PATCH /products/{id}/restore.
func (a *ShipRelayAdapter) RestoreProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return a.transition(ctx, "product.restore", "/products/"+url.PathEscape(productID)+"/restore", i18n.ProductNotFoundError)
}

// ListShipments calls GET /shipments?page&per_page[&status][&order_ref].
func (a *ShipRelayAdapter) ListShipments(ctx context.Context, req domain.ShipmentListRequest) (provider.Page, error) {
	query := provider.NewQuery().
		Int("page", req.Page).
		Int("per_page", req.Limit).
		String("status", req.Status).
		String("order_ref", req.OrderRef)

	return a.page(ctx, "shipment.list", "/shipments", query.Values())
}

// GetShipment calls GET /shipments/{id}.
func (a *ShipRelayAdapter) GetShipment(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "shipment.get",
		Method:      http.MethodGet,
		Path:        "/shipments/" + url.PathEscape(shipmentID),
		NotFoundKey: i18n.ShipmentNotFoundError,
	})
}

// CreateShipment calls POST /shipments.
func (a *ShipRelayAdapter) CreateShipment(ctx context.Context, input domain.ShipmentInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation: "shipment.create",
		Method:    http.MethodPost,
		Path:      "/shipments",
		Body:      input,
	})
}

// UpdateShipment calls PUT /shipments/{id}.
func (a *ShipRelayAdapter) UpdateShipment(ctx context.Context, shipmentID string, input domain.ShipmentInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "shipment.update",
		Method:      http.MethodPut,
		Path:        "/shipments/" + url.PathEscape(shipmentID),
		Body:        input,
		NotFoundKey: i18n.ShipmentNotFoundError,
	})
}

// ArchiveShipment calls PATCH /shipments/{id}/archive.
func (a *ShipRelayAdapter) ArchiveShipment(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return a.transition(ctx, "shipment.archive", "/shipments/"+url.PathEscape(shipmentID)+"/archive", i18n.ShipmentNotFoundError)
}

// RestoreShipment calls PATCH /shipments/{id}/restore.
func (a *ShipRelayAdapter) RestoreShipment(ctx context.Context, shipmentID string) (json.RawMessage, error) {
	return a.transition(ctx, "shipment.restore", "/shipments/"+url.PathEscape(shipmentID)+"/restore", i18n.ShipmentNotFoundError)
}

// transition issues a body-less PATCH that moves an entity between states.
func (a *ShipRelayAdapter) transition(ctx context.Context, operation, path, notFoundKey string) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   operation,
		Method:      http.MethodPatch,
		Path:        path,
		NotFoundKey: notFoundKey,
	})
}
