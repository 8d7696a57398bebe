package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/provider"
	"warehouse-gateway/internal/core/validation"
	"warehouse-gateway/internal/features/mintsoft/domain"
)

// MintSoftAdapter implements ports.Client against the MintSoft REST API.
// MintSoft paged endpoints return bare arrays; the gateway attaches the
// requested page and limit as the page metadata.
type MintSoftAdapter struct {
	client *provider.Client
}

// NewMintSoftAdapter wraps a provider client configured with the ms-apikey header.
func NewMintSoftAdapter(client *provider.Client) *MintSoftAdapter {
	return &MintSoftAdapter{client: client}
}

func (a *MintSoftAdapter) get(ctx context.Context, operation, path, notFoundKey string) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   operation,
		Method:      http.MethodGet,
		Path:        path,
		NotFoundKey: notFoundKey,
	})
}

func (a *MintSoftAdapter) page(ctx context.Context, operation, path string, query url.Values, cursor validation.Pagination) (provider.Page, error) {
	body, err := a.client.Do(ctx, provider.Call{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
	if err != nil {
		return provider.Page{}, err
	}

	page, err := provider.NewListPage(body, cursor)
	if err != nil {
		return provider.Page{}, apperror.Upstream(i18n.T(i18n.UpstreamError)).WithProvider(domain.ProviderName).WithCause(err)
	}
	return page, nil
}

// ListProducts calls GET /Product/List?PageNo&Limit.
func (a *MintSoftAdapter) ListProducts(ctx context.Context, req domain.ProductListRequest) (provider.Page, error) {
	query := provider.NewQuery().
		Int("PageNo", req.Page).
		Int("Limit", req.Limit)

	return a.page(ctx, "product.list", "/Product/List", query.Values(), req.Pagination)
}

// GetProduct calls GET /Product/{id}.
func (a *MintSoftAdapter) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	return a.get(ctx, "product.get", "/Product/"+url.PathEscape(productID), i18n.ProductNotFoundError)
}

// CreateProduct calls PUT /Product.
func (a *MintSoftAdapter) CreateProduct(ctx context.Context, input domain.ProductInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation: "product.create",
		Method:    http.MethodPut,
		Path:      "/Product",
		Body:      input,
	})
}

// UpdateProduct calls POST /Product.
func (a *MintSoftAdapter) UpdateProduct(ctx context.Context, input domain.UpdateProductInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "product.update",
		Method:      http.MethodPost,
		Path:        "/Product",
		Body:        input,
		NotFoundKey: i18n.ProductNotFoundError,
	})
}

// SearchProducts calls GET /Product/Search?Search.
func (a *MintSoftAdapter) SearchProducts(ctx context.Context, req domain.SearchRequest) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation: "product.search",
		Method:    http.MethodGet,
		Path:      "/Product/Search",
		Query:     provider.NewQuery().String("Search", req.Search).Values(),
	})
}

// GetProductInventory calls GET /Product/{id}/Inventory.
func (a *MintSoftAdapter) GetProductInventory(ctx context.Context, productID string) (json.RawMessage, error) {
	return a.get(ctx, "product.inventory", "/Product/"+url.PathEscape(productID)+"/Inventory", i18n.ProductNotFoundError)
}

// ListCourierServices calls GET /Courier/Services.
func (a *MintSoftAdapter) ListCourierServices(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "courier.services", "/Courier/Services", "")
}

// ListCourierServiceTypes calls GET /Courier/ServiceTypes.
func (a *MintSoftAdapter) ListCourierServiceTypes(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "courier.service_types", "/Courier/ServiceTypes", "")
}

// ListOrders calls GET /Order/List?PageNo&Limit with the populated filters.
func (a *MintSoftAdapter) ListOrders(ctx context.Context, req domain.OrderListRequest) (provider.Page, error) {
	query := provider.NewQuery().
		Int("PageNo", req.Page).
		Int("Limit", req.Limit).
		Int("WarehouseId", req.WarehouseID).
		Int("OrderStatusId", req.OrderStatusID).
		Int("CourierServiceId", req.CourierServiceID).
		Int("ClientId", req.ClientID)

	return a.page(ctx, "order.list", "/Order/List", query.Values(), req.Pagination)
}

// CreateOrder calls PUT /Order.
func (a *MintSoftAdapter) CreateOrder(ctx context.Context, input domain.OrderInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation: "order.create",
		Method:    http.MethodPut,
		Path:      "/Order",
		Body:      input,
	})
}

// GetOrder calls GET /Order/{id}.
func (a *MintSoftAdapter) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return a.get(ctx, "order.get", "/Order/"+url.PathEscape(orderID), i18n.OrderNotFoundError)
}

// ListOrderStatuses calls GET /Order/Statuses.
func (a *MintSoftAdapter) ListOrderStatuses(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "order.statuses", "/Order/Statuses", "")
}

// ListReturnReasons calls GET /Return/Reasons.
func (a *MintSoftAdapter) ListReturnReasons(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "return.reasons", "/Return/Reasons", "")
}

// CreateReturn calls POST /Return/CreateReturn/{OrderId}.
func (a *MintSoftAdapter) CreateReturn(ctx context.Context, input domain.ReturnInput) (json.RawMessage, error) {
	return a.client.Do(ctx, provider.Call{
		Operation:   "return.create",
		Method:      http.MethodPost,
		Path:        "/Return/CreateReturn/" + strconv.Itoa(input.OrderID),
		NotFoundKey: i18n.OrderNotFoundError,
	})
}

// GetReturn calls GET /Return/{id}.
func (a *MintSoftAdapter) GetReturn(ctx context.Context, returnID string) (json.RawMessage, error) {
	return a.get(ctx, "return.get", "/Return/"+url.PathEscape(returnID), i18n.ReturnNotFoundError)
}
