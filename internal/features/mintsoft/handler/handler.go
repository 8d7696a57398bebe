package handler

import (
	"net/http"
	"strings"
	"time"

	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/server"
	"warehouse-gateway/internal/core/validation"
	"warehouse-gateway/internal/features/mintsoft/domain"
	"warehouse-gateway/internal/features/mintsoft/ports"

	"github.com/gofiber/fiber/v2"
)

// MintSoftHandler handles HTTP requests for the MintSoft integration.
type MintSoftHandler struct {
	service    ports.Service
	pagination config.PaginationConfig
	now        func() time.Time
}

// NewMintSoftHandler creates a new MintSoftHandler.
func NewMintSoftHandler(service ports.Service, pagination config.PaginationConfig) *MintSoftHandler {
	return &MintSoftHandler{
		service:    service,
		pagination: pagination,
		now:        time.Now,
	}
}

// Register mounts the MintSoft routes on router.
func (h *MintSoftHandler) Register(router fiber.Router) {
	router.Get("/", server.Welcome(i18n.MintSoftWelcome))

	router.Get("/product", h.FetchProductList)
	router.Post("/product", h.CreateProduct)
	router.Patch("/product", h.UpdateProduct)
	router.Get("/product/:productId", h.FetchProductInfo)
	router.Get("/product/:productId/inventory", h.FetchProductInventory)
	router.Get("/search", h.SearchProduct)

	router.Get("/courier/services", h.FetchCouriers)
	router.Get("/courier/serviceTypes", h.FetchCourierServiceTypes)

	router.Get("/order", h.FetchOrderList)
	router.Post("/order", h.CreateOrder)
	router.Get("/order/:orderId", h.FetchOrderInfo)
	router.Get("/order-status", h.FetchOrderStatuses)

	router.Get("/return/reason", h.FetchReturnReasons)
	router.Post("/return", h.CreateReturn)
	router.Get("/return/:returnId", h.FetchReturnInfo)
}

// FetchProductList handles GET /mintsoft/product.
// @Summary List MintSoft products
// @Tags MintSoft
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Router /api/mintsoft/product [get]
func (h *MintSoftHandler) FetchProductList(c *fiber.Ctx) error {
	errs := validation.Errors{}
	req := domain.ProductListRequest{Pagination: server.PaginationFrom(c, h.pagination, errs)}
	if err := errs.Err(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	page, err := h.service.FetchProductList(c.UserContext(), req)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, page)
}

// FetchProductInfo handles GET /mintsoft/product/:productId.
// @Summary Get a MintSoft product
// @Tags MintSoft
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/product/{productId} [get]
func (h *MintSoftHandler) FetchProductInfo(c *fiber.Ctx) error {
	body, err := h.service.FetchProductInfo(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// CreateProduct handles POST /mintsoft/product.
// @Summary Create a MintSoft product
// @Tags MintSoft
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Product"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/mintsoft/product [post]
func (h *MintSoftHandler) CreateProduct(c *fiber.Ctx) error {
	var input domain.ProductInput
	if err := server.ParseBody(c, &input); err != nil {
		return err
	}
	input.Normalize(h.now())
	if err := input.Validate(); err != nil {
		return err
	}

	body, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// UpdateProduct handles PATCH /mintsoft/product.
// @Summary Update a MintSoft product
// @Tags MintSoft
// @Accept json
// @Produce json
// @Param product body domain.UpdateProductInput true "Product"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/product [patch]
func (h *MintSoftHandler) UpdateProduct(c *fiber.Ctx) error {
	var input domain.UpdateProductInput
	if err := server.ParseBody(c, &input); err != nil {
		return err
	}
	input.Normalize(h.now())
	if err := input.Validate(); err != nil {
		return err
	}

	body, err := h.service.UpdateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// SearchProduct handles GET /mintsoft/search.
// @Summary Search MintSoft products
// @Tags MintSoft
// @Produce json
// @Param search query string true "Search text"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/mintsoft/search [get]
func (h *MintSoftHandler) SearchProduct(c *fiber.Ctx) error {
	req := domain.SearchRequest{Search: strings.TrimSpace(c.Query("search"))}
	if err := req.Validate(); err != nil {
		return err
	}

	body, err := h.service.SearchProduct(c.UserContext(), req)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchProductInventory handles GET /mintsoft/product/:productId/inventory.
// @Summary Get MintSoft stock levels for a product
// @Tags MintSoft
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/product/{productId}/inventory [get]
func (h *MintSoftHandler) FetchProductInventory(c *fiber.Ctx) error {
	body, err := h.service.FetchProductInventory(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchCouriers handles GET /mintsoft/courier/services.
// @Summary List MintSoft courier services
// @Tags MintSoft
// @Produce json
// @Success 200 {object} server.SuccessResponse
// @Router /api/mintsoft/courier/services [get]
func (h *MintSoftHandler) FetchCouriers(c *fiber.Ctx) error {
	body, err := h.service.FetchCouriers(c.UserContext())
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchCourierServiceTypes handles GET /mintsoft/courier/serviceTypes.
// @Summary List MintSoft courier service types
// @Tags MintSoft
// @Produce json
// @Success 200 {object} server.SuccessResponse
// @Router /api/mintsoft/courier/serviceTypes [get]
func (h *MintSoftHandler) FetchCourierServiceTypes(c *fiber.Ctx) error {
	body, err := h.service.FetchCourierServiceTypes(c.UserContext())
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchOrderList handles GET /mintsoft/order.
// @Summary List MintSoft orders
// @Tags MintSoft
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param warehouseId query int false "Warehouse filter"
// @Param orderStatusId query int false "Order status filter"
// @Param courierServiceId query int false "Courier service filter"
// @Param clientId query int false "Client filter"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/mintsoft/order [get]
func (h *MintSoftHandler) FetchOrderList(c *fiber.Ctx) error {
	errs := validation.Errors{}
	req := domain.OrderListRequest{
		Pagination:       server.PaginationFrom(c, h.pagination, errs),
		WarehouseID:      server.OptionalInt(c, "warehouseId", "WarehouseId must be a number!", errs),
		OrderStatusID:    server.OptionalInt(c, "orderStatusId", "Order StatusId must be a number!", errs),
		CourierServiceID: server.OptionalInt(c, "courierServiceId", "Courier ServiceId must be a number!", errs),
		ClientID:         server.OptionalInt(c, "clientId", "ClientId must be a number!", errs),
	}
	req.Pagination.Check(errs)
	if err := errs.Err(); err != nil {
		return err
	}

	page, err := h.service.FetchOrderList(c.UserContext(), req)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, page)
}

// CreateOrder handles POST /mintsoft/order.
// @Summary Create a MintSoft order
// @Tags MintSoft
// @Accept json
// @Produce json
// @Param order body domain.OrderInput true "Order"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/mintsoft/order [post]
func (h *MintSoftHandler) CreateOrder(c *fiber.Ctx) error {
	var input domain.OrderInput
	if err := server.ParseBody(c, &input); err != nil {
		return err
	}
	input.Normalize()
	if err := input.Validate(); err != nil {
		return err
	}

	body, err := h.service.CreateOrder(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchOrderInfo handles GET /mintsoft/order/:orderId.
// @Summary Get a MintSoft order
// @Tags MintSoft
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/order/{orderId} [get]
func (h *MintSoftHandler) FetchOrderInfo(c *fiber.Ctx) error {
	body, err := h.service.FetchOrderInfo(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchOrderStatuses handles GET /mintsoft/order-status.
// @Summary List MintSoft order statuses
// @Tags MintSoft
// @Produce json
// @Success 200 {object} server.SuccessResponse
// @Router /api/mintsoft/order-status [get]
func (h *MintSoftHandler) FetchOrderStatuses(c *fiber.Ctx) error {
	body, err := h.service.FetchOrderStatuses(c.UserContext())
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchReturnReasons handles GET /mintsoft/return/reason.
// @Summary List MintSoft return reasons
// @Tags MintSoft
// @Produce json
// @Success 200 {object} server.SuccessResponse
// @Router /api/mintsoft/return/reason [get]
func (h *MintSoftHandler) FetchReturnReasons(c *fiber.Ctx) error {
	body, err := h.service.FetchReturnReasons(c.UserContext())
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// CreateReturn handles POST /mintsoft/return.
// @Summary Create a MintSoft return for an order
// @Tags MintSoft
// @Accept json
// @Produce json
// @Param return body domain.ReturnInput true "Return"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/return [post]
func (h *MintSoftHandler) CreateReturn(c *fiber.Ctx) error {
	var input domain.ReturnInput
	if err := server.ParseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	body, err := h.service.CreateReturn(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchReturnInfo handles GET /mintsoft/return/:returnId.
// @Summary Get a MintSoft return
// @Tags MintSoft
// @Produce json
// @Param returnId path string true "Return ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/mintsoft/return/{returnId} [get]
func (h *MintSoftHandler) FetchReturnInfo(c *fiber.Ctx) error {
	body, err := h.service.FetchReturnInfo(c.UserContext(), c.Params("returnId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}
