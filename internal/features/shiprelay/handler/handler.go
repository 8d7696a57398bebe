package handler

import (
	"net/http"
	"strings"

	"warehouse-gateway/internal/core/config"
	"warehouse-gateway/internal/core/i18n"
	"warehouse-gateway/internal/core/server"
	"warehouse-gateway/internal/core/validation"
	"warehouse-gateway/internal/features/shiprelay/domain"
	"warehouse-gateway/internal/features/shiprelay/ports"

	"github.com/gofiber/fiber/v2"
)

// ShipRelayHandler handles HTTP requests for the ShipRelay integration.
type ShipRelayHandler struct {
	service    ports.Service
	pagination config.PaginationConfig
}

// NewShipRelayHandler creates a new ShipRelayHandler.
func NewShipRelayHandler(service ports.Service, pagination config.PaginationConfig) *ShipRelayHandler {
	return &ShipRelayHandler{
		service:    service,
		pagination: pagination,
	}
}

// Register mounts the ShipRelay routes on router.
func (h *ShipRelayHandler) Register(router fiber.Router) {
	router.Get("/", server.Welcome(i18n.ShipRelayWelcome))

	router.Get("/product", h.FetchProductList)
	router.Post("/product", h.CreateProduct)
	router.Get("/product/:productId", h.FetchProductInfo)
	router.Put("/product/:productId", h.UpdateProduct)
	router.Patch("/product/:productId/archive", h.ArchiveProduct)
	router.Patch("/product/:productId/restore", h.RestoreProduct)

	router.Get("/shipment", h.FetchShipmentList)
	router.Post("/shipment", h.CreateShipment)
	router.Get("/shipment/:shipmentId", h.FetchShipmentInfo)
	router.Put("/shipment/:shipmentId", h.UpdateShipment)
	router.Patch("/shipment/:shipmentId/archive", h.ArchiveShipment)
	router.Patch("/shipment/:shipmentId/restore", h.RestoreShipment)
}

// FetchProductList handles GET /shiprelay/product.
// @Summary List ShipRelay products
// @Tags ShipRelay
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Filter by name"
// @Param sku query string false "Filter by SKU"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 401 {object} server.ErrorResponse
// @Router /api/shiprelay/product [get]
func (h *ShipRelayHandler) FetchProductList(c *fiber.Ctx) error {
	errs := validation.Errors{}
	req := domain.ProductListRequest{
		Pagination: server.PaginationFrom(c, h.pagination, errs),
		Name:       strings.TrimSpace(c.Query("name")),
		SKU:        strings.TrimSpace(c.Query("sku")),
	}
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

// FetchProductInfo handles GET /shiprelay/product/:productId.
// @Summary Get a ShipRelay product
// @Tags ShipRelay
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/shiprelay/product/{productId} [get]
func (h *ShipRelayHandler) FetchProductInfo(c *fiber.Ctx) error {
	body, err := h.service.FetchProductInfo(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// CreateProduct handles POST /shiprelay/product.
// @Summary Create a ShipRelay product
// @Tags ShipRelay
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Product"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/shiprelay/product [post]
func (h *ShipRelayHandler) CreateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}

	body, err := h.service.CreateProduct(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// UpdateProduct handles PUT /shiprelay/product/:productId.
// @Summary Update a ShipRelay product
// @Tags ShipRelay
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param product body domain.ProductInput true "Product"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/shiprelay/product/{productId} [put]
func (h *ShipRelayHandler) UpdateProduct(c *fiber.Ctx) error {
	input, err := parseProduct(c)
	if err != nil {
		return err
	}

	body, err := h.service.UpdateProduct(c.UserContext(), c.Params("productId"), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// ArchiveProduct handles PATCH /shiprelay/product/:productId/archive.
// @Summary Archive a ShipRelay product
// @Tags ShipRelay
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} server.SuccessResponse
// @Router /api/shiprelay/product/{productId}/archive [patch]
func (h *ShipRelayHandler) ArchiveProduct(c *fiber.Ctx) error {
	body, err := h.service.ArchiveProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// RestoreProduct handles PATCH /shiprelay/product/:productId/restore.
// @Summary Restore an archived ShipRelay product
// @Tags ShipRelay
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} server.SuccessResponse
// @Router /api/shiprelay/product/{productId}/restore [patch]
func (h *ShipRelayHandler) RestoreProduct(c *fiber.Ctx) error {
	body, err := h.service.RestoreProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// FetchShipmentList handles GET /shiprelay/shipment.
// @Summary List ShipRelay shipments
// @Tags ShipRelay
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "Filter by status"
// @Param order_ref query string false "Filter by order reference"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/shiprelay/shipment [get]
func (h *ShipRelayHandler) FetchShipmentList(c *fiber.Ctx) error {
	errs := validation.Errors{}
	req := domain.ShipmentListRequest{
		Pagination: server.PaginationFrom(c, h.pagination, errs),
		Status:     strings.TrimSpace(c.Query("status")),
		OrderRef:   strings.TrimSpace(c.Query("order_ref")),
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	page, err := h.service.FetchShipmentList(c.UserContext(), req)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, page)
}

// FetchShipmentInfo handles GET /shiprelay/shipment/:shipmentId.
// @Summary Get a ShipRelay shipment
// @Tags ShipRelay
// @Produce json
// @Param shipmentId path string true "Shipment ID"
// @Success 200 {object} server.SuccessResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/shiprelay/shipment/{shipmentId} [get]
func (h *ShipRelayHandler) FetchShipmentInfo(c *fiber.Ctx) error {
	body, err := h.service.FetchShipmentInfo(c.UserContext(), c.Params("shipmentId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// CreateShipment handles POST /shiprelay/shipment.
// @Summary Create a ShipRelay shipment
// @Tags ShipRelay
// @Accept json
// @Produce json
// @Param shipment body domain.ShipmentInput true "Shipment"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/shiprelay/shipment [post]
func (h *ShipRelayHandler) CreateShipment(c *fiber.Ctx) error {
	input, err := parseShipment(c)
	if err != nil {
		return err
	}

	body, err := h.service.CreateShipment(c.UserContext(), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// UpdateShipment handles PUT /shiprelay/shipment/:shipmentId.
// @Summary Update a ShipRelay shipment
// @Tags ShipRelay
// @Accept json
// @Produce json
// @Param shipmentId path string true "Shipment ID"
// @Param shipment body domain.ShipmentInput true "Shipment"
// @Success 200 {object} server.SuccessResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/shiprelay/shipment/{shipmentId} [put]
func (h *ShipRelayHandler) UpdateShipment(c *fiber.Ctx) error {
	input, err := parseShipment(c)
	if err != nil {
		return err
	}

	body, err := h.service.UpdateShipment(c.UserContext(), c.Params("shipmentId"), input)
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// ArchiveShipment handles PATCH /shiprelay/shipment/:shipmentId/archive.
// @Summary Archive a ShipRelay shipment
// @Tags ShipRelay
// @Produce json
// @Param shipmentId path string true "Shipment ID"
// @Success 200 {object} server.SuccessResponse
// @Router /api/shiprelay/shipment/{shipmentId}/archive [patch]
func (h *ShipRelayHandler) ArchiveShipment(c *fiber.Ctx) error {
	body, err := h.service.ArchiveShipment(c.UserContext(), c.Params("shipmentId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

// RestoreShipment handles PATCH /shiprelay/shipment/:shipmentId/restore.
// @Summary Restore an archived ShipRelay shipment
// @Tags ShipRelay
// @Produce json
// @Param shipmentId path string true "Shipment ID"
// @Success 200 {object} server.SuccessResponse
// @Router /api/shiprelay/shipment/{shipmentId}/restore [patch]
func (h *ShipRelayHandler) RestoreShipment(c *fiber.Ctx) error {
	body, err := h.service.RestoreShipment(c.UserContext(), c.Params("shipmentId"))
	if err != nil {
		return err
	}
	return server.Respond(c, http.StatusOK, body)
}

func parseProduct(c *fiber.Ctx) (domain.ProductInput, error) {
	var input domain.ProductInput
	if err := server.ParseBody(c, &input); err != nil {
		return input, err
	}
	input.Normalize()
	return input, input.Validate()
}

func parseShipment(c *fiber.Ctx) (domain.ShipmentInput, error) {
	var input domain.ShipmentInput
	if err := server.ParseBody(c, &input); err != nil {
		return input, err
	}
	input.Normalize()
	return input, input.Validate()
}
