// Package domain holds the validated request envelopes of the ShipRelay integration.
package domain

import (
	"strings"

	"warehouse-gateway/internal/core/validation"
)

// ProviderName identifies ShipRelay in logs, metrics and cache keys.
const ProviderName = "shiprelay"

// ProductListRequest pages through the product catalogue, optionally filtered by name or SKU.
type ProductListRequest struct {
	validation.Pagination
	Name string `json:"name,omitempty"`
	SKU  string `json:"sku,omitempty"`
}

// Validate checks the page cursor.
func (r ProductListRequest) Validate() error {
	errs := validation.Errors{}
	r.Pagination.Check(errs)
	return errs.Err()
}

// ShipmentListRequest pages through shipments, optionally filtered by status or order reference.
type ShipmentListRequest struct {
	validation.Pagination
	Status   string `json:"status,omitempty"`
	OrderRef string `json:"order_ref,omitempty"`
}

// Validate checks the page cursor.
func (r ShipmentListRequest) Validate() error {
	errs := validation.Errors{}
	r.Pagination.Check(errs)
	return errs.Err()
}

// ProductInput is the body of product create and update.
type ProductInput struct {
	ProductName string `json:"productName"`
	SKU         string `json:"sku,omitempty"`
	Barcode     string `json:"barcode,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Normalize trims every text field.
func (p *ProductInput) Normalize() {
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Barcode = strings.TrimSpace(p.Barcode)
	p.Category = strings.TrimSpace(p.Category)
}

// Validate requires a product name.
func (p ProductInput) Validate() error {
	errs := validation.Errors{}
	errs.Required(p.ProductName, "productName", "productName should not be empty")
	return errs.Err()
}

// ShipmentItem is one line of a shipment.
type ShipmentItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ShipmentAddress is the delivery address of a shipment.
type ShipmentAddress struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ShipmentInput is the body of shipment create and update.
type ShipmentInput struct {
	OrderRef string          `json:"order_ref"`
	Carrier  string          `json:"carrier,omitempty"`
	Service  string          `json:"service,omitempty"`
	Notes    string          `json:"notes,omitempty"`
	Address  ShipmentAddress `json:"address"`
	Items    []ShipmentItem  `json:"items"`
}

// Normalize trims the identifying text fields.
func (s *ShipmentInput) Normalize() {
	s.OrderRef = strings.TrimSpace(s.OrderRef)
	s.Carrier = strings.TrimSpace(s.Carrier)
	s.Service = strings.TrimSpace(s.Service)
	for i := range s.Items {
		s.Items[i].SKU = strings.TrimSpace(s.Items[i].SKU)
	}
}

// Validate requires an order reference, a deliverable address and at least one item.
func (s ShipmentInput) Validate() error {
	errs := validation.Errors{}
	errs.Required(s.OrderRef, "order_ref", "order_ref should not be empty")
	errs.Required(s.Address.Name, "address.name", "address.name should not be empty")
	errs.Required(s.Address.Address1, "address.address1", "address.address1 should not be empty")
	errs.Required(s.Address.City, "address.city", "address.city should not be empty")
	errs.Required(s.Address.Zip, "address.zip", "address.zip should not be empty")
	errs.Required(s.Address.Country, "address.country", "address.country should not be empty")
	errs.Check(len(s.Items) > 0, "items", "items must contain at least 1 element")
	for _, item := range s.Items {
		errs.Required(item.SKU, "items.sku", "items.sku should not be empty")
		errs.Check(item.Quantity >= 1, "items.quantity", "items.quantity must be at least 1")
	}
	return errs.Err()
}
