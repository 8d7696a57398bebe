// Package domain holds the validated request envelopes of the MintSoft integration.
package domain

import (
	"regexp"
	"strings"
	"time"

	"warehouse-gateway/internal/core/validation"
)

// ProviderName identifies MintSoft in logs, metrics and cache keys.
const ProviderName = "mintsoft"

// UpdatedBy is recorded as LastUpdatedByUser on product writes when the caller sends none.
const UpdatedBy = "warehouse-gateway"

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{4}-\d{4}$`)

// ProductListRequest pages through the product catalogue.
type ProductListRequest struct {
	validation.Pagination
}

// Validate checks the page cursor.
func (r ProductListRequest) Validate() error {
	errs := validation.Errors{}
	r.Pagination.Check(errs)
	return errs.Err()
}

// OrderListRequest pages through orders. Zero filters are not sent.
type OrderListRequest struct {
	validation.Pagination
	WarehouseID      int `json:"warehouseId,omitempty"`
	OrderStatusID    int `json:"orderStatusId,omitempty"`
	CourierServiceID int `json:"courierServiceId,omitempty"`
	ClientID         int `json:"clientId,omitempty"`
}

// Validate checks the page cursor.
func (r OrderListRequest) Validate() error {
	errs := validation.Errors{}
	r.Pagination.Check(errs)
	return errs.Err()
}

// SearchRequest is a free-text product search.
type SearchRequest struct {
	Search string `json:"search"`
}

// Validate requires search text.
func (r SearchRequest) Validate() error {
	errs := validation.Errors{}
	errs.Required(r.Search, "search", "Search is required!")
	return errs.Err()
}

// ProductInput is the body of product create.
type ProductInput struct {
	SKU               string     `json:"SKU"`
	Name              string     `json:"Name"`
	Description       string     `json:"Description"`
	Weight            float64    `json:"Weight"`
	ImageURL          string     `json:"ImageURL"`
	LastUpdated       *time.Time `json:"LastUpdated,omitempty"`
	LastUpdatedByUser string     `json:"LastUpdatedByUser,omitempty"`
}

// Normalize trims text fields and stamps the update audit fields.
func (p *ProductInput) Normalize(now time.Time) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	if p.LastUpdated == nil {
		p.LastUpdated = &now
	}
	if p.LastUpdatedByUser == "" {
		p.LastUpdatedByUser = UpdatedBy
	}
}

// Validate applies the MintSoft product field limits.
func (p ProductInput) Validate() error {
	errs := validation.Errors{}
	errs.Required(p.SKU, "SKU", "SKU is required!")
	errs.MaxLength(p.SKU, 75, "SKU", "SKU must not exceed 75 characters!")
	checkProductFields(errs, p.Name, p.Description, p.ImageURL)
	return errs.Err()
}

// UpdateProductInput is the body of product update.
type UpdateProductInput struct {
	ID                int        `json:"ID"`
	SKU               string     `json:"SKU,omitempty"`
	Name              string     `json:"Name"`
	Description       string     `json:"Description"`
	Weight            float64    `json:"Weight"`
	ImageURL          string     `json:"ImageURL"`
	LastUpdated       *time.Time `json:"LastUpdated,omitempty"`
	LastUpdatedByUser string     `json:"LastUpdatedByUser,omitempty"`
}

// Normalize trims text fields and stamps the update audit fields.
func (p *UpdateProductInput) Normalize(now time.Time) {
	p.SKU = strings.TrimSpace(p.SKU)
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	if p.LastUpdated == nil {
		p.LastUpdated = &now
	}
	if p.LastUpdatedByUser == "" {
		p.LastUpdatedByUser = UpdatedBy
	}
}

// Validate requires the product id and the MintSoft field limits.
func (p UpdateProductInput) Validate() error {
	errs := validation.Errors{}
	errs.Check(p.ID >= 1, "ID", "ID is required!")
	checkProductFields(errs, p.Name, p.Description, p.ImageURL)
	return errs.Err()
}

func checkProductFields(errs validation.Errors, name, description, imageURL string) {
	errs.Required(name, "Name", "Name is required!")
	errs.MaxLength(name, 99, "Name", "Name must not exceed 99 characters!")
	errs.Required(description, "Description", "Description is required!")
	errs.Required(imageURL, "ImageURL", "ImageURL is required!")
}

// NameValue is a free-form attribute of an order or order line.
type NameValue struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	SKU                 string      `json:"SKU"`
	ProductID           int         `json:"ProductId,omitempty"`
	Quantity            int         `json:"Quantity"`
	Details             string      `json:"Details,omitempty"`
	UnitPrice           float64     `json:"UnitPrice"`
	UnitPriceVat        float64     `json:"UnitPriceVat"`
	Discount            float64     `json:"Discount"`
	OrderItemNameValues []NameValue `json:"OrderItemNameValues,omitempty"`
	WarehouseID         int         `json:"WarehouseId,omitempty"`
	RequestedSerialNo   string      `json:"RequestedSerialNo,omitempty"`
	RequestedBatchNo    string      `json:"RequestedBatchNo,omitempty"`
	RequestedBBEDate    string      `json:"RequestedBBEDate,omitempty"`
}

// CashOnDelivery is the amount collected by the courier.
type CashOnDelivery struct {
	Amount       float64 `json:"Amount"`
	CurrencyCode string  `json:"CurrencyCode"`
}

// OrderInput is the body of order create.
type OrderInput struct {
	OrderItems             []OrderItem     `json:"OrderItems"`
	OrderNameValues        []NameValue     `json:"OrderNameValues,omitempty"`
	OrderNumber            string          `json:"OrderNumber"`
	ExternalOrderReference string          `json:"ExternalOrderReference,omitempty"`
	Title                  string          `json:"Title,omitempty"`
	CompanyName            string          `json:"CompanyName,omitempty"`
	FirstName              string          `json:"FirstName"`
	LastName               string          `json:"LastName,omitempty"`
	Address1               string          `json:"Address1"`
	Address2               string          `json:"Address2"`
	Address3               string          `json:"Address3,omitempty"`
	Town                   string          `json:"Town"`
	County                 string          `json:"County,omitempty"`
	PostCode               string          `json:"PostCode"`
	Country                string          `json:"Country"`
	CountryID              int             `json:"CountryId,omitempty"`
	Email                  string          `json:"Email"`
	Phone                  string          `json:"Phone,omitempty"`
	Mobile                 string          `json:"Mobile"`
	CourierService         string          `json:"CourierService,omitempty"`
	CourierServiceID       int             `json:"CourierServiceId,omitempty"`
	Channel                string          `json:"Channel,omitempty"`
	ChannelID              int             `json:"ChannelId,omitempty"`
	Warehouse              string          `json:"Warehouse,omitempty"`
	WarehouseID            int             `json:"WarehouseId"`
	Currency               string          `json:"Currency"`
	CurrencyID             int             `json:"CurrencyId,omitempty"`
	DeliveryDate           string          `json:"DeliveryDate,omitempty"`
	DespatchDate           string          `json:"DespatchDate,omitempty"`
	RequiredDeliveryDate   string          `json:"RequiredDeliveryDate,omitempty"`
	RequiredDespatchDate   string          `json:"RequiredDespatchDate,omitempty"`
	Comments               string          `json:"Comments"`
	DeliveryNotes          string          `json:"DeliveryNotes"`
	GiftMessages           string          `json:"GiftMessages"`
	VATNumber              string          `json:"VATNumber,omitempty"`
	EORINumber             string          `json:"EORINumber,omitempty"`
	PIDNumber              string          `json:"PIDNumber,omitempty"`
	IOSSNumber             string          `json:"IOSSNumber,omitempty"`
	OrderValue             float64         `json:"OrderValue,omitempty"`
	ShippingTotalExVat     float64         `json:"ShippingTotalExVat,omitempty"`
	ShippingTotalVat       float64         `json:"ShippingTotalVat,omitempty"`
	DiscountTotalExVat     float64         `json:"DiscountTotalExVat,omitempty"`
	DiscountTotalVat       float64         `json:"DiscountTotalVat,omitempty"`
	TotalVat               float64         `json:"TotalVat,omitempty"`
	ClientID               int             `json:"ClientId,omitempty"`
	NumberOfParcels        int             `json:"NumberOfParcels,omitempty"`
	CashOnDelivery         *CashOnDelivery `json:"CashOnDelivery,omitempty"`
	RecipientType          string          `json:"RecipientType,omitempty"`
}

// Normalize trims the identifying and address fields.
func (o *OrderInput) Normalize() {
	for _, f := range []*string{
		&o.OrderNumber, &o.ExternalOrderReference, &o.FirstName, &o.LastName,
		&o.Address1, &o.Address2, &o.Address3, &o.Town, &o.County, &o.PostCode,
		&o.Country, &o.Email, &o.Phone, &o.Mobile, &o.Currency,
	} {
		*f = strings.TrimSpace(*f)
	}
	for i := range o.OrderItems {
		o.OrderItems[i].SKU = strings.TrimSpace(o.OrderItems[i].SKU)
	}
}

// Validate checks the order number format, the delivery address and every order line.
func (o OrderInput) Validate() error {
	errs := validation.Errors{}
	errs.Matches(o.OrderNumber, orderNumberPattern, "OrderNumber", "OrderNumber must match the format ORD-YYYY-MMDD-XXXX")
	errs.Required(o.FirstName, "FirstName", "FirstName is required!")
	errs.Required(o.Address1, "Address1", "Address1 is required!")
	errs.Required(o.Town, "Town", "Town is required!")
	errs.Required(o.PostCode, "PostCode", "PostCode is required!")
	errs.Required(o.Country, "Country", "Country is required!")
	errs.Required(o.Email, "Email", "Email is required!")
	errs.Required(o.Currency, "Currency", "Currency is required!")
	errs.Check(o.WarehouseID >= 1, "WarehouseId", "WarehouseId must be a positive integer")

	errs.Check(len(o.OrderItems) > 0, "OrderItems", "OrderItems must contain at least 1 element")
	for _, item := range o.OrderItems {
		errs.Check(item.SKU != "" || item.ProductID > 0, "OrderItems.SKU", "OrderItems.SKU or OrderItems.ProductId is required")
		errs.Check(item.Quantity >= 1, "OrderItems.Quantity", "OrderItems.Quantity must be at least 1")
	}

	for field, value := range map[string]string{
		"DeliveryDate":         o.DeliveryDate,
		"DespatchDate":         o.DespatchDate,
		"RequiredDeliveryDate": o.RequiredDeliveryDate,
		"RequiredDespatchDate": o.RequiredDespatchDate,
	} {
		errs.Check(value == "" || isDate(value), field, field+" must be a valid ISO 8601 date string")
	}

	if o.CashOnDelivery != nil {
		errs.Required(o.CashOnDelivery.CurrencyCode, "CashOnDelivery.CurrencyCode", "CashOnDelivery.CurrencyCode is required!")
	}

	return errs.Err()
}

func isDate(value string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// ReturnInput is the body of return create.
type ReturnInput struct {
	OrderID int `json:"OrderId"`
}

// Validate requires the order the return belongs to.
func (r ReturnInput) Validate() error {
	errs := validation.Errors{}
	errs.Check(r.OrderID >= 1, "OrderId", "OrderId is required!")
	return errs.Err()
}
