// Package i18n resolves message keys to localized, user-facing strings.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys used across the gateway.
const (
	HomePageWelcome        = "homePageWelcome"
	ShipRelayWelcome       = "shipRelay.welcome"
	MintSoftWelcome        = "mintSoft.welcome"
	InvalidCredentials     = "shipRelay.inValidCredentials"
	LoginFailed            = "shipRelay.loginFailed"
	UnauthorizedError      = "errorMessage.unAuthorizedError"
	ProductNotFoundError   = "errorMessage.productNotFoundError"
	OrderNotFoundError     = "errorMessage.orderNotFoundError"
	ReturnNotFoundError    = "errorMessage.returnNotFoundError"
	ShipmentNotFoundError  = "errorMessage.shipmentNotFoundError"
	UpstreamError          = "errorMessage.upstreamError"
	ValidationFailed       = "errorMessage.validationFailed"
	InternalServerError    = "errorMessage.internalServerError"
	MissingAPIKeyError     = "errorMessage.missingApiKeyError"
	MissingAccessTokenText = "shipRelay.missingAccessToken"
)

var english = map[string]string{
	HomePageWelcome:        "Welcome to the warehouse gateway",
	ShipRelayWelcome:       "Welcome to the ShipRelay integration",
	MintSoftWelcome:        "Welcome to the MintSoft integration",
	InvalidCredentials:     "Invalid ShipRelay credentials",
	LoginFailed:            "ShipRelay login failed",
	UnauthorizedError:      "The provider rejected the request as unauthorized",
	ProductNotFoundError:   "Product not found",
	OrderNotFoundError:     "Order not found",
	ReturnNotFoundError:    "Return not found",
	ShipmentNotFoundError:  "Shipment not found",
	UpstreamError:          "The provider could not process the request",
	ValidationFailed:       "The given data was invalid",
	InternalServerError:    "Internal Server Error",
	MissingAPIKeyError:     "No API key is configured for the provider",
	MissingAccessTokenText: "ShipRelay login response did not contain an access token",
}

var spanish = map[string]string{
	HomePageWelcome:        "Bienvenido al gateway de almacenes",
	ShipRelayWelcome:       "Bienvenido a la integración con ShipRelay",
	MintSoftWelcome:        "Bienvenido a la integración con MintSoft",
	InvalidCredentials:     "Credenciales de ShipRelay inválidas",
	LoginFailed:            "Falló el inicio de sesión en ShipRelay",
	UnauthorizedError:      "El proveedor rechazó la solicitud por no estar autorizada",
	ProductNotFoundError:   "Producto no encontrado",
	OrderNotFoundError:     "Pedido no encontrado",
	ReturnNotFoundError:    "Devolución no encontrada",
	ShipmentNotFoundError:  "Envío no encontrado",
	UpstreamError:          "El proveedor no pudo procesar la solicitud",
	ValidationFailed:       "Los datos enviados no son válidos",
	InternalServerError:    "Error interno del servidor",
	MissingAPIKeyError:     "No hay una API key configurada para el proveedor",
	MissingAccessTokenText: "La respuesta de login de ShipRelay no contiene un access token",
}

// Catalog translates message keys for a single language.
type Catalog struct {
	printer *message.Printer
}

// New builds a Catalog for the given BCP 47 locale. Unknown locales fall back to English.
func New(locale string) *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range english {
		_ = b.SetString(language.English, key, msg)
	}
	for key, msg := range spanish {
		_ = b.SetString(language.Spanish, key, msg)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	matcher := language.NewMatcher([]language.Tag{language.English, language.Spanish})
	tag, _, _ = matcher.Match(tag)

	return &Catalog{printer: message.NewPrinter(tag, message.Catalog(b))}
}

// T returns the localized text for key, or the key itself when it is unknown.
func (c *Catalog) T(key string) string {
	return c.printer.Sprintf(message.Key(key, key))
}

var defaultCatalog = New("en")

// SetDefault replaces the package-level catalog used by T.
func SetDefault(c *Catalog) {
	if c != nil {
		defaultCatalog = c
	}
}

// T translates key with the package-level catalog.
func T(key string) string {
	return defaultCatalog.T(key)
}
