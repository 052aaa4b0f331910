package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"nayrana/internal/catalog"
	"nayrana/internal/model"
	"nayrana/internal/service"
	"nayrana/internal/whatsapp"
)

//go:embed templates/storefront.html
var templateFS embed.FS

// StorefrontHandler renders the public catalog page and its small helper
// endpoints. When the live catalog is unreachable or empty it renders the
// bundled fallback catalog, so the page is never blank.
type StorefrontHandler struct {
	catalogService service.CatalogService
	whatsappNumber string
	tmpl           *template.Template
}

// NewStorefrontHandler creates a new storefront handler.
func NewStorefrontHandler(catalogService service.CatalogService, whatsappNumber string) (*StorefrontHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/storefront.html")
	if err != nil {
		return nil, fmt.Errorf("parse storefront template: %w", err)
	}
	return &StorefrontHandler{
		catalogService: catalogService,
		whatsappNumber: whatsappNumber,
		tmpl:           tmpl,
	}, nil
}

type storefrontProduct struct {
	model.Product
	WhatsAppURL string
}

type storefrontData struct {
	Products     []storefrontProduct
	SupportURL   string
	UsedFallback bool
}

// Page renders the catalog page.
func (h *StorefrontHandler) Page(c echo.Context) error {
	products, err := h.catalogService.List(c.Request().Context())
	usedFallback := false
	if err != nil || len(products) == 0 {
		if err != nil {
			c.Logger().Errorf("catalog unavailable, serving fallback: %v", err)
		}
		products = catalog.FallbackProducts()
		usedFallback = true
	}

	data := storefrontData{
		SupportURL:   whatsapp.SupportLink(h.whatsappNumber),
		UsedFallback: usedFallback,
	}
	for _, p := range products {
		data.Products = append(data.Products, storefrontProduct{
			Product:     p,
			WhatsAppURL: whatsapp.OrderLink(h.whatsappNumber, p.Name),
		})
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		c.Logger().Errorf("render storefront: %v", err)
		return c.String(http.StatusInternalServerError, "internal server error")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// WhatsAppLink returns the deep link for a product inquiry, or the general
// inquiry link when no product is named.
func (h *StorefrontHandler) WhatsAppLink(c echo.Context) error {
	product := c.QueryParam("product")
	url := whatsapp.SupportLink(h.whatsappNumber)
	if product != "" {
		url = whatsapp.OrderLink(h.whatsappNumber, product)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Placeholder serves a fixed-size SVG stand-in image for development.
func (h *StorefrontHandler) Placeholder(c echo.Context) error {
	width, werr := strconv.Atoi(c.Param("width"))
	height, herr := strconv.Atoi(c.Param("height"))
	if werr != nil || herr != nil || width <= 0 || height <= 0 || width > 4096 || height > 4096 {
		return badRequest(c, "invalid dimensions", "INVALID_DIMENSIONS")
	}

	svg := fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="#f3f4f6"/>
  <text x="50%%" y="50%%" text-anchor="middle" dy="0.3em" fill="#6b7280" font-family="Arial, sans-serif" font-size="14">%dx%d</text>
</svg>`, width, height, width, height)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}
