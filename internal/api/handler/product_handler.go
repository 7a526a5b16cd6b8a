package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/api/metrics"
	"github.com/kcimports/inventory-api/internal/api/middleware"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// listLimit caps the number of products returned by List.
const listLimit = 50

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /v1/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  createProductResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		SKU:               req.SKU,
		Name:              req.Name,
		Nomenclature:      req.Nomenclature,
		Quantity:          req.Quantity,
		ActualPrice:       req.ActualPrice,
		NegotiablePrice:   req.NegotiablePrice,
		SellingPrice:      req.SellingPrice,
		ContainerID:       req.ContainerID,
		ImageURL:          req.ImageURL,
		ContainerQuantity: req.ContainerQuantity,
	}, middleware.CallerUID(c))
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues("single").Inc()
	return c.JSON(http.StatusCreated, createProductResponse{ID: id})
}

// BulkCreate handles POST /v1/products/bulk.
//
// @Summary      Bulk create products
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Import key; a repeated key rejects the request"
// @Param        body             body      bulkCreateRequest  true   "Product rows"
// @Success      201              {object}  bulkCreateResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Router       /v1/products/bulk [post]
func (h *ProductHandler) BulkCreate(c echo.Context) error {
	var req bulkCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.BulkProductItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, ports.BulkProductItem{
			SKU:               p.SKU,
			ImageURL:          p.ImageURL,
			Quantity:          p.Quantity,
			ContainerQuantity: p.ContainerQuantity,
			SellingPrice:      p.SellingPrice,
			ContainerID:       p.ContainerID,
		})
	}

	importKey := c.Request().Header.Get("Idempotency-Key")
	result, err := h.service.CreateBatch(c.Request().Context(), items, middleware.CallerUID(c), importKey)
	if err != nil {
		return err
	}

	metrics.BulkBatchSize.Observe(float64(result.CreatedCount))
	metrics.ProductsCreatedTotal.WithLabelValues("bulk").Add(float64(result.CreatedCount))
	return c.JSON(http.StatusCreated, bulkCreateResponse{
		CreatedCount: result.CreatedCount,
		Products:     result.Products,
	})
}

// List handles GET /v1/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProductsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), listLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Items: items})
}

// Delete handles DELETE /v1/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product id"
// @Success      200 {object}  messageResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}
