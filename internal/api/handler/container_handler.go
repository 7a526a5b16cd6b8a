package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/api/metrics"
	"github.com/kcimports/inventory-api/internal/api/middleware"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// ContainerHandler handles HTTP requests for container operations.
type ContainerHandler struct {
	service ports.ContainerService
}

func NewContainerHandler(service ports.ContainerService) *ContainerHandler {
	return &ContainerHandler{service: service}
}

// Create handles POST /v1/containers.
//
// @Summary      Create a container
// @Tags         containers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createContainerRequest  true  "Container details"
// @Success      201   {object}  createContainerResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/containers [post]
func (h *ContainerHandler) Create(c echo.Context) error {
	var req createContainerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateContainerInput{
		Supplier: req.Supplier,
		Location: req.Location,
	}, middleware.CallerUID(c))
	if err != nil {
		return err
	}

	metrics.ContainersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createContainerResponse{
		ID:            result.ID,
		ContainerCode: result.ContainerCode,
	})
}

// List handles GET /v1/containers.
//
// @Summary      List containers
// @Tags         containers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listContainersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/containers [get]
func (h *ContainerHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listContainersResponse{Items: items})
}

// Delete handles DELETE /v1/containers/:id.
//
// @Summary      Delete a container
// @Tags         containers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Container id"
// @Success      200 {object}  messageResponse
// @Failure      400 {object}  errorResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /v1/containers/{id} [delete]
func (h *ContainerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Container deleted successfully"})
}
