package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/api/metrics"
	"github.com/kcimports/inventory-api/internal/api/middleware"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users.
//
// @Summary      Create a staff or admin user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uid, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, middleware.CallerUID(c))
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, createUserResponse{
		UID:     uid,
		Message: "User created successfully",
	})
}
