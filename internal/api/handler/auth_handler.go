package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/core/ports"
)

// AuthHandler issues bearer tokens for existing accounts.
type AuthHandler struct {
	identity ports.IdentityProvider
}

func NewAuthHandler(identity ports.IdentityProvider) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.identity.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
