package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/infrastructure/upload"
)

const defaultUploadFolder = "products"

// UploadHandler signs direct image uploads.
type UploadHandler struct {
	signer *upload.Signer
}

func NewUploadHandler(signer *upload.Signer) *UploadHandler {
	return &UploadHandler{signer: signer}
}

// Sign handles GET /v1/uploads/sign.
//
// @Summary      Sign a direct image upload
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Param        folder  query     string  false  "Target folder (defaults to products)"
// @Success      200     {object}  upload.Signature
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /v1/uploads/sign [get]
func (h *UploadHandler) Sign(c echo.Context) error {
	folder := c.QueryParam("folder")
	if folder == "" {
		folder = defaultUploadFolder
	}

	sig, err := h.signer.Sign(folder)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sig)
}
