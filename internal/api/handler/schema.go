package handler

import "github.com/kcimports/inventory-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// --- Containers ---

type createContainerRequest struct {
	Supplier string `json:"supplier" validate:"required"`
	Location string `json:"location"`
}

type createContainerResponse struct {
	ID            string `json:"id"`
	ContainerCode string `json:"containerCode"`
}

type listContainersResponse struct {
	Items []domain.Container `json:"items"`
}

// --- Products ---

type createProductRequest struct {
	SKU               string  `json:"sku"               validate:"required"`
	Name              string  `json:"name"              validate:"required"`
	Nomenclature      string  `json:"nomenclature"      validate:"required"`
	Quantity          float64 `json:"quantity"          validate:"gte=0"`
	ActualPrice       float64 `json:"actualPrice"       validate:"gte=0"`
	NegotiablePrice   float64 `json:"negotiablePrice"   validate:"gte=0"`
	SellingPrice      float64 `json:"sellingPrice"      validate:"gte=0,ltefield=NegotiablePrice"`
	ContainerID       string  `json:"containerId"       validate:"required"`
	ImageURL          *string `json:"imageUrl"          validate:"omitempty,url"`
	ContainerQuantity float64 `json:"containerQuantity" validate:"gte=0"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

type listProductsResponse struct {
	Items []domain.Product `json:"items"`
}

type bulkProductItemRequest struct {
	SKU               string  `json:"sku"               validate:"required"`
	ImageURL          *string `json:"imageUrl"          validate:"omitempty,url"`
	Quantity          float64 `json:"quantity"          validate:"gte=0"`
	ContainerQuantity float64 `json:"containerQuantity" validate:"gte=0"`
	SellingPrice      float64 `json:"sellingPrice"      validate:"gte=0"`
	ContainerID       string  `json:"containerId"       validate:"required"`
}

type bulkCreateRequest struct {
	Products []bulkProductItemRequest `json:"products" validate:"required,min=1,dive"`
}

type bulkCreateResponse struct {
	CreatedCount int              `json:"createdCount"`
	Products     []domain.Product `json:"products"`
}

// --- Users ---

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,passwordchars"`
	Role     string `json:"role"     validate:"required,oneof=admin staff"`
}

type createUserResponse struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}
