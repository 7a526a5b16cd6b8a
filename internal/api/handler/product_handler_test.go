package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput, callerUID string) (string, error)
	batchFn  func(ctx context.Context, items []ports.BulkProductItem, callerUID, importKey string) (*ports.BulkCreateResult, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, limit int64) ([]domain.Product, error)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput, callerUID string) (string, error) {
	return s.createFn(ctx, input, callerUID)
}

func (s *stubProductService) CreateBatch(ctx context.Context, items []ports.BulkProductItem, callerUID, importKey string) (*ports.BulkCreateResult, error) {
	return s.batchFn(ctx, items, callerUID, importKey)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context, limit int64) ([]domain.Product, error) {
	return s.listFn(ctx, limit)
}

const validProductBody = `{
	"sku": "KC-ABC-01",
	"name": "Ceramic Mug",
	"nomenclature": "KC-ABC-01",
	"quantity": 10,
	"actualPrice": 100,
	"negotiablePrice": 120,
	"sellingPrice": 100,
	"containerId": "cont_1"
}`

func TestProductHandler_Create_Success(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput, _ string) (string, error) {
			if input.SKU != "KC-ABC-01" || input.ContainerID != "cont_1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return "prod_1", nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/products", validProductBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "prod_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_SellingAboveNegotiableRejected(t *testing.T) {
	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput, string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewProductHandler(stub)

	body := strings.Replace(validProductBody, `"sellingPrice": 100`, `"sellingPrice": 150`, 1)
	c, _ := newTestContext(t, http.MethodPost, "/v1/products", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "sellingprice must not exceed negotiableprice") {
		t.Fatalf("expected price bound message, got %v", he.Message)
	}
}

func TestProductHandler_Create_NegativeQuantityRejected(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	body := strings.Replace(validProductBody, `"quantity": 10`, `"quantity": -1`, 1)
	c, _ := newTestContext(t, http.MethodPost, "/v1/products", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "quantity must be non-negative") {
		t.Fatalf("expected quantity message, got %v", he.Message)
	}
}

func TestProductHandler_Create_BadImageURLRejected(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	body := strings.Replace(validProductBody, `"containerId": "cont_1"`, `"containerId": "cont_1", "imageUrl": "not a url"`, 1)
	c, _ := newTestContext(t, http.MethodPost, "/v1/products", body)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_Create_SKUConflictPropagates(t *testing.T) {
	stub := &stubProductService{
		createFn: func(context.Context, ports.CreateProductInput, string) (string, error) {
			return "", domain.ErrSKUExists
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/products", validProductBody)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrSKUExists) {
		t.Fatalf("expected ErrSKUExists to propagate, got %v", err)
	}
}

func TestProductHandler_BulkCreate_Success(t *testing.T) {
	stub := &stubProductService{
		batchFn: func(_ context.Context, items []ports.BulkProductItem, _ string, importKey string) (*ports.BulkCreateResult, error) {
			if len(items) != 2 {
				t.Fatalf("expected 2 items, got %d", len(items))
			}
			if importKey != "import-abc" {
				t.Fatalf("expected import key to be forwarded, got %q", importKey)
			}
			return &ports.BulkCreateResult{
				CreatedCount: 2,
				Products:     []domain.Product{{ID: "prod_1"}, {ID: "prod_2"}},
			}, nil
		},
	}
	h := NewProductHandler(stub)

	body := `{"products":[
		{"sku":"KC-X-01","quantity":5,"containerQuantity":1,"sellingPrice":50,"containerId":"cont_1"},
		{"sku":"KC-X-02","quantity":3,"containerQuantity":1,"sellingPrice":60,"containerId":"cont_1"}
	]}`
	c, rec := newTestContext(t, http.MethodPost, "/v1/products/bulk", body)
	c.Request().Header.Set("Idempotency-Key", "import-abc")

	if err := h.BulkCreate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		CreatedCount int              `json:"createdCount"`
		Products     []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.CreatedCount != 2 || len(resp.Products) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_BulkCreate_EmptyBatchRejected(t *testing.T) {
	stub := &stubProductService{
		batchFn: func(context.Context, []ports.BulkProductItem, string, string) (*ports.BulkCreateResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/products/bulk", `{"products":[]}`)
	err := h.BulkCreate(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProductHandler_BulkCreate_ItemMissingSKURejected(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	body := `{"products":[{"quantity":5,"containerQuantity":1,"sellingPrice":50,"containerId":"cont_1"}]}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/products/bulk", body)

	err := h.BulkCreate(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "sku is required") {
		t.Fatalf("expected sku message, got %v", he.Message)
	}
}

func TestProductHandler_BulkCreate_DuplicateImportPropagates(t *testing.T) {
	stub := &stubProductService{
		batchFn: func(context.Context, []ports.BulkProductItem, string, string) (*ports.BulkCreateResult, error) {
			return nil, domain.ErrDuplicateImport
		},
	}
	h := NewProductHandler(stub)

	body := `{"products":[{"sku":"KC-X-01","quantity":5,"containerQuantity":1,"sellingPrice":50,"containerId":"cont_1"}]}`
	c, _ := newTestContext(t, http.MethodPost, "/v1/products/bulk", body)

	err := h.BulkCreate(c)
	if !errors.Is(err, domain.ErrDuplicateImport) {
		t.Fatalf("expected ErrDuplicateImport to propagate, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "prod_1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/products/prod_1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_List_UsesDefaultLimit(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context, limit int64) ([]domain.Product, error) {
			if limit != listLimit {
				t.Fatalf("expected limit %d, got %d", listLimit, limit)
			}
			return []domain.Product{{ID: "prod_1"}}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/products", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
