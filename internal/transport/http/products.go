package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/app"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

// Catalog is the minimal service surface the product handlers need.
type Catalog interface {
	CreateProduct(ctx context.Context, in app.CreateProductInput) (string, error)
	ListProducts(ctx context.Context, in app.ListProductsInput) ([]domain.Product, error)
}

// HandleCreateProduct returns the handler behind POST /products.
func HandleCreateProduct(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			return
		}

		id, err := svc.CreateProduct(r.Context(), app.CreateProductInput{
			Name:  req.Name,
			Size:  req.Size,
			Price: *req.Price,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNameRequired),
				errors.Is(err, domain.ErrSizeRequired),
				errors.Is(err, domain.ErrPriceNegative):
				writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			case errors.Is(err, domain.ErrDuplicateProduct):
				writeError(w, http.StatusConflict, codeDuplicateProduct, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createProductResponse{
			Message:   "Product created successfully",
			ProductID: id,
		})
	}
}

// HandleListProducts returns the handler behind GET /products.
func HandleListProducts(svc Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, err := parsePage(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidPagination, err.Error())
			return
		}

		products, err := svc.ListProducts(r.Context(), app.ListProductsInput{
			Name: q.Get("name"),
			Size: q.Get("size"),
			Page: page,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]productResponse, 0, len(products))
		for _, p := range products {
			resp = append(resp, productResponse{
				ID:    p.ID,
				Name:  p.Name,
				Size:  p.Size,
				Price: p.Price,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type createProductRequest struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price *int64 `json:"price"`
}

func (r createProductRequest) validate() error {
	if r.Name == "" {
		return domain.ErrNameRequired
	}
	if r.Size == "" {
		return domain.ErrSizeRequired
	}
	if r.Price == nil {
		return errors.New("product price is required")
	}
	if *r.Price < 0 {
		return domain.ErrPriceNegative
	}
	return nil
}

type createProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

type productResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Size  string `json:"size"`
	Price int64  `json:"price"`
}
