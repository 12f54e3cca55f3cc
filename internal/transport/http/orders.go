package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/app"
	"github.com/ranaashutosh2923/hrrone-ecommerce-backend/internal/domain"
)

// Orders is the minimal service surface the order handlers need.
type Orders interface {
	CreateOrder(ctx context.Context, in app.CreateOrderInput) (string, error)
	ListOrdersForUser(ctx context.Context, in app.ListOrdersInput) ([]domain.Order, error)
}

// HandleCreateOrder returns the handler behind POST /orders.
func HandleCreateOrder(svc Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
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

		items := make([]app.OrderItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, app.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		id, err := svc.CreateOrder(r.Context(), app.CreateOrderInput{
			UserID: req.UserID,
			Items:  items,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrProductNotFound):
				writeError(w, http.StatusBadRequest, codeProductNotFound, err.Error())
			case errors.Is(err, domain.ErrInvalidProductID):
				writeError(w, http.StatusBadRequest, codeInvalidProductID, err.Error())
			case errors.Is(err, domain.ErrUserIDRequired),
				errors.Is(err, domain.ErrItemsRequired),
				errors.Is(err, domain.ErrInvalidQuantity):
				writeError(w, http.StatusBadRequest, codeValidation, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{
			Message: "Order created successfully",
			OrderID: id,
		})
	}
}

// HandleListOrders returns the handler behind GET /orders/{user_id}.
func HandleListOrders(svc Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := mux.Vars(r)["user_id"]

		page, err := parsePage(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidPagination, err.Error())
			return
		}

		orders, err := svc.ListOrdersForUser(r.Context(), app.ListOrdersInput{
			UserID: userID,
			Page:   page,
		})
		if err != nil {
			if errors.Is(err, domain.ErrUserIDRequired) {
				writeError(w, http.StatusBadRequest, codeValidation, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			items := make([]orderItemPayload, 0, len(o.Items))
			for _, item := range o.Items {
				items = append(items, orderItemPayload{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
				})
			}
			resp = append(resp, orderResponse{
				OrderID: o.ID,
				UserID:  o.UserID,
				Items:   items,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type orderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type createOrderRequest struct {
	UserID string             `json:"user_id"`
	Items  []orderItemPayload `json:"items"`
}

func (r createOrderRequest) validate() error {
	if r.UserID == "" {
		return domain.ErrUserIDRequired
	}
	if len(r.Items) == 0 {
		return domain.ErrItemsRequired
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return domain.ErrInvalidProductID
		}
		if item.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}
	}
	return nil
}

type createOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type orderResponse struct {
	OrderID string             `json:"order_id"`
	UserID  string             `json:"user_id"`
	Items   []orderItemPayload `json:"items"`
}
