package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/invoice"
	"github.com/minhtp/sobanhang/internal/order"
	"github.com/minhtp/sobanhang/internal/product"
	"github.com/minhtp/sobanhang/internal/stock"
)

type Handler struct {
	svc *order.Service
}

func NewHandler(svc *order.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/settle", h.settle)
	r.Post("/{id}/cancel", h.cancel)
	r.Get("/{id}/invoice", h.invoice)
}

type createItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UnitPrice *int64    `json:"unit_price,omitempty"`
}

type createOrderRequest struct {
	CustomerName string              `json:"customer_name"`
	Date         time.Time           `json:"date"`
	Items        []createItemRequest `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := make([]order.ItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.ItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	o, err := h.svc.CreateDraft(r.Context(), order.CreateParams{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Items:        items,
	})
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := order.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := order.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	orders, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(orders)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type settleRequest struct {
	DiscountPercentage float64             `json:"discount_percentage"`
	OtherIncomeAmount  int64               `json:"other_income_amount"`
	PaymentMethod      order.PaymentMethod `json:"payment_method"`
	CashReceived       int64               `json:"cash_received"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Settle(r.Context(), id, order.SettleParams{
		DiscountPercentage: req.DiscountPercentage,
		OtherIncomeAmount:  req.OtherIncomeAmount,
		PaymentMethod:      req.PaymentMethod,
		CashReceived:       req.CashReceived,
	})
	if err != nil {
		writeOrderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		writeOrderError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) invoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeOrderError(w, err)
		return
	}

	doc, err := invoice.Render(o)
	if err != nil {
		if errors.Is(err, invoice.ErrNotCompleted) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := w.Write(doc); err != nil {
		slog.Error("failed to write invoice", "error", err)
	}
}

type insufficientStockResponse struct {
	Error     string `json:"error"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

func writeOrderError(w http.ResponseWriter, err error) {
	var insufficient *stock.InsufficientStockError
	if errors.As(err, &insufficient) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)

		if err := json.NewEncoder(w).Encode(insufficientStockResponse{
			Error:     insufficient.Error(),
			Available: insufficient.Available,
			Requested: insufficient.Requested,
		}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	switch {
	case errors.Is(err, order.ErrNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, product.ErrNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, order.ErrOrderNotNew):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrUnderPayment),
		errors.Is(err, order.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
