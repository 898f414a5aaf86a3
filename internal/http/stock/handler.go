package stock

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/stock"
)

type Handler struct {
	svc *stock.Service
}

func NewHandler(svc *stock.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/transactions", h.create)
	r.Get("/transactions", h.list)
	r.Get("/products/{id}/current", h.currentStock)
}

type transactionResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProductID      uuid.UUID  `json:"product_id"`
	Type           stock.Type `json:"type"`
	Quantity       int64      `json:"quantity"`
	Date           time.Time  `json:"date"`
	RelatedParty   string     `json:"related_party,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	RelatedOrderID *uuid.UUID `json:"related_order_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toResponse(tx *stock.Transaction) transactionResponse {
	return transactionResponse{
		ID:             tx.ID,
		ProductID:      tx.ProductID,
		Type:           tx.Type,
		Quantity:       tx.Quantity,
		Date:           tx.Date,
		RelatedParty:   tx.RelatedParty,
		Notes:          tx.Notes,
		RelatedOrderID: tx.RelatedOrderID,
		CreatedAt:      tx.CreatedAt,
	}
}

type createTransactionRequest struct {
	ProductID    uuid.UUID  `json:"product_id"`
	Type         stock.Type `json:"type"`
	Quantity     int64      `json:"quantity"`
	Date         time.Time  `json:"date"`
	RelatedParty string     `json:"related_party"`
	Notes        string     `json:"notes"`
}

type insufficientStockResponse struct {
	Error     string `json:"error"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx, err := h.svc.Admit(r.Context(), stock.CreateParams{
		ProductID:    req.ProductID,
		Type:         req.Type,
		Quantity:     req.Quantity,
		Date:         date,
		RelatedParty: req.RelatedParty,
		Notes:        req.Notes,
	})
	if err != nil {
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

		if errors.Is(err, stock.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		if errors.Is(err, stock.ErrInvalidQuantity) || errors.Is(err, stock.ErrUnknownType) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := stock.ListFilter{}

	if s := r.URL.Query().Get("product_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProductID = &id
		}
	}

	if s := r.URL.Query().Get("type"); s != "" {
		ty := stock.Type(s)
		filter.Type = &ty
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

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toResponse(tx))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type currentStockResponse struct {
	ProductID    uuid.UUID `json:"product_id"`
	CurrentStock int64     `json:"current_stock"`
}

func (h *Handler) currentStock(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	current, err := h.svc.CurrentStock(r.Context(), id)
	if err != nil {
		if errors.Is(err, stock.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(currentStockResponse{ProductID: id, CurrentStock: current}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
