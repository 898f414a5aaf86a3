package product

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type productResponse struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	SKU           string       `json:"sku,omitempty"`
	Unit          product.Unit `json:"unit"`
	CostPrice     int64        `json:"cost_price"`
	SellingPrice  int64        `json:"selling_price"`
	MinStockLevel int64        `json:"min_stock_level"`
	InitialStock  int64        `json:"initial_stock"`
	CurrentStock  int64        `json:"current_stock"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     *time.Time   `json:"updated_at,omitempty"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		MinStockLevel: p.MinStockLevel,
		InitialStock:  p.InitialStock,
		CurrentStock:  p.CurrentStock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type createProductRequest struct {
	Name          string       `json:"name"`
	SKU           string       `json:"sku"`
	Unit          product.Unit `json:"unit"`
	CostPrice     int64        `json:"cost_price"`
	SellingPrice  int64        `json:"selling_price"`
	MinStockLevel int64        `json:"min_stock_level"`
	InitialStock  int64        `json:"initial_stock"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), product.CreateParams{
		Name:          req.Name,
		SKU:           req.SKU,
		Unit:          req.Unit,
		CostPrice:     req.CostPrice,
		SellingPrice:  req.SellingPrice,
		MinStockLevel: req.MinStockLevel,
		InitialStock:  req.InitialStock,
	})
	if err != nil {
		if errors.Is(err, product.ErrNameRequired) || errors.Is(err, product.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toResponse(p))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProductRequest struct {
	Name          *string       `json:"name,omitempty"`
	SKU           *string       `json:"sku,omitempty"`
	Unit          *product.Unit `json:"unit,omitempty"`
	CostPrice     *int64        `json:"cost_price,omitempty"`
	SellingPrice  *int64        `json:"selling_price,omitempty"`
	MinStockLevel *int64        `json:"min_stock_level,omitempty"`
	InitialStock  *int64        `json:"initial_stock,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.SKU != nil {
		p.SKU = *req.SKU
	}

	if req.Unit != nil {
		p.Unit = *req.Unit
	}

	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}

	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}

	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}

	if req.InitialStock != nil {
		p.InitialStock = *req.InitialStock
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		if errors.Is(err, product.ErrNameRequired) || errors.Is(err, product.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
