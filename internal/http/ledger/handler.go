package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/entries", h.create)
	r.Get("/entries", h.list)
	r.Delete("/entries/{id}", h.delete)
	r.Get("/reports/categories", h.categoryTotals)
	r.Get("/reports/monthly", h.monthlySummary)
}

type entryResponse struct {
	ID              uuid.UUID       `json:"id"`
	Kind            ledger.Kind     `json:"kind"`
	Date            time.Time       `json:"date"`
	Amount          int64           `json:"amount"`
	Category        ledger.Category `json:"category"`
	Description     string          `json:"description,omitempty"`
	ReceiptImageURL string          `json:"receipt_image_url,omitempty"`
	RelatedOrderID  *uuid.UUID      `json:"related_order_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:              e.ID,
		Kind:            e.Kind,
		Date:            e.Date,
		Amount:          e.Amount,
		Category:        e.Category,
		Description:     e.Description,
		ReceiptImageURL: e.ReceiptImageURL,
		RelatedOrderID:  e.RelatedOrderID,
		CreatedAt:       e.CreatedAt,
	}
}

type createEntryRequest struct {
	Kind            ledger.Kind     `json:"kind"`
	Date            time.Time       `json:"date"`
	Amount          int64           `json:"amount"`
	Category        ledger.Category `json:"category"`
	Description     string          `json:"description"`
	ReceiptImageURL string          `json:"receipt_image_url"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	e, err := h.svc.Create(r.Context(), ledger.CreateParams{
		Kind:            req.Kind,
		Date:            date,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		ReceiptImageURL: req.ReceiptImageURL,
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) || errors.Is(err, ledger.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ListFilter{}

	if s := r.URL.Query().Get("kind"); s != "" {
		k := ledger.Kind(s)
		filter.Kind = &k
	}

	if s := r.URL.Query().Get("category"); s != "" {
		c := ledger.Category(s)
		filter.Category = &c
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

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toResponse(e))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
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
		if errors.Is(err, ledger.ErrNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) categoryTotals(w http.ResponseWriter, r *http.Request) {
	kind := ledger.Kind(r.URL.Query().Get("kind"))
	if kind != ledger.KindIncome && kind != ledger.KindExpense {
		http.Error(w, "kind must be income or expense", http.StatusBadRequest)
		return
	}

	totals, err := h.svc.CategoryTotals(r.Context(), kind)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(totals); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type monthSummaryResponse struct {
	Month    string `json:"month"`
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
	Balance  int64  `json:"balance"`
}

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.MonthlySummary(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]monthSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, monthSummaryResponse{
			Month:    s.Month,
			Income:   s.Income,
			Expenses: s.Expenses,
			Balance:  s.Balance,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
