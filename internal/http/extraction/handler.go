package extraction

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/extraction"
)

// Extractor is the vision extraction boundary. Satisfied by
// extraction.Client.
type Extractor interface {
	ExtractNote(ctx context.Context, image []byte, mimeType string) (*extraction.Suggestion, error)
}

type Handler struct {
	extractor Extractor
	matcher   *extraction.Matcher
}

func NewHandler(extractor Extractor, matcher *extraction.Matcher) *Handler {
	return &Handler{extractor: extractor, matcher: matcher}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/note", h.extractImage)
	r.Post("/note-file", h.extractFile)
	r.Post("/mappings", h.learnMapping)
}

type suggestedItemResponse struct {
	Name      string     `json:"name"`
	Quantity  int64      `json:"quantity"`
	UnitPrice *int64     `json:"unit_price,omitempty"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}

type suggestionResponse struct {
	Date        *time.Time              `json:"date,omitempty"`
	Counterpart string                  `json:"counterpart,omitempty"`
	Notes       string                  `json:"notes,omitempty"`
	Items       []suggestedItemResponse `json:"items"`
}

// toResponse maps a suggestion and pre-fills learned product matches. A
// match is only a hint: the client must still confirm every line.
func (h *Handler) toResponse(r *http.Request, s *extraction.Suggestion) suggestionResponse {
	resp := suggestionResponse{
		Date:        s.Date,
		Counterpart: s.Counterpart,
		Notes:       s.Notes,
		Items:       make([]suggestedItemResponse, 0, len(s.Items)),
	}

	for _, item := range s.Items {
		ir := suggestedItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}

		if productID, ok, err := h.matcher.Suggest(r.Context(), item.Name); err == nil && ok {
			ir.ProductID = &productID
		}

		resp.Items = append(resp.Items, ir)
	}

	return resp
}

func (h *Handler) extractImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	suggestion, err := h.extractor.ExtractNote(r.Context(), image, mimeType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.toResponse(r, suggestion)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) extractFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	suggestion, err := extraction.ParseNote(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.toResponse(r, suggestion)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type learnMappingRequest struct {
	RawPattern string    `json:"raw_pattern"`
	ProductID  uuid.UUID `json:"product_id"`
}

func (h *Handler) learnMapping(w http.ResponseWriter, r *http.Request) {
	var req learnMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.RawPattern == "" || req.ProductID == uuid.Nil {
		http.Error(w, "raw_pattern and product_id are required", http.StatusUnprocessableEntity)
		return
	}

	if err := h.matcher.Learn(r.Context(), req.RawPattern, req.ProductID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
