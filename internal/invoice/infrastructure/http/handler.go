package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gmatheus/commerce-core/internal/invoice/application"
	"github.com/gmatheus/commerce-core/internal/invoice/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/{id}", h.getInvoice)

	return r
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	invoice, err := h.service.Find(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrInvoiceNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]map[string]any, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, map[string]any{
			"id":    item.ID,
			"name":  item.Name,
			"price": item.Price,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":       invoice.ID,
		"name":     invoice.Name,
		"document": invoice.Document,
		"address": map[string]string{
			"street":     invoice.Address.Street,
			"number":     invoice.Address.Number,
			"complement": invoice.Address.Complement,
			"city":       invoice.Address.City,
			"state":      invoice.Address.State,
			"zipCode":    invoice.Address.ZipCode,
		},
		"items":     items,
		"total":     invoice.Total(),
		"createdAt": invoice.CreatedAt,
	})
}
