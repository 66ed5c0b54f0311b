package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gmatheus/commerce-core/internal/client/application"
	"github.com/gmatheus/commerce-core/internal/client/domain"
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
	r.Post("/", h.addClient)
	r.Get("/{id}", h.getClient)

	return r
}

func (h *Handler) addClient(w http.ResponseWriter, r *http.Request) {
	var in application.AddClientInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	client, err := h.service.Add(r.Context(), in)
	if err != nil {
		h.log.Error("add client failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"id": client.ID})
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.service.Find(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrClientNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":       client.ID,
		"name":     client.Name,
		"email":    client.Email,
		"document": client.Document,
		"address": map[string]string{
			"street":     client.Address.Street,
			"number":     client.Address.Number,
			"complement": client.Address.Complement,
			"city":       client.Address.City,
			"state":      client.Address.State,
			"zipCode":    client.Address.ZipCode,
		},
	})
}
