package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/gmatheus/commerce-core/internal/checkout/application"
	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("checkout-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.placeOrder)
	r.Get("/{id}", h.getOrder)

	return r
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	var in application.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	out, err := h.service.PlaceOrder(ctx, in)
	if err != nil {
		h.log.Error("place order failed", "client_id", in.ClientID, "err", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.FindOrder(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrOrderNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"orderId":  order.ID,
		"clientId": order.ClientID,
		"status":   string(order.Status),
		"total":    order.Total(),
	})
}

func statusFor(err error) int {
	var oos *application.OutOfStockError
	switch {
	case errors.Is(err, application.ErrClientNotFound),
		errors.Is(err, application.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrNoProductsSelected), errors.As(err, &oos):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
