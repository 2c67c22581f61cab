package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"printshop/internal/model"
	"printshop/internal/report"
	"printshop/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order and print-job HTTP requests.
type OrderHandler struct {
	orders        service.OrderService
	notifications service.NotificationService
	logger        zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, notifications service.NotificationService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders:        orders,
		notifications: notifications,
		logger:        logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.orders.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// AdvanceResponse is the payload returned by the advance endpoint. When the
// order was already completed, Message carries the composed WhatsApp
// notification instead of a status change.
type AdvanceResponse struct {
	Order    *model.OrderResponse   `json:"order"`
	Advanced bool                   `json:"advanced"`
	Message  *model.WhatsAppMessage `json:"message,omitempty"`
}

// Advance handles POST /api/orders/{id}/advance requests. Moving a completed
// order forward composes a customer notification instead.
func (h *OrderHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	resp, advanced, err := h.orders.Advance(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	result := AdvanceResponse{Order: resp, Advanced: advanced}
	if !advanced {
		msg, err := h.notifications.Send(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		result.Message = msg
	}

	writeJSON(w, http.StatusOK, result)
}

// UpdatePrintStatus handles PATCH /api/prints/{id}/status requests.
func (h *OrderHandler) UpdatePrintStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	print, err := h.orders.UpdatePrintStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, print)
}

// FilamentCheck handles GET /api/orders/{id}/filament-check requests.
func (h *OrderHandler) FilamentCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	results, err := h.orders.FilamentCheck(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// Notify handles POST /api/orders/{id}/notify requests.
func (h *OrderHandler) Notify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	msg, err := h.notifications.Send(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// ListMessages handles GET /api/orders/{id}/messages requests.
func (h *OrderHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	messages, err := h.notifications.ListByOrder(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

// Report handles GET /api/orders/{id}/report requests, returning a printable
// HTML order report.
func (h *OrderHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	data, err := h.orders.ReportData(r.Context(), id, time.Now())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderHTML(w, *data); err != nil {
		h.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to render report")
	}
}

// ReportSVG handles GET /api/orders/{id}/report.svg requests, returning a
// shareable progress card.
func (h *OrderHandler) ReportSVG(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger)
	if !ok {
		return
	}

	data, err := h.orders.ReportData(r.Context(), id, time.Now())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := report.RenderSVG(w, *data); err != nil {
		h.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to render progress card")
	}
}
