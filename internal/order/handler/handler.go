package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/order"
	"github.com/omnicart/database-service/internal/order/dto"
	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", h.create)
	mux.HandleFunc("GET /orders", h.list)
	mux.HandleFunc("GET /orders/{id}", h.get)
	mux.HandleFunc("PUT /orders/{id}", h.update)
	mux.HandleFunc("DELETE /orders/{id}", h.delete)
	mux.HandleFunc("POST /orders/{id}/refund-metadata", h.refundMetadata)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateOrderInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	o, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Warn("create order failed", zap.String("order_id", input.ID), zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("list orders failed", zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.uc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, o)
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateOrderInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	o, err := h.uc.Update(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, o)
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("id")); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.NoContent(w)
}

func (h *OrderHandler) refundMetadata(w http.ResponseWriter, r *http.Request) {
	var input dto.RefundMetadataInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	updated, keys, err := h.uc.SetRefundMetadata(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	if !updated {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"updated": false,
			"reason":  "no matching columns",
		})
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"updated":      true,
		"updated_keys": keys,
	})
}
