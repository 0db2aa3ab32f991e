package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/shipment"
	"github.com/omnicart/database-service/internal/shipment/dto"
)

type ShipmentHandler struct {
	uc     shipment.UseCase
	logger logger.ZapLogger
}

func NewShipmentHandler(uc shipment.UseCase, log logger.ZapLogger) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, logger: log}
}

func (h *ShipmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /shipments", h.create)
	mux.HandleFunc("GET /shipments", h.list)
	mux.HandleFunc("GET /shipments/{id}", h.get)
	mux.HandleFunc("PUT /shipments/{id}", h.update)
	mux.HandleFunc("DELETE /shipments/{id}", h.delete)
}

func (h *ShipmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateShipmentInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	s, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Warn("create shipment failed", zap.String("shipment_id", input.ID), zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, s)
}

func (h *ShipmentHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("list shipments failed", zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *ShipmentHandler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, s)
}

func (h *ShipmentHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateShipmentInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	s, err := h.uc.Update(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, s)
}

func (h *ShipmentHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("id")); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.NoContent(w)
}
