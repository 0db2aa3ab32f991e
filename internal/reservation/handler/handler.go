package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/reservation"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

type ReservationHandler struct {
	uc     reservation.UseCase
	logger logger.ZapLogger
}

func NewReservationHandler(uc reservation.UseCase, log logger.ZapLogger) *ReservationHandler {
	return &ReservationHandler{uc: uc, logger: log}
}

func (h *ReservationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /inventory/reserve", h.create)
	mux.HandleFunc("GET /inventory/reserve", h.list)
	mux.HandleFunc("GET /inventory/reserve/{id}", h.get)
	mux.HandleFunc("PUT /inventory/reserve/{id}", h.update)
	mux.HandleFunc("DELETE /inventory/reserve/{id}", h.delete)
	mux.HandleFunc("GET /inventory/available/{sku}", h.available)
}

func (h *ReservationHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateReservationInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	res, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Warn("create reservation failed", zap.String("order_id", input.OrderID), zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) list(w http.ResponseWriter, r *http.Request) {
	filters := &dto.ReservationFilters{
		OrderID: r.URL.Query().Get("orderId"),
		Status:  r.URL.Query().Get("status"),
	}
	items, err := h.uc.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list reservations failed", zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *ReservationHandler) get(w http.ResponseWriter, r *http.Request) {
	res, err := h.uc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

// update drives the two legal transitions; the target is selected by the
// status field in the request body.
func (h *ReservationHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateReservationInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}
	target, err := input.Transition()
	if err != nil {
		httputil.Error(w, err)
		return
	}

	id := r.PathValue("id")
	var res interface{}
	switch target {
	case model.ReservationStatusReleased:
		res, err = h.uc.Release(r.Context(), id)
	case model.ReservationStatusFulfilled:
		res, err = h.uc.Fulfill(r.Context(), id)
	}
	if err != nil {
		h.logger.Warn("reservation transition failed",
			zap.String("reservation_id", id),
			zap.String("target_status", string(target)),
			zap.Error(err),
		)
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("id")); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.NoContent(w)
}

func (h *ReservationHandler) available(w http.ResponseWriter, r *http.Request) {
	sku := r.PathValue("sku")
	available, err := h.uc.Available(r.Context(), sku)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"sku":       sku,
		"available": available,
	})
}
