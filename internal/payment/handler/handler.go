package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/payment"
	"github.com/omnicart/database-service/internal/payment/dto"
	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type PaymentHandler struct {
	uc     payment.UseCase
	logger logger.ZapLogger
}

func NewPaymentHandler(uc payment.UseCase, log logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: log}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.create)
	mux.HandleFunc("GET /payments", h.list)
	mux.HandleFunc("GET /payments/{id}", h.get)
	mux.HandleFunc("PUT /payments/{id}", h.update)
	mux.HandleFunc("DELETE /payments/{id}", h.delete)
}

func (h *PaymentHandler) create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreatePaymentInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	p, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Warn("create payment failed", zap.String("payment_id", input.ID), zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, p)
}

func (h *PaymentHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("list payments failed", zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *PaymentHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdatePaymentInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	p, err := h.uc.Update(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("id")); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.NoContent(w)
}
