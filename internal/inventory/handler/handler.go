package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/omnicart/database-service/internal/inventory"
	"github.com/omnicart/database-service/internal/inventory/dto"
	"github.com/omnicart/database-service/internal/pkg/httputil"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

// RegisterRoutes wires the stock CRUD. The literal /inventory/reserve and
// /inventory/available prefixes are registered by the reservation handler and
// take precedence over the {sku} wildcards here.
func (h *InventoryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /inventory", h.upsert)
	mux.HandleFunc("GET /inventory", h.list)
	mux.HandleFunc("GET /inventory/{sku}", h.get)
	mux.HandleFunc("PUT /inventory/{sku}", h.update)
	mux.HandleFunc("DELETE /inventory/{sku}", h.delete)
}

func (h *InventoryHandler) upsert(w http.ResponseWriter, r *http.Request) {
	var input dto.UpsertInventoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	inv, err := h.uc.Upsert(r.Context(), &input)
	if err != nil {
		h.logger.Warn("upsert inventory failed", zap.String("sku", input.SKU), zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, inv)
}

func (h *InventoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory failed", zap.Error(err))
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.uc.GetBySKU(r.Context(), r.PathValue("sku"))
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateInventoryInput
	if err := httputil.Decode(r, &input); err != nil {
		httputil.Error(w, err)
		return
	}

	inv, err := h.uc.Update(r.Context(), r.PathValue("sku"), &input)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), r.PathValue("sku")); err != nil {
		httputil.Error(w, err)
		return
	}
	httputil.NoContent(w)
}
