package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/logger"
	"github.com/omnicart/database-service/internal/reservation/dto"
)

type stubUseCase struct {
	createFn  func(input *dto.CreateReservationInput) (*model.Reservation, error)
	releaseFn func(id string) (*model.Reservation, error)
	fulfillFn func(id string) (*model.Reservation, error)
	deleteFn  func(id string) error
	getFn     func(id string) (*model.Reservation, error)
	listFn    func(f *dto.ReservationFilters) ([]model.Reservation, error)
	availFn   func(sku string) (int, error)
}

func (s *stubUseCase) Create(_ context.Context, input *dto.CreateReservationInput) (*model.Reservation, error) {
	return s.createFn(input)
}
func (s *stubUseCase) Release(_ context.Context, id string) (*model.Reservation, error) {
	return s.releaseFn(id)
}
func (s *stubUseCase) Fulfill(_ context.Context, id string) (*model.Reservation, error) {
	return s.fulfillFn(id)
}
func (s *stubUseCase) Delete(_ context.Context, id string) error { return s.deleteFn(id) }
func (s *stubUseCase) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	return s.getFn(id)
}
func (s *stubUseCase) List(_ context.Context, f *dto.ReservationFilters) ([]model.Reservation, error) {
	return s.listFn(f)
}
func (s *stubUseCase) Available(_ context.Context, sku string) (int, error) { return s.availFn(sku) }

func newMux(uc *stubUseCase) *http.ServeMux {
	mux := http.NewServeMux()
	NewReservationHandler(uc, logger.NewNop()).RegisterRoutes(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateReservation_Created(t *testing.T) {
	uc := &stubUseCase{
		createFn: func(input *dto.CreateReservationInput) (*model.Reservation, error) {
			return &model.Reservation{
				ID:      "res-1",
				OrderID: input.OrderID,
				Items:   model.LineItems{{SKU: "X", Quantity: 2}},
				Status:  model.ReservationStatusActive,
			}, nil
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodPost, "/inventory/reserve",
		`{"orderId":"o1","items":[{"sku":"X","qty":2}]}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var res model.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Status != model.ReservationStatusActive {
		t.Errorf("expected status ACTIVE, got %s", res.Status)
	}
}

func TestCreateReservation_InsufficientStockIsConflict(t *testing.T) {
	uc := &stubUseCase{
		createFn: func(*dto.CreateReservationInput) (*model.Reservation, error) {
			return nil, apperrors.InsufficientStock([]string{"X"})
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodPost, "/inventory/reserve",
		`{"orderId":"o1","items":[{"sku":"X","qty":99}]}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body struct {
		Detail string `json:"detail"`
		Code   string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Code != string(apperrors.CodeInsufficientStock) {
		t.Errorf("expected code INSUFFICIENT_STOCK, got %s", body.Code)
	}
	if body.Detail == "" {
		t.Error("expected a detail message")
	}
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, newMux(uc), http.MethodPost, "/inventory/reserve", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetReservation_NotFound(t *testing.T) {
	uc := &stubUseCase{
		getFn: func(id string) (*model.Reservation, error) {
			return nil, apperrors.NotFound("reservation", id)
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodGet, "/inventory/reserve/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateReservation_Release(t *testing.T) {
	released := false
	uc := &stubUseCase{
		releaseFn: func(id string) (*model.Reservation, error) {
			released = true
			return &model.Reservation{ID: id, Status: model.ReservationStatusReleased}, nil
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodPut, "/inventory/reserve/res-1",
		`{"status":"RELEASED"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !released {
		t.Error("expected Release to be invoked")
	}
}

func TestUpdateReservation_DoubleReleaseIsConflict(t *testing.T) {
	uc := &stubUseCase{
		releaseFn: func(id string) (*model.Reservation, error) {
			return nil, apperrors.InvalidState(id, "RELEASED", "RELEASED")
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodPut, "/inventory/reserve/res-1",
		`{"status":"RELEASED"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUpdateReservation_UnknownStatus(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, newMux(uc), http.MethodPut, "/inventory/reserve/res-1",
		`{"status":"PENDING"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteReservation_NoContent(t *testing.T) {
	uc := &stubUseCase{
		deleteFn: func(string) error { return nil },
	}
	rec := doRequest(t, newMux(uc), http.MethodDelete, "/inventory/reserve/res-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAvailable_ReturnsSKUAndCount(t *testing.T) {
	uc := &stubUseCase{
		availFn: func(sku string) (int, error) { return 3, nil },
	}
	rec := doRequest(t, newMux(uc), http.MethodGet, "/inventory/available/X", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		SKU       string `json:"sku"`
		Available int    `json:"available"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.SKU != "X" || body.Available != 3 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestList_PassesFilters(t *testing.T) {
	var got *dto.ReservationFilters
	uc := &stubUseCase{
		listFn: func(f *dto.ReservationFilters) ([]model.Reservation, error) {
			got = f
			return []model.Reservation{}, nil
		},
	}
	rec := doRequest(t, newMux(uc), http.MethodGet, "/inventory/reserve?orderId=o1&status=ACTIVE", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got == nil || got.OrderID != "o1" || got.Status != "ACTIVE" {
		t.Errorf("filters not passed through: %+v", got)
	}
}
