package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/order/dto"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type fakeRepo struct {
	orders map[string]model.Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[string]model.Order)}
}

func (r *fakeRepo) Create(ctx context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; ok {
		return apperrors.Conflict("order "+o.ID+" already exists", nil)
	}
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := o
	return &copied, nil
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	items := []model.Order{}
	for _, o := range r.orders {
		items = append(items, o)
	}
	return items, nil
}

func (r *fakeRepo) Update(ctx context.Context, o *model.Order) (bool, error) {
	if _, ok := r.orders[o.ID]; !ok {
		return false, nil
	}
	r.orders[o.ID] = *o
	return true, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.orders[id]
	return ok, nil
}

func (r *fakeRepo) UpdateRefundMetadata(ctx context.Context, id string, refundAttempt []byte, paymentRefundStatus *string) (bool, error) {
	o, ok := r.orders[id]
	if !ok {
		return false, nil
	}
	if refundAttempt != nil {
		o.RefundAttempt = refundAttempt
	}
	if paymentRefundStatus != nil {
		o.PaymentRefundStatus = paymentRefundStatus
	}
	r.orders[id] = o
	return true, nil
}

func strPtr(s string) *string { return &s }

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected %s error, got: %v", want, err)
	}
	if appErr.Code != want {
		t.Fatalf("expected code %s, got %s", want, appErr.Code)
	}
}

func TestCreateOrder_DefaultsCurrency(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	o, err := uc.Create(context.Background(), &dto.CreateOrderInput{
		ID:     "o1",
		Items:  json.RawMessage(`[{"sku":"X","qty":1}]`),
		Total:  99.5,
		Status: "CREATED",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if o.Currency == nil || *o.Currency != "INR" {
		t.Errorf("expected default currency INR, got %v", o.Currency)
	}
}

func TestCreateOrder_DuplicateIsConflict(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())
	ctx := context.Background()

	input := &dto.CreateOrderInput{
		ID:     "o1",
		Items:  json.RawMessage(`[{"sku":"X","qty":1}]`),
		Total:  1,
		Status: "CREATED",
	}
	if _, err := uc.Create(ctx, input); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err := uc.Create(ctx, input)
	assertCode(t, err, apperrors.CodeConflict)
}

func TestCreateOrder_Validation(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())
	ctx := context.Background()

	cases := []struct {
		name  string
		input *dto.CreateOrderInput
	}{
		{"missing id", &dto.CreateOrderInput{Items: json.RawMessage(`[]`), Status: "CREATED"}},
		{"missing items", &dto.CreateOrderInput{ID: "o1", Status: "CREATED"}},
		{"missing status", &dto.CreateOrderInput{ID: "o1", Items: json.RawMessage(`[]`)}},
		{"negative total", &dto.CreateOrderInput{ID: "o1", Items: json.RawMessage(`[]`), Status: "CREATED", Total: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.input)
			assertCode(t, err, apperrors.CodeValidation)
		})
	}
}

func TestUpdateOrder_MergePreservesUnsetFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewOrderUseCase(repo, logger.NewNop())
	ctx := context.Background()

	if _, err := uc.Create(ctx, &dto.CreateOrderInput{
		ID:     "o1",
		UserID: strPtr("u1"),
		Items:  json.RawMessage(`[{"sku":"X","qty":1}]`),
		Total:  50,
		Status: "CREATED",
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// Write refund metadata out-of-band, then run a plain status update.
	if _, _, err := uc.SetRefundMetadata(ctx, "o1", &dto.RefundMetadataInput{
		RefundAttempt:       json.RawMessage(`{"attempt":1}`),
		PaymentRefundStatus: strPtr("PENDING"),
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	o, err := uc.Update(ctx, "o1", &dto.UpdateOrderInput{Status: strPtr("PAID")})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if o.Status != "PAID" {
		t.Errorf("expected status PAID, got %s", o.Status)
	}
	if o.UserID == nil || *o.UserID != "u1" {
		t.Errorf("user id must survive the merge, got %v", o.UserID)
	}
	if o.PaymentRefundStatus == nil || *o.PaymentRefundStatus != "PENDING" {
		t.Errorf("refund status must survive the merge, got %v", o.PaymentRefundStatus)
	}
	if string(o.RefundAttempt) != `{"attempt":1}` {
		t.Errorf("refund attempt must survive the merge, got %s", o.RefundAttempt)
	}
}

func TestUpdateOrder_NotFound(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())
	_, err := uc.Update(context.Background(), "missing", &dto.UpdateOrderInput{Status: strPtr("PAID")})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestSetRefundMetadata_NoFields(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())

	updated, keys, err := uc.SetRefundMetadata(context.Background(), "o1", &dto.RefundMetadataInput{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated {
		t.Error("expected updated=false when no known fields are present")
	}
	if len(keys) != 0 {
		t.Errorf("expected no updated keys, got %v", keys)
	}
}

func TestSetRefundMetadata_UnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), logger.NewNop())
	_, _, err := uc.SetRefundMetadata(context.Background(), "missing", &dto.RefundMetadataInput{
		PaymentRefundStatus: strPtr("PENDING"),
	})
	assertCode(t, err, apperrors.CodeNotFound)
}
