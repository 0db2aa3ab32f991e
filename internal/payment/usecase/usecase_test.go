package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/payment/dto"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type fakePaymentRepo struct {
	payments map[string]model.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]model.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	r.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *fakePaymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
	items := []model.Payment{}
	for _, p := range r.payments {
		items = append(items, p)
	}
	return items, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, p *model.Payment) (bool, error) {
	if _, ok := r.payments[p.ID]; !ok {
		return false, nil
	}
	r.payments[p.ID] = *p
	return true, nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	delete(r.payments, id)
	return nil
}

// fakeOrderRepo only answers Exists; payments never touch the other methods.
type fakeOrderRepo struct {
	known map[string]bool
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error  { return nil }
func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) { return nil, nil }
func (r *fakeOrderRepo) Update(ctx context.Context, o *model.Order) (bool, error) {
	return false, nil
}
func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *fakeOrderRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.known[id], nil
}
func (r *fakeOrderRepo) UpdateRefundMetadata(ctx context.Context, id string, refundAttempt []byte, paymentRefundStatus *string) (bool, error) {
	return false, nil
}

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

func TestCreatePayment_RequiresExistingOrder(t *testing.T) {
	orders := &fakeOrderRepo{known: map[string]bool{"o1": true}}
	uc := NewPaymentUseCase(newFakePaymentRepo(), orders, logger.NewNop())
	ctx := context.Background()

	p, err := uc.Create(ctx, &dto.CreatePaymentInput{
		ID: "p1", OrderID: "o1", Amount: 42.5, Status: "CAPTURED",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.OrderID != "o1" {
		t.Errorf("unexpected order id %s", p.OrderID)
	}

	_, err = uc.Create(ctx, &dto.CreatePaymentInput{
		ID: "p2", OrderID: "missing", Amount: 1, Status: "CAPTURED",
	})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestCreatePayment_Validation(t *testing.T) {
	orders := &fakeOrderRepo{known: map[string]bool{"o1": true}}
	uc := NewPaymentUseCase(newFakePaymentRepo(), orders, logger.NewNop())
	ctx := context.Background()

	cases := []struct {
		name  string
		input *dto.CreatePaymentInput
	}{
		{"missing id", &dto.CreatePaymentInput{OrderID: "o1", Amount: 1, Status: "CAPTURED"}},
		{"missing order id", &dto.CreatePaymentInput{ID: "p1", Amount: 1, Status: "CAPTURED"}},
		{"negative amount", &dto.CreatePaymentInput{ID: "p1", OrderID: "o1", Amount: -1, Status: "CAPTURED"}},
		{"missing status", &dto.CreatePaymentInput{ID: "p1", OrderID: "o1", Amount: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.input)
			assertCode(t, err, apperrors.CodeValidation)
		})
	}
}

func TestUpdatePayment_PartialFields(t *testing.T) {
	orders := &fakeOrderRepo{known: map[string]bool{"o1": true}}
	repo := newFakePaymentRepo()
	uc := NewPaymentUseCase(repo, orders, logger.NewNop())
	ctx := context.Background()

	if _, err := uc.Create(ctx, &dto.CreatePaymentInput{
		ID: "p1", OrderID: "o1", Amount: 10, Status: "PENDING",
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	status := "CAPTURED"
	p, err := uc.Update(ctx, "p1", &dto.UpdatePaymentInput{Status: &status})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if p.Status != "CAPTURED" {
		t.Errorf("expected status CAPTURED, got %s", p.Status)
	}
	if p.Amount != 10 {
		t.Errorf("amount must be preserved, got %f", p.Amount)
	}
}

func TestGetPayment_NotFound(t *testing.T) {
	orders := &fakeOrderRepo{known: map[string]bool{}}
	uc := NewPaymentUseCase(newFakePaymentRepo(), orders, logger.NewNop())
	_, err := uc.GetByID(context.Background(), "missing")
	assertCode(t, err, apperrors.CodeNotFound)
}
