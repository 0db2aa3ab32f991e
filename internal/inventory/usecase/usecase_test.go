package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/omnicart/database-service/internal/apperrors"
	"github.com/omnicart/database-service/internal/inventory/dto"
	"github.com/omnicart/database-service/internal/model"
	"github.com/omnicart/database-service/internal/pkg/logger"
)

type fakeRepo struct {
	stock    map[string]int
	reserved map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stock:    make(map[string]int),
		reserved: make(map[string]int),
	}
}

func (r *fakeRepo) Upsert(ctx context.Context, inv *model.Inventory) error {
	r.stock[inv.SKU] = inv.Quantity
	return nil
}

func (r *fakeRepo) GetBySKU(ctx context.Context, sku string) (*model.Inventory, error) {
	qty, ok := r.stock[sku]
	if !ok {
		return nil, nil
	}
	return &model.Inventory{SKU: sku, Quantity: qty}, nil
}

func (r *fakeRepo) FindAll(ctx context.Context) ([]model.Inventory, error) {
	items := []model.Inventory{}
	for sku, qty := range r.stock {
		items = append(items, model.Inventory{SKU: sku, Quantity: qty})
	}
	return items, nil
}

func (r *fakeRepo) Update(ctx context.Context, inv *model.Inventory) (bool, error) {
	if _, ok := r.stock[inv.SKU]; !ok {
		return false, nil
	}
	r.stock[inv.SKU] = inv.Quantity
	return true, nil
}

func (r *fakeRepo) Delete(ctx context.Context, sku string) error {
	delete(r.stock, sku)
	return nil
}

func (r *fakeRepo) ActiveReserved(ctx context.Context, sku string) (int, error) {
	return r.reserved[sku], nil
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

func TestUpsert_CreatesAndOverwrites(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())
	ctx := context.Background()

	inv, err := uc.Upsert(ctx, &dto.UpsertInventoryInput{SKU: "X", Quantity: 10})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if inv.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", inv.Quantity)
	}

	if _, err := uc.Upsert(ctx, &dto.UpsertInventoryInput{SKU: "X", Quantity: 4}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if repo.stock["X"] != 4 {
		t.Errorf("upsert must overwrite, got %d", repo.stock["X"])
	}
}

func TestUpsert_Validation(t *testing.T) {
	uc := NewInventoryUseCase(newFakeRepo(), nil, logger.NewNop())
	ctx := context.Background()

	_, err := uc.Upsert(ctx, &dto.UpsertInventoryInput{Quantity: 1})
	assertCode(t, err, apperrors.CodeValidation)

	_, err = uc.Upsert(ctx, &dto.UpsertInventoryInput{SKU: "X", Quantity: -1})
	assertCode(t, err, apperrors.CodeValidation)
}

func TestGetBySKU_NotFound(t *testing.T) {
	uc := NewInventoryUseCase(newFakeRepo(), nil, logger.NewNop())
	_, err := uc.GetBySKU(context.Background(), "missing")
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestUpdate_UnknownSKU(t *testing.T) {
	uc := NewInventoryUseCase(newFakeRepo(), nil, logger.NewNop())
	_, err := uc.Update(context.Background(), "missing", &dto.UpdateInventoryInput{Quantity: 5})
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestUpdate_RejectsQuantityBelowReserved(t *testing.T) {
	repo := newFakeRepo()
	repo.stock["X"] = 10
	repo.reserved["X"] = 7
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())
	ctx := context.Background()

	_, err := uc.Update(ctx, "X", &dto.UpdateInventoryInput{Quantity: 5})
	assertCode(t, err, apperrors.CodeConflict)
	if repo.stock["X"] != 10 {
		t.Errorf("rejected update must not change stock, got %d", repo.stock["X"])
	}

	// Exactly the reserved sum is still a legal floor.
	inv, err := uc.Update(ctx, "X", &dto.UpdateInventoryInput{Quantity: 7})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if inv.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", inv.Quantity)
	}
}

func TestUpsert_RejectsQuantityBelowReserved(t *testing.T) {
	repo := newFakeRepo()
	repo.stock["X"] = 10
	repo.reserved["X"] = 4
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())

	_, err := uc.Upsert(context.Background(), &dto.UpsertInventoryInput{SKU: "X", Quantity: 3})
	assertCode(t, err, apperrors.CodeConflict)
}

func TestDelete_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.stock["X"] = 3
	uc := NewInventoryUseCase(repo, nil, logger.NewNop())
	ctx := context.Background()

	if err := uc.Delete(ctx, "X"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := uc.Delete(ctx, "X"); err != nil {
		t.Errorf("second delete must be a no-op, got: %v", err)
	}
}
