package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

// MockPartRepository is a testify mock of repository.PartRepository.
type MockPartRepository struct {
	mock.Mock
}

var _ repository.PartRepository = (*MockPartRepository)(nil)

func (m *MockPartRepository) FindByID(ctx context.Context, id int64) (*model.Part, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindAll(ctx context.Context) ([]model.Part, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartRepository) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	args := m.Called(ctx, p)
	if v := args.Get(0); v != nil {
		return v.(*model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByPartNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	args := m.Called(ctx, partNumber)
	if v := args.Get(0); v != nil {
		return v.(*model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Part, error) {
	args := m.Called(ctx, partNumber)
	if v := args.Get(0); v != nil {
		return v.(*model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) ExistsByPartNumberIgnoreCase(ctx context.Context, partNumber string) (bool, error) {
	args := m.Called(ctx, partNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartRepository) FindByNameContaining(ctx context.Context, name string) ([]model.Part, error) {
	args := m.Called(ctx, name)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) Search(ctx context.Context, text string) ([]model.Part, error) {
	args := m.Called(ctx, text)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error) {
	args := m.Called(ctx, c)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) CountByCategory(ctx context.Context, c model.PartCategory) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartRepository) FindByVendor(ctx context.Context, vendor string) ([]model.Part, error) {
	args := m.Called(ctx, vendor)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByLocation(ctx context.Context, location string) ([]model.Part, error) {
	args := m.Called(ctx, location)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByConsumable(ctx context.Context, consumable bool) ([]model.Part, error) {
	args := m.Called(ctx, consumable)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindLowStock(ctx context.Context) ([]model.Part, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) CountLowStock(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartRepository) FindCriticallyLow(ctx context.Context) ([]model.Part, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindLowStockByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error) {
	args := m.Called(ctx, c)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByUnitCostBetween(ctx context.Context, min, max decimal.Decimal) ([]model.Part, error) {
	args := m.Called(ctx, min, max)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindByUnitCostGreaterThan(ctx context.Context, cost decimal.Decimal) ([]model.Part, error) {
	args := m.Called(ctx, cost)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindNotUsedSince(ctx context.Context, date time.Time) ([]model.Part, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindRestockedAfter(ctx context.Context, date time.Time) ([]model.Part, error) {
	args := m.Called(ctx, date)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) FindAllOrderByName(ctx context.Context) ([]model.Part, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPartRepository) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
