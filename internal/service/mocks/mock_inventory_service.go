package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"projecttracker/internal/service"
	"projecttracker/internal/storage"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Export(ctx context.Context) (*service.InventoryReport, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*service.InventoryReport), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInventoryService) History(ctx context.Context) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.ObjectInfo), args.Error(1)
	}
	return nil, args.Error(1)
}
