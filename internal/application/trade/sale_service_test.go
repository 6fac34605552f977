package trade

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/trade"
)

// MockSaleOrderRepository is a mock implementation of SaleOrderRepository
type MockSaleOrderRepository struct {
	mock.Mock
}

func (m *MockSaleOrderRepository) FindAll(ctx context.Context) ([]trade.SaleOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) ProcessSale(ctx context.Context, cmd trade.ProcessSaleCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func TestSaleService_Process(t *testing.T) {
	price := decimal.NewFromFloat(49.90)

	t.Run("passes the command through as one call", func(t *testing.T) {
		repo := new(MockSaleOrderRepository)
		service := NewSaleService(repo)

		repo.On("ProcessSale", mock.Anything, trade.ProcessSaleCommand{
			SOID:         "SO-001",
			CustomerName: "Jane Smith",
			ProductID:    "PRD-001",
			Quantity:     3,
			UnitPrice:    price,
		}).Return(nil)

		err := service.Process(context.Background(), ProcessSaleRequest{
			SOID:         "SO-001",
			CustomerName: "Jane Smith",
			ProductID:    "PRD-001",
			Quantity:     3,
			UnitPrice:    &price,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects non-positive quantity before reaching the store", func(t *testing.T) {
		repo := new(MockSaleOrderRepository)
		service := NewSaleService(repo)

		err := service.Process(context.Background(), ProcessSaleRequest{
			SOID:         "SO-002",
			CustomerName: "Jane Smith",
			ProductID:    "PRD-001",
			Quantity:     0,
			UnitPrice:    &price,
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
		repo.AssertNotCalled(t, "ProcessSale")
	})

	t.Run("insufficient stock error passes through untouched", func(t *testing.T) {
		repo := new(MockSaleOrderRepository)
		service := NewSaleService(repo)

		repo.On("ProcessSale", mock.Anything, mock.Anything).Return(shared.ErrInsufficientStock)

		err := service.Process(context.Background(), ProcessSaleRequest{
			SOID:         "SO-003",
			CustomerName: "Jane Smith",
			ProductID:    "PRD-001",
			Quantity:     999,
			UnitPrice:    &price,
		})

		assert.Equal(t, shared.ErrInsufficientStock, err)
	})
}

func TestSaleService_List(t *testing.T) {
	repo := new(MockSaleOrderRepository)
	service := NewSaleService(repo)

	repo.On("FindAll", mock.Anything).Return([]trade.SaleOrder{
		{
			SOID:         "SO-001",
			CustomerName: "Jane Smith",
			ProductID:    "PRD-001",
			Quantity:     3,
			UnitPrice:    decimal.NewFromFloat(49.90),
			OrderDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:       "Completed",
			TotalAmount:  decimal.NewFromFloat(149.70),
		},
	}, nil)

	responses, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, "SO-001", responses[0].SOID)
	assert.Equal(t, "2025-03-12", responses[0].OrderDate)
	assert.Equal(t, "Completed", responses[0].Status)
	assert.True(t, responses[0].TotalAmount.Equal(decimal.NewFromFloat(149.70)))
}
