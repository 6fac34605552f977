package trade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/trade"
)

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindAllWithSupplier(ctx context.Context) ([]trade.PurchaseOrderWithSupplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trade.PurchaseOrderWithSupplier), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Create(ctx context.Context, po *trade.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) AddItem(ctx context.Context, item *trade.PurchaseOrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) UpdateStatus(ctx context.Context, poID string, status trade.PurchaseOrderStatus, expectedDelivery *time.Time) error {
	args := m.Called(ctx, poID, status, expectedDelivery)
	return args.Error(0)
}

func TestPurchaseOrderService_Create(t *testing.T) {
	t.Run("parses dates and defaults status to Pending", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(po *trade.PurchaseOrder) bool {
			return po.POID == "PO-001" &&
				po.OrderDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) &&
				po.ExpectedDeliveryDate == nil &&
				po.Status == trade.PurchaseOrderStatusPending
		})).Return(nil)

		err := service.Create(context.Background(), CreatePurchaseOrderRequest{
			POID:       "PO-001",
			SupplierID: "SUP-001",
			OrderDate:  "2025-03-10",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unparseable order date", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)

		err := service.Create(context.Background(), CreatePurchaseOrderRequest{
			POID:       "PO-002",
			SupplierID: "SUP-001",
			OrderDate:  "10/03/2025",
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("parses optional expected delivery date", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)
		expected := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(po *trade.PurchaseOrder) bool {
			return po.ExpectedDeliveryDate != nil && po.ExpectedDeliveryDate.Equal(expected)
		})).Return(nil)

		err := service.Create(context.Background(), CreatePurchaseOrderRequest{
			POID:                 "PO-003",
			SupplierID:           "SUP-001",
			OrderDate:            "2025-03-10",
			ExpectedDeliveryDate: "2025-03-20",
		})

		assert.NoError(t, err)
	})
}

func TestPurchaseOrderService_TransitionStatus(t *testing.T) {
	t.Run("absent delivery date passes nil for coalesce-preserve", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)

		repo.On("UpdateStatus", mock.Anything, "PO-001", trade.PurchaseOrderStatusReceived, (*time.Time)(nil)).Return(nil)

		err := service.TransitionStatus(context.Background(), "PO-001", TransitionStatusRequest{
			Status: "Received",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("supplied delivery date is passed through", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)
		expected := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

		repo.On("UpdateStatus", mock.Anything, "PO-001", trade.PurchaseOrderStatusReceived, &expected).Return(nil)

		err := service.TransitionStatus(context.Background(), "PO-001", TransitionStatusRequest{
			Status:               "Received",
			ExpectedDeliveryDate: "2025-04-01",
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown order surfaces not found", func(t *testing.T) {
		repo := new(MockPurchaseOrderRepository)
		service := NewPurchaseOrderService(repo)

		repo.On("UpdateStatus", mock.Anything, "PO-404", mock.Anything, mock.Anything).Return(shared.ErrNotFound)

		err := service.TransitionStatus(context.Background(), "PO-404", TransitionStatusRequest{Status: "Received"})

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestPurchaseOrderService_List(t *testing.T) {
	repo := new(MockPurchaseOrderRepository)
	service := NewPurchaseOrderService(repo)
	delivery := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	repo.On("FindAllWithSupplier", mock.Anything).Return([]trade.PurchaseOrderWithSupplier{
		{
			POID:                 "PO-001",
			SupplierID:           "SUP-001",
			SupplierName:         "Acme Metals",
			OrderDate:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			ExpectedDeliveryDate: &delivery,
			Status:               trade.PurchaseOrderStatusPending,
		},
		{
			POID:         "PO-002",
			SupplierID:   "SUP-002",
			SupplierName: "Globex",
			OrderDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			Status:       trade.PurchaseOrderStatusReceived,
		},
	}, nil)

	responses, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "2025-03-10", responses[0].OrderDate)
	assert.Equal(t, "Acme Metals", responses[0].SupplierName)
	if assert.NotNil(t, responses[0].ExpectedDeliveryDate) {
		assert.Equal(t, "2025-03-20", *responses[0].ExpectedDeliveryDate)
	}
	assert.Nil(t, responses[1].ExpectedDeliveryDate)
}
