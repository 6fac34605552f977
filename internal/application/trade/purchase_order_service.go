package trade

import (
	"context"

	"github.com/wms/backend/internal/domain/trade"
)

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	poRepo trade.PurchaseOrderRepository
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(poRepo trade.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{poRepo: poRepo}
}

// List returns all purchase orders joined with supplier names, ordered by
// order date descending
func (s *PurchaseOrderService) List(ctx context.Context) ([]PurchaseOrderResponse, error) {
	rows, err := s.poRepo.FindAllWithSupplier(ctx)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponseList(rows), nil
}

// Create creates a new purchase order. An empty status defaults to Pending;
// an unknown supplier surfaces as a foreign-key constraint error from the
// store.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) error {
	orderDate, err := parseDate("order_date", req.OrderDate)
	if err != nil {
		return err
	}
	expected, err := parseOptionalDate("Expected_delivery_date", req.ExpectedDeliveryDate)
	if err != nil {
		return err
	}

	po, err := trade.NewPurchaseOrder(
		req.POID,
		req.SupplierID,
		orderDate,
		expected,
		trade.PurchaseOrderStatus(req.Status),
	)
	if err != nil {
		return err
	}

	return s.poRepo.Create(ctx, po)
}

// AddItem appends a line item to a purchase order. Items never touch stock.
func (s *PurchaseOrderService) AddItem(ctx context.Context, req AddPurchaseOrderItemRequest) error {
	item, err := trade.NewPurchaseOrderItem(req.POID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return s.poRepo.AddItem(ctx, item)
}

// TransitionStatus sets a purchase order's status. An absent expected
// delivery date preserves the stored value.
func (s *PurchaseOrderService) TransitionStatus(ctx context.Context, poID string, req TransitionStatusRequest) error {
	expected, err := parseOptionalDate("Expected_delivery_date", req.ExpectedDeliveryDate)
	if err != nil {
		return err
	}

	return s.poRepo.UpdateStatus(ctx, poID, trade.PurchaseOrderStatus(req.Status), expected)
}
