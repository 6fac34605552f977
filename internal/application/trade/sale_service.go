package trade

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/trade"
)

// SaleService handles sale processing and listing
type SaleService struct {
	saleRepo trade.SaleOrderRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleOrderRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo}
}

// List returns all sale orders ordered by order date descending
func (s *SaleService) List(ctx context.Context) ([]SaleOrderResponse, error) {
	orders, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSaleOrderResponseList(orders), nil
}

// Process executes a sale as one atomic store-side operation: the sale record
// is inserted and the product's stock decremented in the same call. On
// insufficient stock or an unknown product nothing is written.
func (s *SaleService) Process(ctx context.Context, req ProcessSaleRequest) error {
	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	cmd := trade.ProcessSaleCommand{
		SOID:         req.SOID,
		CustomerName: req.CustomerName,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		UnitPrice:    unitPrice,
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	return s.saleRepo.ProcessSale(ctx, cmd)
}
