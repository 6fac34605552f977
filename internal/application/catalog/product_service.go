package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/wms/backend/internal/domain/catalog"
)

// ProductService handles product and pricing business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	pricingRepo catalog.ProductPricingRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, pricingRepo catalog.ProductPricingRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		pricingRepo: pricingRepo,
	}
}

// List returns all products ordered by name
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponseList(products), nil
}

// Create creates a new product. An absent quantity defaults to 0 and an
// absent location to the default warehouse location.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) error {
	quantity := 0
	if req.QuantityOnHand != nil {
		quantity = *req.QuantityOnHand
	}

	product, err := catalog.NewProduct(
		req.ProductID,
		req.Name,
		quantity,
		req.Description,
		req.WarehouseLocation,
	)
	if err != nil {
		return err
	}

	return s.productRepo.Create(ctx, product)
}

// ListPricing returns the pricing rows for a product ordered by unit price
// ascending. An unknown product yields an empty list, not an error.
func (s *ProductService) ListPricing(ctx context.Context, productID string) ([]PricingResponse, error) {
	rows, err := s.pricingRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToPricingResponseList(rows), nil
}

// AddPricing appends a pricing row. Absent discount and tax default to zero;
// an unknown product surfaces as a foreign-key constraint error from the store.
func (s *ProductService) AddPricing(ctx context.Context, req AddPricingRequest) error {
	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}
	tax := decimal.Zero
	if req.Tax != nil {
		tax = *req.Tax
	}
	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	pricing, err := catalog.NewProductPricing(req.ProductID, unitPrice, discount, tax)
	if err != nil {
		return err
	}

	return s.pricingRepo.Create(ctx, pricing)
}

// ListNetPrices returns one row per (product, pricing) pair with the net
// price computed by the store, ordered by product name then unit price.
func (s *ProductService) ListNetPrices(ctx context.Context) ([]NetPriceResponse, error) {
	rows, err := s.pricingRepo.ListNetPrices(ctx)
	if err != nil {
		return nil, err
	}
	return ToNetPriceResponseList(rows), nil
}
