package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"projecttracker/internal/model"
)

// PartRepository defines data access for the parts inventory.
// It reads stock levels but never changes them.
type PartRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Part, error)
	FindAll(ctx context.Context) ([]model.Part, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a catalog entry. A part number already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, p *model.Part) (*model.Part, error)

	FindByPartNumber(ctx context.Context, partNumber string) (*model.Part, error)
	FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Part, error)
	ExistsByPartNumberIgnoreCase(ctx context.Context, partNumber string) (bool, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.Part, error)
	// Search matches text case-insensitively anywhere in name, part number or description.
	Search(ctx context.Context, text string) ([]model.Part, error)

	FindByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error)
	CountByCategory(ctx context.Context, c model.PartCategory) (int64, error)
	FindByVendor(ctx context.Context, vendor string) ([]model.Part, error)
	FindByLocation(ctx context.Context, location string) ([]model.Part, error)
	FindByConsumable(ctx context.Context, consumable bool) ([]model.Part, error)

	// FindLowStock returns parts with quantity on hand <= minimum stock, lowest quantity first.
	FindLowStock(ctx context.Context) ([]model.Part, error)
	CountLowStock(ctx context.Context) (int64, error)
	// FindCriticallyLow returns parts with quantity on hand <= safety stock, lowest quantity first.
	FindCriticallyLow(ctx context.Context) ([]model.Part, error)
	FindLowStockByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error)

	// FindByUnitCostBetween is inclusive on both bounds.
	FindByUnitCostBetween(ctx context.Context, min, max decimal.Decimal) ([]model.Part, error)
	FindByUnitCostGreaterThan(ctx context.Context, cost decimal.Decimal) ([]model.Part, error)

	// FindNotUsedSince returns parts never used or last used strictly before date.
	FindNotUsedSince(ctx context.Context, date time.Time) ([]model.Part, error)
	FindRestockedAfter(ctx context.Context, date time.Time) ([]model.Part, error)
	FindAllOrderByName(ctx context.Context) ([]model.Part, error)

	// TotalInventoryValue sums quantity on hand times unit cost over all parts.
	TotalInventoryValue(ctx context.Context) (decimal.Decimal, error)
}
