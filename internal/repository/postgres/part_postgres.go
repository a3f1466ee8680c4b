package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const partColumns = `p.id, p.part_number, p.name, p.description, p.category, p.quantity_on_hand,
	p.minimum_stock, p.safety_stock, p.unit_cost, p.consumable, p.vendor, p.location,
	p.last_used_date, p.last_restock_date`

// PartPostgres is a PostgreSQL implementation of repository.PartRepository.
type PartPostgres struct {
	db *sql.DB
}

// NewPartPostgres creates a new PartPostgres repository.
func NewPartPostgres(db *sql.DB) *PartPostgres {
	return &PartPostgres{db: db}
}

var _ repository.PartRepository = (*PartPostgres)(nil)

func scanPart(s rowScanner) (model.Part, error) {
	var p model.Part
	err := s.Scan(
		&p.ID,
		&p.PartNumber,
		&p.Name,
		&p.Description,
		&p.Category,
		&p.QuantityOnHand,
		&p.MinimumStock,
		&p.SafetyStock,
		&p.UnitCost,
		&p.Consumable,
		&p.Vendor,
		&p.Location,
		&p.LastUsedDate,
		&p.LastRestockDate,
	)
	return p, err
}

func (r *PartPostgres) FindByID(ctx context.Context, id int64) (*model.Part, error) {
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.id = $1`
	return queryOne(ctx, r.db, scanPart, q, id)
}

func (r *PartPostgres) FindAll(ctx context.Context) ([]model.Part, error) {
	const q = `SELECT ` + partColumns + ` FROM parts p ORDER BY p.id`
	return queryAll(ctx, r.db, scanPart, q)
}

func (r *PartPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM parts`)
}

// Create inserts a catalog entry and returns the stored record.
func (r *PartPostgres) Create(ctx context.Context, p *model.Part) (*model.Part, error) {
	if err := checkText("part number", p.PartNumber); err != nil {
		return nil, err
	}
	if err := repository.Check("category", p.Category, "enum"); err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO parts AS p (part_number, name, description, category, quantity_on_hand,
			minimum_stock, safety_stock, unit_cost, consumable, vendor, location,
			last_used_date, last_restock_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + partColumns
	return insertOne(ctx, r.db, scanPart, q,
		p.PartNumber,
		p.Name,
		p.Description,
		string(p.Category),
		p.QuantityOnHand,
		p.MinimumStock,
		p.SafetyStock,
		p.UnitCost,
		p.Consumable,
		p.Vendor,
		p.Location,
		p.LastUsedDate,
		p.LastRestockDate,
	)
}

func (r *PartPostgres) FindByPartNumber(ctx context.Context, partNumber string) (*model.Part, error) {
	if err := checkText("part number", partNumber); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.part_number = $1`
	return queryOne(ctx, r.db, scanPart, q, partNumber)
}

func (r *PartPostgres) FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Part, error) {
	if err := checkText("part number", partNumber); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE lower(p.part_number) = lower($1)`
	return queryOne(ctx, r.db, scanPart, q, partNumber)
}

func (r *PartPostgres) ExistsByPartNumberIgnoreCase(ctx context.Context, partNumber string) (bool, error) {
	if err := checkText("part number", partNumber); err != nil {
		return false, err
	}
	const q = `SELECT EXISTS (SELECT 1 FROM parts WHERE lower(part_number) = lower($1))`
	return queryExists(ctx, r.db, q, partNumber)
}

func (r *PartPostgres) FindByNameContaining(ctx context.Context, name string) ([]model.Part, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, escapeLike(name))
}

func (r *PartPostgres) Search(ctx context.Context, text string) ([]model.Part, error) {
	if err := checkText("search text", text); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.name ILIKE '%' || $1 || '%' ESCAPE '\'
		   OR p.part_number ILIKE '%' || $1 || '%' ESCAPE '\'
		   OR p.description ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, escapeLike(text))
}

func (r *PartPostgres) FindByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error) {
	if err := repository.Check("category", c, "enum"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.category = $1 ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, string(c))
}

func (r *PartPostgres) CountByCategory(ctx context.Context, c model.PartCategory) (int64, error) {
	if err := repository.Check("category", c, "enum"); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM parts WHERE category = $1`, string(c))
}

func (r *PartPostgres) FindByVendor(ctx context.Context, vendor string) ([]model.Part, error) {
	if err := checkText("vendor", vendor); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE lower(p.vendor) = lower($1) ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, vendor)
}

func (r *PartPostgres) FindByLocation(ctx context.Context, location string) ([]model.Part, error) {
	if err := checkText("location", location); err != nil {
		return nil, err
	}
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.location = $1 ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, location)
}

func (r *PartPostgres) FindByConsumable(ctx context.Context, consumable bool) ([]model.Part, error) {
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.consumable = $1 ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, consumable)
}

func (r *PartPostgres) FindLowStock(ctx context.Context) ([]model.Part, error) {
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.quantity_on_hand <= p.minimum_stock
		ORDER BY p.quantity_on_hand, p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q)
}

func (r *PartPostgres) CountLowStock(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM parts WHERE quantity_on_hand <= minimum_stock`)
}

func (r *PartPostgres) FindCriticallyLow(ctx context.Context) ([]model.Part, error) {
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.quantity_on_hand <= p.safety_stock
		ORDER BY p.quantity_on_hand, p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q)
}

func (r *PartPostgres) FindLowStockByCategory(ctx context.Context, c model.PartCategory) ([]model.Part, error) {
	if err := repository.Check("category", c, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.category = $1 AND p.quantity_on_hand <= p.minimum_stock
		ORDER BY p.quantity_on_hand, p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q, string(c))
}

func (r *PartPostgres) FindByUnitCostBetween(ctx context.Context, min, max decimal.Decimal) ([]model.Part, error) {
	if min.IsNegative() || max.LessThan(min) {
		return nil, fmt.Errorf("%w: unit cost range [%s, %s]", repository.ErrInvalidArgument, min, max)
	}
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.unit_cost BETWEEN $1 AND $2
		ORDER BY p.unit_cost, p.id`
	return queryAll(ctx, r.db, scanPart, q, min, max)
}

func (r *PartPostgres) FindByUnitCostGreaterThan(ctx context.Context, cost decimal.Decimal) ([]model.Part, error) {
	const q = `SELECT ` + partColumns + ` FROM parts p WHERE p.unit_cost > $1 ORDER BY p.unit_cost DESC, p.id`
	return queryAll(ctx, r.db, scanPart, q, cost)
}

func (r *PartPostgres) FindNotUsedSince(ctx context.Context, date time.Time) ([]model.Part, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.last_used_date IS NULL OR p.last_used_date < $1::date
		ORDER BY p.last_used_date NULLS FIRST, p.id`
	return queryAll(ctx, r.db, scanPart, q, date)
}

func (r *PartPostgres) FindRestockedAfter(ctx context.Context, date time.Time) ([]model.Part, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + partColumns + `
		FROM parts p
		WHERE p.last_restock_date > $1::date
		ORDER BY p.last_restock_date, p.id`
	return queryAll(ctx, r.db, scanPart, q, date)
}

func (r *PartPostgres) FindAllOrderByName(ctx context.Context) ([]model.Part, error) {
	const q = `SELECT ` + partColumns + ` FROM parts p ORDER BY p.name, p.id`
	return queryAll(ctx, r.db, scanPart, q)
}

func (r *PartPostgres) TotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	const q = `SELECT COALESCE(SUM(quantity_on_hand * unit_cost), 0) FROM parts`
	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
