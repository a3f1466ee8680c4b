package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a stocked inventory item.
type Part struct {
	ID              int64           `json:"id"`
	PartNumber      string          `json:"part_number"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        PartCategory    `json:"category"`
	QuantityOnHand  int             `json:"quantity_on_hand"`
	MinimumStock    int             `json:"minimum_stock"`
	SafetyStock     int             `json:"safety_stock"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Consumable      bool            `json:"consumable"`
	Vendor          string          `json:"vendor"`
	Location        string          `json:"location"`
	LastUsedDate    *time.Time      `json:"last_used_date"`
	LastRestockDate *time.Time      `json:"last_restock_date"`
}

// IsLowStock reports quantity on hand at or below the minimum stock level.
func (p Part) IsLowStock() bool {
	return p.QuantityOnHand <= p.MinimumStock
}

// IsCriticallyLow reports quantity on hand at or below the safety stock level.
// It is thresholded independently of IsLowStock.
func (p Part) IsCriticallyLow() bool {
	return p.QuantityOnHand <= p.SafetyStock
}

// InventoryValue is quantity on hand times unit cost.
func (p Part) InventoryValue() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.QuantityOnHand)))
}

// Component is a purchased component tracked until delivery.
type Component struct {
	ID               int64      `json:"id"`
	PartNumber       string     `json:"part_number"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ExpectedDelivery *time.Time `json:"expected_delivery"`
	ActualDelivery   *time.Time `json:"actual_delivery"`
	Delivered        bool       `json:"delivered"`
}

// IsOverdue reports an undelivered component whose expected delivery is strictly before ref.
func (c Component) IsOverdue(ref time.Time) bool {
	return !c.Delivered && c.ExpectedDelivery != nil && dateBefore(*c.ExpectedDelivery, ref)
}

// IsDueSoon reports an undelivered component expected within [today, today+days].
func (c Component) IsDueSoon(today time.Time, days int) bool {
	return !c.Delivered && c.ExpectedDelivery != nil && withinDays(*c.ExpectedDelivery, today, days)
}
