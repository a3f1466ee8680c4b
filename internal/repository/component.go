package repository

import (
	"context"
	"time"

	"projecttracker/internal/model"
)

// ComponentRepository defines data access for purchased components.
type ComponentRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Component, error)
	FindAll(ctx context.Context) ([]model.Component, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a component. A part number already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, c *model.Component) (*model.Component, error)

	// FindByPartNumber matches the part number exactly. Returns nil when absent.
	FindByPartNumber(ctx context.Context, partNumber string) (*model.Component, error)
	// FindByPartNumberIgnoreCase matches the part number regardless of case. Returns nil when absent.
	FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Component, error)
	ExistsByPartNumberIgnoreCase(ctx context.Context, partNumber string) (bool, error)
	// FindByNameContaining is a case-insensitive substring match on name.
	FindByNameContaining(ctx context.Context, name string) ([]model.Component, error)

	FindByDelivered(ctx context.Context, delivered bool) ([]model.Component, error)
	CountByDelivered(ctx context.Context, delivered bool) (int64, error)

	// FindByExpectedDeliveryBefore returns components expected strictly before date, earliest first.
	FindByExpectedDeliveryBefore(ctx context.Context, date time.Time) ([]model.Component, error)
	FindByExpectedDeliveryBetween(ctx context.Context, r DateRange) ([]model.Component, error)
	// FindDeliveredBetween returns delivered components whose actual delivery falls in r.
	FindDeliveredBetween(ctx context.Context, r DateRange) ([]model.Component, error)

	// FindOverdue returns undelivered components expected strictly before ref.
	FindOverdue(ctx context.Context, ref time.Time) ([]model.Component, error)
	// FindDueSoon returns undelivered components expected within [today, today+days].
	FindDueSoon(ctx context.Context, today time.Time, days int) ([]model.Component, error)

	// FindByRequiredForTask returns the components a task requires.
	FindByRequiredForTask(ctx context.Context, taskID int64) ([]model.Component, error)
}
