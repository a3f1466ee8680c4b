package postgres

import (
	"context"
	"database/sql"
	"time"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const componentColumns = `c.id, c.part_number, c.name, c.description, c.expected_delivery, c.actual_delivery, c.is_delivered`

// ComponentPostgres is a PostgreSQL implementation of repository.ComponentRepository.
type ComponentPostgres struct {
	db *sql.DB
}

// NewComponentPostgres creates a new ComponentPostgres repository.
func NewComponentPostgres(db *sql.DB) *ComponentPostgres {
	return &ComponentPostgres{db: db}
}

var _ repository.ComponentRepository = (*ComponentPostgres)(nil)

func scanComponent(s rowScanner) (model.Component, error) {
	var c model.Component
	err := s.Scan(
		&c.ID,
		&c.PartNumber,
		&c.Name,
		&c.Description,
		&c.ExpectedDelivery,
		&c.ActualDelivery,
		&c.Delivered,
	)
	return c, err
}

func (r *ComponentPostgres) FindByID(ctx context.Context, id int64) (*model.Component, error) {
	const q = `SELECT ` + componentColumns + ` FROM components c WHERE c.id = $1`
	return queryOne(ctx, r.db, scanComponent, q, id)
}

func (r *ComponentPostgres) FindAll(ctx context.Context) ([]model.Component, error) {
	const q = `SELECT ` + componentColumns + ` FROM components c ORDER BY c.id`
	return queryAll(ctx, r.db, scanComponent, q)
}

func (r *ComponentPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM components`)
}

// Create inserts a component row and returns the stored record.
func (r *ComponentPostgres) Create(ctx context.Context, c *model.Component) (*model.Component, error) {
	if err := checkText("part number", c.PartNumber); err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO components AS c (part_number, name, description, expected_delivery, actual_delivery, is_delivered)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + componentColumns
	return insertOne(ctx, r.db, scanComponent, q,
		c.PartNumber,
		c.Name,
		c.Description,
		c.ExpectedDelivery,
		c.ActualDelivery,
		c.Delivered,
	)
}

func (r *ComponentPostgres) FindByPartNumber(ctx context.Context, partNumber string) (*model.Component, error) {
	if err := checkText("part number", partNumber); err != nil {
		return nil, err
	}
	const q = `SELECT ` + componentColumns + ` FROM components c WHERE c.part_number = $1`
	return queryOne(ctx, r.db, scanComponent, q, partNumber)
}

func (r *ComponentPostgres) FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Component, error) {
	if err := checkText("part number", partNumber); err != nil {
		return nil, err
	}
	const q = `SELECT ` + componentColumns + ` FROM components c WHERE lower(c.part_number) = lower($1)`
	return queryOne(ctx, r.db, scanComponent, q, partNumber)
}

func (r *ComponentPostgres) ExistsByPartNumberIgnoreCase(ctx context.Context, partNumber string) (bool, error) {
	if err := checkText("part number", partNumber); err != nil {
		return false, err
	}
	const q = `SELECT EXISTS (SELECT 1 FROM components WHERE lower(part_number) = lower($1))`
	return queryExists(ctx, r.db, q, partNumber)
}

func (r *ComponentPostgres) FindByNameContaining(ctx context.Context, name string) ([]model.Component, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + componentColumns + ` FROM components c WHERE c.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY c.id`
	return queryAll(ctx, r.db, scanComponent, q, escapeLike(name))
}

func (r *ComponentPostgres) FindByDelivered(ctx context.Context, delivered bool) ([]model.Component, error) {
	const q = `SELECT ` + componentColumns + ` FROM components c WHERE c.is_delivered = $1 ORDER BY c.id`
	return queryAll(ctx, r.db, scanComponent, q, delivered)
}

func (r *ComponentPostgres) CountByDelivered(ctx context.Context, delivered bool) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM components WHERE is_delivered = $1`, delivered)
}

func (r *ComponentPostgres) FindByExpectedDeliveryBefore(ctx context.Context, date time.Time) ([]model.Component, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		WHERE c.expected_delivery < $1::date
		ORDER BY c.expected_delivery, c.id`
	return queryAll(ctx, r.db, scanComponent, q, date)
}

func (r *ComponentPostgres) FindByExpectedDeliveryBetween(ctx context.Context, dr repository.DateRange) ([]model.Component, error) {
	if err := repository.CheckStruct("expected delivery range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		WHERE c.expected_delivery BETWEEN $1::date AND $2::date
		ORDER BY c.expected_delivery, c.id`
	return queryAll(ctx, r.db, scanComponent, q, dr.From, dr.To)
}

func (r *ComponentPostgres) FindDeliveredBetween(ctx context.Context, dr repository.DateRange) ([]model.Component, error) {
	if err := repository.CheckStruct("delivery range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		WHERE c.is_delivered = TRUE
		  AND c.actual_delivery BETWEEN $1::date AND $2::date
		ORDER BY c.actual_delivery, c.id`
	return queryAll(ctx, r.db, scanComponent, q, dr.From, dr.To)
}

func (r *ComponentPostgres) FindOverdue(ctx context.Context, ref time.Time) ([]model.Component, error) {
	if err := repository.Check("reference date", ref, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		WHERE c.is_delivered = FALSE
		  AND c.expected_delivery < $1::date
		ORDER BY c.expected_delivery, c.id`
	return queryAll(ctx, r.db, scanComponent, q, ref)
}

func (r *ComponentPostgres) FindDueSoon(ctx context.Context, today time.Time, days int) ([]model.Component, error) {
	if err := repository.Check("today", today, "required"); err != nil {
		return nil, err
	}
	if err := checkDays(days); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		WHERE c.is_delivered = FALSE
		  AND c.expected_delivery BETWEEN $1::date AND $1::date + $2::int
		ORDER BY c.expected_delivery, c.id`
	return queryAll(ctx, r.db, scanComponent, q, today, days)
}

func (r *ComponentPostgres) FindByRequiredForTask(ctx context.Context, taskID int64) ([]model.Component, error) {
	if err := checkID("task id", taskID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + componentColumns + `
		FROM components c
		JOIN task_components tc ON tc.component_id = c.id
		WHERE tc.task_id = $1
		ORDER BY c.id`
	return queryAll(ctx, r.db, scanComponent, q, taskID)
}
