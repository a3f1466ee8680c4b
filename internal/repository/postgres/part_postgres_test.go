package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

var partCols = []string{"id", "part_number", "name", "description", "category", "quantity_on_hand",
	"minimum_stock", "safety_stock", "unit_cost", "consumable", "vendor", "location",
	"last_used_date", "last_restock_date"}

func TestPartPostgres_Create(t *testing.T) {
	ctx := context.Background()
	part := &model.Part{
		PartNumber:     "am-0255",
		Name:           "Hex shaft",
		Category:       model.PartCategoryMechanical,
		QuantityOnHand: 12,
		MinimumStock:   4,
		SafetyStock:    2,
		UnitCost:       decimal.RequireFromString("7.50"),
		Vendor:         "AndyMark",
		Location:       "Bin 3",
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newMock(t)
		rows := sqlmock.NewRows(partCols).
			AddRow(1, "am-0255", "Hex shaft", "", "MECHANICAL", 12, 4, 2, "7.50", false, "AndyMark", "Bin 3", nil, nil)
		mock.ExpectQuery("INSERT INTO parts").
			WithArgs("am-0255", "Hex shaft", "", "MECHANICAL", 12, 4, 2, part.UnitCost, false, "AndyMark", "Bin 3", nil, nil).
			WillReturnRows(rows)

		got, err := NewPartPostgres(db).Create(ctx, part)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.True(t, got.UnitCost.Equal(decimal.RequireFromString("7.5")))
		assert.Nil(t, got.LastUsedDate)
	})

	t.Run("duplicate part number", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO parts").
			WillReturnError(&pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "parts_part_number_lower_key"})

		got, err := NewPartPostgres(db).Create(ctx, part)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.Nil(t, got)
	})

	t.Run("bad category never reaches the store", func(t *testing.T) {
		db, _ := newMock(t)
		bad := *part
		bad.Category = "WOOD"

		_, err := NewPartPostgres(db).Create(ctx, &bad)

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})
}

func TestPartPostgres_FindByPartNumberIgnoreCase(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		rows := sqlmock.NewRows(partCols).
			AddRow(1, "AM-0255", "Hex shaft", "", "MECHANICAL", 12, 4, 2, "7.50", false, "AndyMark", "Bin 3", nil, nil)
		mock.ExpectQuery(`SELECT (.+) FROM parts p WHERE lower\(p.part_number\) = lower`).
			WithArgs("am-0255").
			WillReturnRows(rows)

		got, err := NewPartPostgres(db).FindByPartNumberIgnoreCase(ctx, "am-0255")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "AM-0255", got.PartNumber)
	})

	t.Run("absent is nil without error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM parts p WHERE lower\(p.part_number\) = lower`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(partCols))

		got, err := NewPartPostgres(db).FindByPartNumberIgnoreCase(ctx, "missing")

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("blank is rejected", func(t *testing.T) {
		db, _ := newMock(t)

		_, err := NewPartPostgres(db).FindByPartNumberIgnoreCase(ctx, "")

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})
}

func TestPartPostgres_StockThresholds(t *testing.T) {
	ctx := context.Background()

	t.Run("low stock compares against minimum", func(t *testing.T) {
		db, mock := newMock(t)
		rows := sqlmock.NewRows(partCols).
			AddRow(2, "P-2", "Bearing", "", "MECHANICAL", 4, 4, 1, "1.00", true, "", "", nil, nil)
		mock.ExpectQuery(`FROM parts p WHERE p.quantity_on_hand <= p.minimum_stock ORDER BY p.quantity_on_hand`).
			WillReturnRows(rows)

		got, err := NewPartPostgres(db).FindLowStock(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].IsLowStock())
	})

	t.Run("critically low compares against safety stock", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`FROM parts p WHERE p.quantity_on_hand <= p.safety_stock`).
			WillReturnRows(sqlmock.NewRows(partCols))

		got, err := NewPartPostgres(db).FindCriticallyLow(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("low stock count", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM parts WHERE quantity_on_hand <= minimum_stock`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		n, err := NewPartPostgres(db).CountLowStock(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestPartPostgres_Search(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`WHERE p.name ILIKE (.+) OR p.part_number ILIKE (.+) OR p.description ILIKE`).
		WithArgs("falcon").
		WillReturnRows(sqlmock.NewRows(partCols).
			AddRow(5, "WCP-0690", "Falcon 500", "Brushless motor", "ELECTRONICS", 6, 2, 1, "179.99", false, "WCP", "", nil, nil))

	got, err := NewPartPostgres(db).Search(context.Background(), "falcon")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.PartCategoryElectronics, got[0].Category)
}

func TestPartPostgres_FindByUnitCostBetween(t *testing.T) {
	ctx := context.Background()
	lo, hi := decimal.NewFromInt(5), decimal.NewFromInt(10)

	t.Run("inclusive range", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`WHERE p.unit_cost BETWEEN`).
			WithArgs(lo, hi).
			WillReturnRows(sqlmock.NewRows(partCols))

		got, err := NewPartPostgres(db).FindByUnitCostBetween(ctx, lo, hi)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("inverted range", func(t *testing.T) {
		db, _ := newMock(t)

		_, err := NewPartPostgres(db).FindByUnitCostBetween(ctx, hi, lo)

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})
}

func TestPartPostgres_FindNotUsedSince(t *testing.T) {
	db, mock := newMock(t)
	since := day(2024, 1, 1)
	mock.ExpectQuery(`WHERE p.last_used_date IS NULL OR p.last_used_date <`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(partCols).
			AddRow(7, "P-7", "Old gear", "", "MECHANICAL", 1, 0, 0, "2", false, "", "", nil, nil).
			AddRow(8, "P-8", "Spacer", "", "MECHANICAL", 1, 0, 0, "0.25", true, "", "", day(2023, 12, 1), nil))

	got, err := NewPartPostgres(db).FindNotUsedSince(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].LastUsedDate)
	assert.Equal(t, day(2023, 12, 1), *got[1].LastUsedDate)
}

func TestPartPostgres_TotalInventoryValue(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(quantity_on_hand \* unit_cost\), 0\) FROM parts`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1234.56"))

	total, err := NewPartPostgres(db).TotalInventoryValue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1234.56", total.StringFixed(2))
}
