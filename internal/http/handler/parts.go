package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/model"
)

type PartLookup interface {
	FindLowStock(ctx context.Context) ([]model.Part, error)
	FindCriticallyLow(ctx context.Context) ([]model.Part, error)
	FindByPartNumberIgnoreCase(ctx context.Context, partNumber string) (*model.Part, error)
}

// LowStockParts lists parts at or below their minimum stock.
//
//	@Summary	Low stock parts
//	@Tags		parts
//	@Produce	json
//	@Success	200	{array}		model.Part
//	@Failure	500	{object}	errorPayload
//	@Router		/parts/low-stock [get]
func LowStockParts(parts PartLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := parts.FindLowStock(c.UserContext())
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}

// CriticallyLowParts lists parts at or below their safety stock.
//
//	@Summary	Critically low parts
//	@Tags		parts
//	@Produce	json
//	@Success	200	{array}		model.Part
//	@Failure	500	{object}	errorPayload
//	@Router		/parts/critically-low [get]
func CriticallyLowParts(parts PartLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := parts.FindCriticallyLow(c.UserContext())
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}

// PartByNumber looks a part up by part number, ignoring case.
//
//	@Summary	Part by number
//	@Tags		parts
//	@Produce	json
//	@Param		partNumber	path		string	true	"Part number"
//	@Success	200			{object}	model.Part
//	@Failure	400			{object}	errorPayload
//	@Failure	404			{object}	errorPayload
//	@Router		/parts/by-number/{partNumber} [get]
func PartByNumber(parts PartLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := parts.FindByPartNumberIgnoreCase(c.UserContext(), c.Params("partNumber"))
		if err != nil {
			return writeRepoError(c, err)
		}
		if p == nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "part not found")
		}
		return c.JSON(p)
	}
}
