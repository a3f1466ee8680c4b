package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/service"
)

// ExportInventoryReport writes a low-stock CSV to object storage.
//
//	@Summary	Export low stock report
//	@Tags		reports
//	@Produce	json
//	@Success	201	{object}	service.InventoryReport
//	@Failure	503	{object}	errorPayload
//	@Router		/reports/inventory [post]
func ExportInventoryReport(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rep, err := svc.Export(c.UserContext())
		if errors.Is(err, service.ErrNoStore) {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "report storage unavailable")
		}
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}

// ListInventoryReports lists earlier exports.
//
//	@Summary	List low stock reports
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}		storage.ObjectInfo
//	@Failure	503	{object}	errorPayload
//	@Router		/reports/inventory [get]
func ListInventoryReports(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.History(c.UserContext())
		if errors.Is(err, service.ErrNoStore) {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "report storage unavailable")
		}
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}
