package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/model"
)

const dateLayout = "2006-01-02"

type TaskLookup interface {
	FindOverdue(ctx context.Context, ref time.Time) ([]model.Task, error)
	FindDueSoon(ctx context.Context, today time.Time, days int) ([]model.Task, error)
}

// Clock returns the current instant in the tracker's time zone.
type Clock func() time.Time

func today(now Clock) time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OverdueTasks lists open tasks ending before ref, which defaults to today.
//
//	@Summary	Overdue tasks
//	@Tags		tasks
//	@Produce	json
//	@Param		ref	query		string	false	"Reference date (YYYY-MM-DD)"
//	@Success	200	{array}		model.Task
//	@Failure	400	{object}	errorPayload
//	@Router		/tasks/overdue [get]
func OverdueTasks(tasks TaskLookup, now Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ref := today(now)
		if s := c.Query("ref"); s != "" {
			d, err := time.ParseInLocation(dateLayout, s, ref.Location())
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "ref must be YYYY-MM-DD")
			}
			ref = d
		}
		res, err := tasks.FindOverdue(c.UserContext(), ref)
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}

// DueSoonTasks lists open tasks ending within the next days days (default 7).
//
//	@Summary	Tasks due soon
//	@Tags		tasks
//	@Produce	json
//	@Param		days	query		int	false	"Window in days"
//	@Success	200		{array}		model.Task
//	@Failure	400		{object}	errorPayload
//	@Router		/tasks/due-soon [get]
func DueSoonTasks(tasks TaskLookup, now Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 7)
		res, err := tasks.FindDueSoon(c.UserContext(), today(now), days)
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}
