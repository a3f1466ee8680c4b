package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/model"
)

type MeetingLookup interface {
	FindOverlapping(ctx context.Context, date time.Time, start, end model.TimeOfDay, excludeID int64) ([]model.Meeting, error)
}

// OverlappingMeetings lists meetings on date that intersect [start, end).
//
//	@Summary	Overlapping meetings
//	@Tags		meetings
//	@Produce	json
//	@Param		date	query		string	true	"Date (YYYY-MM-DD)"
//	@Param		start	query		string	true	"Start (HH:MM)"
//	@Param		end		query		string	true	"End (HH:MM)"
//	@Param		exclude	query		int		false	"Meeting ID to ignore"
//	@Success	200		{array}		model.Meeting
//	@Failure	400		{object}	errorPayload
//	@Router		/meetings/overlapping [get]
func OverlappingMeetings(meetings MeetingLookup, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	return func(c *fiber.Ctx) error {
		date, err := time.ParseInLocation(dateLayout, c.Query("date"), loc)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		}
		start, err := model.ParseTimeOfDay(c.Query("start"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TIME", "start must be HH:MM")
		}
		end, err := model.ParseTimeOfDay(c.Query("end"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TIME", "end must be HH:MM")
		}
		res, err := meetings.FindOverlapping(c.UserContext(), date, start, end, int64(c.QueryInt("exclude", 0)))
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}
