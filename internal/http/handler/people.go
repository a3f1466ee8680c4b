package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"projecttracker/internal/model"
)

type MemberLookup interface {
	FindByProject(ctx context.Context, projectID int64) ([]model.TeamMember, error)
}

type MinorLookup interface {
	FindMinorUsers(ctx context.Context) ([]model.User, error)
	FindMinorsWithValidConsent(ctx context.Context) ([]model.User, error)
	FindMinorsWithoutConsent(ctx context.Context) ([]model.User, error)
}

// ProjectMembers lists members assigned to any task of the project.
//
//	@Summary	Project members
//	@Tags		projects
//	@Produce	json
//	@Param		id	path		int	true	"Project ID"
//	@Success	200	{array}		model.TeamMember
//	@Failure	400	{object}	errorPayload
//	@Router		/projects/{id}/members [get]
func ProjectMembers(members MemberLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := members.FindByProject(c.UserContext(), int64(id))
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}

// MinorUsers lists users under 13, optionally filtered by consent state.
//
//	@Summary	Minor users
//	@Tags		users
//	@Produce	json
//	@Param		consent	query		string	false	"valid or missing"
//	@Success	200		{array}		model.User
//	@Failure	400		{object}	errorPayload
//	@Router		/users/minors [get]
func MinorUsers(users MinorLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			res []model.User
			err error
		)
		switch c.Query("consent") {
		case "":
			res, err = users.FindMinorUsers(c.UserContext())
		case "valid":
			res, err = users.FindMinorsWithValidConsent(c.UserContext())
		case "missing":
			res, err = users.FindMinorsWithoutConsent(c.UserContext())
		default:
			return writeError(c, fiber.StatusBadRequest, "INVALID_CONSENT", "consent must be valid or missing")
		}
		if err != nil {
			return writeRepoError(c, err)
		}
		return c.JSON(res)
	}
}
