package repository

import (
	"context"
	"time"

	"projecttracker/internal/model"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Project, error)
	FindAll(ctx context.Context) ([]model.Project, error)
	Count(ctx context.Context) (int64, error)

	FindByNameContaining(ctx context.Context, name string) ([]model.Project, error)
	// FindByHardDeadlineBefore returns projects whose deadline is strictly before date.
	FindByHardDeadlineBefore(ctx context.Context, date time.Time) ([]model.Project, error)
	// FindByHardDeadlineAfter returns projects whose deadline is strictly after date.
	FindByHardDeadlineAfter(ctx context.Context, date time.Time) ([]model.Project, error)
	FindByHardDeadlineBetween(ctx context.Context, r DateRange) ([]model.Project, error)
	FindByStartDateAfter(ctx context.Context, date time.Time) ([]model.Project, error)
	// FindActive returns projects with start date <= today <= hard deadline.
	FindActive(ctx context.Context, today time.Time) ([]model.Project, error)
	FindAllOrderByHardDeadline(ctx context.Context) ([]model.Project, error)
	// FindByTeamMember returns projects having at least one task assigned to the member.
	FindByTeamMember(ctx context.Context, memberID int64) ([]model.Project, error)
}

// MeetingRepository defines data access for project meetings.
// Results are ordered by date then start time.
type MeetingRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Meeting, error)
	FindAll(ctx context.Context) ([]model.Meeting, error)
	Count(ctx context.Context) (int64, error)

	FindByProject(ctx context.Context, projectID int64) ([]model.Meeting, error)
	FindByDate(ctx context.Context, date time.Time) ([]model.Meeting, error)
	FindByDateBetween(ctx context.Context, r DateRange) ([]model.Meeting, error)
	FindByProjectAndDateBetween(ctx context.Context, projectID int64, r DateRange) ([]model.Meeting, error)
	// FindUpcoming returns the project's meetings dated today or later.
	FindUpcoming(ctx context.Context, projectID int64, today time.Time) ([]model.Meeting, error)
	// FindOverlapping returns meetings on date whose interval intersects [start, end).
	// A meeting ending exactly at start (or starting exactly at end) does not overlap.
	// excludeID, when non-zero, skips that meeting so an edit does not collide with itself.
	FindOverlapping(ctx context.Context, date time.Time, start, end model.TimeOfDay, excludeID int64) ([]model.Meeting, error)
}

// MilestoneRepository defines data access for project milestones, ordered by date.
type MilestoneRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Milestone, error)
	FindAll(ctx context.Context) ([]model.Milestone, error)
	Count(ctx context.Context) (int64, error)

	FindByProject(ctx context.Context, projectID int64) ([]model.Milestone, error)
	FindByProjectAndDateBefore(ctx context.Context, projectID int64, date time.Time) ([]model.Milestone, error)
	FindByProjectAndDateAfter(ctx context.Context, projectID int64, date time.Time) ([]model.Milestone, error)
	FindByDateBetween(ctx context.Context, r DateRange) ([]model.Milestone, error)
	// FindUpcoming returns the project's milestones within [today, today+days].
	FindUpcoming(ctx context.Context, projectID int64, today time.Time, days int) ([]model.Milestone, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.Milestone, error)
	CountByProject(ctx context.Context, projectID int64) (int64, error)
}
