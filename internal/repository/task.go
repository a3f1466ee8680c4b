package repository

import (
	"context"
	"time"

	"projecttracker/internal/model"
)

// TaskRepository defines data access for project tasks.
// It reads the completed flag but never changes it.
type TaskRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindAll(ctx context.Context) ([]model.Task, error)
	Count(ctx context.Context) (int64, error)

	FindByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	// FindByProjectOrderByEndDate orders by end date, tasks without one last.
	FindByProjectOrderByEndDate(ctx context.Context, projectID int64) ([]model.Task, error)
	FindBySubsystem(ctx context.Context, subsystemID int64) ([]model.Task, error)
	FindByProjectAndCompleted(ctx context.Context, projectID int64, completed bool) ([]model.Task, error)
	CountByProjectAndCompleted(ctx context.Context, projectID int64, completed bool) (int64, error)
	FindByPriority(ctx context.Context, p model.TaskPriority) ([]model.Task, error)
	FindByTitleContaining(ctx context.Context, title string) ([]model.Task, error)

	FindByAssignedMember(ctx context.Context, memberID int64) ([]model.Task, error)
	FindIncompleteByMember(ctx context.Context, memberID int64) ([]model.Task, error)
	FindByRequiredComponent(ctx context.Context, componentID int64) ([]model.Task, error)

	// FindOverdue returns open tasks whose end date is strictly before ref.
	FindOverdue(ctx context.Context, ref time.Time) ([]model.Task, error)
	// FindDueSoon returns open tasks ending within [today, today+days].
	FindDueSoon(ctx context.Context, today time.Time, days int) ([]model.Task, error)

	// FindPrerequisites returns the tasks taskID depends on.
	FindPrerequisites(ctx context.Context, taskID int64) ([]model.Task, error)
	// FindDependents returns the tasks that depend on taskID.
	FindDependents(ctx context.Context, taskID int64) ([]model.Task, error)
}
