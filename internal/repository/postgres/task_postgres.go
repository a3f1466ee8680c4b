package postgres

import (
	"context"
	"database/sql"
	"time"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const taskColumns = `t.id, t.title, t.description, t.estimated_minutes, t.actual_minutes, t.progress,
	t.start_date, t.end_date, t.priority, t.completed, t.project_id, t.subsystem_id`

// TaskPostgres is a PostgreSQL implementation of repository.TaskRepository.
type TaskPostgres struct {
	db *sql.DB
}

// NewTaskPostgres creates a new TaskPostgres repository.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

var _ repository.TaskRepository = (*TaskPostgres)(nil)

func scanTask(s rowScanner) (model.Task, error) {
	var t model.Task
	err := s.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.EstimatedMinutes,
		&t.ActualMinutes,
		&t.Progress,
		&t.StartDate,
		&t.EndDate,
		&t.Priority,
		&t.Completed,
		&t.ProjectID,
		&t.SubsystemID,
	)
	return t, err
}

func (r *TaskPostgres) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	return queryOne(ctx, r.db, scanTask, q, id)
}

func (r *TaskPostgres) FindAll(ctx context.Context) ([]model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks t ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q)
}

func (r *TaskPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM tasks`)
}

func (r *TaskPostgres) FindByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = $1 ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, projectID)
}

func (r *TaskPostgres) FindByProjectOrderByEndDate(ctx context.Context, projectID int64) ([]model.Task, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = $1 ORDER BY t.end_date NULLS LAST, t.id`
	return queryAll(ctx, r.db, scanTask, q, projectID)
}

func (r *TaskPostgres) FindBySubsystem(ctx context.Context, subsystemID int64) ([]model.Task, error) {
	if err := checkID("subsystem id", subsystemID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.subsystem_id = $1 ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, subsystemID)
}

func (r *TaskPostgres) FindByProjectAndCompleted(ctx context.Context, projectID int64, completed bool) ([]model.Task, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = $1 AND t.completed = $2 ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, projectID, completed)
}

func (r *TaskPostgres) CountByProjectAndCompleted(ctx context.Context, projectID int64, completed bool) (int64, error) {
	if err := checkID("project id", projectID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM tasks WHERE project_id = $1 AND completed = $2`, projectID, completed)
}

func (r *TaskPostgres) FindByPriority(ctx context.Context, p model.TaskPriority) ([]model.Task, error) {
	if err := repository.Check("priority", p, "enum"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.priority = $1 ORDER BY t.end_date NULLS LAST, t.id`
	return queryAll(ctx, r.db, scanTask, q, string(p))
}

func (r *TaskPostgres) FindByTitleContaining(ctx context.Context, title string) ([]model.Task, error) {
	if err := checkText("title", title); err != nil {
		return nil, err
	}
	const q = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.title ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, escapeLike(title))
}

func (r *TaskPostgres) FindByAssignedMember(ctx context.Context, memberID int64) ([]model.Task, error) {
	if err := checkID("member id", memberID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN task_assignments ta ON ta.task_id = t.id
		WHERE ta.team_member_id = $1
		ORDER BY t.end_date NULLS LAST, t.id`
	return queryAll(ctx, r.db, scanTask, q, memberID)
}

func (r *TaskPostgres) FindIncompleteByMember(ctx context.Context, memberID int64) ([]model.Task, error) {
	if err := checkID("member id", memberID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN task_assignments ta ON ta.task_id = t.id
		WHERE ta.team_member_id = $1 AND t.completed = FALSE
		ORDER BY t.end_date NULLS LAST, t.id`
	return queryAll(ctx, r.db, scanTask, q, memberID)
}

func (r *TaskPostgres) FindByRequiredComponent(ctx context.Context, componentID int64) ([]model.Task, error) {
	if err := checkID("component id", componentID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN task_components tc ON tc.task_id = t.id
		WHERE tc.component_id = $1
		ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, componentID)
}

func (r *TaskPostgres) FindOverdue(ctx context.Context, ref time.Time) ([]model.Task, error) {
	if err := repository.Check("reference date", ref, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.completed = FALSE AND t.end_date < $1::date
		ORDER BY t.end_date, t.id`
	return queryAll(ctx, r.db, scanTask, q, ref)
}

func (r *TaskPostgres) FindDueSoon(ctx context.Context, today time.Time, days int) ([]model.Task, error) {
	if err := repository.Check("today", today, "required"); err != nil {
		return nil, err
	}
	if err := checkDays(days); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.completed = FALSE
		  AND t.end_date BETWEEN $1::date AND $1::date + $2::int
		ORDER BY t.end_date, t.id`
	return queryAll(ctx, r.db, scanTask, q, today, days)
}

func (r *TaskPostgres) FindPrerequisites(ctx context.Context, taskID int64) ([]model.Task, error) {
	if err := checkID("task id", taskID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN task_dependencies d ON d.depends_on_task_id = t.id
		WHERE d.task_id = $1
		ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, taskID)
}

func (r *TaskPostgres) FindDependents(ctx context.Context, taskID int64) ([]model.Task, error) {
	if err := checkID("task id", taskID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN task_dependencies d ON d.task_id = t.id
		WHERE d.depends_on_task_id = $1
		ORDER BY t.id`
	return queryAll(ctx, r.db, scanTask, q, taskID)
}
