package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const projectColumns = `p.id, p.name, p.description, p.start_date, p.goal_end_date, p.hard_deadline`

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

func scanProject(s rowScanner) (model.Project, error) {
	var p model.Project
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.StartDate,
		&p.GoalEndDate,
		&p.HardDeadline,
	)
	return p, err
}

func (r *ProjectPostgres) FindByID(ctx context.Context, id int64) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`
	return queryOne(ctx, r.db, scanProject, q, id)
}

func (r *ProjectPostgres) FindAll(ctx context.Context) ([]model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects p ORDER BY p.id`
	return queryAll(ctx, r.db, scanProject, q)
}

func (r *ProjectPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM projects`)
}

func (r *ProjectPostgres) FindByNameContaining(ctx context.Context, name string) ([]model.Project, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + projectColumns + ` FROM projects p WHERE p.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY p.id`
	return queryAll(ctx, r.db, scanProject, q, escapeLike(name))
}

func (r *ProjectPostgres) FindByHardDeadlineBefore(ctx context.Context, date time.Time) ([]model.Project, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + projectColumns + ` FROM projects p WHERE p.hard_deadline < $1::date ORDER BY p.hard_deadline, p.id`
	return queryAll(ctx, r.db, scanProject, q, date)
}

func (r *ProjectPostgres) FindByHardDeadlineAfter(ctx context.Context, date time.Time) ([]model.Project, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + projectColumns + ` FROM projects p WHERE p.hard_deadline > $1::date ORDER BY p.hard_deadline, p.id`
	return queryAll(ctx, r.db, scanProject, q, date)
}

func (r *ProjectPostgres) FindByHardDeadlineBetween(ctx context.Context, dr repository.DateRange) ([]model.Project, error) {
	if err := repository.CheckStruct("deadline range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.hard_deadline BETWEEN $1::date AND $2::date
		ORDER BY p.hard_deadline, p.id`
	return queryAll(ctx, r.db, scanProject, q, dr.From, dr.To)
}

func (r *ProjectPostgres) FindByStartDateAfter(ctx context.Context, date time.Time) ([]model.Project, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + projectColumns + ` FROM projects p WHERE p.start_date > $1::date ORDER BY p.start_date, p.id`
	return queryAll(ctx, r.db, scanProject, q, date)
}

func (r *ProjectPostgres) FindActive(ctx context.Context, today time.Time) ([]model.Project, error) {
	if err := repository.Check("today", today, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.start_date <= $1::date AND p.hard_deadline >= $1::date
		ORDER BY p.hard_deadline, p.id`
	return queryAll(ctx, r.db, scanProject, q, today)
}

func (r *ProjectPostgres) FindAllOrderByHardDeadline(ctx context.Context) ([]model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects p ORDER BY p.hard_deadline, p.id`
	return queryAll(ctx, r.db, scanProject, q)
}

func (r *ProjectPostgres) FindByTeamMember(ctx context.Context, memberID int64) ([]model.Project, error) {
	if err := checkID("member id", memberID); err != nil {
		return nil, err
	}
	// EXISTS keeps one row per project however many tasks the member holds.
	const q = `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE EXISTS (
			SELECT 1
			FROM tasks t
			JOIN task_assignments ta ON ta.task_id = t.id
			WHERE t.project_id = p.id AND ta.team_member_id = $1
		)
		ORDER BY p.id`
	return queryAll(ctx, r.db, scanProject, q, memberID)
}

const meetingColumns = `m.id, m.date, m.start_time, m.end_time, m.project_id, m.notes`

// MeetingPostgres is a PostgreSQL implementation of repository.MeetingRepository.
type MeetingPostgres struct {
	db *sql.DB
}

// NewMeetingPostgres creates a new MeetingPostgres repository.
func NewMeetingPostgres(db *sql.DB) *MeetingPostgres {
	return &MeetingPostgres{db: db}
}

var _ repository.MeetingRepository = (*MeetingPostgres)(nil)

func scanMeeting(s rowScanner) (model.Meeting, error) {
	var m model.Meeting
	err := s.Scan(
		&m.ID,
		&m.Date,
		&m.StartTime,
		&m.EndTime,
		&m.ProjectID,
		&m.Notes,
	)
	return m, err
}

func (r *MeetingPostgres) FindByID(ctx context.Context, id int64) (*model.Meeting, error) {
	const q = `SELECT ` + meetingColumns + ` FROM meetings m WHERE m.id = $1`
	return queryOne(ctx, r.db, scanMeeting, q, id)
}

func (r *MeetingPostgres) FindAll(ctx context.Context) ([]model.Meeting, error) {
	const q = `SELECT ` + meetingColumns + ` FROM meetings m ORDER BY m.id`
	return queryAll(ctx, r.db, scanMeeting, q)
}

func (r *MeetingPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM meetings`)
}

func (r *MeetingPostgres) FindByProject(ctx context.Context, projectID int64) ([]model.Meeting, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + meetingColumns + ` FROM meetings m WHERE m.project_id = $1 ORDER BY m.date, m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, projectID)
}

func (r *MeetingPostgres) FindByDate(ctx context.Context, date time.Time) ([]model.Meeting, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + meetingColumns + ` FROM meetings m WHERE m.date = $1::date ORDER BY m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, date)
}

func (r *MeetingPostgres) FindByDateBetween(ctx context.Context, dr repository.DateRange) ([]model.Meeting, error) {
	if err := repository.CheckStruct("meeting range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + meetingColumns + `
		FROM meetings m
		WHERE m.date BETWEEN $1::date AND $2::date
		ORDER BY m.date, m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, dr.From, dr.To)
}

func (r *MeetingPostgres) FindByProjectAndDateBetween(ctx context.Context, projectID int64, dr repository.DateRange) ([]model.Meeting, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	if err := repository.CheckStruct("meeting range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + meetingColumns + `
		FROM meetings m
		WHERE m.project_id = $1 AND m.date BETWEEN $2::date AND $3::date
		ORDER BY m.date, m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, projectID, dr.From, dr.To)
}

func (r *MeetingPostgres) FindUpcoming(ctx context.Context, projectID int64, today time.Time) ([]model.Meeting, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	if err := repository.Check("today", today, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + meetingColumns + `
		FROM meetings m
		WHERE m.project_id = $1 AND m.date >= $2::date
		ORDER BY m.date, m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, projectID, today)
}

func (r *MeetingPostgres) FindOverlapping(ctx context.Context, date time.Time, start, end model.TimeOfDay, excludeID int64) ([]model.Meeting, error) {
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("%w: end time %s is not after start time %s", repository.ErrInvalidArgument, end, start)
	}
	const q = `
		SELECT ` + meetingColumns + `
		FROM meetings m
		WHERE m.date = $1::date
		  AND m.start_time < $3::time
		  AND m.end_time > $2::time
		  AND m.id <> $4
		ORDER BY m.start_time, m.id`
	return queryAll(ctx, r.db, scanMeeting, q, date, start, end, excludeID)
}

const milestoneColumns = `ms.id, ms.name, ms.description, ms.date, ms.project_id`

// MilestonePostgres is a PostgreSQL implementation of repository.MilestoneRepository.
type MilestonePostgres struct {
	db *sql.DB
}

// NewMilestonePostgres creates a new MilestonePostgres repository.
func NewMilestonePostgres(db *sql.DB) *MilestonePostgres {
	return &MilestonePostgres{db: db}
}

var _ repository.MilestoneRepository = (*MilestonePostgres)(nil)

func scanMilestone(s rowScanner) (model.Milestone, error) {
	var ms model.Milestone
	err := s.Scan(&ms.ID, &ms.Name, &ms.Description, &ms.Date, &ms.ProjectID)
	return ms, err
}

func (r *MilestonePostgres) FindByID(ctx context.Context, id int64) (*model.Milestone, error) {
	const q = `SELECT ` + milestoneColumns + ` FROM milestones ms WHERE ms.id = $1`
	return queryOne(ctx, r.db, scanMilestone, q, id)
}

func (r *MilestonePostgres) FindAll(ctx context.Context) ([]model.Milestone, error) {
	const q = `SELECT ` + milestoneColumns + ` FROM milestones ms ORDER BY ms.id`
	return queryAll(ctx, r.db, scanMilestone, q)
}

func (r *MilestonePostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM milestones`)
}

func (r *MilestonePostgres) FindByProject(ctx context.Context, projectID int64) ([]model.Milestone, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + milestoneColumns + ` FROM milestones ms WHERE ms.project_id = $1 ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, projectID)
}

func (r *MilestonePostgres) FindByProjectAndDateBefore(ctx context.Context, projectID int64, date time.Time) ([]model.Milestone, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + milestoneColumns + `
		FROM milestones ms
		WHERE ms.project_id = $1 AND ms.date < $2::date
		ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, projectID, date)
}

func (r *MilestonePostgres) FindByProjectAndDateAfter(ctx context.Context, projectID int64, date time.Time) ([]model.Milestone, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	if err := repository.Check("date", date, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + milestoneColumns + `
		FROM milestones ms
		WHERE ms.project_id = $1 AND ms.date > $2::date
		ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, projectID, date)
}

func (r *MilestonePostgres) FindByDateBetween(ctx context.Context, dr repository.DateRange) ([]model.Milestone, error) {
	if err := repository.CheckStruct("milestone range", dr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + milestoneColumns + `
		FROM milestones ms
		WHERE ms.date BETWEEN $1::date AND $2::date
		ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, dr.From, dr.To)
}

func (r *MilestonePostgres) FindUpcoming(ctx context.Context, projectID int64, today time.Time, days int) ([]model.Milestone, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	if err := repository.Check("today", today, "required"); err != nil {
		return nil, err
	}
	if err := checkDays(days); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + milestoneColumns + `
		FROM milestones ms
		WHERE ms.project_id = $1
		  AND ms.date BETWEEN $2::date AND $2::date + $3::int
		ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, projectID, today, days)
}

func (r *MilestonePostgres) FindByNameContaining(ctx context.Context, name string) ([]model.Milestone, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + milestoneColumns + ` FROM milestones ms WHERE ms.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY ms.date, ms.id`
	return queryAll(ctx, r.db, scanMilestone, q, escapeLike(name))
}

func (r *MilestonePostgres) CountByProject(ctx context.Context, projectID int64) (int64, error) {
	if err := checkID("project id", projectID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM milestones WHERE project_id = $1`, projectID)
}
