// Package postgres implements the repository contracts on PostgreSQL.
//
// Every query is a fixed SQL string with $n placeholders; caller input is only
// ever bound as a parameter. Implementations hold a *sql.DB and no other state,
// so they are safe for concurrent use.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"projecttracker/internal/repository"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryAll runs q and scans every row. It returns an empty, non-nil slice when nothing matches.
func queryAll[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), q string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// queryOne scans the first row of q. Absence is not an error: it returns nil, nil.
func queryOne[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), q string, args ...any) (*T, error) {
	item, err := scan(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// insertOne runs an INSERT ... RETURNING statement and maps constraint violations.
func insertOne[T any](ctx context.Context, db *sql.DB, scan func(rowScanner) (T, error), q string, args ...any) (*T, error) {
	item, err := scan(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &item, nil
}

func queryCount(ctx context.Context, db *sql.DB, q string, args ...any) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func queryExists(ctx context.Context, db *sql.DB, q string, args ...any) (bool, error) {
	var ok bool
	if err := db.QueryRowContext(ctx, q, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func mapWriteError(err error) error {
	if pe, ok := AsPgError(err); ok {
		switch pe.Code {
		case UniqueViolationCode:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pe.ConstraintName)
		case ForeignKeyViolationCode, CheckViolationCode, NotNullViolationCode:
			return fmt.Errorf("%w: %s", repository.ErrInvalidArgument, pe.Message)
		}
	}
	return err
}

func checkID(field string, id int64) error {
	return repository.Check(field, id, "gt=0")
}

func checkText(field, v string) error {
	return repository.Check(field, v, "required")
}

// likeEscaper escapes LIKE metacharacters for patterns declared with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside '%' || $n || '%'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func checkDays(days int) error {
	return repository.Check("days", days, "gte=0")
}

// Repositories bundles one accessor per entity over a shared pool.
type Repositories struct {
	Projects    repository.ProjectRepository
	Meetings    repository.MeetingRepository
	Milestones  repository.MilestoneRepository
	Tasks       repository.TaskRepository
	Subteams    repository.SubteamRepository
	Subsystems  repository.SubsystemRepository
	TeamMembers repository.TeamMemberRepository
	Components  repository.ComponentRepository
	Parts       repository.PartRepository
	FrcMatches  repository.FrcMatchRepository
	FrcRankings repository.FrcTeamRankingRepository
	Templates   repository.ProjectTemplateRepository
	Users       repository.UserRepository
}

func NewRepositories(db *sql.DB) Repositories {
	return Repositories{
		Projects:    NewProjectPostgres(db),
		Meetings:    NewMeetingPostgres(db),
		Milestones:  NewMilestonePostgres(db),
		Tasks:       NewTaskPostgres(db),
		Subteams:    NewSubteamPostgres(db),
		Subsystems:  NewSubsystemPostgres(db),
		TeamMembers: NewTeamMemberPostgres(db),
		Components:  NewComponentPostgres(db),
		Parts:       NewPartPostgres(db),
		FrcMatches:  NewFrcMatchPostgres(db),
		FrcRankings: NewFrcTeamRankingPostgres(db),
		Templates:   NewProjectTemplatePostgres(db),
		Users:       NewUserPostgres(db),
	}
}
