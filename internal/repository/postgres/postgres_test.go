package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecttracker/internal/repository"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "parts_part_number_lower_key"}, repository.ErrDuplicate},
		{"foreign key", &pgconn.PgError{Code: ForeignKeyViolationCode}, repository.ErrInvalidArgument},
		{"check", &pgconn.PgError{Code: CheckViolationCode}, repository.ErrInvalidArgument},
		{"not null", &pgconn.PgError{Code: NotNullViolationCode}, repository.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapWriteError(tt.err), tt.want)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")
		assert.Same(t, boom, mapWriteError(boom))
	})
}

func TestQueryAll_EmptyIsNonNil(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM subteams st").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color_code", "specialties"}))

	items, err := NewSubteamPostgres(db).FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestQueryAll_StoreErrorPropagates(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery("SELECT (.+) FROM projects p").WillReturnError(boom)

	items, err := NewProjectPostgres(db).FindAll(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, items)
}

func TestAsPgError(t *testing.T) {
	pe, ok := AsPgError(errors.Join(errors.New("insert"), &pgconn.PgError{Code: UniqueViolationCode}))
	require.True(t, ok)
	assert.Equal(t, UniqueViolationCode, pe.Code)

	_, ok = AsPgError(sql.ErrNoRows)
	assert.False(t, ok)
}

func TestNewRepositories_SharePool(t *testing.T) {
	db, _ := newMock(t)

	r := NewRepositories(db)

	assert.Same(t, db, r.Parts.(*PartPostgres).db)
	assert.Same(t, db, r.Users.(*UserPostgres).db)
	assert.NotNil(t, r.FrcRankings)
	assert.NotNil(t, r.Templates)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"falcon", "falcon"},
		{"AM_0100", `AM\_0100`},
		{"100%", `100\%`},
		{`C:\parts`, `C:\\parts`},
		{`%_\`, `\%\_\\`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestContainingLookups_BindLiteralText(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		query string
		call  func(db *sql.DB, text string) error
	}{
		{"project name", `FROM projects p WHERE p.name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewProjectPostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
		{"milestone name", `FROM milestones ms WHERE ms.name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewMilestonePostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
		{"task title", `FROM tasks t WHERE t.title ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewTaskPostgres(db).FindByTitleContaining(ctx, s)
			return err
		}},
		{"component name", `FROM components c WHERE c.name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewComponentPostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
		{"part name", `FROM parts p WHERE p.name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewPartPostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
		{"part search", `OR p.part_number ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewPartPostgres(db).Search(ctx, s)
			return err
		}},
		{"member name", `WHERE tm.first_name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewTeamMemberPostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
		{"member skill", `WHERE tm.skills ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewTeamMemberPostgres(db).FindBySkill(ctx, s)
			return err
		}},
		{"template name", `FROM project_templates pt WHERE pt.name ILIKE`, func(db *sql.DB, s string) error {
			_, err := NewProjectTemplatePostgres(db).FindByNameContaining(ctx, s)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectQuery(tt.query + `(.+)ESCAPE`).
				WithArgs(`AM\_01\%`).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			require.NoError(t, tt.call(db, "AM_01%"))
		})
	}
}
