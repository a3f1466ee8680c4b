package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

var (
	subteamCols   = []string{"id", "name", "color_code", "specialties"}
	subsystemCols = []string{"id", "name", "description", "status", "subteam_id", "responsible_member_id"}
	memberCols    = []string{"id", "username", "first_name", "last_name", "email", "phone", "skills", "is_leader", "subteam_id"}
)

func TestSubteamPostgres_FindByNameIgnoreCase(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM subteams st WHERE lower\(st.name\) = lower`).
		WithArgs("MECHANICAL").
		WillReturnRows(sqlmock.NewRows(subteamCols).AddRow(1, "Mechanical", "#ff0000", "CAD, machining"))

	got, err := NewSubteamPostgres(db).FindByNameIgnoreCase(context.Background(), "MECHANICAL")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Mechanical", got.Name)
}

func TestSubteamPostgres_Create(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO subteams").
		WithArgs("Mechanical", "", "").
		WillReturnError(&pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "subteams_name_lower_key"})

	_, err := NewSubteamPostgres(db).Create(context.Background(), &model.Subteam{Name: "Mechanical"})

	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestSubteamPostgres_FindByTeamMember(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`JOIN team_members tm ON tm.subteam_id = st.id WHERE tm.id =`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(subteamCols))

	got, err := NewSubteamPostgres(db).FindByTeamMember(context.Background(), 9)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSubsystemPostgres_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO subsystems").
			WithArgs("Drivetrain", "", "NOT_STARTED", int64(1), nil).
			WillReturnRows(sqlmock.NewRows(subsystemCols).AddRow(4, "Drivetrain", "", "NOT_STARTED", 1, nil))

		got, err := NewSubsystemPostgres(db).Create(ctx, &model.Subsystem{
			Name: "Drivetrain", Status: model.SubsystemStatusNotStarted, SubteamID: 1,
		})

		require.NoError(t, err)
		assert.Nil(t, got.ResponsibleMemberID)
	})

	t.Run("unknown subteam", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO subsystems").
			WillReturnError(&pgconn.PgError{Code: ForeignKeyViolationCode, Message: "subteam_id not present"})

		_, err := NewSubsystemPostgres(db).Create(ctx, &model.Subsystem{
			Name: "Intake", Status: model.SubsystemStatusNotStarted, SubteamID: 99,
		})

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})
}

func TestSubsystemPostgres_FindWithoutResponsibleMember(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`WHERE ss.responsible_member_id IS NULL`).
		WillReturnRows(sqlmock.NewRows(subsystemCols).AddRow(4, "Drivetrain", "", "TESTING", 1, nil))

	got, err := NewSubsystemPostgres(db).FindWithoutResponsibleMember(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.SubsystemStatusTesting, got[0].Status)
}

func TestTeamMemberPostgres_FindByProject(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`FROM team_members tm WHERE EXISTS \(\s*SELECT 1 FROM task_assignments ta JOIN tasks t`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(memberCols).
			AddRow(5, "jdoe", "Jane", "Doe", "jane@example.com", "", "CAD", true, 1).
			AddRow(6, "rroe", "Rick", "Roe", "rick@example.com", "", "", false, nil))

	got, err := NewTeamMemberPostgres(db).FindByProject(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Leader)
	assert.Equal(t, int64(1), *got[0].SubteamID)
	assert.Nil(t, got[1].SubteamID)
}

func TestTeamMemberPostgres_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed email", func(t *testing.T) {
		db, _ := newMock(t)

		_, err := NewTeamMemberPostgres(db).Create(ctx, &model.TeamMember{Username: "jdoe", Email: "jane"})

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})

	t.Run("email taken", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery("INSERT INTO team_members").
			WillReturnError(&pgconn.PgError{Code: UniqueViolationCode, ConstraintName: "team_members_email_lower_key"})

		_, err := NewTeamMemberPostgres(db).Create(ctx, &model.TeamMember{Username: "jdoe", Email: "jane@example.com"})

		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestTeamMemberPostgres_CountBySubteam(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM team_members WHERE subteam_id =`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := NewTeamMemberPostgres(db).CountBySubteam(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
