package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

var templateCols = []string{"id", "name", "description", "subsystem_type", "difficulty", "estimated_days",
	"active", "parallel_development", "created_by", "created_at"}

func TestProjectTemplatePostgres_FindBySubsystemTypeAndDifficulty(t *testing.T) {
	ctx := context.Background()

	t.Run("only active templates", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(`WHERE pt.active = TRUE AND pt.subsystem_type = (.+) AND pt.difficulty =`).
			WithArgs("SHOOTER", "ADVANCED").
			WillReturnRows(sqlmock.NewRows(templateCols).
				AddRow(1, "Flywheel shooter", "", "SHOOTER", "ADVANCED", 21, true, false, "mentor", time.Now()))

		got, err := NewProjectTemplatePostgres(db).FindBySubsystemTypeAndDifficulty(ctx, model.SubsystemTypeShooter, model.DifficultyAdvanced)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.DifficultyAdvanced, got[0].Difficulty)
		assert.True(t, got[0].Active)
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		db, _ := newMock(t)

		_, err := NewProjectTemplatePostgres(db).FindBySubsystemTypeAndDifficulty(ctx, model.SubsystemTypeShooter, "IMPOSSIBLE")

		assert.ErrorIs(t, err, repository.ErrInvalidArgument)
	})
}

func TestProjectTemplatePostgres_CountActive(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM project_templates WHERE active = TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewProjectTemplatePostgres(db).CountActive(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestProjectTemplatePostgres_ExistsByNameIgnoreCase(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM project_templates WHERE lower\(name\) = lower`).
		WithArgs("swerve drive").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := NewProjectTemplatePostgres(db).ExistsByNameIgnoreCase(context.Background(), "swerve drive")

	require.NoError(t, err)
	assert.False(t, ok)
}
