package migration

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMigrated_SkipsWhenSentinelExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_regclass($1) IS NOT NULL")).
		WithArgs(sentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_AppliesEveryStep(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_regclass($1) IS NOT NULL")).
		WithArgs(sentinelTable).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	for _, s := range steps {
		mock.ExpectExec(regexp.QuoteMeta(s.SQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureMigrated_StopsOnFailedStep(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_regclass($1) IS NOT NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(regexp.QuoteMeta(steps[0].SQL)).WillReturnError(errors.New("permission denied"))

	err = EnsureMigrated(context.Background(), db, zerolog.Nop(), "localhost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), steps[0].Name)
}

func TestSteps_SentinelIsCreatedLast(t *testing.T) {
	last := steps[len(steps)-1]
	assert.True(t, strings.Contains(last.SQL, "CREATE TABLE IF NOT EXISTS users"))
}

func TestSteps_CaseInsensitiveUniqueness(t *testing.T) {
	var all strings.Builder
	for _, s := range steps {
		all.WriteString(s.SQL)
	}
	for _, idx := range []string{
		"parts (lower(part_number))",
		"components (lower(part_number))",
		"team_members (lower(username))",
		"team_members (lower(email))",
		"users (lower(username))",
		"users (lower(email))",
		"subsystems (lower(name))",
		"subteams (lower(name))",
	} {
		assert.Contains(t, all.String(), idx)
	}
}
