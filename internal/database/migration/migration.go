package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step; its presence means the schema is complete.
const sentinelTable = "public.users"

var steps = []migrationStep{
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id            BIGSERIAL PRIMARY KEY,
  name          TEXT      NOT NULL,
  description   TEXT      NOT NULL DEFAULT '',
  start_date    DATE      NOT NULL,
  goal_end_date DATE      NOT NULL,
  hard_deadline DATE      NOT NULL,
  CHECK (goal_end_date >= start_date),
  CHECK (hard_deadline >= start_date)
);`,
	},
	{
		Name: "create_table_meetings",
		SQL: `CREATE TABLE IF NOT EXISTS meetings (
  id         BIGSERIAL PRIMARY KEY,
  date       DATE      NOT NULL,
  start_time TIME      NOT NULL,
  end_time   TIME      NOT NULL,
  project_id BIGINT    NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  notes      TEXT      NOT NULL DEFAULT '',
  CHECK (end_time > start_time)
);`,
	},
	{
		Name: "create_index_meetings_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_meetings_date ON meetings (date, start_time);`,
	},
	{
		Name: "create_table_milestones",
		SQL: `CREATE TABLE IF NOT EXISTS milestones (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT      NOT NULL,
  description TEXT      NOT NULL DEFAULT '',
  date        DATE      NOT NULL,
  project_id  BIGINT    NOT NULL REFERENCES projects (id) ON DELETE CASCADE
);`,
	},
	{
		Name: "create_table_subteams",
		SQL: `CREATE TABLE IF NOT EXISTS subteams (
  id          BIGSERIAL PRIMARY KEY,
  name        TEXT      NOT NULL,
  color_code  TEXT      NOT NULL DEFAULT '',
  specialties TEXT      NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS subteams_name_lower_key ON subteams (lower(name));`,
	},
	{
		Name: "create_table_team_members",
		SQL: `CREATE TABLE IF NOT EXISTS team_members (
  id         BIGSERIAL PRIMARY KEY,
  username   TEXT      NOT NULL,
  first_name TEXT      NOT NULL DEFAULT '',
  last_name  TEXT      NOT NULL DEFAULT '',
  email      TEXT      NOT NULL,
  phone      TEXT      NOT NULL DEFAULT '',
  skills     TEXT      NOT NULL DEFAULT '',
  is_leader  BOOLEAN   NOT NULL DEFAULT FALSE,
  subteam_id BIGINT    REFERENCES subteams (id) ON DELETE SET NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS team_members_username_lower_key ON team_members (lower(username));
CREATE UNIQUE INDEX IF NOT EXISTS team_members_email_lower_key ON team_members (lower(email));`,
	},
	{
		Name: "create_table_subsystems",
		SQL: `CREATE TABLE IF NOT EXISTS subsystems (
  id                    BIGSERIAL PRIMARY KEY,
  name                  TEXT      NOT NULL,
  description           TEXT      NOT NULL DEFAULT '',
  status                TEXT      NOT NULL DEFAULT 'NOT_STARTED'
    CHECK (status IN ('NOT_STARTED', 'IN_PROGRESS', 'COMPLETED', 'TESTING', 'ISSUES')),
  subteam_id            BIGINT    NOT NULL REFERENCES subteams (id),
  responsible_member_id BIGINT    REFERENCES team_members (id) ON DELETE SET NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS subsystems_name_lower_key ON subsystems (lower(name));`,
	},
	{
		Name: "create_table_tasks",
		SQL: `CREATE TABLE IF NOT EXISTS tasks (
  id                BIGSERIAL PRIMARY KEY,
  title             TEXT      NOT NULL,
  description       TEXT      NOT NULL DEFAULT '',
  estimated_minutes INTEGER   NOT NULL DEFAULT 0 CHECK (estimated_minutes >= 0),
  actual_minutes    INTEGER   CHECK (actual_minutes >= 0),
  progress          INTEGER   NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
  start_date        DATE      NOT NULL,
  end_date          DATE,
  priority          TEXT      NOT NULL DEFAULT 'MEDIUM'
    CHECK (priority IN ('LOW', 'MEDIUM', 'HIGH', 'CRITICAL')),
  completed         BOOLEAN   NOT NULL DEFAULT FALSE,
  project_id        BIGINT    NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  subsystem_id      BIGINT    NOT NULL REFERENCES subsystems (id)
);
CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks (project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_open_end_date ON tasks (end_date) WHERE completed = FALSE;`,
	},
	{
		Name: "create_table_task_assignments",
		SQL: `CREATE TABLE IF NOT EXISTS task_assignments (
  task_id        BIGINT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
  team_member_id BIGINT NOT NULL REFERENCES team_members (id) ON DELETE CASCADE,
  PRIMARY KEY (task_id, team_member_id)
);
CREATE INDEX IF NOT EXISTS idx_task_assignments_member ON task_assignments (team_member_id);`,
	},
	{
		Name: "create_table_task_dependencies",
		SQL: `CREATE TABLE IF NOT EXISTS task_dependencies (
  task_id            BIGINT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
  depends_on_task_id BIGINT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
  PRIMARY KEY (task_id, depends_on_task_id),
  CHECK (task_id <> depends_on_task_id)
);`,
	},
	{
		Name: "create_table_components",
		SQL: `CREATE TABLE IF NOT EXISTS components (
  id                BIGSERIAL PRIMARY KEY,
  part_number       TEXT      NOT NULL,
  name              TEXT      NOT NULL DEFAULT '',
  description       TEXT      NOT NULL DEFAULT '',
  expected_delivery DATE,
  actual_delivery   DATE,
  is_delivered      BOOLEAN   NOT NULL DEFAULT FALSE
);
CREATE UNIQUE INDEX IF NOT EXISTS components_part_number_lower_key ON components (lower(part_number));`,
	},
	{
		Name: "create_table_task_components",
		SQL: `CREATE TABLE IF NOT EXISTS task_components (
  task_id      BIGINT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
  component_id BIGINT NOT NULL REFERENCES components (id) ON DELETE CASCADE,
  PRIMARY KEY (task_id, component_id)
);`,
	},
	{
		Name: "create_table_parts",
		SQL: `CREATE TABLE IF NOT EXISTS parts (
  id                BIGSERIAL     PRIMARY KEY,
  part_number       TEXT          NOT NULL,
  name              TEXT          NOT NULL DEFAULT '',
  description       TEXT          NOT NULL DEFAULT '',
  category          TEXT          NOT NULL
    CHECK (category IN ('ELECTRONICS', 'MECHANICAL', 'PNEUMATIC', 'FASTENER', 'RAW_MATERIAL', 'TOOL', 'OTHER')),
  quantity_on_hand  INTEGER       NOT NULL DEFAULT 0,
  minimum_stock     INTEGER       NOT NULL DEFAULT 0,
  safety_stock      INTEGER       NOT NULL DEFAULT 0,
  unit_cost         NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (unit_cost >= 0),
  consumable        BOOLEAN       NOT NULL DEFAULT FALSE,
  vendor            TEXT          NOT NULL DEFAULT '',
  location          TEXT          NOT NULL DEFAULT '',
  last_used_date    DATE,
  last_restock_date DATE
);
CREATE UNIQUE INDEX IF NOT EXISTS parts_part_number_lower_key ON parts (lower(part_number));`,
	},
	{
		Name: "create_table_frc_events",
		SQL: `CREATE TABLE IF NOT EXISTS frc_events (
  id         BIGSERIAL PRIMARY KEY,
  event_code TEXT      NOT NULL UNIQUE,
  name       TEXT      NOT NULL DEFAULT '',
  season     INTEGER   NOT NULL,
  start_date DATE      NOT NULL,
  end_date   DATE      NOT NULL
);`,
	},
	{
		Name: "create_table_frc_matches",
		SQL: `CREATE TABLE IF NOT EXISTS frc_matches (
  id                BIGSERIAL   PRIMARY KEY,
  event_id          BIGINT      NOT NULL REFERENCES frc_events (id) ON DELETE CASCADE,
  match_number      INTEGER     NOT NULL,
  competition_level TEXT        NOT NULL
    CHECK (competition_level IN ('PRACTICE', 'QUALIFICATION', 'QUARTERFINAL', 'SEMIFINAL', 'FINAL', 'PLAYOFF')),
  scheduled_time    TIMESTAMPTZ NOT NULL,
  actual_time       TIMESTAMPTZ,
  red_alliance      BIGINT[]    NOT NULL DEFAULT '{}',
  blue_alliance     BIGINT[]    NOT NULL DEFAULT '{}',
  red_score         INTEGER,
  blue_score        INTEGER,
  UNIQUE (event_id, competition_level, match_number)
);`,
	},
	{
		Name: "create_table_frc_team_rankings",
		SQL: `CREATE TABLE IF NOT EXISTS frc_team_rankings (
  id            BIGSERIAL        PRIMARY KEY,
  event_id      BIGINT           NOT NULL REFERENCES frc_events (id) ON DELETE CASCADE,
  team_number   INTEGER          NOT NULL,
  rank          INTEGER          NOT NULL CHECK (rank > 0),
  season        INTEGER          NOT NULL,
  wins          INTEGER          NOT NULL DEFAULT 0,
  losses        INTEGER          NOT NULL DEFAULT 0,
  ties          INTEGER          NOT NULL DEFAULT 0,
  ranking_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  last_updated  TIMESTAMPTZ      NOT NULL DEFAULT now(),
  UNIQUE (event_id, team_number)
);`,
	},
	{
		Name: "create_table_project_templates",
		SQL: `CREATE TABLE IF NOT EXISTS project_templates (
  id                   BIGSERIAL   PRIMARY KEY,
  name                 TEXT        NOT NULL,
  description          TEXT        NOT NULL DEFAULT '',
  subsystem_type       TEXT        NOT NULL
    CHECK (subsystem_type IN ('DRIVETRAIN', 'INTAKE', 'SHOOTER', 'CLIMBER', 'ELEVATOR', 'ARM', 'VISION', 'ELECTRICAL', 'PROGRAMMING', 'OTHER')),
  difficulty           TEXT        NOT NULL
    CHECK (difficulty IN ('BEGINNER', 'INTERMEDIATE', 'ADVANCED', 'EXPERT')),
  estimated_days       INTEGER     NOT NULL DEFAULT 0,
  active               BOOLEAN     NOT NULL DEFAULT TRUE,
  parallel_development BOOLEAN     NOT NULL DEFAULT FALSE,
  created_by           TEXT        NOT NULL DEFAULT '',
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS project_templates_name_lower_key ON project_templates (lower(name));`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id                        BIGSERIAL   PRIMARY KEY,
  username                  TEXT        NOT NULL,
  email                     TEXT        NOT NULL,
  password_hash             TEXT        NOT NULL DEFAULT '',
  first_name                TEXT        NOT NULL DEFAULT '',
  last_name                 TEXT        NOT NULL DEFAULT '',
  role                      TEXT        NOT NULL CHECK (role IN ('STUDENT', 'MENTOR', 'ADMIN', 'PARENT')),
  enabled                   BOOLEAN     NOT NULL DEFAULT TRUE,
  age                       INTEGER     CHECK (age >= 0),
  parent_email              TEXT,
  parental_consent_date     TIMESTAMPTZ,
  requires_parental_consent BOOLEAN,
  parental_consent_token    TEXT        UNIQUE,
  mfa_enabled               BOOLEAN     NOT NULL DEFAULT FALSE,
  account_non_locked        BOOLEAN     NOT NULL DEFAULT TRUE,
  credentials_non_expired   BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
  last_login                TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_key ON users (lower(username));
CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_key ON users (lower(email));`,
	},
}

// EnsureMigrated checks for the sentinel table and applies every step when it is missing.
// Steps are idempotent, so a run interrupted half way is completed by the next one.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With().Str("component", "database").Str("db_host", dbHost).Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Msg("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Dur("duration", time.Since(start)).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Dur("duration", time.Since(start)).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Int("steps", len(steps)).Msg("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Dur("duration", time.Since(start)).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Dur("step_duration", time.Since(stepStart)).
			Msg("step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Dur("duration", time.Since(start)).
		Msg("schema migrated")

	return nil
}
