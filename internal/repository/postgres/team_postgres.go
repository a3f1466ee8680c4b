package postgres

import (
	"context"
	"database/sql"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const subteamColumns = `st.id, st.name, st.color_code, st.specialties`

// SubteamPostgres is a PostgreSQL implementation of repository.SubteamRepository.
type SubteamPostgres struct {
	db *sql.DB
}

// NewSubteamPostgres creates a new SubteamPostgres repository.
func NewSubteamPostgres(db *sql.DB) *SubteamPostgres {
	return &SubteamPostgres{db: db}
}

var _ repository.SubteamRepository = (*SubteamPostgres)(nil)

func scanSubteam(s rowScanner) (model.Subteam, error) {
	var st model.Subteam
	err := s.Scan(&st.ID, &st.Name, &st.ColorCode, &st.Specialties)
	return st, err
}

func (r *SubteamPostgres) FindByID(ctx context.Context, id int64) (*model.Subteam, error) {
	const q = `SELECT ` + subteamColumns + ` FROM subteams st WHERE st.id = $1`
	return queryOne(ctx, r.db, scanSubteam, q, id)
}

func (r *SubteamPostgres) FindAll(ctx context.Context) ([]model.Subteam, error) {
	const q = `SELECT ` + subteamColumns + ` FROM subteams st ORDER BY st.id`
	return queryAll(ctx, r.db, scanSubteam, q)
}

func (r *SubteamPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM subteams`)
}

func (r *SubteamPostgres) Create(ctx context.Context, s *model.Subteam) (*model.Subteam, error) {
	if err := checkText("name", s.Name); err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO subteams AS st (name, color_code, specialties)
		VALUES ($1, $2, $3)
		RETURNING ` + subteamColumns
	return insertOne(ctx, r.db, scanSubteam, q, s.Name, s.ColorCode, s.Specialties)
}

func (r *SubteamPostgres) FindByName(ctx context.Context, name string) (*model.Subteam, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subteamColumns + ` FROM subteams st WHERE st.name = $1`
	return queryOne(ctx, r.db, scanSubteam, q, name)
}

func (r *SubteamPostgres) FindByNameIgnoreCase(ctx context.Context, name string) (*model.Subteam, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subteamColumns + ` FROM subteams st WHERE lower(st.name) = lower($1)`
	return queryOne(ctx, r.db, scanSubteam, q, name)
}

func (r *SubteamPostgres) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	if err := checkText("name", name); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM subteams WHERE lower(name) = lower($1))`, name)
}

func (r *SubteamPostgres) FindAllOrderByName(ctx context.Context) ([]model.Subteam, error) {
	const q = `SELECT ` + subteamColumns + ` FROM subteams st ORDER BY st.name, st.id`
	return queryAll(ctx, r.db, scanSubteam, q)
}

func (r *SubteamPostgres) FindByTeamMember(ctx context.Context, memberID int64) (*model.Subteam, error) {
	if err := checkID("member id", memberID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + subteamColumns + `
		FROM subteams st
		JOIN team_members tm ON tm.subteam_id = st.id
		WHERE tm.id = $1`
	return queryOne(ctx, r.db, scanSubteam, q, memberID)
}

func (r *SubteamPostgres) CountMembers(ctx context.Context, subteamID int64) (int64, error) {
	if err := checkID("subteam id", subteamID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM team_members WHERE subteam_id = $1`, subteamID)
}

const subsystemColumns = `ss.id, ss.name, ss.description, ss.status, ss.subteam_id, ss.responsible_member_id`

// SubsystemPostgres is a PostgreSQL implementation of repository.SubsystemRepository.
type SubsystemPostgres struct {
	db *sql.DB
}

// NewSubsystemPostgres creates a new SubsystemPostgres repository.
func NewSubsystemPostgres(db *sql.DB) *SubsystemPostgres {
	return &SubsystemPostgres{db: db}
}

var _ repository.SubsystemRepository = (*SubsystemPostgres)(nil)

func scanSubsystem(s rowScanner) (model.Subsystem, error) {
	var ss model.Subsystem
	err := s.Scan(
		&ss.ID,
		&ss.Name,
		&ss.Description,
		&ss.Status,
		&ss.SubteamID,
		&ss.ResponsibleMemberID,
	)
	return ss, err
}

func (r *SubsystemPostgres) FindByID(ctx context.Context, id int64) (*model.Subsystem, error) {
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.id = $1`
	return queryOne(ctx, r.db, scanSubsystem, q, id)
}

func (r *SubsystemPostgres) FindAll(ctx context.Context) ([]model.Subsystem, error) {
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss ORDER BY ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q)
}

func (r *SubsystemPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM subsystems`)
}

func (r *SubsystemPostgres) Create(ctx context.Context, s *model.Subsystem) (*model.Subsystem, error) {
	if err := checkText("name", s.Name); err != nil {
		return nil, err
	}
	if err := repository.Check("status", s.Status, "enum"); err != nil {
		return nil, err
	}
	if err := checkID("subteam id", s.SubteamID); err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO subsystems AS ss (name, description, status, subteam_id, responsible_member_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + subsystemColumns
	return insertOne(ctx, r.db, scanSubsystem, q,
		s.Name,
		s.Description,
		string(s.Status),
		s.SubteamID,
		s.ResponsibleMemberID,
	)
}

func (r *SubsystemPostgres) FindByName(ctx context.Context, name string) (*model.Subsystem, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.name = $1`
	return queryOne(ctx, r.db, scanSubsystem, q, name)
}

func (r *SubsystemPostgres) FindByNameIgnoreCase(ctx context.Context, name string) (*model.Subsystem, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE lower(ss.name) = lower($1)`
	return queryOne(ctx, r.db, scanSubsystem, q, name)
}

func (r *SubsystemPostgres) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	if err := checkText("name", name); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM subsystems WHERE lower(name) = lower($1))`, name)
}

func (r *SubsystemPostgres) FindByStatus(ctx context.Context, status model.SubsystemStatus) ([]model.Subsystem, error) {
	if err := repository.Check("status", status, "enum"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.status = $1 ORDER BY ss.name, ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q, string(status))
}

func (r *SubsystemPostgres) CountByStatus(ctx context.Context, status model.SubsystemStatus) (int64, error) {
	if err := repository.Check("status", status, "enum"); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM subsystems WHERE status = $1`, string(status))
}

func (r *SubsystemPostgres) FindBySubteam(ctx context.Context, subteamID int64) ([]model.Subsystem, error) {
	if err := checkID("subteam id", subteamID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.subteam_id = $1 ORDER BY ss.name, ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q, subteamID)
}

func (r *SubsystemPostgres) FindByResponsibleMember(ctx context.Context, memberID int64) ([]model.Subsystem, error) {
	if err := checkID("member id", memberID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.responsible_member_id = $1 ORDER BY ss.name, ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q, memberID)
}

func (r *SubsystemPostgres) FindWithoutResponsibleMember(ctx context.Context) ([]model.Subsystem, error) {
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss WHERE ss.responsible_member_id IS NULL ORDER BY ss.name, ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q)
}

func (r *SubsystemPostgres) FindAllOrderByName(ctx context.Context) ([]model.Subsystem, error) {
	const q = `SELECT ` + subsystemColumns + ` FROM subsystems ss ORDER BY ss.name, ss.id`
	return queryAll(ctx, r.db, scanSubsystem, q)
}

const memberColumns = `tm.id, tm.username, tm.first_name, tm.last_name, tm.email, tm.phone, tm.skills, tm.is_leader, tm.subteam_id`

// TeamMemberPostgres is a PostgreSQL implementation of repository.TeamMemberRepository.
type TeamMemberPostgres struct {
	db *sql.DB
}

// NewTeamMemberPostgres creates a new TeamMemberPostgres repository.
func NewTeamMemberPostgres(db *sql.DB) *TeamMemberPostgres {
	return &TeamMemberPostgres{db: db}
}

var _ repository.TeamMemberRepository = (*TeamMemberPostgres)(nil)

func scanMember(s rowScanner) (model.TeamMember, error) {
	var m model.TeamMember
	err := s.Scan(
		&m.ID,
		&m.Username,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.Skills,
		&m.Leader,
		&m.SubteamID,
	)
	return m, err
}

func (r *TeamMemberPostgres) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.id = $1`
	return queryOne(ctx, r.db, scanMember, q, id)
}

func (r *TeamMemberPostgres) FindAll(ctx context.Context) ([]model.TeamMember, error) {
	const q = `SELECT ` + memberColumns + ` FROM team_members tm ORDER BY tm.id`
	return queryAll(ctx, r.db, scanMember, q)
}

func (r *TeamMemberPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM team_members`)
}

func (r *TeamMemberPostgres) Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error) {
	if err := checkText("username", m.Username); err != nil {
		return nil, err
	}
	if err := repository.Check("email", m.Email, "required,email"); err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO team_members AS tm (username, first_name, last_name, email, phone, skills, is_leader, subteam_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + memberColumns
	return insertOne(ctx, r.db, scanMember, q,
		m.Username,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Phone,
		m.Skills,
		m.Leader,
		m.SubteamID,
	)
}

func (r *TeamMemberPostgres) FindByUsername(ctx context.Context, username string) (*model.TeamMember, error) {
	if err := checkText("username", username); err != nil {
		return nil, err
	}
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.username = $1`
	return queryOne(ctx, r.db, scanMember, q, username)
}

func (r *TeamMemberPostgres) FindByUsernameIgnoreCase(ctx context.Context, username string) (*model.TeamMember, error) {
	if err := checkText("username", username); err != nil {
		return nil, err
	}
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE lower(tm.username) = lower($1)`
	return queryOne(ctx, r.db, scanMember, q, username)
}

func (r *TeamMemberPostgres) FindByEmailIgnoreCase(ctx context.Context, email string) (*model.TeamMember, error) {
	if err := checkText("email", email); err != nil {
		return nil, err
	}
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE lower(tm.email) = lower($1)`
	return queryOne(ctx, r.db, scanMember, q, email)
}

func (r *TeamMemberPostgres) ExistsByUsernameIgnoreCase(ctx context.Context, username string) (bool, error) {
	if err := checkText("username", username); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM team_members WHERE lower(username) = lower($1))`, username)
}

func (r *TeamMemberPostgres) ExistsByEmailIgnoreCase(ctx context.Context, email string) (bool, error) {
	if err := checkText("email", email); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM team_members WHERE lower(email) = lower($1))`, email)
}

func (r *TeamMemberPostgres) FindBySubteam(ctx context.Context, subteamID int64) ([]model.TeamMember, error) {
	if err := checkID("subteam id", subteamID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.subteam_id = $1 ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, subteamID)
}

func (r *TeamMemberPostgres) FindWithoutSubteam(ctx context.Context) ([]model.TeamMember, error) {
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.subteam_id IS NULL ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q)
}

func (r *TeamMemberPostgres) CountBySubteam(ctx context.Context, subteamID int64) (int64, error) {
	if err := checkID("subteam id", subteamID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM team_members WHERE subteam_id = $1`, subteamID)
}

func (r *TeamMemberPostgres) FindLeaders(ctx context.Context) ([]model.TeamMember, error) {
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.is_leader = TRUE ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q)
}

func (r *TeamMemberPostgres) FindLeadersBySubteam(ctx context.Context, subteamID int64) ([]model.TeamMember, error) {
	if err := checkID("subteam id", subteamID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + memberColumns + `
		FROM team_members tm
		WHERE tm.is_leader = TRUE AND tm.subteam_id = $1
		ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, subteamID)
}

func (r *TeamMemberPostgres) FindByNameContaining(ctx context.Context, name string) ([]model.TeamMember, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + memberColumns + `
		FROM team_members tm
		WHERE tm.first_name ILIKE '%' || $1 || '%' ESCAPE '\' OR tm.last_name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, escapeLike(name))
}

func (r *TeamMemberPostgres) FindBySkill(ctx context.Context, skill string) ([]model.TeamMember, error) {
	if err := checkText("skill", skill); err != nil {
		return nil, err
	}
	const q = `SELECT ` + memberColumns + ` FROM team_members tm WHERE tm.skills ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, escapeLike(skill))
}

func (r *TeamMemberPostgres) FindByTask(ctx context.Context, taskID int64) ([]model.TeamMember, error) {
	if err := checkID("task id", taskID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN task_assignments ta ON ta.team_member_id = tm.id
		WHERE ta.task_id = $1
		ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, taskID)
}

func (r *TeamMemberPostgres) FindByProject(ctx context.Context, projectID int64) ([]model.TeamMember, error) {
	if err := checkID("project id", projectID); err != nil {
		return nil, err
	}
	// A member on several of the project's tasks must appear once.
	const q = `
		SELECT ` + memberColumns + `
		FROM team_members tm
		WHERE EXISTS (
			SELECT 1
			FROM task_assignments ta
			JOIN tasks t ON t.id = ta.task_id
			WHERE ta.team_member_id = tm.id AND t.project_id = $1
		)
		ORDER BY tm.last_name, tm.first_name, tm.id`
	return queryAll(ctx, r.db, scanMember, q, projectID)
}
