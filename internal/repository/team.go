package repository

import (
	"context"

	"projecttracker/internal/model"
)

// SubteamRepository defines data access for subteams.
type SubteamRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Subteam, error)
	FindAll(ctx context.Context) ([]model.Subteam, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a subteam. A name already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, s *model.Subteam) (*model.Subteam, error)

	FindByName(ctx context.Context, name string) (*model.Subteam, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*model.Subteam, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	FindAllOrderByName(ctx context.Context) ([]model.Subteam, error)
	// FindByTeamMember returns the subteam the member belongs to, or nil.
	FindByTeamMember(ctx context.Context, memberID int64) (*model.Subteam, error)
	CountMembers(ctx context.Context, subteamID int64) (int64, error)
}

// SubsystemRepository defines data access for robot subsystems.
type SubsystemRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Subsystem, error)
	FindAll(ctx context.Context) ([]model.Subsystem, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a subsystem. A name already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, s *model.Subsystem) (*model.Subsystem, error)

	FindByName(ctx context.Context, name string) (*model.Subsystem, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*model.Subsystem, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	FindByStatus(ctx context.Context, status model.SubsystemStatus) ([]model.Subsystem, error)
	CountByStatus(ctx context.Context, status model.SubsystemStatus) (int64, error)
	FindBySubteam(ctx context.Context, subteamID int64) ([]model.Subsystem, error)
	FindByResponsibleMember(ctx context.Context, memberID int64) ([]model.Subsystem, error)
	FindWithoutResponsibleMember(ctx context.Context) ([]model.Subsystem, error)
	FindAllOrderByName(ctx context.Context) ([]model.Subsystem, error)
}

// TeamMemberRepository defines data access for the team roster.
type TeamMemberRepository interface {
	FindByID(ctx context.Context, id int64) (*model.TeamMember, error)
	FindAll(ctx context.Context) ([]model.TeamMember, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a member. Username or email already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, m *model.TeamMember) (*model.TeamMember, error)

	FindByUsername(ctx context.Context, username string) (*model.TeamMember, error)
	FindByUsernameIgnoreCase(ctx context.Context, username string) (*model.TeamMember, error)
	FindByEmailIgnoreCase(ctx context.Context, email string) (*model.TeamMember, error)
	ExistsByUsernameIgnoreCase(ctx context.Context, username string) (bool, error)
	ExistsByEmailIgnoreCase(ctx context.Context, email string) (bool, error)

	FindBySubteam(ctx context.Context, subteamID int64) ([]model.TeamMember, error)
	FindWithoutSubteam(ctx context.Context) ([]model.TeamMember, error)
	CountBySubteam(ctx context.Context, subteamID int64) (int64, error)
	FindLeaders(ctx context.Context) ([]model.TeamMember, error)
	FindLeadersBySubteam(ctx context.Context, subteamID int64) ([]model.TeamMember, error)
	// FindByNameContaining matches first or last name case-insensitively.
	FindByNameContaining(ctx context.Context, name string) ([]model.TeamMember, error)
	FindBySkill(ctx context.Context, skill string) ([]model.TeamMember, error)

	// FindByTask returns the members assigned to a task.
	FindByTask(ctx context.Context, taskID int64) ([]model.TeamMember, error)
	// FindByProject returns each member assigned to any task of the project once.
	FindByProject(ctx context.Context, projectID int64) ([]model.TeamMember, error)
}
