package repository

import (
	"context"

	"projecttracker/internal/model"
)

// ProjectTemplateRepository defines data access for project templates.
// Type and difficulty lookups only return active templates.
type ProjectTemplateRepository interface {
	FindByID(ctx context.Context, id int64) (*model.ProjectTemplate, error)
	FindAll(ctx context.Context) ([]model.ProjectTemplate, error)
	Count(ctx context.Context) (int64, error)

	FindActive(ctx context.Context) ([]model.ProjectTemplate, error)
	FindBySubsystemType(ctx context.Context, t model.SubsystemType) ([]model.ProjectTemplate, error)
	FindByDifficulty(ctx context.Context, d model.Difficulty) ([]model.ProjectTemplate, error)
	FindBySubsystemTypeAndDifficulty(ctx context.Context, t model.SubsystemType, d model.Difficulty) ([]model.ProjectTemplate, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.ProjectTemplate, error)
	FindByCreatedBy(ctx context.Context, createdBy string) ([]model.ProjectTemplate, error)
	FindByParallelDevelopment(ctx context.Context, parallel bool) ([]model.ProjectTemplate, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}
