package postgres

import (
	"context"
	"database/sql"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const templateColumns = `pt.id, pt.name, pt.description, pt.subsystem_type, pt.difficulty, pt.estimated_days,
	pt.active, pt.parallel_development, pt.created_by, pt.created_at`

// ProjectTemplatePostgres is a PostgreSQL implementation of repository.ProjectTemplateRepository.
type ProjectTemplatePostgres struct {
	db *sql.DB
}

// NewProjectTemplatePostgres creates a new ProjectTemplatePostgres repository.
func NewProjectTemplatePostgres(db *sql.DB) *ProjectTemplatePostgres {
	return &ProjectTemplatePostgres{db: db}
}

var _ repository.ProjectTemplateRepository = (*ProjectTemplatePostgres)(nil)

func scanTemplate(s rowScanner) (model.ProjectTemplate, error) {
	var t model.ProjectTemplate
	err := s.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.SubsystemType,
		&t.Difficulty,
		&t.EstimatedDays,
		&t.Active,
		&t.ParallelDevelopment,
		&t.CreatedBy,
		&t.CreatedAt,
	)
	return t, err
}

func (r *ProjectTemplatePostgres) FindByID(ctx context.Context, id int64) (*model.ProjectTemplate, error) {
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt WHERE pt.id = $1`
	return queryOne(ctx, r.db, scanTemplate, q, id)
}

func (r *ProjectTemplatePostgres) FindAll(ctx context.Context) ([]model.ProjectTemplate, error) {
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt ORDER BY pt.id`
	return queryAll(ctx, r.db, scanTemplate, q)
}

func (r *ProjectTemplatePostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM project_templates`)
}

func (r *ProjectTemplatePostgres) FindActive(ctx context.Context) ([]model.ProjectTemplate, error) {
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt WHERE pt.active = TRUE ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q)
}

func (r *ProjectTemplatePostgres) FindBySubsystemType(ctx context.Context, t model.SubsystemType) ([]model.ProjectTemplate, error) {
	if err := repository.Check("subsystem type", t, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + templateColumns + `
		FROM project_templates pt
		WHERE pt.active = TRUE AND pt.subsystem_type = $1
		ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, string(t))
}

func (r *ProjectTemplatePostgres) FindByDifficulty(ctx context.Context, d model.Difficulty) ([]model.ProjectTemplate, error) {
	if err := repository.Check("difficulty", d, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + templateColumns + `
		FROM project_templates pt
		WHERE pt.active = TRUE AND pt.difficulty = $1
		ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, string(d))
}

func (r *ProjectTemplatePostgres) FindBySubsystemTypeAndDifficulty(ctx context.Context, t model.SubsystemType, d model.Difficulty) ([]model.ProjectTemplate, error) {
	if err := repository.Check("subsystem type", t, "enum"); err != nil {
		return nil, err
	}
	if err := repository.Check("difficulty", d, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + templateColumns + `
		FROM project_templates pt
		WHERE pt.active = TRUE AND pt.subsystem_type = $1 AND pt.difficulty = $2
		ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, string(t), string(d))
}

func (r *ProjectTemplatePostgres) FindByNameContaining(ctx context.Context, name string) ([]model.ProjectTemplate, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt WHERE pt.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, escapeLike(name))
}

func (r *ProjectTemplatePostgres) FindByCreatedBy(ctx context.Context, createdBy string) ([]model.ProjectTemplate, error) {
	if err := checkText("created by", createdBy); err != nil {
		return nil, err
	}
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt WHERE pt.created_by = $1 ORDER BY pt.created_at DESC, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, createdBy)
}

func (r *ProjectTemplatePostgres) FindByParallelDevelopment(ctx context.Context, parallel bool) ([]model.ProjectTemplate, error) {
	const q = `SELECT ` + templateColumns + ` FROM project_templates pt WHERE pt.parallel_development = $1 ORDER BY pt.name, pt.id`
	return queryAll(ctx, r.db, scanTemplate, q, parallel)
}

func (r *ProjectTemplatePostgres) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	if err := checkText("name", name); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM project_templates WHERE lower(name) = lower($1))`, name)
}

func (r *ProjectTemplatePostgres) CountActive(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM project_templates WHERE active = TRUE`)
}
