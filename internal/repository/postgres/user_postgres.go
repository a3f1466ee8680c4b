package postgres

import (
	"context"
	"database/sql"
	"time"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const userColumns = `u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.enabled,
	u.age, u.parent_email, u.parental_consent_date, u.requires_parental_consent, u.parental_consent_token,
	u.mfa_enabled, u.account_non_locked, u.credentials_non_expired, u.created_at, u.last_login`

// Minor predicates. The two consent predicates are kept exactly as written:
// with a NULL requires_parental_consent a minor with a consent date matches neither.
const (
	minorPredicate        = `u.age < 13`
	validConsentPredicate = minorPredicate + ` AND u.parental_consent_date IS NOT NULL AND u.requires_parental_consent = FALSE`
	noConsentPredicate    = minorPredicate + ` AND (u.parental_consent_date IS NULL OR u.requires_parental_consent = TRUE)`
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(s rowScanner) (model.User, error) {
	var u model.User
	err := s.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.Enabled,
		&u.Age,
		&u.ParentEmail,
		&u.ParentalConsentDate,
		&u.RequiresParentalConsent,
		&u.ParentalConsentToken,
		&u.MFAEnabled,
		&u.AccountNonLocked,
		&u.CredentialsNonExpired,
		&u.CreatedAt,
		&u.LastLogin,
	)
	return u, err
}

func (r *UserPostgres) FindByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	return queryOne(ctx, r.db, scanUser, q, id)
}

func (r *UserPostgres) FindAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u ORDER BY u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM users`)
}

// Create inserts a user. created_at defaults to now() when zero.
func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if err := checkText("username", u.Username); err != nil {
		return nil, err
	}
	if err := repository.Check("email", u.Email, "required,email"); err != nil {
		return nil, err
	}
	if err := repository.Check("role", u.Role, "enum"); err != nil {
		return nil, err
	}
	var createdAt *time.Time
	if !u.CreatedAt.IsZero() {
		createdAt = &u.CreatedAt
	}
	const q = `
		INSERT INTO users AS u (username, email, password_hash, first_name, last_name, role, enabled,
			age, parent_email, parental_consent_date, requires_parental_consent, parental_consent_token,
			mfa_enabled, account_non_locked, credentials_non_expired, created_at, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, COALESCE($16, now()), $17)
		RETURNING ` + userColumns
	return insertOne(ctx, r.db, scanUser, q,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		string(u.Role),
		u.Enabled,
		u.Age,
		u.ParentEmail,
		u.ParentalConsentDate,
		u.RequiresParentalConsent,
		u.ParentalConsentToken,
		u.MFAEnabled,
		u.AccountNonLocked,
		u.CredentialsNonExpired,
		createdAt,
		u.LastLogin,
	)
}

func (r *UserPostgres) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := checkText("username", username); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.username = $1`
	return queryOne(ctx, r.db, scanUser, q, username)
}

func (r *UserPostgres) FindByUsernameIgnoreCase(ctx context.Context, username string) (*model.User, error) {
	if err := checkText("username", username); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE lower(u.username) = lower($1)`
	return queryOne(ctx, r.db, scanUser, q, username)
}

func (r *UserPostgres) FindByEmailIgnoreCase(ctx context.Context, email string) (*model.User, error) {
	if err := checkText("email", email); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE lower(u.email) = lower($1)`
	return queryOne(ctx, r.db, scanUser, q, email)
}

func (r *UserPostgres) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	if err := checkText("identifier", identifier); err != nil {
		return nil, err
	}
	// Prefer a username match when one account's username equals another's email.
	const q = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE lower(u.username) = lower($1) OR lower(u.email) = lower($1)
		ORDER BY (lower(u.username) = lower($1)) DESC, u.id
		LIMIT 1`
	return queryOne(ctx, r.db, scanUser, q, identifier)
}

func (r *UserPostgres) ExistsByUsernameIgnoreCase(ctx context.Context, username string) (bool, error) {
	if err := checkText("username", username); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1))`, username)
}

func (r *UserPostgres) ExistsByEmailIgnoreCase(ctx context.Context, email string) (bool, error) {
	if err := checkText("email", email); err != nil {
		return false, err
	}
	return queryExists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email)
}

func (r *UserPostgres) FindByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	if err := repository.Check("role", role, "enum"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.role = $1 ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q, string(role))
}

func (r *UserPostgres) CountByRole(ctx context.Context, role model.UserRole) (int64, error) {
	if err := repository.Check("role", role, "enum"); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM users WHERE role = $1`, string(role))
}

func (r *UserPostgres) FindByEnabled(ctx context.Context, enabled bool) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.enabled = $1 ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q, enabled)
}

func (r *UserPostgres) FindByRoleAndEnabled(ctx context.Context, role model.UserRole, enabled bool) ([]model.User, error) {
	if err := repository.Check("role", role, "enum"); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.role = $1 AND u.enabled = $2 ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q, string(role), enabled)
}

func (r *UserPostgres) FindMinorUsers(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE ` + minorPredicate + ` ORDER BY u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) FindMinorsWithValidConsent(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE ` + validConsentPredicate + ` ORDER BY u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) FindMinorsWithoutConsent(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE ` + noConsentPredicate + ` ORDER BY u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) FindByParentalConsentToken(ctx context.Context, token string) (*model.User, error) {
	if err := checkText("consent token", token); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.parental_consent_token = $1`
	return queryOne(ctx, r.db, scanUser, q, token)
}

func (r *UserPostgres) FindByParentEmail(ctx context.Context, parentEmail string) ([]model.User, error) {
	if err := checkText("parent email", parentEmail); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE lower(u.parent_email) = lower($1) ORDER BY u.id`
	return queryAll(ctx, r.db, scanUser, q, parentEmail)
}

func (r *UserPostgres) FindPendingConsentCreatedBefore(ctx context.Context, before time.Time) ([]model.User, error) {
	if err := repository.Check("before", before, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE ` + minorPredicate + `
		  AND u.requires_parental_consent = TRUE
		  AND u.created_at < $1
		ORDER BY u.created_at, u.id`
	return queryAll(ctx, r.db, scanUser, q, before)
}

func (r *UserPostgres) FindByMFAEnabled(ctx context.Context, enabled bool) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.mfa_enabled = $1 ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q, enabled)
}

func (r *UserPostgres) FindLocked(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.account_non_locked = FALSE ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) FindWithExpiredCredentials(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.credentials_non_expired = FALSE ORDER BY u.username, u.id`
	return queryAll(ctx, r.db, scanUser, q)
}

func (r *UserPostgres) FindCreatedBetween(ctx context.Context, tr repository.TimeRange) ([]model.User, error) {
	if err := repository.CheckStruct("created range", tr); err != nil {
		return nil, err
	}
	const q = `SELECT ` + userColumns + ` FROM users u WHERE u.created_at BETWEEN $1 AND $2 ORDER BY u.created_at, u.id`
	return queryAll(ctx, r.db, scanUser, q, tr.From, tr.To)
}

func (r *UserPostgres) FindInactiveSince(ctx context.Context, since time.Time) ([]model.User, error) {
	if err := repository.Check("since", since, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.enabled = TRUE AND (u.last_login IS NULL OR u.last_login < $1)
		ORDER BY u.last_login NULLS FIRST, u.id`
	return queryAll(ctx, r.db, scanUser, q, since)
}
