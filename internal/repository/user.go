package repository

import (
	"context"
	"time"

	"projecttracker/internal/model"
)

// UserRepository defines data access for application users, including the
// parental consent lookups used by the minors compliance workflow.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)

	// Create inserts a user. Username or email already present in any letter case yields ErrDuplicate.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUsernameIgnoreCase(ctx context.Context, username string) (*model.User, error)
	FindByEmailIgnoreCase(ctx context.Context, email string) (*model.User, error)
	// FindByUsernameOrEmail resolves a login identifier against either column, ignoring case.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error)
	ExistsByUsernameIgnoreCase(ctx context.Context, username string) (bool, error)
	ExistsByEmailIgnoreCase(ctx context.Context, email string) (bool, error)

	FindByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
	CountByRole(ctx context.Context, role model.UserRole) (int64, error)
	FindByEnabled(ctx context.Context, enabled bool) ([]model.User, error)
	FindByRoleAndEnabled(ctx context.Context, role model.UserRole, enabled bool) ([]model.User, error)

	// FindMinorUsers returns users with age < 13.
	FindMinorUsers(ctx context.Context) ([]model.User, error)
	// FindMinorsWithValidConsent: age < 13 AND consent date present AND requires-consent false.
	FindMinorsWithValidConsent(ctx context.Context) ([]model.User, error)
	// FindMinorsWithoutConsent: age < 13 AND (consent date absent OR requires-consent true).
	FindMinorsWithoutConsent(ctx context.Context) ([]model.User, error)
	FindByParentalConsentToken(ctx context.Context, token string) (*model.User, error)
	FindByParentEmail(ctx context.Context, parentEmail string) ([]model.User, error)
	// FindPendingConsentCreatedBefore returns minors still requiring consent whose account predates before.
	FindPendingConsentCreatedBefore(ctx context.Context, before time.Time) ([]model.User, error)

	FindByMFAEnabled(ctx context.Context, enabled bool) ([]model.User, error)
	FindLocked(ctx context.Context) ([]model.User, error)
	FindWithExpiredCredentials(ctx context.Context) ([]model.User, error)
	FindCreatedBetween(ctx context.Context, r TimeRange) ([]model.User, error)
	// FindInactiveSince returns enabled users who never logged in or last logged in before since.
	FindInactiveSince(ctx context.Context, since time.Time) ([]model.User, error)
}
