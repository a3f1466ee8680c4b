package model

import "time"

// MinorAgeThreshold is the age below which parental consent rules apply.
const MinorAgeThreshold = 13

// User is an application account.
type User struct {
	ID                      int64      `json:"id"`
	Username                string     `json:"username"`
	Email                   string     `json:"email"`
	PasswordHash            string     `json:"-"`
	FirstName               string     `json:"first_name"`
	LastName                string     `json:"last_name"`
	Role                    UserRole   `json:"role"`
	Enabled                 bool       `json:"enabled"`
	Age                     *int       `json:"age"`
	ParentEmail             *string    `json:"parent_email"`
	ParentalConsentDate     *time.Time `json:"parental_consent_date"`
	RequiresParentalConsent *bool      `json:"requires_parental_consent"`
	ParentalConsentToken    *string    `json:"-"`
	MFAEnabled              bool       `json:"mfa_enabled"`
	AccountNonLocked        bool       `json:"account_non_locked"`
	CredentialsNonExpired   bool       `json:"credentials_non_expired"`
	CreatedAt               time.Time  `json:"created_at"`
	LastLogin               *time.Time `json:"last_login"`
}

// IsMinor reports age below MinorAgeThreshold. Unknown age is not a minor.
func (u User) IsMinor() bool {
	return u.Age != nil && *u.Age < MinorAgeThreshold
}

// HasValidParentalConsent is minor AND consent date present AND requires-consent false.
func (u User) HasValidParentalConsent() bool {
	return u.IsMinor() && u.ParentalConsentDate != nil &&
		u.RequiresParentalConsent != nil && !*u.RequiresParentalConsent
}

// LacksParentalConsent is minor AND (consent date absent OR requires-consent true).
//
// It is not the complement of HasValidParentalConsent: a minor with a consent
// date and an unset requires-consent flag satisfies neither, exactly as the
// SQL three-valued comparison behaves.
func (u User) LacksParentalConsent() bool {
	return u.IsMinor() && (u.ParentalConsentDate == nil ||
		(u.RequiresParentalConsent != nil && *u.RequiresParentalConsent))
}
