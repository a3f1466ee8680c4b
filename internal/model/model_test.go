package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func TestTask_IsOverdue(t *testing.T) {
	ref := day("2025-01-10")

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"open and ended the day before", Task{EndDate: ptr(day("2025-01-09"))}, true},
		{"open and ends on the reference date", Task{EndDate: ptr(day("2025-01-10"))}, false},
		{"open and ends later", Task{EndDate: ptr(day("2025-01-11"))}, false},
		{"completed in the past", Task{EndDate: ptr(day("2025-01-01")), Completed: true}, false},
		{"no end date", Task{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.IsOverdue(ref))
		})
	}
}

func TestTask_IsOverdue_IgnoresClock(t *testing.T) {
	task := Task{EndDate: ptr(day("2025-01-10"))}
	lateSameDay := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)
	assert.False(t, task.IsOverdue(lateSameDay))
}

func TestTask_IsDueSoon(t *testing.T) {
	today := day("2025-03-01")

	assert.True(t, Task{EndDate: ptr(day("2025-03-01"))}.IsDueSoon(today, 7))
	assert.True(t, Task{EndDate: ptr(day("2025-03-08"))}.IsDueSoon(today, 7))
	assert.False(t, Task{EndDate: ptr(day("2025-03-09"))}.IsDueSoon(today, 7))
	assert.False(t, Task{EndDate: ptr(day("2025-02-28"))}.IsDueSoon(today, 7))
	assert.False(t, Task{EndDate: ptr(day("2025-03-02")), Completed: true}.IsDueSoon(today, 7))
}

func TestComponent_IsOverdue(t *testing.T) {
	ref := day("2025-01-10")

	assert.True(t, Component{ExpectedDelivery: ptr(day("2025-01-09"))}.IsOverdue(ref))
	assert.False(t, Component{ExpectedDelivery: ptr(day("2025-01-10"))}.IsOverdue(ref))
	assert.False(t, Component{ExpectedDelivery: ptr(day("2025-01-09")), Delivered: true}.IsOverdue(ref))
	assert.True(t, Component{ExpectedDelivery: ptr(day("2025-01-12"))}.IsDueSoon(ref, 2))
}

func TestPart_StockThresholds(t *testing.T) {
	t.Run("at minimum is low stock", func(t *testing.T) {
		p := Part{QuantityOnHand: 5, MinimumStock: 5, SafetyStock: 2}
		assert.True(t, p.IsLowStock())
		assert.False(t, p.IsCriticallyLow())
	})

	t.Run("one below minimum and at safety", func(t *testing.T) {
		p := Part{QuantityOnHand: 4, MinimumStock: 5, SafetyStock: 4}
		assert.True(t, p.IsLowStock())
		assert.True(t, p.IsCriticallyLow())
	})

	t.Run("thresholds are independent", func(t *testing.T) {
		// safety above minimum is unusual but each predicate stands alone
		p := Part{QuantityOnHand: 6, MinimumStock: 5, SafetyStock: 8}
		assert.False(t, p.IsLowStock())
		assert.True(t, p.IsCriticallyLow())
	})

	t.Run("inventory value", func(t *testing.T) {
		p := Part{QuantityOnHand: 3, UnitCost: decimal.RequireFromString("2.50")}
		assert.True(t, decimal.RequireFromString("7.50").Equal(p.InventoryValue()))
	})
}

func TestMeeting_Overlaps(t *testing.T) {
	date := day("2025-02-01")
	m := Meeting{Date: date, StartTime: NewTimeOfDay(9, 0, 0), EndTime: NewTimeOfDay(10, 0, 0)}

	assert.False(t, m.Overlaps(date, NewTimeOfDay(10, 0, 0), NewTimeOfDay(11, 0, 0)), "touching intervals")

	m.EndTime = NewTimeOfDay(10, 30, 0)
	assert.True(t, m.Overlaps(date, NewTimeOfDay(10, 0, 0), NewTimeOfDay(11, 0, 0)))
	assert.False(t, m.Overlaps(day("2025-02-02"), NewTimeOfDay(10, 0, 0), NewTimeOfDay(11, 0, 0)), "different date")
	assert.True(t, m.Overlaps(date, NewTimeOfDay(8, 0, 0), NewTimeOfDay(12, 0, 0)), "containing interval")
}

func TestProject_IsActive(t *testing.T) {
	p := Project{StartDate: day("2025-01-01"), HardDeadline: day("2025-01-10")}
	assert.True(t, p.IsActive(day("2025-01-01")))
	assert.True(t, p.IsActive(day("2025-01-10")))
	assert.False(t, p.IsActive(day("2025-01-11")))
}

func TestUser_ParentalConsent(t *testing.T) {
	consented := ptr(day("2024-09-01"))

	tests := []struct {
		name        string
		user        User
		minor       bool
		valid       bool
		withoutCons bool
	}{
		{
			name:        "minor, no consent date, consent required",
			user:        User{Age: ptr(10), RequiresParentalConsent: ptr(true)},
			minor:       true,
			withoutCons: true,
		},
		{
			name:  "minor, consent given and no longer required",
			user:  User{Age: ptr(12), ParentalConsentDate: consented, RequiresParentalConsent: ptr(false)},
			minor: true,
			valid: true,
		},
		{
			name:        "minor, consent date but still required",
			user:        User{Age: ptr(12), ParentalConsentDate: consented, RequiresParentalConsent: ptr(true)},
			minor:       true,
			withoutCons: true,
		},
		{
			name:        "minor, no consent date, flag cleared",
			user:        User{Age: ptr(11), RequiresParentalConsent: ptr(false)},
			minor:       true,
			withoutCons: true,
		},
		{
			name:  "minor, consent date, flag unset matches neither",
			user:  User{Age: ptr(11), ParentalConsentDate: consented},
			minor: true,
		},
		{
			name: "thirteen is not a minor",
			user: User{Age: ptr(13), RequiresParentalConsent: ptr(true)},
		},
		{
			name: "unknown age",
			user: User{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.minor, tt.user.IsMinor())
			assert.Equal(t, tt.valid, tt.user.HasValidParentalConsent())
			assert.Equal(t, tt.withoutCons, tt.user.LacksParentalConsent())
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	v, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(9, 30, 0), v)
	assert.Equal(t, "09:30:00", v.String())

	_, err = ParseTimeOfDay("9.30")
	assert.Error(t, err)

	var scanned TimeOfDay
	require.NoError(t, scanned.Scan([]byte("14:05:07.123456")))
	assert.Equal(t, NewTimeOfDay(14, 5, 7), scanned)

	require.NoError(t, scanned.Scan(time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, NewTimeOfDay(8, 15, 0), scanned)

	assert.Error(t, scanned.Scan(42))

	val, err := NewTimeOfDay(18, 0, 0).Value()
	require.NoError(t, err)
	assert.Equal(t, "18:00:00", val)
}

func TestFrcMatch_HasTeam(t *testing.T) {
	m := FrcMatch{RedAlliance: []int64{254, 1678, 971}, BlueAlliance: []int64{118, 148, 2056}}
	assert.True(t, m.HasTeam(971))
	assert.True(t, m.HasTeam(2056))
	assert.False(t, m.HasTeam(1114))
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, PartCategoryFastener.Valid())
	assert.False(t, PartCategory("fastener").Valid())
	assert.True(t, CompetitionLevelQualification.Valid())
	assert.True(t, SubsystemStatusTesting.Valid())
	assert.True(t, SubsystemTypeClimber.Valid())
	assert.True(t, DifficultyExpert.Valid())
	assert.True(t, TaskPriorityCritical.Valid())
	assert.True(t, UserRoleParent.Valid())
	assert.False(t, UserRole("").Valid())
}
