// Package model contains the domain records returned by the data access layer.
//
// Records are plain identifier-linked structs: relationships are carried as
// foreign-key IDs, never as owned object graphs. Predicate methods on the
// records mirror the SQL predicates used by the repositories so callers can
// re-check a single record without another round trip.
package model

import "time"

// PartCategory classifies inventory parts.
type PartCategory string

const (
	PartCategoryElectronics PartCategory = "ELECTRONICS"
	PartCategoryMechanical  PartCategory = "MECHANICAL"
	PartCategoryPneumatic   PartCategory = "PNEUMATIC"
	PartCategoryFastener    PartCategory = "FASTENER"
	PartCategoryRawMaterial PartCategory = "RAW_MATERIAL"
	PartCategoryTool        PartCategory = "TOOL"
	PartCategoryOther       PartCategory = "OTHER"
)

// Valid reports whether c is a known category.
func (c PartCategory) Valid() bool {
	switch c {
	case PartCategoryElectronics, PartCategoryMechanical, PartCategoryPneumatic,
		PartCategoryFastener, PartCategoryRawMaterial, PartCategoryTool, PartCategoryOther:
		return true
	}
	return false
}

// CompetitionLevel is the stage of an FRC event a match belongs to.
type CompetitionLevel string

const (
	CompetitionLevelPractice      CompetitionLevel = "PRACTICE"
	CompetitionLevelQualification CompetitionLevel = "QUALIFICATION"
	CompetitionLevelQuarterfinal  CompetitionLevel = "QUARTERFINAL"
	CompetitionLevelSemifinal     CompetitionLevel = "SEMIFINAL"
	CompetitionLevelFinal         CompetitionLevel = "FINAL"
	CompetitionLevelPlayoff       CompetitionLevel = "PLAYOFF"
)

func (l CompetitionLevel) Valid() bool {
	switch l {
	case CompetitionLevelPractice, CompetitionLevelQualification, CompetitionLevelQuarterfinal,
		CompetitionLevelSemifinal, CompetitionLevelFinal, CompetitionLevelPlayoff:
		return true
	}
	return false
}

// SubsystemStatus tracks the build state of a robot subsystem.
type SubsystemStatus string

const (
	SubsystemStatusNotStarted SubsystemStatus = "NOT_STARTED"
	SubsystemStatusInProgress SubsystemStatus = "IN_PROGRESS"
	SubsystemStatusCompleted  SubsystemStatus = "COMPLETED"
	SubsystemStatusTesting    SubsystemStatus = "TESTING"
	SubsystemStatusIssues     SubsystemStatus = "ISSUES"
)

func (s SubsystemStatus) Valid() bool {
	switch s {
	case SubsystemStatusNotStarted, SubsystemStatusInProgress, SubsystemStatusCompleted,
		SubsystemStatusTesting, SubsystemStatusIssues:
		return true
	}
	return false
}

// SubsystemType is the kind of subsystem a project template targets.
type SubsystemType string

const (
	SubsystemTypeDrivetrain  SubsystemType = "DRIVETRAIN"
	SubsystemTypeIntake      SubsystemType = "INTAKE"
	SubsystemTypeShooter     SubsystemType = "SHOOTER"
	SubsystemTypeClimber     SubsystemType = "CLIMBER"
	SubsystemTypeElevator    SubsystemType = "ELEVATOR"
	SubsystemTypeArm         SubsystemType = "ARM"
	SubsystemTypeVision      SubsystemType = "VISION"
	SubsystemTypeElectrical  SubsystemType = "ELECTRICAL"
	SubsystemTypeProgramming SubsystemType = "PROGRAMMING"
	SubsystemTypeOther       SubsystemType = "OTHER"
)

func (t SubsystemType) Valid() bool {
	switch t {
	case SubsystemTypeDrivetrain, SubsystemTypeIntake, SubsystemTypeShooter, SubsystemTypeClimber,
		SubsystemTypeElevator, SubsystemTypeArm, SubsystemTypeVision, SubsystemTypeElectrical,
		SubsystemTypeProgramming, SubsystemTypeOther:
		return true
	}
	return false
}

// Difficulty rates a project template.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
	DifficultyExpert       Difficulty = "EXPERT"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

// TaskPriority orders work within a project.
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "LOW"
	TaskPriorityMedium   TaskPriority = "MEDIUM"
	TaskPriorityHigh     TaskPriority = "HIGH"
	TaskPriorityCritical TaskPriority = "CRITICAL"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// UserRole is the access role of an application user.
type UserRole string

const (
	UserRoleStudent UserRole = "STUDENT"
	UserRoleMentor  UserRole = "MENTOR"
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleParent  UserRole = "PARENT"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleStudent, UserRoleMentor, UserRoleAdmin, UserRoleParent:
		return true
	}
	return false
}

// DateOf drops the clock part of t, keeping the calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateBefore(a, b time.Time) bool {
	return DateOf(a).Before(DateOf(b))
}

// withinDays reports whether d falls in [today, today+days], both inclusive.
func withinDays(d, today time.Time, days int) bool {
	day := DateOf(d)
	from := DateOf(today)
	to := from.AddDate(0, 0, days)
	return !day.Before(from) && !day.After(to)
}
