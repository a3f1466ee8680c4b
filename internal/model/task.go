package model

import "time"

// Task is a unit of work in a project, scoped to one subsystem.
// Assignments, component requirements and dependency edges live in join tables.
type Task struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	EstimatedMinutes int          `json:"estimated_minutes"`
	ActualMinutes    *int         `json:"actual_minutes"`
	Progress         int          `json:"progress"`
	StartDate        time.Time    `json:"start_date"`
	EndDate          *time.Time   `json:"end_date"`
	Priority         TaskPriority `json:"priority"`
	Completed        bool         `json:"completed"`
	ProjectID        int64        `json:"project_id"`
	SubsystemID      int64        `json:"subsystem_id"`
}

// IsOverdue reports whether the task is open and its end date is strictly before ref.
func (t Task) IsOverdue(ref time.Time) bool {
	return !t.Completed && t.EndDate != nil && dateBefore(*t.EndDate, ref)
}

// IsDueSoon reports whether the task is open and ends within [today, today+days].
func (t Task) IsDueSoon(today time.Time, days int) bool {
	return !t.Completed && t.EndDate != nil && withinDays(*t.EndDate, today, days)
}
