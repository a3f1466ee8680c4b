package model

import "time"

// Project is a build season effort with a fixed hard deadline.
type Project struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	GoalEndDate  time.Time `json:"goal_end_date"`
	HardDeadline time.Time `json:"hard_deadline"`
}

// IsActive reports whether today falls between the start date and the hard deadline, inclusive.
func (p Project) IsActive(today time.Time) bool {
	d := DateOf(today)
	return !d.Before(DateOf(p.StartDate)) && !d.After(DateOf(p.HardDeadline))
}

// Meeting is a scheduled team meeting belonging to a project.
type Meeting struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	ProjectID int64     `json:"project_id"`
	Notes     string    `json:"notes"`
}

// Overlaps reports whether m and the interval [start, end) on date intersect.
// Intervals that only touch at an endpoint do not overlap.
func (m Meeting) Overlaps(date time.Time, start, end TimeOfDay) bool {
	if !DateOf(m.Date).Equal(DateOf(date)) {
		return false
	}
	return m.StartTime < end && m.EndTime > start
}

// Milestone is a named date within a project plan.
type Milestone struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ProjectID   int64     `json:"project_id"`
}
