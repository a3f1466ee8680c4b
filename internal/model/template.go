package model

import "time"

// ProjectTemplate is an authored starting point for a subsystem project.
// Templates are soft-deactivated through Active rather than deleted.
type ProjectTemplate struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description"`
	SubsystemType       SubsystemType `json:"subsystem_type"`
	Difficulty          Difficulty    `json:"difficulty"`
	EstimatedDays       int           `json:"estimated_days"`
	Active              bool          `json:"active"`
	ParallelDevelopment bool          `json:"parallel_development"`
	CreatedBy           string        `json:"created_by"`
	CreatedAt           time.Time     `json:"created_at"`
}
