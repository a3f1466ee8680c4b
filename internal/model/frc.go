package model

import "time"

// FrcEvent is an FRC competition event.
type FrcEvent struct {
	ID        int64     `json:"id"`
	EventCode string    `json:"event_code"`
	Name      string    `json:"name"`
	Season    int       `json:"season"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// FrcMatch is a scheduled match imported from an event schedule.
type FrcMatch struct {
	ID               int64            `json:"id"`
	EventID          int64            `json:"event_id"`
	MatchNumber      int              `json:"match_number"`
	CompetitionLevel CompetitionLevel `json:"competition_level"`
	ScheduledTime    time.Time        `json:"scheduled_time"`
	ActualTime       *time.Time       `json:"actual_time"`
	RedAlliance      []int64          `json:"red_alliance"`
	BlueAlliance     []int64          `json:"blue_alliance"`
	RedScore         *int             `json:"red_score"`
	BlueScore        *int             `json:"blue_score"`
}

// HasTeam reports whether team plays in either alliance.
func (m FrcMatch) HasTeam(team int64) bool {
	for _, t := range m.RedAlliance {
		if t == team {
			return true
		}
	}
	for _, t := range m.BlueAlliance {
		if t == team {
			return true
		}
	}
	return false
}

// FrcTeamRanking is one team's standing in an event snapshot.
type FrcTeamRanking struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	TeamNumber   int       `json:"team_number"`
	Rank         int       `json:"rank"`
	Season       int       `json:"season"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	Ties         int       `json:"ties"`
	RankingScore float64   `json:"ranking_score"`
	LastUpdated  time.Time `json:"last_updated"`
}

// TeamSeasonAverage is the mean rank of one team across a season's events.
type TeamSeasonAverage struct {
	TeamNumber  int     `json:"team_number"`
	Season      int     `json:"season"`
	AverageRank float64 `json:"average_rank"`
	Events      int     `json:"events"`
}
