package repository

import (
	"context"
	"time"

	"projecttracker/internal/model"
)

// FrcMatchRepository defines data access for imported FRC match schedules.
// Matches are returned ordered by competition level then match number unless noted.
type FrcMatchRepository interface {
	FindByID(ctx context.Context, id int64) (*model.FrcMatch, error)
	FindAll(ctx context.Context) ([]model.FrcMatch, error)
	Count(ctx context.Context) (int64, error)

	FindByEvent(ctx context.Context, eventID int64) ([]model.FrcMatch, error)
	FindByEventAndLevel(ctx context.Context, eventID int64, level model.CompetitionLevel) ([]model.FrcMatch, error)
	// FindByEventLevelAndNumber returns the single match identified by event, level and number, or nil.
	FindByEventLevelAndNumber(ctx context.Context, eventID int64, level model.CompetitionLevel, number int) (*model.FrcMatch, error)
	// FindByEventAndTeam returns matches where team plays in either alliance.
	FindByEventAndTeam(ctx context.Context, eventID int64, team int) ([]model.FrcMatch, error)

	// FindScheduledBetween returns matches scheduled in r, ordered by scheduled time.
	FindScheduledBetween(ctx context.Context, eventID int64, r TimeRange) ([]model.FrcMatch, error)
	// FindUpcoming returns matches scheduled at or after now, ordered by scheduled time.
	FindUpcoming(ctx context.Context, eventID int64, now time.Time) ([]model.FrcMatch, error)
	// FindUnplayed returns matches without an actual start time.
	FindUnplayed(ctx context.Context, eventID int64) ([]model.FrcMatch, error)
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
}

// FrcTeamRankingRepository defines data access for event ranking snapshots.
type FrcTeamRankingRepository interface {
	FindByID(ctx context.Context, id int64) (*model.FrcTeamRanking, error)
	FindAll(ctx context.Context) ([]model.FrcTeamRanking, error)
	Count(ctx context.Context) (int64, error)

	FindByEventOrderByRank(ctx context.Context, eventID int64) ([]model.FrcTeamRanking, error)
	// FindByEventAndTeam returns the team's ranking at an event, or nil.
	FindByEventAndTeam(ctx context.Context, eventID int64, team int) (*model.FrcTeamRanking, error)
	FindByTeamAndSeason(ctx context.Context, team, season int) ([]model.FrcTeamRanking, error)
	// FindTopRanked returns rankings with rank <= n, best first.
	FindTopRanked(ctx context.Context, eventID int64, n int) ([]model.FrcTeamRanking, error)
	FindBySeason(ctx context.Context, season int) ([]model.FrcTeamRanking, error)

	// AverageRankByTeamForSeason averages rank per team across the season's events, best average first.
	AverageRankByTeamForSeason(ctx context.Context, season int) ([]model.TeamSeasonAverage, error)
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
}
