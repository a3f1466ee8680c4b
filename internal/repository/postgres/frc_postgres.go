package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"projecttracker/internal/model"
	"projecttracker/internal/repository"
)

const frcMatchColumns = `m.id, m.event_id, m.match_number, m.competition_level, m.scheduled_time, m.actual_time,
	m.red_alliance, m.blue_alliance, m.red_score, m.blue_score`

// Level order follows the event: practice, qualification, then playoff rounds.
const frcMatchOrder = ` ORDER BY CASE m.competition_level
		WHEN 'PRACTICE' THEN 0
		WHEN 'QUALIFICATION' THEN 1
		WHEN 'QUARTERFINAL' THEN 2
		WHEN 'SEMIFINAL' THEN 3
		WHEN 'PLAYOFF' THEN 4
		WHEN 'FINAL' THEN 5
	END, m.match_number, m.id`

// FrcMatchPostgres is a PostgreSQL implementation of repository.FrcMatchRepository.
type FrcMatchPostgres struct {
	db *sql.DB
}

// NewFrcMatchPostgres creates a new FrcMatchPostgres repository.
func NewFrcMatchPostgres(db *sql.DB) *FrcMatchPostgres {
	return &FrcMatchPostgres{db: db}
}

var _ repository.FrcMatchRepository = (*FrcMatchPostgres)(nil)

func scanFrcMatch(s rowScanner) (model.FrcMatch, error) {
	var m model.FrcMatch
	var level string
	err := s.Scan(
		&m.ID,
		&m.EventID,
		&m.MatchNumber,
		&level,
		&m.ScheduledTime,
		&m.ActualTime,
		pq.Array(&m.RedAlliance),
		pq.Array(&m.BlueAlliance),
		&m.RedScore,
		&m.BlueScore,
	)
	m.CompetitionLevel = model.CompetitionLevel(level)
	return m, err
}

func (r *FrcMatchPostgres) FindByID(ctx context.Context, id int64) (*model.FrcMatch, error) {
	const q = `SELECT ` + frcMatchColumns + ` FROM frc_matches m WHERE m.id = $1`
	return queryOne(ctx, r.db, scanFrcMatch, q, id)
}

func (r *FrcMatchPostgres) FindAll(ctx context.Context) ([]model.FrcMatch, error) {
	const q = `SELECT ` + frcMatchColumns + ` FROM frc_matches m ORDER BY m.id`
	return queryAll(ctx, r.db, scanFrcMatch, q)
}

func (r *FrcMatchPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM frc_matches`)
}

func (r *FrcMatchPostgres) FindByEvent(ctx context.Context, eventID int64) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + frcMatchColumns + ` FROM frc_matches m WHERE m.event_id = $1` + frcMatchOrder
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID)
}

func (r *FrcMatchPostgres) FindByEventAndLevel(ctx context.Context, eventID int64, level model.CompetitionLevel) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.Check("competition level", level, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1 AND m.competition_level = $2
		ORDER BY m.match_number, m.id`
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID, string(level))
}

func (r *FrcMatchPostgres) FindByEventLevelAndNumber(ctx context.Context, eventID int64, level model.CompetitionLevel, number int) (*model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.Check("competition level", level, "enum"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1 AND m.competition_level = $2 AND m.match_number = $3`
	return queryOne(ctx, r.db, scanFrcMatch, q, eventID, string(level), number)
}

func (r *FrcMatchPostgres) FindByEventAndTeam(ctx context.Context, eventID int64, team int) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.Check("team number", team, "gt=0"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1
		  AND ($2 = ANY (m.red_alliance) OR $2 = ANY (m.blue_alliance))` + frcMatchOrder
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID, team)
}

func (r *FrcMatchPostgres) FindScheduledBetween(ctx context.Context, eventID int64, tr repository.TimeRange) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.CheckStruct("schedule range", tr); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1 AND m.scheduled_time BETWEEN $2 AND $3
		ORDER BY m.scheduled_time, m.id`
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID, tr.From, tr.To)
}

func (r *FrcMatchPostgres) FindUpcoming(ctx context.Context, eventID int64, now time.Time) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.Check("now", now, "required"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1 AND m.scheduled_time >= $2
		ORDER BY m.scheduled_time, m.id`
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID, now)
}

func (r *FrcMatchPostgres) FindUnplayed(ctx context.Context, eventID int64) ([]model.FrcMatch, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcMatchColumns + `
		FROM frc_matches m
		WHERE m.event_id = $1 AND m.actual_time IS NULL
		ORDER BY m.scheduled_time, m.id`
	return queryAll(ctx, r.db, scanFrcMatch, q, eventID)
}

func (r *FrcMatchPostgres) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	if err := checkID("event id", eventID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM frc_matches WHERE event_id = $1`, eventID)
}

const frcRankingColumns = `k.id, k.event_id, k.team_number, k.rank, k.season, k.wins, k.losses, k.ties, k.ranking_score, k.last_updated`

// FrcTeamRankingPostgres is a PostgreSQL implementation of repository.FrcTeamRankingRepository.
type FrcTeamRankingPostgres struct {
	db *sql.DB
}

// NewFrcTeamRankingPostgres creates a new FrcTeamRankingPostgres repository.
func NewFrcTeamRankingPostgres(db *sql.DB) *FrcTeamRankingPostgres {
	return &FrcTeamRankingPostgres{db: db}
}

var _ repository.FrcTeamRankingRepository = (*FrcTeamRankingPostgres)(nil)

func scanFrcRanking(s rowScanner) (model.FrcTeamRanking, error) {
	var k model.FrcTeamRanking
	err := s.Scan(
		&k.ID,
		&k.EventID,
		&k.TeamNumber,
		&k.Rank,
		&k.Season,
		&k.Wins,
		&k.Losses,
		&k.Ties,
		&k.RankingScore,
		&k.LastUpdated,
	)
	return k, err
}

func (r *FrcTeamRankingPostgres) FindByID(ctx context.Context, id int64) (*model.FrcTeamRanking, error) {
	const q = `SELECT ` + frcRankingColumns + ` FROM frc_team_rankings k WHERE k.id = $1`
	return queryOne(ctx, r.db, scanFrcRanking, q, id)
}

func (r *FrcTeamRankingPostgres) FindAll(ctx context.Context) ([]model.FrcTeamRanking, error) {
	const q = `SELECT ` + frcRankingColumns + ` FROM frc_team_rankings k ORDER BY k.id`
	return queryAll(ctx, r.db, scanFrcRanking, q)
}

func (r *FrcTeamRankingPostgres) Count(ctx context.Context) (int64, error) {
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM frc_team_rankings`)
}

func (r *FrcTeamRankingPostgres) FindByEventOrderByRank(ctx context.Context, eventID int64) ([]model.FrcTeamRanking, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + frcRankingColumns + ` FROM frc_team_rankings k WHERE k.event_id = $1 ORDER BY k.rank, k.team_number`
	return queryAll(ctx, r.db, scanFrcRanking, q, eventID)
}

func (r *FrcTeamRankingPostgres) FindByEventAndTeam(ctx context.Context, eventID int64, team int) (*model.FrcTeamRanking, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	const q = `SELECT ` + frcRankingColumns + ` FROM frc_team_rankings k WHERE k.event_id = $1 AND k.team_number = $2`
	return queryOne(ctx, r.db, scanFrcRanking, q, eventID, team)
}

func (r *FrcTeamRankingPostgres) FindByTeamAndSeason(ctx context.Context, team, season int) ([]model.FrcTeamRanking, error) {
	if err := repository.Check("team number", team, "gt=0"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcRankingColumns + `
		FROM frc_team_rankings k
		WHERE k.team_number = $1 AND k.season = $2
		ORDER BY k.last_updated, k.id`
	return queryAll(ctx, r.db, scanFrcRanking, q, team, season)
}

func (r *FrcTeamRankingPostgres) FindTopRanked(ctx context.Context, eventID int64, n int) ([]model.FrcTeamRanking, error) {
	if err := checkID("event id", eventID); err != nil {
		return nil, err
	}
	if err := repository.Check("n", n, "gt=0"); err != nil {
		return nil, err
	}
	const q = `
		SELECT ` + frcRankingColumns + `
		FROM frc_team_rankings k
		WHERE k.event_id = $1 AND k.rank <= $2
		ORDER BY k.rank, k.team_number`
	return queryAll(ctx, r.db, scanFrcRanking, q, eventID, n)
}

func (r *FrcTeamRankingPostgres) FindBySeason(ctx context.Context, season int) ([]model.FrcTeamRanking, error) {
	const q = `SELECT ` + frcRankingColumns + ` FROM frc_team_rankings k WHERE k.season = $1 ORDER BY k.event_id, k.rank`
	return queryAll(ctx, r.db, scanFrcRanking, q, season)
}

func (r *FrcTeamRankingPostgres) AverageRankByTeamForSeason(ctx context.Context, season int) ([]model.TeamSeasonAverage, error) {
	const q = `
		SELECT k.team_number, k.season, AVG(k.rank)::float8, COUNT(*)
		FROM frc_team_rankings k
		WHERE k.season = $1
		GROUP BY k.team_number, k.season
		ORDER BY AVG(k.rank), k.team_number`
	return queryAll(ctx, r.db, func(s rowScanner) (model.TeamSeasonAverage, error) {
		var a model.TeamSeasonAverage
		err := s.Scan(&a.TeamNumber, &a.Season, &a.AverageRank, &a.Events)
		return a, err
	}, q, season)
}

func (r *FrcTeamRankingPostgres) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	if err := checkID("event id", eventID); err != nil {
		return 0, err
	}
	return queryCount(ctx, r.db, `SELECT COUNT(*) FROM frc_team_rankings WHERE event_id = $1`, eventID)
}
