package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT league_id, league_name, league_type, sport, max_number
		FROM leagues ORDER BY league_name ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 8)
	for rows.Next() {
		var l model.League
		var sport string
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &sport, &l.MaxNumber); err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		l.Sport = model.ParseSport(sport)
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with league rows: %w", err)
	}
	return results, nil
}

func (db *postgresDB) GetUserPublicLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error) {
	return db.userLeagues(ctx, "GetUserPublicLeaguesAndTeamRankings", userID)
}

func (db *postgresDB) GetUserPrivateLeagues(ctx context.Context, userID int32) ([]model.LeagueRanking, error) {
	return db.userLeagues(ctx, "GetUserPrivateLeaguesAndTeamRankings", userID)
}

func (db *postgresDB) userLeagues(ctx context.Context, proc string, userID int32) ([]model.LeagueRanking, error) {
	query := fmt.Sprintf(`SELECT league_id, league_name, league_type, sport, team_id, team_name, league_ranking, total_points
		FROM %s(@userID)`, proc)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error calling %s: %w", proc, err)
	}

	results := make([]model.LeagueRanking, 0, 8)
	for rows.Next() {
		r, err := scanLeagueRanking(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with %s rows: %w", proc, err)
	}
	return results, nil
}

func scanLeagueRanking(row pgx.Row) (*model.LeagueRanking, error) {
	var r model.LeagueRanking
	var sport string
	var ranking *int32
	err := row.Scan(
		&r.LeagueID,
		&r.LeagueName,
		&r.LeagueType,
		&sport,
		&r.TeamID,
		&r.TeamName,
		&ranking,
		&r.TotalPoints)
	if err != nil {
		return nil, fmt.Errorf("error scanning league ranking: %w", err)
	}
	r.Sport = model.ParseSport(sport)
	if ranking != nil {
		r.Ranking = *ranking
	}
	return &r, nil
}
