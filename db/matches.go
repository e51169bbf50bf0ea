package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (db *postgresDB) GetMatches(ctx context.Context, sport model.Sport, orderBy string) ([]model.Match, error) {
	const query = `SELECT match_id, sport, match_date, home_team, away_team, venue
		FROM GetMatches(@sport, @orderBy)`

	args := pgx.NamedArgs{
		"sport":   sport.String(),
		"orderBy": orderBy,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, asRejection(fmt.Errorf("error calling GetMatches: %w", err))
	}

	results := make([]model.Match, 0, 16)
	for rows.Next() {
		var m model.Match
		var s string
		var date pgtype.Date
		if err := rows.Scan(&m.ID, &s, &date, &m.HomeTeam, &m.AwayTeam, &m.Venue); err != nil {
			return nil, fmt.Errorf("error scanning match: %w", err)
		}
		m.Sport = model.ParseSport(s)
		m.Date = date.Time
		results = append(results, m)
	}
	if err := rows.Err(); err != nil {
		return nil, asRejection(fmt.Errorf("error with match rows: %w", err))
	}
	return results, nil
}

func (db *postgresDB) GetMatchEvents(ctx context.Context, matchID int32, orderBy string) ([]model.MatchEvent, error) {
	const query = `SELECT event_id, match_id, player_id, player_name, event_type, event_time
		FROM GetMatchEvents(@matchID, @orderBy)`

	args := pgx.NamedArgs{
		"matchID": matchID,
		"orderBy": orderBy,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, asRejection(fmt.Errorf("error calling GetMatchEvents: %w", err))
	}

	results := make([]model.MatchEvent, 0, 16)
	for rows.Next() {
		var e model.MatchEvent
		if err := rows.Scan(&e.ID, &e.MatchID, &e.PlayerID, &e.PlayerName, &e.EventType, &e.Time); err != nil {
			return nil, fmt.Errorf("error scanning match event: %w", err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, asRejection(fmt.Errorf("error with match event rows: %w", err))
	}
	return results, nil
}
