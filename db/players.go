package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

// GetAllPlayerStats wraps the stored procedure of the same name. The
// procedure raises a rejection for an invalid order key, which surfaces
// as *RejectionError.
func (db *postgresDB) GetAllPlayerStats(ctx context.Context, orderBy string) ([]model.PlayerStats, error) {
	const query = `SELECT player_id, full_name, sport, position, real_team, team_name, fantasy_points, avai_status
		FROM GetAllPlayerStats(@orderBy)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"orderBy": orderBy})
	if err != nil {
		return nil, asRejection(fmt.Errorf("error calling GetAllPlayerStats: %w", err))
	}

	results := make([]model.PlayerStats, 0, 32)
	for rows.Next() {
		var s model.PlayerStats
		var sport string
		var teamName *string
		err := rows.Scan(&s.PlayerID, &s.FullName, &sport, &s.Position,
			&s.RealTeam, &teamName, &s.FantasyPoints, &s.AvaiStatus)
		if err != nil {
			return nil, fmt.Errorf("error scanning player stats: %w", err)
		}
		s.Sport = model.ParseSport(sport)
		if teamName != nil {
			s.TeamName = *teamName
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, asRejection(fmt.Errorf("error with player stats rows: %w", err))
	}
	return results, nil
}

func (db *postgresDB) GetPlayerDetails(ctx context.Context, playerID int32) (*model.Player, error) {
	const query = `SELECT player_id, full_name, sport, position, real_team, team_id, draft_id, fantasy_points, avai_status, photo_url
		FROM GetPlayerDetails(@playerID)`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"playerID": playerID})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error getting player %d: %w", playerID, err)
	}
	return p, nil
}

func (db *postgresDB) CreatePlayer(ctx context.Context, p *model.Player) error {
	const insert = `INSERT INTO players (full_name, sport, position, real_team, fantasy_points, avai_status, photo_url)
		VALUES (@fullName, @sport, @position, @realTeam, @fantasyPoints, @avaiStatus, @photoURL)
		RETURNING player_id`

	args := pgx.NamedArgs{
		"fullName":      p.FullName,
		"sport":         p.Sport.String(),
		"position":      p.Position,
		"realTeam":      p.RealTeam,
		"fantasyPoints": p.FantasyPoints,
		"avaiStatus":    p.AvaiStatus,
		"photoURL":      p.PhotoURL,
	}
	if err := db.pool.QueryRow(ctx, insert, args).Scan(&p.ID); err != nil {
		return fmt.Errorf("error inserting player %s: %w", p.FullName, err)
	}
	return nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	const update = `UPDATE players
		SET full_name=@fullName,
			position=@position,
			real_team=@realTeam,
			fantasy_points=@fantasyPoints,
			avai_status=@avaiStatus,
			photo_url=@photoURL
		WHERE player_id=@playerID`

	args := pgx.NamedArgs{
		"playerID":      p.ID,
		"fullName":      p.FullName,
		"position":      p.Position,
		"realTeam":      p.RealTeam,
		"fantasyPoints": p.FantasyPoints,
		"avaiStatus":    p.AvaiStatus,
		"photoURL":      p.PhotoURL,
	}
	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating player %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// DeletePlayer removes every row that references the player before the
// player itself, all in one transaction.
func (db *postgresDB) DeletePlayer(ctx context.Context, playerID int32) error {
	cascade := []string{
		`DELETE FROM player_stats WHERE player_id=@playerID`,
		`DELETE FROM match_events WHERE player_id=@playerID`,
		`DELETE FROM player_trades WHERE player_id=@playerID`,
		`DELETE FROM waivers WHERE player_id=@playerID`,
	}
	const delPlayer = `DELETE FROM players WHERE player_id=@playerID`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"playerID": playerID}
	for _, stmt := range cascade {
		if _, err := tx.Exec(ctx, stmt, args); err != nil {
			return fmt.Errorf("error deleting player %d dependents: %w", playerID, err)
		}
	}

	tag, err := tx.Exec(ctx, delPlayer, args)
	if err != nil {
		return fmt.Errorf("error deleting player %d: %w", playerID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing player delete: %w", err)
	}
	return nil
}

func (db *postgresDB) ListAvailablePlayers(ctx context.Context, teamID int32, sameTeam bool) ([]model.Player, error) {
	const own = `SELECT player_id, full_name, sport, position, real_team, team_id, draft_id, fantasy_points, avai_status, photo_url
		FROM players WHERE team_id=@teamID AND avai_status=@status ORDER BY full_name ASC`
	const others = `SELECT player_id, full_name, sport, position, real_team, team_id, draft_id, fantasy_points, avai_status, photo_url
		FROM players WHERE team_id IS NOT NULL AND team_id != @teamID AND avai_status=@status ORDER BY full_name ASC`

	query := others
	if sameTeam {
		query = own
	}
	args := pgx.NamedArgs{
		"teamID": teamID,
		"status": model.PlayerAvailable,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing available players: %w", err)
	}

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning player: %w", err)
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with player rows: %w", err)
	}
	return results, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	var sport string
	var teamID, draftID *int32
	var photoURL *string
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&sport,
		&p.Position,
		&p.RealTeam,
		&teamID,
		&draftID,
		&p.FantasyPoints,
		&p.AvaiStatus,
		&photoURL)
	if err != nil {
		return nil, err
	}
	p.Sport = model.ParseSport(sport)
	if teamID != nil {
		p.TeamID = *teamID
	}
	if draftID != nil {
		p.DraftID = *draftID
	}
	if photoURL != nil {
		p.PhotoURL = *photoURL
	}
	return &p, nil
}
