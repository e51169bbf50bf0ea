package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const teamColumns = `team_id, team_name, manager, league_id, total_points, league_ranking, team_status, sport`

func (db *postgresDB) GetUserTeams(ctx context.Context, userID int32) ([]model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM GetUserTeams(@userID)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, fmt.Errorf("error calling GetUserTeams: %w", err)
	}
	return collectTeams(rows)
}

func (db *postgresDB) GetTeamInfoByName(ctx context.Context, name string) ([]model.TeamInfo, error) {
	const query = `SELECT team_id, team_name, league_name, manager_name, sport, total_points, league_ranking, team_status
		FROM GetTeamInfoByName(@name)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"name": name})
	if err != nil {
		return nil, fmt.Errorf("error calling GetTeamInfoByName: %w", err)
	}

	results := make([]model.TeamInfo, 0, 4)
	for rows.Next() {
		var t model.TeamInfo
		var sport string
		var ranking *int32
		err := rows.Scan(&t.TeamID, &t.TeamName, &t.LeagueName, &t.ManagerName,
			&sport, &t.TotalPoints, &ranking, &t.Status)
		if err != nil {
			return nil, fmt.Errorf("error scanning team info: %w", err)
		}
		t.Sport = model.ParseSport(sport)
		if ranking != nil {
			t.Ranking = *ranking
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with team info rows: %w", err)
	}
	return results, nil
}

func (db *postgresDB) GetTeamByManager(ctx context.Context, userID int32) (*model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams WHERE manager=@userID LIMIT 1`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"userID": userID})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error looking up team for manager %d: %w", userID, err)
	}
	return t, nil
}

func (db *postgresDB) ListOpposingTeams(ctx context.Context, teamID int32) ([]model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams WHERE team_id != @teamID ORDER BY team_name ASC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamID": teamID})
	if err != nil {
		return nil, fmt.Errorf("error listing opposing teams: %w", err)
	}
	return collectTeams(rows)
}

// teamIDLockKey is the advisory lock key serializing team id allocation.
const teamIDLockKey = 7201

// CreateTeam runs the whole check-then-insert sequence in one
// transaction. Team ids are max+1, so allocation is serialized with a
// transaction-scoped advisory lock, and the lock wait is bounded so a
// stuck competitor fails the request instead of hanging it.
func (db *postgresDB) CreateTeam(ctx context.Context, name string, sport model.Sport, leagueID, managerID int32) (int32, error) {
	const leagueCheck = `SELECT league_id FROM leagues WHERE league_id=@leagueID AND sport=@sport`
	const nameCheck = `SELECT team_id FROM teams WHERE team_name=@name AND league_id=@leagueID`
	const lockIDs = `SELECT pg_advisory_xact_lock(@lockKey)`
	const maxID = `SELECT COALESCE(MAX(team_id), 0) FROM teams`
	const insert = `INSERT INTO teams (team_id, team_name, manager, league_id, total_points, league_ranking, team_status, sport)
		VALUES (@teamID, @name, @manager, @leagueID, 0.00, NULL, @status, @sport)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SET LOCAL lock_timeout = '3s'`); err != nil {
		return 0, fmt.Errorf("error setting lock timeout: %w", err)
	}

	var foundLeague int32
	err = tx.QueryRow(ctx, leagueCheck, pgx.NamedArgs{"leagueID": leagueID, "sport": sport.String()}).Scan(&foundLeague)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrLeagueNotFound
		}
		return 0, fmt.Errorf("error checking league %d: %w", leagueID, err)
	}

	var foundTeam int32
	err = tx.QueryRow(ctx, nameCheck, pgx.NamedArgs{"name": name, "leagueID": leagueID}).Scan(&foundTeam)
	if err == nil {
		return 0, ErrDuplicateTeamName
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("error checking team name: %w", err)
	}

	if _, err := tx.Exec(ctx, lockIDs, pgx.NamedArgs{"lockKey": teamIDLockKey}); err != nil {
		return 0, fmt.Errorf("error locking team id allocation: %w", err)
	}
	var currentMax int32
	if err := tx.QueryRow(ctx, maxID).Scan(&currentMax); err != nil {
		return 0, fmt.Errorf("error reading max team id: %w", err)
	}
	nextID := currentMax + 1

	args := pgx.NamedArgs{
		"teamID":   nextID,
		"name":     name,
		"manager":  managerID,
		"leagueID": leagueID,
		"status":   model.TeamStatusActive,
		"sport":    sport.String(),
	}
	if _, err := tx.Exec(ctx, insert, args); err != nil {
		// Two same-name creations can both pass the check above. The
		// unique constraint catches the loser.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateTeamName
		}
		return 0, fmt.Errorf("error inserting team %s: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing team transaction: %w", err)
	}
	return nextID, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	var sport string
	var ranking *int32
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.ManagerID,
		&t.LeagueID,
		&t.TotalPoints,
		&ranking,
		&t.Status,
		&sport)
	if err != nil {
		return nil, err
	}
	t.Sport = model.ParseSport(sport)
	if ranking != nil {
		t.Ranking = *ranking
	}
	return &t, nil
}

func collectTeams(rows pgx.Rows) ([]model.Team, error) {
	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with team rows: %w", err)
	}
	return results, nil
}
