package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (db *postgresDB) GetWaiverPlayers(ctx context.Context, sortOrder string) ([]model.WaiverPlayer, error) {
	const query = `SELECT waiver_id, player_id, full_name, sport, position, fantasy_points, waiver_status
		FROM GetWaiverPlayers(@sortOrder)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"sortOrder": sortOrder})
	if err != nil {
		return nil, asRejection(fmt.Errorf("error calling GetWaiverPlayers: %w", err))
	}

	results := make([]model.WaiverPlayer, 0, 16)
	for rows.Next() {
		var w model.WaiverPlayer
		var sport, status string
		err := rows.Scan(&w.WaiverID, &w.PlayerID, &w.FullName, &sport, &w.Position, &w.FantasyPoints, &status)
		if err != nil {
			return nil, fmt.Errorf("error scanning waiver player: %w", err)
		}
		w.Sport = model.ParseSport(sport)
		w.Status = model.WaiverStatus(status)
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, asRejection(fmt.Errorf("error with waiver player rows: %w", err))
	}
	return results, nil
}

// GetWaiverDetails returns the single waiver row or ErrWaiverNotFound.
func (db *postgresDB) GetWaiverDetails(ctx context.Context, waiverID int32) (*model.Waiver, error) {
	const query = `SELECT waiver_id, player_id, player_name, sport, team_id, team_name, waiver_status, request_date
		FROM GetWaiverDetails(@waiverID)`

	var w model.Waiver
	var sport, status string
	var teamID *int32
	var teamName *string
	var date pgtype.Date
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"waiverID": waiverID})
	err := row.Scan(&w.ID, &w.PlayerID, &w.PlayerName, &sport, &teamID, &teamName, &status, &date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWaiverNotFound
		}
		return nil, fmt.Errorf("error getting waiver %d: %w", waiverID, err)
	}
	w.Sport = model.ParseSport(sport)
	w.Status = model.WaiverStatus(status)
	w.RequestDate = date.Time
	if teamID != nil {
		w.TeamID = *teamID
	}
	if teamName != nil {
		w.TeamName = *teamName
	}
	return &w, nil
}

// UpdateWaiverStatus applies the status transition and returns the
// message produced by the procedure. Re-applying a status to an already
// processed waiver raises a rejection.
func (db *postgresDB) UpdateWaiverStatus(ctx context.Context, waiverID int32, status model.WaiverStatus) (string, error) {
	const query = `SELECT UpdateWaiverStatus(@waiverID, @status)`

	args := pgx.NamedArgs{
		"waiverID": waiverID,
		"status":   string(status),
	}
	var message *string
	if err := db.pool.QueryRow(ctx, query, args).Scan(&message); err != nil {
		return "", asRejection(err)
	}
	if message == nil {
		return "", nil
	}
	return *message, nil
}
