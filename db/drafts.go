package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

var draftOrderClauses = map[string]string{
	"Date":        "d.draft_date ASC",
	"DraftOrder":  "d.draft_order ASC",
	"DraftStatus": "d.draft_status ASC",
	"LeagueType":  "l.league_type ASC",
}

func (db *postgresDB) CountDrafts(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM drafts`

	var count int
	if err := db.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting drafts: %w", err)
	}
	return count, nil
}

func (db *postgresDB) ListDrafts(ctx context.Context, orderBy string, limit, offset int) ([]model.Draft, error) {
	clause, ok := draftOrderClauses[orderBy]
	if !ok {
		clause = draftOrderClauses["Date"]
	}

	query := fmt.Sprintf(`SELECT d.draft_id, d.league_id, d.draft_date, d.draft_order, d.draft_status,
			l.league_name, l.league_type
		FROM drafts d
		JOIN leagues l ON d.league_id = l.league_id
		ORDER BY %s
		LIMIT @limit OFFSET @offset`, clause)

	args := pgx.NamedArgs{
		"limit":  limit,
		"offset": offset,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing drafts: %w", err)
	}

	results := make([]model.Draft, 0, limit)
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with draft rows: %w", err)
	}
	return results, nil
}

func (db *postgresDB) GetDraft(ctx context.Context, id int32) (*model.Draft, error) {
	const query = `SELECT d.draft_id, d.league_id, d.draft_date, d.draft_order, d.draft_status,
			l.league_name, l.league_type
		FROM drafts d
		JOIN leagues l ON d.league_id = l.league_id
		WHERE d.draft_id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("error getting draft %d: %w", id, err)
	}
	return d, nil
}

func (db *postgresDB) GetDraftPlayers(ctx context.Context, id int32) ([]model.DraftPlayer, error) {
	const query = `SELECT p.player_id, p.full_name, p.position, p.fantasy_points, t.team_name
		FROM players p
		JOIN teams t ON p.team_id = t.team_id
		WHERE p.draft_id=@id
		ORDER BY t.team_name ASC, p.fantasy_points DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("error listing draft players: %w", err)
	}

	results := make([]model.DraftPlayer, 0, 16)
	for rows.Next() {
		var p model.DraftPlayer
		if err := rows.Scan(&p.PlayerID, &p.FullName, &p.Position, &p.FantasyPoints, &p.TeamName); err != nil {
			return nil, fmt.Errorf("error scanning draft player: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with draft player rows: %w", err)
	}
	return results, nil
}

// StartDraft calls the stored procedure which validates the league and
// order mode, inserts the draft, and returns its id. Invalid input
// raises a rejection.
func (db *postgresDB) StartDraft(ctx context.Context, leagueID int32, date time.Time, order model.DraftOrder) (int32, error) {
	const query = `SELECT StartDraft(@leagueID, @draftDate, @draftOrder)`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"draftDate": pgtype.Date{
			Time:  date,
			Valid: true,
		},
		"draftOrder": string(order),
	}
	var draftID int32
	if err := db.pool.QueryRow(ctx, query, args).Scan(&draftID); err != nil {
		return 0, asRejection(err)
	}
	return draftID, nil
}

func scanDraft(row pgx.Row) (*model.Draft, error) {
	var d model.Draft
	var order string
	var date pgtype.Date
	err := row.Scan(
		&d.ID,
		&d.LeagueID,
		&date,
		&order,
		&d.Status,
		&d.LeagueName,
		&d.LeagueType)
	if err != nil {
		return nil, err
	}
	d.Order = model.DraftOrder(order)
	d.Date = date.Time
	return &d, nil
}
