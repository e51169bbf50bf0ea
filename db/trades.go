package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

// tradeOrderClauses maps the whitelisted trade sort keys onto SQL order
// clauses. The controller guarantees orderBy is one of these keys.
var tradeOrderClauses = map[string]string{
	"Name":           "p.full_name ASC",
	"Sport":          "t.sport ASC",
	"Fantasy Points": "p.fantasy_points DESC",
	"Trade Date":     "tr.trade_date DESC",
}

func (db *postgresDB) CountTrades(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*)
		FROM player_trades pt
		JOIN players p ON pt.player_id = p.player_id
		JOIN trades tr ON pt.trade_id = tr.trade_id
		JOIN teams t ON p.team_id = t.team_id`

	var count int
	if err := db.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting trades: %w", err)
	}
	return count, nil
}

func (db *postgresDB) ListTrades(ctx context.Context, orderBy string, limit, offset int) ([]model.TradeRecord, error) {
	clause, ok := tradeOrderClauses[orderBy]
	if !ok {
		clause = tradeOrderClauses["Name"]
	}

	query := fmt.Sprintf(`SELECT pt.player_id, p.full_name, p.photo_url, p.real_team,
			t.team_name, t.sport, pt.from_or_to, tr.trade_date
		FROM player_trades pt
		JOIN players p ON pt.player_id = p.player_id
		JOIN trades tr ON pt.trade_id = tr.trade_id
		JOIN teams t ON p.team_id = t.team_id
		ORDER BY %s
		LIMIT @limit OFFSET @offset`, clause)

	args := pgx.NamedArgs{
		"limit":  limit,
		"offset": offset,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing trades: %w", err)
	}

	results := make([]model.TradeRecord, 0, limit)
	for rows.Next() {
		var r model.TradeRecord
		var sport string
		var photoURL *string
		var date pgtype.Date
		err := rows.Scan(&r.PlayerID, &r.FullName, &photoURL, &r.RealTeam,
			&r.TeamName, &sport, &r.FromOrTo, &date)
		if err != nil {
			return nil, fmt.Errorf("error scanning trade: %w", err)
		}
		r.Sport = model.ParseSport(sport)
		r.TradeDate = date.Time
		if photoURL != nil {
			r.PhotoURL = *photoURL
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with trade rows: %w", err)
	}
	return results, nil
}

// ExecuteTrade invokes the atomic trade procedure. The procedure
// validates ownership and availability, swaps both players' team
// references, marks them unavailable, and records the trade event. A
// rejection raised by the procedure rolls back and surfaces as
// *RejectionError; any other error also rolls back before returning.
// Exactly one commit on success.
func (db *postgresDB) ExecuteTrade(ctx context.Context, buyerTeamID, sellerTeamID, sellerPlayerID, buyerPlayerID int32, date time.Time) error {
	const call = `CALL ExecuteTrade(@buyerTeamID, @sellerTeamID, @sellerPlayerID, @buyerPlayerID, @tradeDate)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"buyerTeamID":    buyerTeamID,
		"sellerTeamID":   sellerTeamID,
		"sellerPlayerID": sellerPlayerID,
		"buyerPlayerID":  buyerPlayerID,
		"tradeDate": pgtype.Date{
			Time:  date,
			Valid: true,
		},
	}
	if _, err := tx.Exec(ctx, call, args); err != nil {
		return asRejection(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing trade: %w", err)
	}
	return nil
}
