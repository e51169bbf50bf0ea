package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

func (db *postgresDB) CreateSession(ctx context.Context, s *model.Session) error {
	const insert = `INSERT INTO sessions (token, user_id, expires)
		VALUES (@token, @userID, @expires)`

	args := pgx.NamedArgs{
		"token":  s.Token,
		"userID": s.UserID,
		"expires": pgtype.Timestamptz{
			Time:  s.Expires,
			Valid: true,
		},
	}
	if _, err := db.pool.Exec(ctx, insert, args); err != nil {
		return fmt.Errorf("error inserting session: %w", err)
	}
	return nil
}

// GetSession joins the user row so that the username and admin flag are
// re-read on every request. An expired token is the same as no token.
func (db *postgresDB) GetSession(ctx context.Context, token string) (*model.Session, error) {
	const query = `SELECT s.token, s.user_id, u.user_name, u.position, s.created, s.expires
		FROM sessions AS s
		INNER JOIN users AS u ON s.user_id=u.user_id
		WHERE s.token=@token AND s.expires > @now`

	var s model.Session
	var position string
	var created, expires pgtype.Timestamptz
	args := pgx.NamedArgs{
		"token": token,
		"now": pgtype.Timestamptz{
			Time:  db.clock.Now(),
			Valid: true,
		},
	}
	row := db.pool.QueryRow(ctx, query, args)
	err := row.Scan(&s.Token, &s.UserID, &s.Username, &position, &created, &expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error looking up session: %w", err)
	}
	s.Admin = position == model.PositionAdmin
	s.Created = created.Time
	s.Expires = expires.Time
	return &s, nil
}

func (db *postgresDB) DeleteSession(ctx context.Context, token string) error {
	const del = `DELETE FROM sessions WHERE token=@token`

	if _, err := db.pool.Exec(ctx, del, pgx.NamedArgs{"token": token}); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (db *postgresDB) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const del = `DELETE FROM sessions WHERE expires <= @now`

	args := pgx.NamedArgs{
		"now": pgtype.Timestamptz{
			Time:  db.clock.Now(),
			Valid: true,
		},
	}
	tag, err := db.pool.Exec(ctx, del, args)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
