package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("email or username already exists")
	ErrSessionNotFound   = errors.New("session not found")
	ErrLeagueNotFound    = errors.New("league not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrDuplicateTeamName = errors.New("team name already exists in this league")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrDraftNotFound     = errors.New("draft not found")
	ErrWaiverNotFound    = errors.New("waiver not found")
)

// rejectionCode is the SQLSTATE the stored procedures raise for domain
// rejections that carry a user-facing message.
const rejectionCode = "45000"

// RejectionError is a domain-level rejection raised by a stored
// procedure. Message is safe to show to the user.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

// asRejection converts a procedure-raised 45000 into a *RejectionError,
// leaving every other error untouched.
func asRejection(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == rejectionCode {
		return &RejectionError{Message: pgErr.Message}
	}
	return err
}

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}
