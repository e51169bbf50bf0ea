package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const userColumns = `user_id, full_name, email, user_name, pwd, position, profile_setting, created`

func (db *postgresDB) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=@login OR user_name=@login`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"login": login})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user by login: %w", err)
	}
	return u, nil
}

func (db *postgresDB) GetUserByID(ctx context.Context, id int32) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user %d: %w", id, err)
	}
	return u, nil
}

// CreateUser inserts a new user after checking that the email and
// username are unused. The check and the insert run in one transaction.
// Sets u.ID on success.
func (db *postgresDB) CreateUser(ctx context.Context, u *model.User) error {
	const check = `SELECT user_id FROM users WHERE email=@email OR user_name=@username`
	const insert = `INSERT INTO users (full_name, email, user_name, pwd, position, profile_setting)
		VALUES (@fullName, @email, @username, @pwd, @position, @profileSetting)
		RETURNING user_id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int32
	err = tx.QueryRow(ctx, check, pgx.NamedArgs{"email": u.Email, "username": u.Username}).Scan(&existing)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error checking for existing user: %w", err)
	}

	args := pgx.NamedArgs{
		"fullName":       u.FullName,
		"email":          u.Email,
		"username":       u.Username,
		"pwd":            u.PasswordHash,
		"position":       u.Position,
		"profileSetting": u.ProfileSetting,
	}
	if err := tx.QueryRow(ctx, insert, args).Scan(&u.ID); err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing user transaction: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var created pgtype.Timestamptz
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Position,
		&u.ProfileSetting,
		&created)
	if err != nil {
		return nil, err
	}
	u.Created = created.Time
	return &u, nil
}
