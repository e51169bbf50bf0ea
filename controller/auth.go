package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionDuration   = 24 * time.Hour
	minPasswordLength = 8
)

func (c *controller) Register(ctx context.Context, fullName, email, username, password string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	if fullName == "" || username == "" {
		return nil, fmt.Errorf("%w: name and username are required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &model.User{
		FullName:     fullName,
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Position:     model.PositionUser,
	}
	if err := c.db.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *controller) Login(ctx context.Context, login, password string) (*model.Session, error) {
	u, err := c.db.GetUserByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidLogin
	}

	now := c.clock.Now().UTC()
	s := &model.Session{
		Token:    uuid.NewString(),
		UserID:   u.ID,
		Username: u.Username,
		Admin:    u.IsAdmin(),
		Created:  now,
		Expires:  now.Add(sessionDuration),
	}
	if err := c.db.CreateSession(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *controller) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := c.db.DeleteSession(ctx, token)
	if errors.Is(err, db.ErrSessionNotFound) {
		return nil
	}
	return err
}

func (c *controller) ResolveSession(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, nil
	}

	s, err := c.db.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, db.ErrSessionNotFound) {
			return model.Identity{}, nil
		}
		return model.Identity{}, err
	}

	return model.Identity{
		UserID:   s.UserID,
		Username: s.Username,
		Admin:    s.Admin,
	}, nil
}

func (c *controller) RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := c.db.DeleteExpiredSessions(ctx)
			cancel()
			if err != nil {
				log.Printf("error cleaning up sessions: %v", err)
			} else if n > 0 {
				log.Printf("deleted %d expired sessions", n)
			}
		}
	}
}
