package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db"
	"github.com/zhaodong-liu/Fantasy-Sports-League/db/mockdb"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
	"golang.org/x/crypto/bcrypt"
)

func newTestController(t *testing.T, mockDB *mockdb.DB) (C, *clock.Mock) {
	t.Helper()
	c := clock.NewMock()
	c.Set(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))

	ctrl, err := New(c, mockDB)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl, c
}

func TestRegister_validation(t *testing.T) {
	tests := map[string]struct {
		fullName, email, username, password string
	}{
		"missing name":     {fullName: "", email: "a@b.com", username: "abc", password: "longenough"},
		"missing username": {fullName: "A B", email: "a@b.com", username: "", password: "longenough"},
		"bad email":        {fullName: "A B", email: "not-an-email", username: "abc", password: "longenough"},
		"short password":   {fullName: "A B", email: "a@b.com", username: "abc", password: "short"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			ctrl, _ := newTestController(t, mockDB)

			_, err := ctrl.Register(context.Background(), tc.fullName, tc.email, tc.username, tc.password)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got: %v", err)
			}
			// Nothing reached the database.
			mockDB.AssertExpectations(t)
		})
	}
}

func TestRegister(t *testing.T) {
	mockDB := &mockdb.DB{}
	ctrl, _ := newTestController(t, mockDB)

	mockDB.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		if u.Position != model.PositionUser {
			return false
		}
		// The password is stored hashed, never verbatim.
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2hunter2")) == nil
	})).Return(nil)

	u, err := ctrl.Register(context.Background(), "Casey Manager", "Casey@Example.com", "casey", "hunter2hunter2")
	if err != nil {
		t.Fatalf("error registering: %v", err)
	}
	if u.Email != "casey@example.com" {
		t.Errorf("email not normalized: %s", u.Email)
	}
	mockDB.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}
	user := &model.User{
		ID:           7,
		Username:     "casey",
		PasswordHash: string(hash),
		Position:     model.PositionAdmin,
	}

	t.Run("success", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, cl := newTestController(t, mockDB)

		mockDB.On("GetUserByLogin", mock.Anything, "casey").Return(user, nil)
		mockDB.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
			return s.UserID == 7 && s.Admin && s.Token != "" &&
				s.Expires.Equal(cl.Now().UTC().Add(sessionDuration))
		})).Return(nil)

		s, err := ctrl.Login(context.Background(), "casey", "correct-password")
		if err != nil {
			t.Fatalf("error logging in: %v", err)
		}
		if s.Username != "casey" {
			t.Errorf("unexpected username: %s", s.Username)
		}
		mockDB.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, _ := newTestController(t, mockDB)

		mockDB.On("GetUserByLogin", mock.Anything, "casey").Return(user, nil)

		_, err := ctrl.Login(context.Background(), "casey", "wrong")
		if !errors.Is(err, ErrInvalidLogin) {
			t.Errorf("expected ErrInvalidLogin, got: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, _ := newTestController(t, mockDB)

		mockDB.On("GetUserByLogin", mock.Anything, "nobody").Return(nil, db.ErrUserNotFound)

		// The same error as a wrong password, so logins cannot be probed.
		_, err := ctrl.Login(context.Background(), "nobody", "whatever")
		if !errors.Is(err, ErrInvalidLogin) {
			t.Errorf("expected ErrInvalidLogin, got: %v", err)
		}
	})
}

func TestResolveSession(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, _ := newTestController(t, mockDB)

		mockDB.On("GetSession", mock.Anything, "tok").Return(&model.Session{
			Token:    "tok",
			UserID:   3,
			Username: "uma",
		}, nil)

		ident, err := ctrl.ResolveSession(context.Background(), "tok")
		if err != nil {
			t.Fatalf("error resolving session: %v", err)
		}
		if ident.Anonymous() || ident.Username != "uma" || ident.Admin {
			t.Errorf("unexpected identity: %+v", ident)
		}
	})

	t.Run("missing token is anonymous", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, _ := newTestController(t, mockDB)

		ident, err := ctrl.ResolveSession(context.Background(), "")
		if err != nil {
			t.Fatalf("error resolving session: %v", err)
		}
		if !ident.Anonymous() {
			t.Errorf("expected anonymous identity, got: %+v", ident)
		}
		mockDB.AssertExpectations(t)
	})

	t.Run("expired session is anonymous", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl, _ := newTestController(t, mockDB)

		mockDB.On("GetSession", mock.Anything, "stale").Return(nil, db.ErrSessionNotFound)

		ident, err := ctrl.ResolveSession(context.Background(), "stale")
		if err != nil {
			t.Fatalf("error resolving session: %v", err)
		}
		if !ident.Anonymous() {
			t.Errorf("expected anonymous identity, got: %+v", ident)
		}
	})
}
